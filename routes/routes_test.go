package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dineshdk1011/college-canteen/configs"
	"github.com/dineshdk1011/college-canteen/repository"
	"github.com/dineshdk1011/college-canteen/services"
	"github.com/dineshdk1011/college-canteen/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := repository.NewCatalogRepository(configs.SeedCanteens())
	cart := services.NewCartService()
	orders := repository.NewOrderRepository(storage.NewMemoryStore(), "canteen_orders", zerolog.Nop())
	checkout := services.NewCheckoutService(cart, orders, 0, zerolog.Nop())

	r := gin.New()
	RegisterRoutes(r, Deps{Catalog: catalog, Cart: cart, Checkout: checkout, Orders: orders})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.OK)
	return env.Data
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/canteens", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/canteens/central-mess", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Central Mess", decodeData(t, w)["name"])

	w = do(t, r, http.MethodGet, "/canteens/teleport-cafe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)

	// add two samosas
	w := do(t, r, http.MethodPost, "/cart/items", gin.H{
		"canteenId": "central-mess", "itemId": "cm-samosa", "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(2), data["count"])
	assert.Equal(t, float64(30), data["totalAmount"]) // 2 x 15

	// unknown item is a 404, cart untouched
	w = do(t, r, http.MethodPost, "/cart/items", gin.H{
		"canteenId": "central-mess", "itemId": "cm-pizza", "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing required checkout fields
	w = do(t, r, http.MethodPost, "/checkout", gin.H{"name": "Dinesh"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var failed struct {
		MissingFields []string `json:"missingFields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failed))
	assert.Equal(t, []string{"collegeId", "phone"}, failed.MissingFields)

	// valid checkout
	w = do(t, r, http.MethodPost, "/checkout", gin.H{
		"name": "Dinesh", "collegeId": "21CS042", "phone": "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID, _ := decodeData(t, w)["orderId"].(string)
	require.NotEmpty(t, orderID)

	// cart is cleared after a successful checkout
	w = do(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, float64(0), decodeData(t, w)["count"])

	// confirmation view finds the order by id
	w = do(t, r, http.MethodGet, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decodeData(t, w)
	assert.Equal(t, float64(30), order["totalAmount"])
	assert.Equal(t, "Order Placed", order["status"])

	w = do(t, r, http.MethodGet, "/orders/ORD-never-issued", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// empty cart cannot check out again
	w = do(t, r, http.MethodPost, "/checkout", gin.H{
		"name": "Dinesh", "collegeId": "21CS042", "phone": "9876543210",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCartQuantityRoutes(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, http.MethodPost, "/cart/items", gin.H{
		"canteenId": "juice-junction", "itemId": "jj-cold-coffee", "quantity": 1,
	})

	w := do(t, r, http.MethodPatch, "/cart/items/qty", gin.H{"itemId": "jj-cold-coffee", "quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), decodeData(t, w)["count"])

	// quantity zero removes the line
	w = do(t, r, http.MethodPatch, "/cart/items/qty", gin.H{"itemId": "jj-cold-coffee", "quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeData(t, w)["count"])

	do(t, r, http.MethodPost, "/cart/items", gin.H{
		"canteenId": "juice-junction", "itemId": "jj-mango-shake", "quantity": 2,
	})
	w = do(t, r, http.MethodDelete, "/cart/items/jj-mango-shake", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeData(t, w)["count"])
}
