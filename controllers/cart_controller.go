package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dineshdk1011/college-canteen/entity"
	"github.com/dineshdk1011/college-canteen/pkg/resp"
	"github.com/dineshdk1011/college-canteen/repository"
	"github.com/dineshdk1011/college-canteen/services"
)

type CartController struct {
	Cart    *services.CartService
	Catalog *repository.CatalogRepository
}

func NewCartController(cart *services.CartService, catalog *repository.CatalogRepository) *CartController {
	return &CartController{Cart: cart, Catalog: catalog}
}

func (ctl *CartController) cartView() gin.H {
	return gin.H{
		"items":       ctl.Cart.Items(),
		"count":       ctl.Cart.Count(),
		"totalAmount": ctl.Cart.TotalAmount(),
	}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	resp.OK(c, ctl.cartView())
}

type AddToCartIn struct {
	CanteenID string `json:"canteenId" binding:"required"`
	ItemID    string `json:"itemId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	var req AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	canteen, ok := ctl.Catalog.GetCanteen(req.CanteenID)
	if !ok {
		resp.NotFound(c, "canteen not found")
		return
	}
	item, ok := ctl.Catalog.GetMenuItem(req.CanteenID, req.ItemID)
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}

	// snapshot of the catalog entry, taken at add-time
	ctl.Cart.Add(entity.CartItem{
		ItemID:      item.ID,
		CanteenID:   canteen.ID,
		Name:        item.Name,
		CanteenName: canteen.Name,
		Price:       item.Price,
		Quantity:    req.Quantity,
	})
	resp.Created(c, ctl.cartView())
}

type UpdateQtyIn struct {
	ItemID string `json:"itemId" binding:"required"`
	// zero and below removes the line, so no min binding here
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/qty
func (ctl *CartController) UpdateQty(c *gin.Context) {
	var req UpdateQtyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Cart.UpdateQuantity(req.ItemID, req.Quantity)
	resp.OK(c, ctl.cartView())
}

// DELETE /cart/items/:itemId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	ctl.Cart.Remove(c.Param("itemId"))
	resp.OK(c, ctl.cartView())
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	ctl.Cart.Clear()
	resp.OK(c, ctl.cartView())
}
