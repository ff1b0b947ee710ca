package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dineshdk1011/college-canteen/entity"
	"github.com/dineshdk1011/college-canteen/storage"
)

func newOrderRepo(store storage.Store) *OrderRepository {
	return NewOrderRepository(store, "canteen_orders", zerolog.Nop())
}

func testOrder(id string) entity.Order {
	return entity.Order{
		ID:     id,
		Date:   time.Now().UTC(),
		Status: entity.StatusOrderPlaced,
		Items: []entity.CartItem{
			{ItemID: "cm-samosa", CanteenID: "central-mess", Name: "Samosa",
				CanteenName: "Central Mess", Price: 15, Quantity: 2},
		},
		TotalAmount:  30,
		CanteenNames: []string{"Central Mess"},
		UserInfo:     entity.UserInfo{Name: "Dinesh", CollegeID: "21CS042", Phone: "9876543210"},
	}
}

func TestListAllEmptySlot(t *testing.T) {
	repo := newOrderRepo(storage.NewMemoryStore())
	assert.Empty(t, repo.ListAll(context.Background()))
}

func TestListAllCorruptSlotReadsAsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "canteen_orders", []byte("{not json")))

	repo := newOrderRepo(store)
	assert.Empty(t, repo.ListAll(context.Background()))
}

func TestPrependKeepsMostRecentFirst(t *testing.T) {
	repo := newOrderRepo(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Prepend(ctx, testOrder("ORD-1")))
	require.NoError(t, repo.Prepend(ctx, testOrder("ORD-2")))
	require.NoError(t, repo.Prepend(ctx, testOrder("ORD-3")))

	got := repo.ListAll(ctx)
	require.Len(t, got, 3)
	assert.Equal(t, "ORD-3", got[0].ID)
	assert.Equal(t, "ORD-2", got[1].ID)
	assert.Equal(t, "ORD-1", got[2].ID)
}

func TestFindByID(t *testing.T) {
	repo := newOrderRepo(storage.NewMemoryStore())
	ctx := context.Background()
	require.NoError(t, repo.Prepend(ctx, testOrder("ORD-1")))

	order, ok := repo.FindByID(ctx, "ORD-1")
	require.True(t, ok)
	assert.Equal(t, int64(30), order.TotalAmount)

	_, ok = repo.FindByID(ctx, "ORD-nope")
	assert.False(t, ok)
}

// A corrupt slot costs the existing history but a later write must still
// succeed and leave the slot well-formed again.
func TestPrependOverCorruptSlot(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "canteen_orders", []byte("[[[")))

	repo := newOrderRepo(store)
	require.NoError(t, repo.Prepend(ctx, testOrder("ORD-1")))

	got := repo.ListAll(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "ORD-1", got[0].ID)
}

func TestSlotSharedAcrossRepositories(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	// two repositories over the same slot, like two tabs on one profile
	a := newOrderRepo(store)
	b := newOrderRepo(store)

	require.NoError(t, a.Prepend(ctx, testOrder("ORD-a")))
	require.NoError(t, b.Prepend(ctx, testOrder("ORD-b")))

	got := a.ListAll(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "ORD-b", got[0].ID)
	assert.Equal(t, "ORD-a", got[1].ID)
}
