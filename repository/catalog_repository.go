package repository

import "github.com/dineshdk1011/college-canteen/entity"

// CatalogRepository serves the static canteen catalog. It is read-only:
// everything is indexed once at construction and never mutated.
type CatalogRepository struct {
	canteens []entity.Canteen
	byID     map[string]*entity.Canteen
	// menu items keyed by canteen id then item id
	items map[string]map[string]*entity.MenuItem
}

func NewCatalogRepository(canteens []entity.Canteen) *CatalogRepository {
	r := &CatalogRepository{
		canteens: canteens,
		byID:     make(map[string]*entity.Canteen, len(canteens)),
		items:    make(map[string]map[string]*entity.MenuItem, len(canteens)),
	}
	for i := range r.canteens {
		c := &r.canteens[i]
		r.byID[c.ID] = c
		menu := make(map[string]*entity.MenuItem, len(c.Menu))
		for j := range c.Menu {
			menu[c.Menu[j].ID] = &c.Menu[j]
		}
		r.items[c.ID] = menu
	}
	return r
}

// List returns every canteen in catalog order.
func (r *CatalogRepository) List() []entity.Canteen {
	return r.canteens
}

func (r *CatalogRepository) GetCanteen(id string) (*entity.Canteen, bool) {
	c, ok := r.byID[id]
	return c, ok
}

func (r *CatalogRepository) GetMenuItem(canteenID, itemID string) (*entity.MenuItem, bool) {
	menu, ok := r.items[canteenID]
	if !ok {
		return nil, false
	}
	m, ok := menu[itemID]
	return m, ok
}
