package entity

type Category string

const (
	CategorySnacks     Category = "Snacks"
	CategoryMainCourse Category = "Main Course"
	CategoryBeverages  Category = "Beverages"
	CategoryDesserts   Category = "Desserts"
)

// MenuItem is immutable after catalog load.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	IsVeg       bool     `json:"isVeg"`
	Image       string   `json:"image"`
}
