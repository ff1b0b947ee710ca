package entity

type Canteen struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Menu        []MenuItem `json:"menu"`
}
