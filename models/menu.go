package models

import "time"

// MenuItem is keyed by a numeric external id chosen by the admin,
// separate from the row id.
type MenuItem struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Image           string    `json:"image"`
	Description     string    `json:"description"`
	Available       bool      `json:"available"`
	PreparationTime int       `json:"preparationTime"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
