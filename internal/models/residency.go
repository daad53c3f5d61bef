package models

import "time"

// Residency represents a single property listing.
type Residency struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Image       string     `json:"image"`
	Facilities  Facilities `json:"facilities"`
	OwnerEmail  string     `json:"userEmail"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Facilities holds the amenity counts advertised for a residency.
// Stored as a JSON text column.
type Facilities struct {
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`
	Parkings  int `json:"parkings"`
}

// ResidencyUpdate carries a partial update; nil fields are left unchanged.
type ResidencyUpdate struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Price       *float64    `json:"price"`
	Address     *string     `json:"address"`
	City        *string     `json:"city"`
	Country     *string     `json:"country"`
	Image       *string     `json:"image"`
	Facilities  *Facilities `json:"facilities"`
}
