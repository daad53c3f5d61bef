package models

import "time"

// User represents a user account in the system.
type User struct {
	ID               string        `json:"id"`
	Email            string        `json:"email"`
	Name             string        `json:"name,omitempty"`
	Image            string        `json:"image,omitempty"`
	PasswordHash     string        `json:"-"` // Never expose this to the client
	BookedVisits     []BookedVisit `json:"bookedVisits"`
	FavResidenciesID []string      `json:"favResidenciesID"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// BookedVisit records a scheduled visit to a residency.
type BookedVisit struct {
	ResidencyID string    `json:"id"`
	Date        time.Time `json:"date"`
}
