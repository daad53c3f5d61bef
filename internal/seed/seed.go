// Package seed loads a small demo data set: one owner account and a
// handful of residencies. Records that already exist are left untouched,
// so running it repeatedly is safe.
package seed

import (
	"context"
	"errors"

	"github.com/kevradan/homestead-be/internal/apperror"
	"github.com/kevradan/homestead-be/internal/models"
	"github.com/kevradan/homestead-be/internal/services"
	"github.com/rs/zerolog/log"
)

const demoOwner = "demo@homestead.dev"

var demoResidencies = []services.CreateResidencyInput{
	{
		Title:       "Garden Flat",
		Description: "Two-bedroom flat with a shared garden, close to the city center.",
		Price:       850,
		Address:     "12 Rosemary Lane",
		City:        "Utrecht",
		Country:     "Netherlands",
		Image:       "https://images.homestead.dev/garden-flat.jpg",
		Facilities:  models.Facilities{Bedrooms: 2, Bathrooms: 1, Parkings: 0},
		OwnerEmail:  demoOwner,
	},
	{
		Title:       "Harbour View Apartment",
		Description: "Bright top-floor apartment overlooking the old harbour.",
		Price:       1200,
		Address:     "3 Quay Street",
		City:        "Rotterdam",
		Country:     "Netherlands",
		Image:       "https://images.homestead.dev/harbour-view.jpg",
		Facilities:  models.Facilities{Bedrooms: 3, Bathrooms: 2, Parkings: 1},
		OwnerEmail:  demoOwner,
	},
	{
		Title:       "Canal House",
		Description: "Renovated seventeenth-century canal house with original beams.",
		Price:       2400,
		Address:     "48 Herengracht",
		City:        "Amsterdam",
		Country:     "Netherlands",
		Image:       "https://images.homestead.dev/canal-house.jpg",
		Facilities:  models.Facilities{Bedrooms: 4, Bathrooms: 3, Parkings: 0},
		OwnerEmail:  demoOwner,
	},
}

// Run inserts the demo data set through the regular services so all
// validation and ownership rules apply.
func Run(ctx context.Context, users services.UserServiceProvider, residencies services.ResidencyServiceProvider) error {
	if _, err := users.CreateUser(ctx, demoOwner, "", "Demo Owner"); err != nil {
		if !errors.Is(err, apperror.ErrConflict) {
			return err
		}
		log.Info().Str("email", demoOwner).Msg("Demo owner already present")
	}

	for _, input := range demoResidencies {
		if _, err := residencies.CreateResidency(ctx, input); err != nil {
			if !errors.Is(err, apperror.ErrConflict) {
				return err
			}
			log.Info().Str("address", input.Address).Msg("Residency already present")
		}
	}
	return nil
}
