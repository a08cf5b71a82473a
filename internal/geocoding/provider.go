package geocoding

import (
	"context"
	"errors"

	"github.com/ClementV78/TimeReach/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and a free-text address as input and
// returns the coordinates of the best candidate.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// ErrNoCandidates is returned when a provider answers successfully but has
// no candidate for the address.
var ErrNoCandidates = errors.New("geocoder returned no candidates")
