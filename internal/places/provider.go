package places

import (
	"context"

	"github.com/ClementV78/TimeReach/internal/models"
)

// Provider is an interface that defines a method for searching venues
// around a center point. Results come back in provider rank order.
type Provider interface {
	SearchNearby(ctx context.Context, query models.PlaceQuery) ([]models.Place, error)
}
