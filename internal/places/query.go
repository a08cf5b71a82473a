package places

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ClementV78/TimeReach/internal/models"
)

// Keyword and type hint bounds.
const (
	maxKeywordLen  = 50
	minTypeHintLen = 2
	maxTypeHintLen = 50
)

// keywordPattern restricts keywords to letters, digits and spaces.
var keywordPattern = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)

// ValidateFilters checks the type hint and keyword against the accepted
// shapes. An empty type hint is allowed; BuildQuery substitutes the default
// category. Violations wrap models.ErrValidation.
func ValidateFilters(typeHint, keyword string) error {
	if len(keyword) > maxKeywordLen {
		return fmt.Errorf("%w: keyword longer than %d characters", models.ErrValidation, maxKeywordLen)
	}

	if !keywordPattern.MatchString(keyword) {
		return fmt.Errorf("%w: keyword may only contain letters, digits and spaces", models.ErrValidation)
	}

	if typeHint != "" && (len(typeHint) < minTypeHintLen || len(typeHint) > maxTypeHintLen) {
		return fmt.Errorf("%w: type must be between %d and %d characters",
			models.ErrValidation, minTypeHintLen, maxTypeHintLen)
	}

	return nil
}

// BuildQuery normalizes user filters into the single request sent to the
// places provider. The search text is the keyword when non-empty and the
// type hint otherwise; the radius is capped at the provider maximum
// regardless of the computed estimate.
func BuildQuery(origin models.Coordinates, radius int, typeHint, keyword string) (models.PlaceQuery, error) {
	if typeHint == "" {
		typeHint = models.DefaultPlaceType
	}

	if err := ValidateFilters(typeHint, keyword); err != nil {
		return models.PlaceQuery{}, err
	}

	if radius > models.MaxSearchRadiusMeters {
		radius = models.MaxSearchRadiusMeters
	}

	text := keyword
	if text == "" {
		text = typeHint
	}

	return models.PlaceQuery{
		Text:     text,
		TypeHint: typeHint,
		Center:   origin,
		Radius:   radius,
		Limit:    models.MaxResults,
	}, nil
}

// FilterByKeyword keeps only places whose name contains the keyword,
// compared case-insensitively. An empty keyword keeps the list unchanged.
func FilterByKeyword(list []models.Place, keyword string) []models.Place {
	if keyword == "" {
		return list
	}

	needle := strings.ToLower(keyword)
	filtered := make([]models.Place, 0, len(list))

	for _, place := range list {
		if strings.Contains(strings.ToLower(place.Name), needle) {
			filtered = append(filtered, place)
		}
	}

	return filtered
}

// Truncate caps the list at max entries, preserving provider rank order.
func Truncate(list []models.Place, max int) []models.Place {
	if len(list) <= max {
		return list
	}

	return list[:max]
}
