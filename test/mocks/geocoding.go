package mocks

import (
	"context"

	"github.com/ClementV78/TimeReach/internal/models"
	"github.com/stretchr/testify/mock"
	"googlemaps.github.io/maps"
)

// GeocodingProvider is a mock type for the geocoding.Provider interface.
type GeocodingProvider struct {
	mock.Mock
}

// Geocode provides a mock function with given fields: ctx, address.
func (m *GeocodingProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	ret := m.Called(ctx, address)

	var r0 *models.Coordinates
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coordinates)
	}

	return r0, ret.Error(1)
}

// NewGeocodingProvider creates a new instance of GeocodingProvider. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewGeocodingProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *GeocodingProvider {
	m := &GeocodingProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// GoogleAPIClient is a mock type for the geocoding.GoogleAPIClient interface.
type GoogleAPIClient struct {
	mock.Mock
}

// Geocode provides a mock function with given fields: ctx, r.
func (m *GoogleAPIClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	ret := m.Called(ctx, r)

	var r0 []maps.GeocodingResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]maps.GeocodingResult)
	}

	return r0, ret.Error(1)
}

// NewGoogleAPIClient creates a new instance of GoogleAPIClient. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewGoogleAPIClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *GoogleAPIClient {
	m := &GoogleAPIClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
