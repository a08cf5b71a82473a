package mocks

import (
	"context"

	"github.com/ClementV78/TimeReach/internal/models"
	"github.com/stretchr/testify/mock"
)

// CoordinateResolver is a mock type for the service.CoordinateResolver interface.
type CoordinateResolver struct {
	mock.Mock
}

// Resolve provides a mock function with given fields: ctx, location, lat, lon.
func (m *CoordinateResolver) Resolve(
	ctx context.Context,
	location *string,
	lat, lon *float64,
) (*models.Coordinates, error) {
	ret := m.Called(ctx, location, lat, lon)

	var r0 *models.Coordinates
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coordinates)
	}

	return r0, ret.Error(1)
}

// NewCoordinateResolver creates a new instance of CoordinateResolver. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewCoordinateResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *CoordinateResolver {
	m := &CoordinateResolver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ReachabilityEstimator is a mock type for the service.ReachabilityEstimator interface.
type ReachabilityEstimator struct {
	mock.Mock
}

// Estimate provides a mock function with given fields: ctx, origin, budget.
func (m *ReachabilityEstimator) Estimate(
	ctx context.Context,
	origin models.Coordinates,
	budget models.TravelBudget,
) (int, models.Polygon, error) {
	ret := m.Called(ctx, origin, budget)

	r0 := ret.Get(0).(int)

	var r1 models.Polygon
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(models.Polygon)
	}

	return r0, r1, ret.Error(2)
}

// NewReachabilityEstimator creates a new instance of ReachabilityEstimator.
// It also registers a testing interface on the mock and a cleanup function to
// assert the mocks expectations.
func NewReachabilityEstimator(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReachabilityEstimator {
	m := &ReachabilityEstimator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// PlaceSearcher is a mock type for the service.PlaceSearcher interface.
type PlaceSearcher struct {
	mock.Mock
}

// SearchNearby provides a mock function with given fields: ctx, query.
func (m *PlaceSearcher) SearchNearby(ctx context.Context, query models.PlaceQuery) ([]models.Place, error) {
	ret := m.Called(ctx, query)

	var r0 []models.Place
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Place)
	}

	return r0, ret.Error(1)
}

// NewPlaceSearcher creates a new instance of PlaceSearcher. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewPlaceSearcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *PlaceSearcher {
	m := &PlaceSearcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
