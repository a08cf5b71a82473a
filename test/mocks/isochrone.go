package mocks

import (
	"context"

	"github.com/ClementV78/TimeReach/internal/models"
	"github.com/stretchr/testify/mock"
)

// IsochroneProvider is a mock type for the isochrone.Provider interface.
type IsochroneProvider struct {
	mock.Mock
}

// Reachable provides a mock function with given fields: ctx, origin, budget.
func (m *IsochroneProvider) Reachable(
	ctx context.Context,
	origin models.Coordinates,
	budget models.TravelBudget,
) (models.Polygon, error) {
	ret := m.Called(ctx, origin, budget)

	var r0 models.Polygon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Polygon)
	}

	return r0, ret.Error(1)
}

// NewIsochroneProvider creates a new instance of IsochroneProvider. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewIsochroneProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *IsochroneProvider {
	m := &IsochroneProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
