package routes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

type mockRouteStore struct {
	mock.Mock
}

func (m *mockRouteStore) ListRoutes(ctx context.Context, sourceFilter, destinationFilter string, limit, offset int) ([]domain.RouteDetail, error) {
	args := m.Called(ctx, sourceFilter, destinationFilter, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]domain.RouteDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRouteStore) GetRoute(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.RouteDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRouteStore) CreateRoute(ctx context.Context, sourceID, destinationID int64, distanceKM int) (*domain.Route, error) {
	args := m.Called(ctx, sourceID, destinationID, distanceKM)
	if v := args.Get(0); v != nil {
		return v.(*domain.Route), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRouteStore) RoutePlaceNames(ctx context.Context, sourceID, destinationID int64) (string, string, error) {
	args := m.Called(ctx, sourceID, destinationID)
	return args.String(0), args.String(1), args.Error(2)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) DistanceKM(ctx context.Context, from, to string) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

func intPtr(v int) *int { return &v }

func TestCreateWithExplicitDistance(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	store.On("CreateRoute", mock.Anything, int64(1), int64(2), 222).
		Return(&domain.Route{ID: 10, SourceID: 1, DestinationID: 2, DistanceKM: 222}, nil)

	r, err := svc.Create(context.Background(), 1, 2, intPtr(222))
	require.NoError(t, err)
	assert.Equal(t, 222, r.DistanceKM)

	// Explicit distance must never reach the resolver.
	resolver.AssertNotCalled(t, "DistanceKM", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "RoutePlaceNames", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestCreateUnknownAirportOnInsert(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	// Explicit-distance creation skips the place-name lookup, so a bad
	// airport id only shows up as a foreign-key failure at insert.
	store.On("CreateRoute", mock.Anything, int64(1), int64(99), 300).
		Return(nil, repository.ErrBadReference)

	_, err := svc.Create(context.Background(), 1, 99, intPtr(300))
	require.ErrorIs(t, err, ErrAirportNotFound)
	store.AssertExpectations(t)
}

func TestCreateExplicitZeroDistance(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	store.On("CreateRoute", mock.Anything, int64(1), int64(2), 0).
		Return(&domain.Route{ID: 11, SourceID: 1, DestinationID: 2, DistanceKM: 0}, nil)

	// Zero is a provided value, not an absent one.
	r, err := svc.Create(context.Background(), 1, 2, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 0, r.DistanceKM)
	resolver.AssertNotCalled(t, "DistanceKM", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateResolvesAbsentDistanceOnce(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	store.On("RoutePlaceNames", mock.Anything, int64(1), int64(2)).
		Return("Kyiv, Ukraine", "Warsaw, Poland", nil)
	resolver.On("DistanceKM", mock.Anything, "Kyiv, Ukraine", "Warsaw, Poland").
		Return(689, nil).Once()
	store.On("CreateRoute", mock.Anything, int64(1), int64(2), 689).
		Return(&domain.Route{ID: 12, SourceID: 1, DestinationID: 2, DistanceKM: 689}, nil)

	r, err := svc.Create(context.Background(), 1, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 689, r.DistanceKM)

	resolver.AssertNumberOfCalls(t, "DistanceKM", 1)
	store.AssertExpectations(t)
}

func TestCreateResolverFailureBlocksCreation(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	store.On("RoutePlaceNames", mock.Anything, int64(1), int64(2)).
		Return("Kyiv, Ukraine", "Warsaw, Poland", nil)
	resolver.On("DistanceKM", mock.Anything, "Kyiv, Ukraine", "Warsaw, Poland").
		Return(0, errors.New("geocoder down"))

	_, err := svc.Create(context.Background(), 1, 2, nil)
	assert.ErrorIs(t, err, ErrDistanceUnavailable)

	store.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateUnknownAirport(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	store.On("RoutePlaceNames", mock.Anything, int64(1), int64(99)).
		Return("", "", repository.ErrNotFound)

	_, err := svc.Create(context.Background(), 1, 99, nil)
	assert.ErrorIs(t, err, ErrAirportNotFound)
}

func TestCreateNegativeDistanceRejected(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	_, err := svc.Create(context.Background(), 1, 2, intPtr(-5))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateSameEndpointsAllowed(t *testing.T) {
	store := new(mockRouteStore)
	resolver := new(mockResolver)
	svc := New(store, resolver)

	store.On("CreateRoute", mock.Anything, int64(3), int64(3), 0).
		Return(&domain.Route{ID: 13, SourceID: 3, DestinationID: 3, DistanceKM: 0}, nil)

	r, err := svc.Create(context.Background(), 3, 3, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, r.SourceID, r.DestinationID)
}

func TestGetNotFound(t *testing.T) {
	store := new(mockRouteStore)
	svc := New(store, new(mockResolver))

	store.On("GetRoute", mock.Anything, int64(404)).
		Return(nil, repository.ErrNotFound)

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
