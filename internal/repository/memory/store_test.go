package memory

import (
	"context"
	"testing"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLaunches(t *testing.T, s *Store, numbers ...int64) {
	t.Helper()
	for _, n := range numbers {
		require.NoError(t, s.Launches().Put(context.Background(), &domain.Launch{FlightNumber: n, Mission: "m", Rocket: "r"}))
	}
}

func TestLaunches_ListPagination(t *testing.T) {
	s := NewStore()
	seedLaunches(t, s, 3, 1, 2)
	ctx := context.Background()

	page, err := s.Launches().List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(2), page[0].FlightNumber)

	all, err := s.Launches().List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].FlightNumber, all[1].FlightNumber, all[2].FlightNumber})

	empty, err := s.Launches().List(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLaunches_LatestFlightNumber(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	latest, err := s.Launches().LatestFlightNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)

	seedLaunches(t, s, 4, 109, 12)
	latest, err = s.Launches().LatestFlightNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(109), latest)
}

func TestLaunches_PutReplaces(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Launches().Put(ctx, &domain.Launch{FlightNumber: 1, Mission: "old", Customers: []string{"A"}}))
	require.NoError(t, s.Launches().Put(ctx, &domain.Launch{FlightNumber: 1, Mission: "new"}))

	all, err := s.Launches().List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Mission)
	assert.Empty(t, all[0].Customers)
}

func TestLaunches_CreateConflict(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Launches().Create(ctx, &domain.Launch{FlightNumber: 1}))
	err := s.Launches().Create(ctx, &domain.Launch{FlightNumber: 1})
	assert.ErrorIs(t, err, domain.ErrFlightNumberTaken)
}

func TestLaunches_FindOne(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Launches().FindOne(ctx, domain.SeedFilter())
	assert.ErrorIs(t, err, domain.ErrLaunchNotFound)

	require.NoError(t, s.Launches().Put(ctx, &domain.Launch{FlightNumber: 1, Rocket: "Falcon 1", Mission: "FalconSat"}))
	found, err := s.Launches().FindOne(ctx, domain.SeedFilter())
	require.NoError(t, err)
	assert.Equal(t, "FalconSat", found.Mission)
}

func TestLaunches_UpdateFlagsTracksChanges(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Launches().Put(ctx, &domain.Launch{FlightNumber: 1, Upcoming: true, Success: true}))

	modified, err := s.Launches().UpdateFlags(ctx, 1, false, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	modified, err = s.Launches().UpdateFlags(ctx, 1, false, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)

	modified, err = s.Launches().UpdateFlags(ctx, 42, false, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestLaunches_ReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	customers := []string{"NASA"}
	require.NoError(t, s.Launches().Put(ctx, &domain.Launch{FlightNumber: 1, Customers: customers}))
	customers[0] = "changed"

	found, err := s.Launches().FindOne(ctx, domain.LaunchFilter{FlightNumber: 1})
	require.NoError(t, err)
	found.Customers[0] = "mutated"

	again, err := s.Launches().FindOne(ctx, domain.LaunchFilter{FlightNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"NASA"}, again.Customers)
}

func TestPlanets(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Planets().GetByName(ctx, "Kepler-442 b")
	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)

	require.NoError(t, s.Planets().Put(ctx, &domain.Planet{KeplerName: "Kepler-442 b"}))
	require.NoError(t, s.Planets().Put(ctx, &domain.Planet{KeplerName: "Kepler-1410 b"}))

	p, err := s.Planets().GetByName(ctx, "Kepler-442 b")
	require.NoError(t, err)
	assert.Equal(t, "Kepler-442 b", p.KeplerName)

	list, err := s.Planets().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Kepler-1410 b", list[0].KeplerName)
}
