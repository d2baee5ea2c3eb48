// Package memory keeps launches and planets in process memory. It satisfies the
// same contracts as the Postgres repositories and backs tests and local runs
// started with database.driver=memory.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/Domenick1991/missioncontrol/internal/repository"
)

type Store struct {
	mu       sync.RWMutex
	launches map[int64]domain.Launch
	planets  map[string]domain.Planet
}

func NewStore() *Store {
	return &Store{
		launches: make(map[int64]domain.Launch),
		planets:  make(map[string]domain.Planet),
	}
}

// Launches returns the store as a launch repository.
func (s *Store) Launches() repository.LaunchRepository { return launchRepo{s} }

// Planets returns the store as a planet repository.
func (s *Store) Planets() repository.PlanetRepository { return planetRepo{s} }

type launchRepo struct{ s *Store }

func (r launchRepo) FindOne(ctx context.Context, filter domain.LaunchFilter) (*domain.Launch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, l := range r.s.sortedLaunches() {
		if filter.Match(l) {
			return &l, nil
		}
	}
	return nil, domain.ErrLaunchNotFound
}

func (r launchRepo) List(ctx context.Context, skip, limit int) ([]domain.Launch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.s.sortedLaunches()
	if skip < 0 {
		skip = 0
	}
	if skip >= len(all) {
		return []domain.Launch{}, nil
	}
	all = all[skip:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r launchRepo) LatestFlightNumber(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest int64
	for n := range r.s.launches {
		latest = max(latest, n)
	}
	return latest, nil
}

func (r launchRepo) Put(ctx context.Context, launch *domain.Launch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.launches[launch.FlightNumber] = cloneLaunch(*launch)
	return nil
}

func (r launchRepo) Create(ctx context.Context, launch *domain.Launch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.launches[launch.FlightNumber]; ok {
		return domain.ErrFlightNumberTaken
	}
	r.s.launches[launch.FlightNumber] = cloneLaunch(*launch)
	return nil
}

func (r launchRepo) UpdateFlags(ctx context.Context, flightNumber int64, upcoming, success bool) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.launches[flightNumber]
	if !ok || (l.Upcoming == upcoming && l.Success == success) {
		return 0, nil
	}
	l.Upcoming, l.Success = upcoming, success
	r.s.launches[flightNumber] = l
	return 1, nil
}

// sortedLaunches must be called with the lock held.
func (s *Store) sortedLaunches() []domain.Launch {
	out := make([]domain.Launch, 0, len(s.launches))
	for _, l := range s.launches {
		out = append(out, cloneLaunch(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FlightNumber < out[j].FlightNumber })
	return out
}

func cloneLaunch(l domain.Launch) domain.Launch {
	l.Customers = slices.Clone(l.Customers)
	if l.Customers == nil {
		l.Customers = []string{}
	}
	return l
}

type planetRepo struct{ s *Store }

func (r planetRepo) GetByName(ctx context.Context, keplerName string) (*domain.Planet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.planets[keplerName]
	if !ok {
		return nil, domain.ErrPlanetNotFound
	}
	return &p, nil
}

func (r planetRepo) List(ctx context.Context) ([]domain.Planet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Planet, 0, len(r.s.planets))
	for _, p := range r.s.planets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].KeplerName < out[j].KeplerName })
	return out, nil
}

func (r planetRepo) Put(ctx context.Context, planet *domain.Planet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.planets[planet.KeplerName] = *planet
	return nil
}

var (
	_ repository.LaunchRepository = launchRepo{}
	_ repository.PlanetRepository = planetRepo{}
)
