package launches

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/Domenick1991/missioncontrol/internal/kafka"
	"github.com/Domenick1991/missioncontrol/internal/repository"
	"github.com/Domenick1991/missioncontrol/internal/spacex"
	"github.com/google/uuid"
)

const (
	scheduleLockName   = "launches:schedule"
	lockPollInterval   = 25 * time.Millisecond
	lockReleaseTimeout = 2 * time.Second
	publishRetries     = 2
)

var ErrScheduleBusy = errors.New("launch scheduling is busy, retry later")

type LaunchUseCase interface {
	EnsureSeeded(ctx context.Context) error
	Schedule(ctx context.Context, input ScheduleLaunchInput) (*domain.Launch, error)
	List(ctx context.Context, skip, limit int) ([]domain.Launch, error)
	Get(ctx context.Context, flightNumber int64) (*domain.Launch, error)
	Exists(ctx context.Context, flightNumber int64) (bool, error)
	Abort(ctx context.Context, flightNumber int64) (bool, error)
}

type CatalogFetcher interface {
	FetchLaunches(ctx context.Context) (*spacex.Catalog, error)
}

// Locker serializes flight number assignment across instances.
type Locker interface {
	AcquireLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error)
	ReleaseLock(ctx context.Context, name, token string) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

type Archiver interface {
	ArchiveCatalog(ctx context.Context, raw []byte) (string, error)
}

type ScheduleLaunchInput struct {
	Mission    string
	Rocket     string
	LaunchDate time.Time
	Target     string
}

type LaunchService struct {
	launches           repository.LaunchRepository
	planets            repository.PlanetRepository
	catalog            CatalogFetcher
	locker             Locker
	lockTTL            time.Duration
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	archiver           Archiver
	maxAttempts        int
	now                func() time.Time
}

type LaunchServiceOption func(*LaunchService)

func WithLocker(locker Locker, ttl time.Duration) LaunchServiceOption {
	return func(s *LaunchService) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

func WithProducer(producer Producer, eventsTopic, notificationsTopic string) LaunchServiceOption {
	return func(s *LaunchService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithArchiver(archiver Archiver) LaunchServiceOption {
	return func(s *LaunchService) {
		s.archiver = archiver
	}
}

func WithMaxScheduleAttempts(n int) LaunchServiceOption {
	return func(s *LaunchService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func NewLaunchService(
	launches repository.LaunchRepository,
	planets repository.PlanetRepository,
	catalog CatalogFetcher,
	opts ...LaunchServiceOption,
) *LaunchService {
	service := &LaunchService{
		launches:    launches,
		planets:     planets,
		catalog:     catalog,
		lockTTL:     5 * time.Second,
		maxAttempts: 5,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// EnsureSeeded imports the external launch catalog unless the seed launch is
// already stored. A failed download is returned to the caller, which must not
// continue without launch data.
func (s *LaunchService) EnsureSeeded(ctx context.Context) error {
	_, err := s.launches.FindOne(ctx, domain.SeedFilter())
	if err == nil {
		log.Println("Launch data already loaded")
		return nil
	}
	if !errors.Is(err, domain.ErrLaunchNotFound) {
		return fmt.Errorf("find seed launch: %w", err)
	}

	log.Println("Downloading launch data")
	catalog, err := s.catalog.FetchLaunches(ctx)
	if err != nil {
		return err
	}

	for _, doc := range catalog.Docs {
		launch := doc.ToLaunch()
		if err := s.launches.Put(ctx, &launch); err != nil {
			return fmt.Errorf("save launch %d: %w", launch.FlightNumber, err)
		}
	}
	log.Printf("Imported %d launches", len(catalog.Docs))

	if s.archiver != nil {
		if key, err := s.archiver.ArchiveCatalog(ctx, catalog.Raw); err != nil {
			log.Printf("WARNING: failed to archive launch catalog: %v", err)
		} else {
			log.Printf("Archived launch catalog to %s", key)
		}
	}

	s.publish(ctx, kafka.LaunchEvent{Type: kafka.EventLaunchesSynced, Imported: len(catalog.Docs)}, false)
	return nil
}

// Schedule stores a new launch towards an existing planet under the next free
// flight number. Input is expected to be validated by the caller.
func (s *LaunchService) Schedule(ctx context.Context, input ScheduleLaunchInput) (*domain.Launch, error) {
	if _, err := s.planets.GetByName(ctx, input.Target); err != nil {
		return nil, err
	}

	if s.locker != nil {
		token, err := s.acquireScheduleLock(ctx)
		if err != nil {
			return nil, err
		}
		defer s.releaseScheduleLock(ctx, token)
	}

	launch := &domain.Launch{
		Mission:    input.Mission,
		Rocket:     input.Rocket,
		LaunchDate: input.LaunchDate,
		Target:     input.Target,
		Customers:  slices.Clone(domain.DefaultCustomers),
		Upcoming:   true,
		Success:    true,
	}

	var err error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		var latest int64
		latest, err = s.launches.LatestFlightNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("latest flight number: %w", err)
		}
		launch.FlightNumber = latest + 1

		err = s.launches.Create(ctx, launch)
		if !errors.Is(err, domain.ErrFlightNumberTaken) {
			break
		}
		log.Printf("flight number %d taken, retrying", launch.FlightNumber)
	}
	if err != nil {
		return nil, err
	}

	s.publish(ctx, launchEvent(kafka.EventLaunchScheduled, launch), true)
	return launch, nil
}

// acquireScheduleLock polls the locker until the lock is taken or one lock TTL
// has passed, after which the current holder's lock has expired anyway.
func (s *LaunchService) acquireScheduleLock(ctx context.Context) (string, error) {
	deadline := s.now().Add(s.lockTTL)
	for {
		token, ok, err := s.locker.AcquireLock(ctx, scheduleLockName, s.lockTTL)
		if err != nil {
			return "", fmt.Errorf("acquire schedule lock: %w", err)
		}
		if ok {
			return token, nil
		}
		if !s.now().Before(deadline) {
			return "", ErrScheduleBusy
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockPollInterval):
		}
	}
}

// releaseScheduleLock runs even when the caller has gone away, otherwise the
// lock would stay held until its TTL expires.
func (s *LaunchService) releaseScheduleLock(ctx context.Context, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
	defer cancel()

	if err := s.locker.ReleaseLock(releaseCtx, scheduleLockName, token); err != nil {
		log.Printf("WARNING: failed to release schedule lock: %v", err)
	}
}

func (s *LaunchService) List(ctx context.Context, skip, limit int) ([]domain.Launch, error) {
	return s.launches.List(ctx, skip, limit)
}

func (s *LaunchService) Get(ctx context.Context, flightNumber int64) (*domain.Launch, error) {
	return s.launches.FindOne(ctx, domain.LaunchFilter{FlightNumber: flightNumber})
}

func (s *LaunchService) Exists(ctx context.Context, flightNumber int64) (bool, error) {
	_, err := s.Get(ctx, flightNumber)
	if errors.Is(err, domain.ErrLaunchNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Abort marks the launch as no longer upcoming and unsuccessful. It returns
// false when nothing changed: the launch is unknown or was already aborted.
func (s *LaunchService) Abort(ctx context.Context, flightNumber int64) (bool, error) {
	modified, err := s.launches.UpdateFlags(ctx, flightNumber, false, false)
	if err != nil {
		return false, err
	}
	if modified != 1 {
		return false, nil
	}

	if s.producer != nil {
		if launch, err := s.Get(ctx, flightNumber); err == nil {
			s.publish(ctx, launchEvent(kafka.EventLaunchAborted, launch), true)
		}
	}
	return true, nil
}

func launchEvent(eventType string, l *domain.Launch) kafka.LaunchEvent {
	return kafka.LaunchEvent{
		Type:         eventType,
		FlightNumber: l.FlightNumber,
		Mission:      l.Mission,
		Rocket:       l.Rocket,
		Target:       l.Target,
		LaunchDate:   l.LaunchDate,
		Customers:    l.Customers,
	}
}

// publish is best effort: failures are logged and never fail the operation.
func (s *LaunchService) publish(ctx context.Context, event kafka.LaunchEvent, notify bool) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event.ID = uuid.NewString()
	event.OccurredAt = s.now().UTC()
	key := fmt.Sprintf("%d", event.FlightNumber)

	if err := s.producer.PublishWithRetry(ctx, s.eventsTopic, key, event, publishRetries); err != nil {
		log.Printf("WARNING: failed to publish %s event for flight %d: %v", event.Type, event.FlightNumber, err)
		return
	}
	if notify && s.notificationsTopic != "" {
		if err := s.producer.PublishWithRetry(ctx, s.notificationsTopic, key, event, publishRetries); err != nil {
			log.Printf("WARNING: failed to publish %s notification for flight %d: %v", event.Type, event.FlightNumber, err)
		}
	}
}

var _ LaunchUseCase = (*LaunchService)(nil)
