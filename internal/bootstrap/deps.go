package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Domenick1991/missioncontrol/config"
	"github.com/Domenick1991/missioncontrol/internal/archive"
	"github.com/Domenick1991/missioncontrol/internal/cache"
	"github.com/Domenick1991/missioncontrol/internal/kafka"
	"github.com/Domenick1991/missioncontrol/internal/repository"
	"github.com/Domenick1991/missioncontrol/internal/repository/memory"
	"github.com/Domenick1991/missioncontrol/internal/service/launches"
	"github.com/Domenick1991/missioncontrol/internal/service/planets"
	"github.com/Domenick1991/missioncontrol/internal/spacex"
	"github.com/jackc/pgx/v5/pgxpool"
)

const probeTimeout = 3 * time.Second

type Stores struct {
	Launches repository.LaunchRepository
	Planets  repository.PlanetRepository
}

// OpenStores connects the configured database and applies the schema. The
// returned func releases the connection.
func OpenStores(ctx context.Context, cfg config.DatabaseConfig) (Stores, func(), error) {
	if cfg.Driver == "memory" {
		store := memory.NewStore()
		return Stores{Launches: store.Launches(), Planets: store.Planets()}, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return Stores{}, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := repository.Migrate(ctx, pool); err != nil {
		pool.Close()
		return Stores{}, nil, fmt.Errorf("migrate: %w", err)
	}
	return Stores{
		Launches: repository.NewLaunchRepository(pool),
		Planets:  repository.NewPlanetRepository(pool),
	}, pool.Close, nil
}

// NewLaunchService wires the launch service with every optional collaborator
// the configuration enables. The returned func closes them.
func NewLaunchService(ctx context.Context, cfg *config.Config, stores Stores) (*launches.LaunchService, func(), error) {
	var (
		opts    []launches.LaunchServiceOption
		closers []func() error
	)

	if cfg.Redis.Addr != "" {
		locker := cache.NewRedisLocker(cfg.Redis)
		if err := probe(ctx, locker.Ping); err != nil {
			log.Printf("WARNING: redis unavailable, scheduling will fail until it is reachable: %v", err)
		}
		closers = append(closers, locker.Close)
		opts = append(opts, launches.WithLocker(locker, cfg.Launches.ScheduleLockTTL()))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		if err := probe(ctx, producer.CheckConnection); err != nil {
			log.Printf("WARNING: kafka unavailable, launch events will be dropped: %v", err)
		}
		closers = append(closers, producer.Close)
		opts = append(opts, launches.WithProducer(producer, cfg.Kafka.LaunchEventsTopic, cfg.Kafka.NotificationsTopic))
	}
	if cfg.Archive.Endpoint != "" {
		archiver, err := archive.NewMinIOArchiver(cfg.Archive)
		if err != nil {
			return nil, nil, err
		}
		if err := probe(ctx, archiver.EnsureBucket); err != nil {
			log.Printf("WARNING: archive bucket unavailable: %v", err)
		}
		opts = append(opts, launches.WithArchiver(archiver))
	}
	opts = append(opts, launches.WithMaxScheduleAttempts(cfg.Launches.MaxScheduleAttempts))

	client := spacex.NewClient(cfg.SpaceX.BaseURL, cfg.SpaceX.Timeout())
	service := launches.NewLaunchService(stores.Launches, stores.Planets, client, opts...)

	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("close: %v", err)
			}
		}
	}
	return service, closeAll, nil
}

// LoadPlanets fills the planets catalog from the configured Kepler export.
// An empty path leaves the catalog as it is.
func LoadPlanets(ctx context.Context, cfg config.PlanetsConfig, service *planets.PlanetService) (int, error) {
	if cfg.CSVPath == "" {
		return 0, nil
	}

	f, err := os.Open(cfg.CSVPath)
	if err != nil {
		return 0, fmt.Errorf("open planets data: %w", err)
	}
	defer f.Close()

	loaded, err := service.LoadHabitable(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("load planets data: %w", err)
	}
	return loaded, nil
}

func probe(ctx context.Context, check func(context.Context) error) error {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return check(probeCtx)
}
