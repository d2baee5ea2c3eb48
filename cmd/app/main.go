package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/missioncontrol/config"
	"github.com/Domenick1991/missioncontrol/internal/bootstrap"
	"github.com/Domenick1991/missioncontrol/internal/service/planets"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := bootstrap.OpenStores(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("open stores: %v", err)
	}
	defer closeStores()

	launchService, closeLaunches, err := bootstrap.NewLaunchService(ctx, cfg, stores)
	if err != nil {
		log.Fatalf("launch service: %v", err)
	}
	defer closeLaunches()

	planetService := planets.NewPlanetService(stores.Planets)

	// The server must not start without planets and launch history.
	loaded, err := bootstrap.LoadPlanets(ctx, cfg.Planets, planetService)
	if err != nil {
		log.Fatalf("load planets data: %v", err)
	}
	log.Printf("%d habitable planets found", loaded)

	if err := launchService.EnsureSeeded(ctx); err != nil {
		log.Fatalf("load launches data: %v", err)
	}

	log.Printf("listening on %s (http) and %s (grpc)", cfg.HTTP.Address, cfg.GRPC.Address)
	if err := bootstrap.Run(ctx, cfg, launchService, planetService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
