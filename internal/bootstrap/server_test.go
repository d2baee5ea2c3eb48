package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/missioncontrol/config"
	"github.com/Domenick1991/missioncontrol/internal/repository/memory"
	"github.com/Domenick1991/missioncontrol/internal/service/launches"
	"github.com/Domenick1991/missioncontrol/internal/service/planets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StopsOnCancel(t *testing.T) {
	store := memory.NewStore()
	launchSvc := launches.NewLaunchService(store.Launches(), store.Planets(), nil)
	planetSvc := planets.NewPlanetService(store.Planets())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{Address: "127.0.0.1:0"},
		GRPC: config.GRPCConfig{Address: "127.0.0.1:0"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, launchSvc, planetSvc) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewServers(t *testing.T) {
	store := memory.NewStore()
	s := newServers(&config.Config{HTTP: config.HTTPConfig{Address: ":0"}},
		launches.NewLaunchService(store.Launches(), store.Planets(), nil),
		planets.NewPlanetService(store.Planets()))

	assert.NotNil(t, s.grpcServer)
	assert.Equal(t, ":0", s.httpServer.Addr)
}
