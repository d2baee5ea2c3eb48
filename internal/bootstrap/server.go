package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/missioncontrol/api"
	"github.com/Domenick1991/missioncontrol/config"
	launchesapi "github.com/Domenick1991/missioncontrol/internal/api/launches_service_api"
	"github.com/Domenick1991/missioncontrol/internal/service/launches"
	"github.com/Domenick1991/missioncontrol/internal/service/planets"
	"google.golang.org/grpc"
)

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP servers and blocks until the context is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, launchSvc launches.LaunchUseCase, planetSvc planets.PlanetUseCase) error {
	s := newServers(cfg, launchSvc, planetSvc)

	errCh := make(chan error, 2)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	// HTTP API + swagger
	go func() {
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		_ = s.httpServer.Close()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, launchSvc launches.LaunchUseCase, planetSvc planets.PlanetUseCase) *Servers {
	grpcSrv := grpc.NewServer()
	launchesapi.RegisterLaunchesServiceServer(grpcSrv, launchesapi.NewServer(launchSvc))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(launchSvc, planetSvc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
	}
}
