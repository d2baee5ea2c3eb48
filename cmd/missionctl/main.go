package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/missioncontrol/config"
	"github.com/Domenick1991/missioncontrol/internal/bootstrap"
	"github.com/Domenick1991/missioncontrol/internal/service/planets"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:          "missionctl",
		Short:        "Operate the mission control launch database",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", envOr("CONFIG_PATH", "config.yaml"), "path to config file")

	root.AddCommand(
		newMigrateCmd(&cfgPath),
		newSyncCmd(&cfgPath),
		newPlanetsCmd(&cfgPath),
	)
	return root
}

func newMigrateCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgPath)
			if err != nil {
				return err
			}
			_, closeStores, err := bootstrap.OpenStores(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer closeStores()
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newSyncCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Import the SpaceX launch history unless it is already loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgPath)
			if err != nil {
				return err
			}
			stores, closeStores, err := bootstrap.OpenStores(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer closeStores()

			service, closeService, err := bootstrap.NewLaunchService(cmd.Context(), cfg, stores)
			if err != nil {
				return err
			}
			defer closeService()

			return service.EnsureSeeded(cmd.Context())
		},
	}
}

func newPlanetsCmd(cfgPath *string) *cobra.Command {
	planetsCmd := &cobra.Command{
		Use:   "planets",
		Short: "Manage the habitable planets catalog",
	}
	planetsCmd.AddCommand(&cobra.Command{
		Use:   "load <kepler_data.csv>",
		Short: "Load habitable planets from a Kepler CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgPath)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			stores, closeStores, err := bootstrap.OpenStores(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer closeStores()

			loaded, err := planets.NewPlanetService(stores.Planets).LoadHabitable(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d habitable planets\n", loaded)
			return nil
		},
	})
	return planetsCmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
