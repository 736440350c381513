package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/kisan-api/internal/config"
	"github.com/dimitrije/kisan-api/internal/database"
	"github.com/dimitrije/kisan-api/internal/logging"
	"github.com/dimitrije/kisan-api/internal/services"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig is replaced in tests.
var loadConfig = config.Load

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kisan-admin",
		Short:         "Maintenance commands for the kisan-api document store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd(), newSeedCmd(), newTokenCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the collection tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate requires the %s store, got %q", config.DriverPostgres, cfg.Store.Driver)
			}

			db, err := database.New(cmd.Context(), cfg.Store.DatabaseURL, cfg.Store.MaxConns)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace every record collection with the starter data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.IsProduction())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			st, err := store.Open(cmd.Context(), cfg.Store, true)
			if err != nil {
				return err
			}
			defer st.Close()

			results, err := services.NewSeeder(st, logger).Seed(cmd.Context())
			if err != nil {
				logger.Error("seeding failed", zap.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%-16s deleted %d, inserted %d\n", r.Collection, r.Deleted, r.Inserted)
			}
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		subject string
		expiry  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token for the record endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.AdminAuthEnabled() {
				return fmt.Errorf("ADMIN_JWT_SECRET is not set")
			}
			if expiry <= 0 {
				expiry = cfg.AdminTokenExpiry
			}

			token, err := services.NewJWTService(cfg.AdminJWTSecret, expiry).GenerateAdminToken(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "subject recorded in the token")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (defaults to ADMIN_TOKEN_EXPIRY)")
	return cmd
}
