package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	apihttp "repairshop/internal/adapters/in/http"
	"repairshop/internal/adapters/out/postgres"
	"repairshop/internal/adapters/out/redis"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
}

// NewRootCommand creates the repairshop command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "repairshop",
		Short:         "Repair shop order service",
		Long:          "Tracks repair orders from intake to pickup and keeps clients, equipment and catalogs deduplicated.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newFlushCacheCommand(opts))

	return cmd
}

func newServeCommand(rootOpts *RootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, rootOpts, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")
	return cmd
}

func newMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := openDB(cfg, log)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("schema migrated")
			return nil
		},
	}
}

func newFlushCacheCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flush-cache",
		Short: "Drop every cached resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.RedisAddr == "" {
				return errors.New("REDIS_ADDR is not set")
			}
			client, err := redis.Connect(cmd.Context(), redis.DefaultConnectOptions(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), log)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err = redis.NewResolutionCache(client, cfg.ResolutionCacheTTL).Flush(cmd.Context()); err != nil {
				return err
			}
			log.Info("resolution cache flushed")
			return nil
		},
	}
}

func setup(opts *RootOptions) (Config, logger.Logger, error) {
	cfg, err := LoadConfig(opts.EnvFile)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, logger.New(cfg.LogLevel, cfg.LogPretty), nil
}

func openDB(cfg Config, log logger.Logger) (*gorm.DB, error) {
	dsn := postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode)
	return postgres.Open(dsn, log)
}

func runServe(ctx context.Context, opts *RootOptions, migrate bool) error {
	cfg, log, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	statuses, err := LoadStatusCatalog(cfg.StatusFile)
	if err != nil {
		return err
	}

	db, err := openDB(cfg, log)
	if err != nil {
		return err
	}
	if migrate {
		if err = postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}

	var cache ports.ResolutionCache
	if cfg.RedisAddr != "" {
		client, err := redis.Connect(ctx, redis.DefaultConnectOptions(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), log)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		cache = redis.NewResolutionCache(client, cfg.ResolutionCacheTTL)
	} else {
		log.Info("resolution cache disabled")
	}

	app, err := NewCompositionRoot(cfg, db, cache, statuses, log)
	if err != nil {
		return err
	}
	e, err := apihttp.NewEcho(apihttp.NewServer(app.HTTPHandlers(), log))
	if err != nil {
		return err
	}
	if err = app.Start(); err != nil {
		return err
	}

	addr := net.JoinHostPort("0.0.0.0", cfg.HTTPPort)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", logger.String("addr", addr))
		serveErr <- e.Start(addr)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		log.Info("HTTP server shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		err = errors.Join(err, fmt.Errorf("http shutdown: %w", shutdownErr))
	}
	if stopErr := app.Stop(shutdownCtx); stopErr != nil {
		err = errors.Join(err, fmt.Errorf("stop background work: %w", stopErr))
	}
	return err
}
