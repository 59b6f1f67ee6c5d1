package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/showroomhq/showroom"
	"github.com/showroomhq/showroom/internal/adapters/file"
	httpadapter "github.com/showroomhq/showroom/internal/adapters/http"
	redisadapter "github.com/showroomhq/showroom/internal/adapters/redis"
	"github.com/showroomhq/showroom/internal/adapters/sqlite"
	"github.com/showroomhq/showroom/internal/catalog"
	"github.com/showroomhq/showroom/internal/config"
	"github.com/showroomhq/showroom/internal/logging"
	"github.com/showroomhq/showroom/internal/orders"
	"github.com/showroomhq/showroom/pkg/adapters/memory"
	"github.com/showroomhq/showroom/pkg/ports"
	"github.com/showroomhq/showroom/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the configurator HTTP server",
	Long:  `Starts the showroom API: configuration sessions, catalog reads, order management, and SSE state streams.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.ListenAddr = listen
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	var store ports.ConfigStore
	var locker ports.DistributedLocker
	switch cfg.StoreBackend {
	case config.BackendMemory:
		store = memory.NewStore()
	case config.BackendFile:
		store = file.New(filepath.Join(cfg.DataDir, "configurations"), file.WithLogger(logger))
	case config.BackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		var opts []redisadapter.Option
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redisadapter.WithTTL(cfg.Redis.TTL))
		}
		store = redisadapter.NewFromClient(client, opts...)
		if cfg.Redis.Lock {
			locker = redisadapter.NewLocker(client, "showroom:")
		}
	}

	backend, err := sqlite.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}
	defer backend.Close()

	catalogStore := backend.Catalog()
	if cfg.CatalogSeedPath != "" {
		seed, err := catalog.LoadSeed(cfg.CatalogSeedPath)
		if err != nil {
			return err
		}
		if err := catalogStore.Seed(cmd.Context(), seed); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info("catalog seeded", "path", cfg.CatalogSeedPath, "vehicles", len(seed.Vehicles))
	}

	sessionOpts := []session.Option{session.WithLogger(logger)}
	if !cfg.Persistence {
		sessionOpts = append(sessionOpts, session.WithoutPersistence())
	}
	if locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(locker))
	}
	configurator := showroom.New(store, sessionOpts...)

	server := httpadapter.NewServer(httpadapter.Config{
		Sessions:  configurator.Manager(),
		Catalog:   catalogStore,
		Orders:    orders.NewService(backend.Orders(), orders.WithLogger(logger)),
		Pricer:    catalog.NewPricer(catalogStore, cfg.TaxRate),
		Validator: catalog.NewValidator(catalogStore),
		Logger:    logger,
		Version:   showroom.Version,
	})

	srv := server.HTTPServer(cfg.ListenAddr)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"addr", cfg.ListenAddr,
			"backend", cfg.StoreBackend,
			"persistence", cfg.Persistence,
		)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown did not complete, closing", "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("close server: %w", err)
			}
		}
		logger.Info("server stopped")
	}
	return nil
}
