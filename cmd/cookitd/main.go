package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	fs "cloud.google.com/go/firestore"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"cookit/internal/api"
	"cookit/internal/auth"
	"cookit/internal/config"
	"cookit/internal/feed"
	"cookit/internal/metrics"
	"cookit/internal/objectstore"
	"cookit/internal/publisher"
	"cookit/internal/scheduler"
	"cookit/internal/security"
	"cookit/internal/service"
	"cookit/internal/source/catalog"
	"cookit/internal/storage/firestore"
	"cookit/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("cookitd stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	if err := postgres.Migrate(cfg.Database.URL()); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	logger.Info("connected to database")

	fsClient, err := newFirestoreClient(ctx, cfg.Firestore)
	if err != nil {
		return fmt.Errorf("connect to firestore: %w", err)
	}
	defer fsClient.Close()
	logger.Info("connected to firestore", "project", cfg.Firestore.ProjectID)

	images, err := objectstore.NewS3(ctx, objectstore.Config{
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		UsePathStyle:    cfg.S3.UsePathStyle,
	}, logger)
	if err != nil {
		return fmt.Errorf("create object store: %w", err)
	}

	// Left as a nil interface when disabled so services skip publishing.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:           cfg.RabbitMQ.URL,
			Exchange:      cfg.RabbitMQ.Exchange,
			RoutingPrefix: cfg.RabbitMQ.RoutingPrefix,
			QueueName:     cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	recipeStore := firestore.NewRecipeStore(fsClient, cfg.Firestore.Collection)
	userStore := postgres.NewUserStore(db)
	favoriteStore := postgres.NewFavoriteStore(db)
	txManager := postgres.NewTransactionManager(db)

	authClient := auth.New(auth.Config{
		APIKey:  cfg.Auth.APIKey,
		BaseURL: cfg.Auth.BaseURL,
		Timeout: cfg.Auth.Timeout,
	}, logger)

	feeds := feed.NewRegistry(cfg.Feed.SessionTTL, cfg.Feed.CleanupInterval, logger)
	defer feeds.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(reg, feeds.Len)

	recipes := service.NewRecipeService(recipeStore, favoriteStore, userStore, txManager, events, logger)
	accounts := service.NewAccountService(authClient, userStore, favoriteStore, recipeStore, txManager, logger)
	home := service.NewHomeService(recipeStore, cfg.Feed.HomeSectionSize, recorder, logger)
	media := service.NewMediaService(images, security.NewSafeClient(cfg.Media.ImportTimeout), service.MediaConfig{
		MaxHeight:      cfg.Media.MaxHeight,
		JPEGQuality:    cfg.Media.JPEGQuality,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
		MaxPixels:      cfg.Media.MaxPixels,
		KeyPrefix:      cfg.Media.KeyPrefix,
	}, logger)

	limiter := api.NewRateLimiter(api.RateLimitConfig{
		Rate:    rate.Limit(cfg.Server.RateLimit.RequestsPerSecond),
		Burst:   cfg.Server.RateLimit.Burst,
		IdleTTL: cfg.Server.RateLimit.IdleTTL,
	})
	defer limiter.Stop()

	server := api.NewServer(api.Deps{
		Recipes:  recipes,
		Accounts: accounts,
		Media:    media,
		Home:     home,
		Feeds:    feeds,
		Lister:   recipeStore,
		Recorder: recorder,
		Limiter:  limiter,
		Metrics:  metrics.Handler(reg),
	}, api.Config{
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		PageSize:        cfg.Feed.PageSize,
		SimilarPageSize: cfg.Feed.SimilarPageSize,
		MaxUploadBytes:  cfg.Media.MaxUploadBytes,
	}, logger)

	if cfg.Catalog.URL != "" {
		source := catalog.New(catalog.Config{
			URL:            cfg.Catalog.URL,
			Timeout:        cfg.Catalog.Timeout,
			MaxAttempts:    cfg.Catalog.Retry.MaxAttempts,
			InitialBackoff: cfg.Catalog.Retry.InitialBackoff,
			MaxBackoff:     cfg.Catalog.Retry.MaxBackoff,
		}, logger)
		importer := service.NewImportService(source, recipeStore, events, logger)
		sched := scheduler.NewScheduler(importer, cfg.Catalog.Interval, cfg.Catalog.RunTimeout, logger)

		schedDone := make(chan struct{})
		defer func() {
			stop()
			<-schedDone
		}()
		go func() {
			defer close(schedDone)
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
		logger.Info("catalog import scheduled",
			"source", source.ID(),
			"interval", cfg.Catalog.Interval,
		)
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting cookitd", "addr", cfg.Server.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

func newFirestoreClient(ctx context.Context, cfg config.FirestoreConfig) (*fs.Client, error) {
	if cfg.EmulatorHost != "" {
		if err := os.Setenv("FIRESTORE_EMULATOR_HOST", cfg.EmulatorHost); err != nil {
			return nil, err
		}
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	return fs.NewClient(ctx, cfg.ProjectID, opts...)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
