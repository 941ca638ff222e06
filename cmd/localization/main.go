package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/umbra-platform/localization-service/modules/translations"
	"github.com/umbra-platform/localization-service/pkg/config"
	"github.com/umbra-platform/localization-service/pkg/httpserver"
	"github.com/umbra-platform/localization-service/pkg/logger"
	"github.com/umbra-platform/localization-service/pkg/pg"
	"github.com/umbra-platform/localization-service/pkg/redis"
	"github.com/umbra-platform/localization-service/pkg/requestid"
	"github.com/umbra-platform/localization-service/svc/catalog"
)

type appConfig struct {
	ServiceName      string `env:"SERVICE_NAME" envDefault:"umbra-localization-service"`
	TranslationsFile string `env:"TRANSLATIONS_FILE" envDefault:"data/translations.json"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"json"`

	HTTP  httpserver.Config
	PG    pg.Config
	Redis redis.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithService(cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	// The catalog must load completely before the server starts; a missing or
	// malformed data file is fatal.
	cat, err := catalog.Load(ctx, catalog.NewFileSource(cfg.TranslationsFile))
	if err != nil {
		log.ErrorContext(ctx, "Failed to load translation catalog",
			logger.Error(err), slog.String("file", cfg.TranslationsFile))
		return err
	}
	log.InfoContext(ctx, "Translation catalog loaded",
		slog.Int("locales", cat.Len()), slog.String("file", cfg.TranslationsFile))

	// Postgres and Redis are optional infrastructure: when configured they are
	// connected at startup and reported through the readiness probe.
	var readiness []func(context.Context) error

	if cfg.PG.Enabled() {
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			log.ErrorContext(ctx, "Failed to connect to PostgreSQL", logger.Error(err))
			return err
		}
		defer pool.Close()
		readiness = append(readiness, pg.Healthcheck(pool))
		log.InfoContext(ctx, "Connected to PostgreSQL")
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.ErrorContext(ctx, "Failed to connect to Redis", logger.Error(err))
			return err
		}
		defer client.Close()
		readiness = append(readiness, redis.Healthcheck(client))
		log.InfoContext(ctx, "Connected to Redis")
	}

	router := translations.Router(translations.RouterOptions{
		Catalog:         cat,
		ServiceName:     cfg.ServiceName,
		Logger:          log,
		ReadinessChecks: readiness,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("HTTP server listening", slog.String("addr", cfg.HTTP.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("HTTP server stopped")
		}),
	)

	return srv.Run(ctx, router)
}
