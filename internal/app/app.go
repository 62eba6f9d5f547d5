// Package app wires configuration, logging, the dataset and the HTTP server
// into a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/country-list-service/internal/config"
	"github.com/maxviazov/country-list-service/internal/handler"
	"github.com/maxviazov/country-list-service/internal/logger"
	"github.com/maxviazov/country-list-service/internal/repository"
	"github.com/maxviazov/country-list-service/internal/repository/postgres"
	"github.com/maxviazov/country-list-service/internal/service"
	"github.com/rs/zerolog"
)

// NewLogger builds the service logger, inheriting identity and environment
// from the app section when the logger section leaves them empty.
func NewLogger(cfg *config.Config) (zerolog.Logger, error) {
	lc := cfg.Logger
	if lc.Env == "" {
		lc.Env = cfg.App.Env
	}
	if lc.ServiceName == "" {
		lc.ServiceName = cfg.App.Name
	}
	if lc.ServiceVersion == "" {
		lc.ServiceVersion = cfg.App.Version
	}
	return logger.New(&lc)
}

// LoadDataset reads the country names from the configured source. Any error
// here means the service cannot start.
func LoadDataset(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repository.CountryList, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Dataset.LoadTimeout)*time.Second)
	defer cancel()

	var (
		list *repository.CountryList
		err  error
	)
	switch cfg.Dataset.Source {
	case config.SourceFile:
		list, err = repository.LoadCountryList(ctx, repository.NewFileLoader(cfg.Dataset.Path))
	case config.SourcePostgres:
		list, err = loadFromPostgres(ctx, cfg, log)
	default:
		err = fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", cfg.Dataset.Source, err)
	}

	log.Info().Str("source", cfg.Dataset.Source).Int("count", list.Len()).Msgf("Loaded %d countries", list.Len())
	return list, nil
}

func loadFromPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repository.CountryList, error) {
	repo, err := repository.New(ctx, &cfg.Postgres, &log)
	if err != nil {
		return nil, err
	}
	// the list is kept in memory, the pool is not needed past this point
	defer repo.Close()

	loader, err := postgres.NewCountryLoader(repo.Pool(), cfg.Dataset.Table)
	if err != nil {
		return nil, err
	}
	return repository.LoadCountryList(ctx, loader)
}

// NewRouter assembles the HTTP surface around an already loaded list.
func NewRouter(cfg *config.Config, list *repository.CountryList, log zerolog.Logger) *gin.Engine {
	if cfg.App.Env == "dev" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	svc := service.NewCountryService(list, log)
	return handler.NewRouter(svc, log, cfg.CORS)
}

// Run loads the dataset and serves HTTP until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	list, err := LoadDataset(ctx, cfg, log)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv, err := graceful.New(NewRouter(cfg, list, log), graceful.WithAddr(addr))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	defer srv.Close()

	log.Info().
		Str("addr", addr).
		Str("countries_endpoint", fmt.Sprintf("http://localhost:%d%s", cfg.App.Port, handler.CountriesPath)).
		Msg("API running")

	if err := srv.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
