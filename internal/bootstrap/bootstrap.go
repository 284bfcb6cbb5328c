// ABOUTME: Assembles the search pipeline and session controller from configuration
// ABOUTME: Shared by the HTTP server and the terminal front end

package bootstrap

import (
	"context"
	"fmt"
	"io"

	"telescout-api/api/middleware"
	"telescout-api/core/interfaces"
	"telescout-api/core/search"
	"telescout-api/core/session"
	"telescout-api/infrastructure/ai/gemini"
	stdhttp "telescout-api/infrastructure/http/standard"
	"telescout-api/infrastructure/logger/structured"
	"telescout-api/pkg/config"
	"telescout-api/pkg/locale"
)

// App holds the wired components of one application session
type App struct {
	Config     *config.Config
	Logger     *structured.Logger
	Catalog    *locale.Catalog
	Generator  *gemini.Client
	Search     *search.SearchService
	Controller *session.Controller
}

// New wires the application. logOutput receives log entries; nil means stdout.
func New(ctx context.Context, cfg *config.Config, logOutput io.Writer) (*App, error) {
	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: logOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	catalog, err := locale.LoadWithOverrides(cfg.Locale.Code, cfg.Locale.File)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to load locale: %w", err)
	}

	httpClient := stdhttp.NewStandardHTTPClient(cfg.AI.Timeout())
	httpClient.Transport = &middleware.LoggingRoundTripper{
		Transport: httpClient.Transport,
		Logger:    logger,
	}

	generator, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:     cfg.AI.APIKey,
		Model:      cfg.AI.Model,
		Timeout:    cfg.AI.Timeout(),
		HTTPClient: httpClient,
	}, logger)
	if err != nil {
		logger.Close()
		return nil, err
	}

	deps := interfaces.Dependencies{
		Generator: generator,
		Logger:    logger,
	}
	searchService := search.NewSearchService(deps, catalog)

	logger.Info("Application wired", map[string]interface{}{
		"locale": catalog.Code,
		"model":  generator.Model(),
	})

	return &App{
		Config:     cfg,
		Logger:     logger,
		Catalog:    catalog,
		Generator:  generator,
		Search:     searchService,
		Controller: session.NewController(searchService, catalog.Messages, logger),
	}, nil
}

// Close releases resources held by the application
func (a *App) Close() error {
	return a.Logger.Close()
}
