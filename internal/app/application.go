package app

import (
	"log/slog"

	"infografias.nextwaveia.mx/internal/catalog"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, the logger and the loaded catalog.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Catalog *catalog.Catalog
}

// New builds an Application. A nil logger falls back to slog.Default.
func New(cfg Config, logger *slog.Logger, c *catalog.Catalog) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	return &Application{
		Config:  cfg,
		Logger:  logger,
		Catalog: c,
	}
}
