package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/geodyn/hefestoxml/internal/ctxlog"
	"github.com/geodyn/hefestoxml/internal/taxonomy"
)

// App encapsulates the converter's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	tax    *taxonomy.Taxonomy
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and taxonomy. A
// taxonomy override that cannot be loaded is a fatal startup error and
// panics; the entrypoint recovers it into a clean exit message.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	tax := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		override, err := taxonomy.LoadFile(ctx, cfg.TaxonomyPath)
		if err != nil {
			panic(fmt.Errorf("failed to load taxonomy: %w", err))
		}
		tax = override
	}
	logger.Debug("Taxonomy ready.", "solutions", len(tax.Solutions), "standalone", len(tax.Standalone))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		tax:    tax,
	}
}

// Taxonomy returns the taxonomy the app will build with. This is primarily
// for testing.
func (a *App) Taxonomy() *taxonomy.Taxonomy {
	return a.tax
}
