package app

import (
	"context"
	"fmt"
	"os"

	"github.com/geodyn/hefestoxml/internal/builder"
	"github.com/geodyn/hefestoxml/internal/ctxlog"
	"github.com/geodyn/hefestoxml/internal/hefesto"
)

// Run executes one conversion: parse both input directories, build the
// document tree, serialize it once, and write the output file. On success a
// short summary is printed to the application's output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	minerals, err := hefesto.LoadRecords(ctx, a.config.ParamDir)
	if err != nil {
		return fmt.Errorf("failed to load parameter records: %w", err)
	}

	phases, err := hefesto.LoadInteractions(ctx, a.config.PhaseDir)
	if err != nil {
		return fmt.Errorf("failed to load interaction tables: %w", err)
	}

	doc := builder.New(a.tax).Build(ctx, &builder.Inputs{
		DatasetID:   a.config.DatasetID,
		DatasetName: a.config.DatasetName,
		Minerals:    minerals,
		Phases:      phases,
	})

	out, err := builder.Serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(a.config.OutputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(a.outW, "Generated XML file: %s\n", a.config.OutputPath)
	fmt.Fprintf(a.outW, "Total minerals: %d\n", len(minerals))
	fmt.Fprintf(a.outW, "Phase groups: %d\n", len(phases))

	a.logger.Debug("App.Run method finished.")
	return nil
}
