package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/irahardianto/qa2md/internal/engine/batch"
	"github.com/irahardianto/qa2md/internal/engine/columns"
	"github.com/irahardianto/qa2md/internal/engine/config"
	"github.com/irahardianto/qa2md/internal/engine/llm"
	"github.com/irahardianto/qa2md/internal/engine/report"
	"github.com/irahardianto/qa2md/internal/engine/sheet"
	"github.com/irahardianto/qa2md/internal/engine/translate"
	"github.com/irahardianto/qa2md/internal/platform/logger"
)

// ExcelOpts holds per-invocation options for the excel command.
type ExcelOpts struct {
	Input        string
	Output       string
	FileName     string
	SettingsPath string
	JSON         bool
	NoColor      bool
}

// ExcelPipeline assembles the workbook batch with injected dependencies so the
// orchestration can be tested without a live LLM endpoint.
type ExcelPipeline struct {
	// LoadSettings reads the settings file, .env and environment.
	LoadSettings func(ctx context.Context, path string) (*config.Settings, error)

	// NewProvider builds the LLM gateway from settings.
	NewProvider func(ctx context.Context, s *config.Settings) (llm.Provider, error)

	// Reader loads workbooks.
	Reader batch.WorkbookReader

	// Stdout receives the run summary.
	Stdout io.Writer

	// Stderr receives live progress lines.
	Stderr io.Writer
}

// Execute validates configuration, runs the batch and prints the summary.
// Missing credentials abort before any workbook is opened.
func (p *ExcelPipeline) Execute(ctx context.Context, opts ExcelOpts) error {
	runID := uuid.NewString()
	log := logger.FromContext(ctx).With("run_id", runID)
	ctx = logger.WithContext(ctx, log)

	settings, err := p.LoadSettings(ctx, opts.SettingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	provider, err := p.NewProvider(ctx, settings)
	if err != nil {
		return err
	}
	log.Info("llm provider ready", "provider", settings.Provider)

	processor := sheet.NewProcessor(columns.NewInferrer(provider), translate.New(provider))
	progress := report.NewProgress(p.Stderr, opts.JSON)
	driver := batch.NewDriver(processor, p.Reader, progress)

	summary, err := driver.Run(ctx, opts.Input, opts.Output, opts.FileName)
	if err != nil {
		return err
	}
	summary.RunID = runID

	var formatter report.Formatter = report.NewCLIFormatter(settings.OutputColor && !opts.NoColor)
	if opts.JSON {
		formatter = report.NewJSONFormatter()
	}
	fmt.Fprintln(p.Stdout, formatter.Format(*summary))
	return nil
}
