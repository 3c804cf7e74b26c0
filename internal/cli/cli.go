package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/geodyn/hefestoxml/internal/app"
)

// Default dataset identity, overridable via flags.
const (
	DefaultDatasetID   = "SLB24"
	DefaultDatasetName = "Stixrude & Lithgow-Bertelloni 2024 - The role of iron"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hefestoxml", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
hefestoxml - converts HeFESTo mineral parameter files into an EoS XML database.

Usage:
  hefestoxml -params DIR -phases DIR -out FILE [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	paramsFlag := flagSet.String("params", "", "Directory containing mineral parameter files.")
	phasesFlag := flagSet.String("phases", "", "Directory containing phase interaction files.")
	outFlag := flagSet.String("out", "", "Path of the generated XML file.")
	datasetIDFlag := flagSet.String("dataset-id", DefaultDatasetID, "Dataset id attribute of the module root.")
	datasetNameFlag := flagSet.String("dataset-name", DefaultDatasetName, "Dataset name rendered into the blurb.")
	taxonomyFlag := flagSet.String("taxonomy", "", "Optional HCL file replacing the built-in phase taxonomy.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *paramsFlag == "" && *phasesFlag == "" && *outFlag == "" {
		slog.Debug("No paths provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ParamDir:     *paramsFlag,
		PhaseDir:     *phasesFlag,
		OutputPath:   *outFlag,
		DatasetID:    *datasetIDFlag,
		DatasetName:  *datasetNameFlag,
		TaxonomyPath: *taxonomyFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
