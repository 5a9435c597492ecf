package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/g-m-twostay/coursetree/internal/config"
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

// Parse processes command-line arguments. It returns the effective configuration,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Settings are layered as defaults, then the -config file, then flags and the
// positional data file.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("courses", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
courses - browse a course catalog and its prerequisites.

Usage:
  courses [options] [DATA_FILE]

Arguments:
  DATA_FILE
    Comma-delimited course file: code, title, then prerequisite codes.
    When it's not given here or in the config file, the program asks for it.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the course data file.")
	fFlag := flagSet.String("f", "", "Path to the course data file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn' (default), 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' (default) or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one data file, got %d arguments", flagSet.NArg())}
	}

	cfg := config.Default()
	if *configFlag != "" {
		fromFile, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = cfg.Merge(fromFile)
		slog.Debug("Config file loaded.", "path", *configFlag)
	}

	override := config.Config{
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
	}
	switch {
	case *fileFlag != "":
		override.DataFile = *fileFlag
	case *fFlag != "":
		override.DataFile = *fFlag
	case flagSet.NArg() == 1:
		override.DataFile = flagSet.Arg(0)
	}
	cfg = cfg.Merge(override)

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
