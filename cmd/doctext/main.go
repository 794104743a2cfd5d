// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/leseb/doctext/pkg/core/config"
	"github.com/leseb/doctext/pkg/extractor"
	"github.com/leseb/doctext/pkg/observability/logging"
)

var (
	// Version is set via ldflags during build
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	m := NewMain()

	if err := m.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *ExitError
		if errors.As(err, &ee) {
			os.Exit(ee.Code)
		}
		os.Exit(1)
	}
}

// ExitError carries a non-default process exit status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Main represents the program.
type Main struct {
	// Extractor overrides the extractor built from configuration.
	Extractor *extractor.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("doctext"),
		kong.Description("Extract plain text from PDF, DOCX, HTML, XLSX and CSV files."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": fmt.Sprintf("doctext %s (built %s)", Version, BuildTime)},
		kong.Exit(func(int) { exited = true }), // help and version must not exit the process
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Logging.Format = cli.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})

	ext := m.Extractor
	if ext == nil {
		ext = extractor.New(extractor.WithLogger(logger.Logger))
	}

	res, err := ext.Extract(cli.File)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(stdout, res.Text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cli.FailOnDiagnostic && res.Diagnostic != nil {
		return &ExitError{Code: 2, Err: res.Diagnostic}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
