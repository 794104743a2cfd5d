// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Package extractor extracts plain text from PDF, DOCX, HTML, XLSX and CSV
// files behind a single entry point.
//
// Only a missing input file is reported as an error. Unsupported formats and
// handler failures are logged and collapse to an empty string.
package extractor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	// FormatUnknown represents an unsupported or undetected format.
	FormatUnknown Format = ""
	// FormatPDF represents PDF documents.
	FormatPDF Format = "pdf"
	// FormatDOCX represents Word 2007+ documents.
	FormatDOCX Format = "docx"
	// FormatHTML represents HTML documents.
	FormatHTML Format = "html"
	// FormatXLSX represents Excel 2007+ workbooks.
	FormatXLSX Format = "xlsx"
	// FormatCSV represents comma separated values documents.
	FormatCSV Format = "csv"
)

// Ext returns the lower-cased extension of path, including the dot.
// Leading dots of the base name never start an extension, so ".pdf" has none.
func Ext(path string) string {
	base := strings.TrimLeft(filepath.Base(path), ".")
	return strings.ToLower(filepath.Ext(base))
}

// DetectFormat infers a document format from the provided path's extension.
func DetectFormat(path string) Format {
	switch Ext(path) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm":
		return FormatHTML
	case ".xlsx":
		return FormatXLSX
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// Handler converts the file at path into plain text.
type Handler func(path string) (string, error)

// defaultHandlers is the static dispatch table.
var defaultHandlers = map[Format]Handler{
	FormatPDF:  extractPDF,
	FormatDOCX: extractDOCX,
	FormatHTML: extractHTML,
	FormatXLSX: extractXLSX,
	FormatCSV:  extractCSV,
}

// Result is the outcome of a single extraction. Diagnostic is set when the
// extraction degraded to an empty Text.
type Result struct {
	Text       string
	Format     Format
	Diagnostic *Diagnostic
}

// OK reports whether the extraction completed without a diagnostic.
func (r Result) OK() bool {
	return r.Diagnostic == nil
}

// Extractor dispatches files to the handler of their format.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	logger   *slog.Logger
	handlers map[Format]Handler
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger that receives diagnostic notices.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHandler replaces the handler for a recognized format.
// Unknown formats are ignored; the recognized set is fixed.
func WithHandler(format Format, h Handler) Option {
	return func(e *Extractor) {
		if _, ok := e.handlers[format]; ok && h != nil {
			e.handlers[format] = h
		}
	}
}

// New creates an Extractor. Without WithLogger it logs to slog.Default().
func New(opts ...Option) *Extractor {
	e := &Extractor{
		handlers: make(map[Format]Handler, len(defaultHandlers)),
	}
	for f, h := range defaultHandlers {
		e.handlers[f] = h
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract extracts text from the file at path.
// The returned error is always a *NotFoundError; every other failure is
// reported through Result.Diagnostic with an empty Text.
func (e *Extractor) Extract(path string) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		return Result{}, &NotFoundError{Path: path, Err: err}
	}

	format := DetectFormat(path)
	handler, ok := e.handlers[format]
	if !ok {
		d := &Diagnostic{Kind: KindUnsupportedFormat, Path: path, Ext: Ext(path)}
		e.log().Warn("unsupported file type", "path", path, "ext", d.Ext)
		return Result{Diagnostic: d}, nil
	}

	text, err := runHandler(handler, path)
	if err != nil {
		d := &Diagnostic{Kind: KindExtractionFailed, Path: path, Ext: Ext(path), Format: format, Err: err}
		e.log().Error("extraction failed", "path", path, "format", string(format), "error", err)
		return Result{Format: format, Diagnostic: d}, nil
	}

	e.log().Debug("extracted text", "path", path, "format", string(format), "chars", len(text))
	return Result{Text: text, Format: format}, nil
}

// ExtractText returns the plain text of the file at path, or "" when the
// format is unsupported or extraction failed.
// It returns an error only if path does not exist.
func (e *Extractor) ExtractText(path string) (string, error) {
	res, err := e.Extract(path)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

func (e *Extractor) log() *slog.Logger {
	if e.logger == nil {
		return slog.Default()
	}
	return e.logger
}

// runHandler calls h and turns a panic inside a parser into an error.
func runHandler(h Handler, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(path)
}

var defaultExtractor = New()

// ExtractText extracts text using an Extractor that logs to slog.Default().
func ExtractText(path string) (string, error) {
	return defaultExtractor.ExtractText(path)
}
