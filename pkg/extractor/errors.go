// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when the input path does not exist.
var ErrFileNotFound = errors.New("file not found")

// NotFoundError reports a path that could not be stat'ed.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Is makes errors.Is(err, ErrFileNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// DiagnosticKind classifies a degraded extraction.
type DiagnosticKind string

const (
	// KindUnsupportedFormat means no handler exists for the extension.
	KindUnsupportedFormat DiagnosticKind = "unsupported_format"
	// KindExtractionFailed means the selected handler returned an error or panicked.
	KindExtractionFailed DiagnosticKind = "extraction_failed"
)

// Diagnostic describes why an extraction produced no text.
type Diagnostic struct {
	Kind   DiagnosticKind
	Path   string
	Ext    string
	Format Format
	Err    error
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case KindUnsupportedFormat:
		return fmt.Sprintf("unsupported file type %q: %s", d.Ext, d.Path)
	case KindExtractionFailed:
		return fmt.Sprintf("extraction failed for %s: %v", d.Path, d.Err)
	default:
		return fmt.Sprintf("%s: %s", d.Kind, d.Path)
	}
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}
