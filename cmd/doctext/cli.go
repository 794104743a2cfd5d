// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/alecthomas/kong"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File string `arg:"" help:"Document to extract text from (.pdf, .docx, .html, .htm, .xlsx, .csv)"`

	Config           string           `short:"c" help:"Path to configuration file"`
	LogLevel         string           `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFormat        string           `name:"log-format" help:"Log format (text, json)"`
	FailOnDiagnostic bool             `name:"fail-on-diagnostic" help:"Exit with status 2 when extraction degraded to empty output"`
	Version          kong.VersionFlag `help:"Print version and exit"`
}
