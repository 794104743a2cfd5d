// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/leseb/doctext/pkg/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(logging.Config{Level: "warn", Format: "json", Output: buf})

	logger.Info("dropped")
	logger.Warn("unsupported file type", "path", "/tmp/a.txt")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "unsupported file type", record["msg"])
	assert.Equal(t, "/tmp/a.txt", record["path"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNew_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(logging.Config{Level: "debug", Output: buf})

	logger.Debug("extracted text", "chars", 12)

	assert.Contains(t, buf.String(), "msg=\"extracted text\"")
	assert.Contains(t, buf.String(), "chars=12")
}

func TestValidFormat(t *testing.T) {
	assert.True(t, logging.ValidFormat("json"))
	assert.True(t, logging.ValidFormat("text"))
	assert.True(t, logging.ValidFormat(""))
	assert.False(t, logging.ValidFormat("xml"))
}
