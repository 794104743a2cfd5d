// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errNoColumns = errors.New("no columns to parse")

// table is a rectangular grid with a named header row.
type table struct {
	header []string
	rows   [][]string
}

// tableOptions controls how records that are wider than the header are repaired.
type tableOptions struct {
	// widenHeader adds "Unnamed: <i>" columns for wide rows instead of
	// rejecting them.
	widenHeader bool
}

// newTable builds a table from raw records. The first non-blank record is
// the header, blank records are dropped and short rows are padded.
func newTable(records [][]string, opts tableOptions) (*table, error) {
	var nonBlank [][]string
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		nonBlank = append(nonBlank, rec)
	}
	if len(nonBlank) == 0 {
		return nil, errNoColumns
	}

	header := append([]string(nil), nonBlank[0]...)
	body := nonBlank[1:]

	width := len(header)
	for i, rec := range body {
		if len(rec) <= width {
			continue
		}
		if !opts.widenHeader {
			return nil, fmt.Errorf("expected %d fields in record %d, saw %d", len(header), i+2, len(rec))
		}
		width = len(rec)
	}
	for len(header) < width {
		header = append(header, "")
	}

	t := &table{header: repairHeader(header), rows: make([][]string, 0, len(body))}
	for _, rec := range body {
		row := make([]string, width)
		copy(row, rec)
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// repairHeader names empty columns "Unnamed: <i>" and disambiguates
// duplicates as "name.1", "name.2", ...
func repairHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		seen[name]++
		out[i] = name
	}

	used := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range out {
		if !used[name] {
			used[name] = true
			continue
		}
		for {
			counts[name]++
			candidate := name + "." + strconv.Itoa(counts[name])
			if !used[candidate] && seen[candidate] == 0 {
				out[i] = candidate
				used[candidate] = true
				break
			}
		}
	}
	return out
}

// csvString serializes the table with a header row, comma delimiter,
// minimal quoting and "\n" line endings.
func (t *table) csvString() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(t.header); err != nil {
		return "", err
	}
	if err := w.WriteAll(t.rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return sb.String(), nil
}
