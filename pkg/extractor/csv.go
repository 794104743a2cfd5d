// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"encoding/csv"
	"fmt"
)

// extractCSV re-parses a CSV file and serializes it again with a header row.
// Missing trailing cells are filled, rows longer than the header are an error.
func extractCSV(path string) (string, error) {
	r, err := readUTF8(path)
	if err != nil {
		return "", err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the table model repairs row lengths
	reader.LazyQuotes = true    // a bare quote inside a field is literal text

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}

	t, err := newTable(records, tableOptions{})
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	return t.csvString()
}
