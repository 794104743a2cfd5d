// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetMarker precedes each sheet's CSV block.
func sheetMarker(name string) string {
	return fmt.Sprintf("--- Sheet: %s ---\n", name)
}

// extractXLSX renders every sheet in workbook order as a marker line followed
// by the sheet as CSV. The result is not trimmed.
func extractXLSX(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open XLSX: %w", err)
	}
	defer f.Close()

	var blocks []string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return "", fmt.Errorf("read sheet %q: %w", name, err)
		}

		block := ""
		t, err := newTable(rows, tableOptions{widenHeader: true})
		switch {
		case errors.Is(err, errNoColumns):
			// an empty sheet renders as an empty block
		case err != nil:
			return "", fmt.Errorf("read sheet %q: %w", name, err)
		default:
			if block, err = t.csvString(); err != nil {
				return "", err
			}
		}
		blocks = append(blocks, sheetMarker(name), block)
	}
	return strings.Join(blocks, "\n"), nil
}
