// Package portal reads the semicolon-delimited calendar export of the
// Schulportal.
package portal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Read parses the export into header-keyed rows. The first record is the
// header; shorter records leave the missing columns empty.
func Read(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read calendar export header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read calendar export row: %w", err)
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
