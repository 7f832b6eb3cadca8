// SPDX-License-Identifier: MIT

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Schema declares the cell kind per column name for CSV parsing. Columns
// absent from the schema parse as String.
type Schema map[string]Kind

// FromCSV reads comma-separated data with a header row into a frame. Cell
// kinds come from schema; a nil schema reads everything as strings. Cells
// are trimmed of surrounding whitespace before parsing.
func FromCSV(name string, r io.Reader, schema Schema) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("table: read header: %w", err)
	}

	kinds := make([]Kind, len(header))
	cells := make([][]any, len(header))
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		kinds[i] = schema[header[i]]
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read row: %w", err)
		}
		for i, raw := range rec {
			v, err := parseCell(strings.TrimSpace(raw), kinds[i])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %s: %v",
					ErrParse, line, header[i], err)
			}
			cells[i] = append(cells[i], v)
		}
	}

	cols := make([]Column, len(header))
	for i, h := range header {
		cols[i] = Column{name: h, kind: kinds[i], vals: cells[i]}
	}
	return FromColumns(name, cols...)
}

func parseCell(raw string, kind Kind) (any, error) {
	switch kind {
	case String:
		return raw, nil
	case Int:
		return strconv.ParseInt(raw, 10, 64)
	case Float:
		return strconv.ParseFloat(raw, 64)
	case Bool:
		return strconv.ParseBool(raw)
	default:
		return nil, fmt.Errorf("unknown kind %v", kind)
	}
}
