package cst

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTable reads whitespace-separated numeric columns from r, the layout
// of typical geometry data files: one row per line, blank lines and lines
// starting with '#' skipped. All rows must have the same number of
// fields. The data is returned column-major, so that each slice can be
// handed to [Fit] directly.
func ReadTable(r io.Reader) ([][]float64, error) {
	var cols [][]float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if cols == nil {
			cols = make([][]float64, len(fields))
		} else if len(fields) != len(cols) {
			return nil, fmt.Errorf("cst: line %d: %d fields, expected %d", line, len(fields), len(cols))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("cst: line %d: %q is not a number", line, f)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}
