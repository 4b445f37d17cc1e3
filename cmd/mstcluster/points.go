// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// errPoints marks malformed point files.
var errPoints = errors.New("points: malformed input")

// readPointsFile loads an N×D matrix from a CSV file.
func readPointsFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "points: open %s", path)
	}
	defer f.Close()

	return readPoints(f)
}

// readPoints parses CSV rows of numbers into an N×D matrix. Lines starting
// with '#' are comments; a first row that does not parse as numbers is taken
// as a header and skipped. Every row must have the same width.
func readPoints(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "points: csv"), errPoints)
	}

	var data []float64
	width, rows := 0, 0
	for i, rec := range records {
		row, perr := parseRow(rec)
		if perr != nil {
			if i == 0 {
				continue
			}
			return nil, errors.Mark(errors.Wrapf(perr, "points: line %d", i+1), errPoints)
		}
		if rows == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Wrapf(errPoints, "line %d has %d values, want %d", i+1, len(row), width)
		}
		data = append(data, row...)
		rows++
	}
	if rows == 0 || width == 0 {
		return nil, errors.Wrap(errPoints, "no data rows")
	}

	return mat.NewDense(rows, width, data), nil
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}
	return row, nil
}
