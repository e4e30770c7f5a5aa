package farr

import (
	"bufio"
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/logger"
	"github.com/teranos/farr/nd"
)

// LoadTxt reads a whitespace-separated numeric table into a rank-2 Float64
// array. Blank lines and lines starting with '#' are skipped; every data
// row must have the same number of fields.
func LoadTxt(path string) (*FArray, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loadtxt %s", path)
	}
	defer fh.Close()

	var rows [][]float64
	cols := -1
	scanner := bufio.NewScanner(fh)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if cols < 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, errors.NewShapef("%s:%d has %d fields, want %d", path, lineNo, len(fields), cols)
		}
		row := make([]float64, len(fields))
		for k, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d field %d", path, lineNo, k+1)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "loadtxt %s", path)
	}
	if len(rows) == 0 {
		return nil, errors.NewShapef("loadtxt %s: no data rows", path)
	}

	logger.Debugf("loadtxt %s: %d rows, %d columns", path, len(rows), cols)
	return From2D(rows)
}

// LoadCSV reads a CSV file with a header row into one rank-1 Float64 array
// per column, keyed by the header label.
func LoadCSV(path string) (map[string]*FArray, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loadcsv %s", path)
	}
	defer fh.Close()

	reader := csv.NewReader(fh)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "loadcsv %s", path)
	}
	if len(records) < 2 {
		return nil, errors.NewShapef("loadcsv %s: need a header row and at least one data row", path)
	}

	header := records[0]
	columns := make([][]float64, len(header))
	for r, record := range records[1:] {
		if len(record) != len(header) {
			return nil, errors.NewShapef("%s: row %d has %d fields, want %d", path, r+2, len(record), len(header))
		}
		for k, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: row %d column %q", path, r+2, header[k])
			}
			columns[k] = append(columns[k], v)
		}
	}

	out := make(map[string]*FArray, len(header))
	for k, label := range header {
		a, err := nd.FromFloats(columns[k], len(columns[k]))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSpace(label)] = Wrap(a)
	}
	logger.Debugf("loadcsv %s: %d columns, %d rows", path, len(header), len(records)-1)
	return out, nil
}
