// Package tabular reads CSV and XLSX spreadsheet exports into a uniform
// record representation and provides the text-shaping helpers shared by the
// report pipelines. Raw input is transliterated to ASCII and stripped of NUL
// bytes before parsing, and every cell is cleaned of stray whitespace.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/xuri/excelize/v2"
)

// Record is one spreadsheet row, keyed by declared field name.
type Record map[string]string

// ReadOptions controls record ingestion.
type ReadOptions struct {
	// SkipHeader drops the first line (header row) before parsing.
	SkipHeader bool

	// RestVal is the value assigned to declared fields missing from a row.
	RestVal string

	// KeepNewlines suppresses the replacement of internal newlines with " | ".
	KeepNewlines bool
}

// ReadTable reads a spreadsheet into a table of cleaned strings. Files with
// an .xlsx extension are read through excelize (first sheet); anything else
// is treated as CSV.
func ReadTable(path string) ([][]string, error) {
	rows, err := readRows(path, false)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for i, cell := range row {
			row[i] = CleanCell(cell, false)
		}
	}
	return rows, nil
}

// ReadRecords reads a spreadsheet into records under the declared field
// names. Rows shorter than the field list are padded with opts.RestVal;
// cells beyond the declared fields are ignored.
func ReadRecords(path string, fields []string, opts ReadOptions) ([]Record, error) {
	rows, err := readRows(path, opts.SkipHeader)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(fields))
		for i, field := range fields {
			if i < len(row) {
				rec[field] = CleanCell(row[i], opts.KeepNewlines)
			} else {
				rec[field] = opts.RestVal
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// readRows returns the raw row data for a spreadsheet file, dispatching on
// extension.
func readRows(path string, skipHeader bool) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readRowsXLSX(path, skipHeader)
	}
	return readRowsCSV(path, skipHeader)
}

// readRowsCSV parses a CSV file after transliterating its contents to ASCII
// and removing NUL bytes (which choke the CSV reader).
func readRowsCSV(path string, skipHeader bool) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	text := unidecode.Unidecode(string(raw))
	text = strings.ReplaceAll(text, "\x00", "")
	if skipHeader {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[i+1:]
		} else {
			text = ""
		}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow ragged rows

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readRowsXLSX reads the first sheet of an XLSX workbook.
func readRowsXLSX(path string, skipHeader bool) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading rows from %s: %w", path, err)
	}
	for _, row := range rows {
		for i, cell := range row {
			row[i] = unidecode.Unidecode(cell)
		}
	}
	if skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}

// CleanCell strips leading and trailing whitespace from a cell value and,
// unless keepNewlines is set, replaces internal newlines with " | " so the
// value stays on one report line.
func CleanCell(s string, keepNewlines bool) string {
	s = strings.TrimSpace(s)
	if !keepNewlines {
		s = strings.ReplaceAll(s, "\n", " | ")
	}
	return s
}

// WriteTable writes a table of strings to a CSV file.
func WriteTable(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteRows(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// WriteRows writes a table of strings to a stream in CSV form.
func WriteRows(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	return writer.WriteAll(rows)
}

// Truncate limits a string to at most n bytes, for fixed-width report
// columns.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
