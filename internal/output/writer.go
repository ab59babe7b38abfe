// Package output writes the collected tract table as rows to standard output and to
// an appended CSV file.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/UnknownOlympus/tracts/internal/models"
	"github.com/UnknownOlympus/tracts/internal/tract"
)

// FixedColumns precede the variable columns in every row.
var FixedColumns = []string{"MSA", "Tract ID", "Latitude", "Longitude"}

// Writer duplicates each row: comma-joined without escaping to the console, and
// CSV-encoded to the persisted file.
type Writer struct {
	console io.Writer
	csv     *csv.Writer
	file    io.Closer
	closed  bool
}

// Open opens path for appending, creating it if needed.
func Open(path string, console io.Writer) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	return &Writer{console: console, csv: csv.NewWriter(file), file: file}, nil
}

// NewWriter builds a writer over arbitrary destinations. Closing it closes file when
// file implements io.Closer.
func NewWriter(console, file io.Writer) *Writer {
	w := &Writer{console: console, csv: csv.NewWriter(file)}
	if c, ok := file.(io.Closer); ok {
		w.file = c
	}

	return w
}

// Header returns the header row for vars.
func Header(vars []models.Variable) []string {
	header := make([]string, 0, len(FixedColumns)+len(vars))
	header = append(header, FixedColumns...)
	for _, v := range vars {
		header = append(header, v.Label)
	}

	return header
}

// Row returns the data row for rec. Variables missing from rec are empty strings.
//
// Latitude and longitude are always empty: centroids are loaded but the join with
// GeoIDs is not wired, pending confirmation that reference identifiers match GeoIDs.
func Row(vars []models.Variable, rec *models.TractRecord) []string {
	row := make([]string, 0, len(FixedColumns)+len(vars))
	row = append(row, rec.Area, rec.GeoID, "", "")
	for _, v := range vars {
		row = append(row, rec.Values[v.Label])
	}

	return row
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader(vars []models.Variable) error {
	return w.write(Header(vars))
}

// WriteTable writes one row per record in table order.
func (w *Writer) WriteTable(vars []models.Variable, table *tract.Table) error {
	for _, rec := range table.Records() {
		if err := w.write(Row(vars, rec)); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) write(record []string) error {
	if w.closed {
		return errors.New("write to closed output")
	}

	if _, err := fmt.Fprintln(w.console, strings.Join(record, ",")); err != nil {
		return fmt.Errorf("failed to write row to console: %w", err)
	}

	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}

	return nil
}

// Close flushes buffered rows and closes the file. Only the first call has effect.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.csv.Flush()
	err := w.csv.Error()
	if w.file != nil {
		err = errors.Join(err, w.file.Close())
	}
	if err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	return nil
}
