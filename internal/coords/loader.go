// Package coords loads tract centroids from tab-separated reference files.
package coords

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/UnknownOlympus/tracts/internal/models"
)

const fieldsPerLine = 3

// Table maps a reference-file region identifier to its centroid.
// Identifiers follow the reference file format, which is not guaranteed to match GeoIDs.
type Table map[string]models.Centroid

// Lookup returns the centroid for id.
func (t Table) Lookup(id string) (models.Centroid, bool) {
	c, ok := t[id]
	return c, ok
}

// Merge copies every entry of other into t, replacing existing identifiers.
func (t Table) Merge(other Table) {
	for id, c := range other {
		t[id] = c
	}
}

// Load reads "<id>\t<lat>\t<lon>" lines from every path in order.
// Lines that do not split into exactly three fields are skipped. A later entry for the
// same identifier replaces an earlier one. Failing to open or read a file is an error.
func Load(log *slog.Logger, paths []string) (Table, error) {
	table := make(Table)

	for _, path := range paths {
		log.Info("Loading coordinates", "file", path)

		n, err := loadFile(table, path)
		if err != nil {
			return nil, err
		}

		log.Debug("Coordinates loaded", "file", path, "entries", n)
	}

	return table, nil
}

func loadFile(table Table, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open coordinates file: %w", err)
	}
	defer file.Close()

	loaded := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if len(parts) != fieldsPerLine {
			continue
		}

		table[parts[0]] = models.Centroid{Latitude: parts[1], Longitude: parts[2]}
		loaded++
	}

	if err = scanner.Err(); err != nil {
		return loaded, fmt.Errorf("failed to read coordinates file %s: %w", path, err)
	}

	return loaded, nil
}
