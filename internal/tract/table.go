// Package tract accumulates per-variable API results into one record per tract.
package tract

import (
	"github.com/UnknownOlympus/tracts/internal/models"
)

// Table is an insertion-ordered collection of tract records keyed by GeoID.
// It is not safe for concurrent use.
type Table struct {
	order   []string
	records map[string]*models.TractRecord
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{records: make(map[string]*models.TractRecord)}
}

// Merge sets the variable's value on every tract present in rows.
// Records are created the first time a GeoID is seen and tagged with area.
// A later write to the same GeoID and label replaces the earlier value.
// Rows without a tract code, or whose GeoID is not GeoIDWidth characters long, are
// skipped; their tract codes are returned so the caller can report them.
func (t *Table) Merge(area string, county models.County, variable models.Variable, rows []models.Row) []string {
	var skipped []string
	for _, row := range rows {
		code, ok := row.Tract()
		if !ok {
			skipped = append(skipped, code)
			continue
		}

		geoID := GeoID(county.State, county.County, code)
		if len(geoID) != GeoIDWidth {
			skipped = append(skipped, code)
			continue
		}

		record := t.record(geoID, area)
		record.Values[variable.Label] = row[variable.Code]
	}

	return skipped
}

func (t *Table) record(geoID, area string) *models.TractRecord {
	if rec, ok := t.records[geoID]; ok {
		return rec
	}

	rec := &models.TractRecord{GeoID: geoID, Area: area, Values: make(map[string]string)}
	t.records[geoID] = rec
	t.order = append(t.order, geoID)

	return rec
}

// Get returns the record for geoID.
func (t *Table) Get(geoID string) (*models.TractRecord, bool) {
	rec, ok := t.records[geoID]
	return rec, ok
}

// Records returns all records in the order their GeoIDs were first seen.
func (t *Table) Records() []*models.TractRecord {
	out := make([]*models.TractRecord, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.records[id])
	}

	return out
}

// Len returns the number of tracts in the table.
func (t *Table) Len() int {
	return len(t.order)
}
