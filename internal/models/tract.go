package models

// TractFieldName is the row key holding the tract code in API responses.
const TractFieldName = "tract"

// Query describes a single tract-level request for one variable in one county.
type Query struct {
	Variable string // Variable is the API variable code.
	State    string // State is the state FIPS code.
	County   string // County is the county FIPS code.
	Year     int    // Year of the estimate.
}

// Row is a single result row keyed by response column name.
type Row map[string]string

// Tract returns the tract code of the row and whether the row has one.
func (r Row) Tract() (string, bool) {
	code, ok := r[TractFieldName]
	return code, ok
}

// TractRecord accumulates the values fetched for a single tract.
type TractRecord struct {
	GeoID  string            // GeoID is the 11-character state+county+tract identifier.
	Area   string            // Area is the name of the area that first produced the tract.
	Values map[string]string // Values maps variable labels to fetched values.
}
