package models

// Variable pairs a human-readable column label with the statistical API variable code.
type Variable struct {
	Label string // Label is the output column name.
	Code  string // Code is the API variable code, e.g. B01003_001E.
}

// County identifies a county by its state and county FIPS codes.
type County struct {
	State  string // State is the two-digit state FIPS code.
	County string // County is the three-digit county FIPS code.
}

// Area is a named metropolitan statistical area made of an ordered list of counties.
type Area struct {
	Name     string
	Counties []County
}
