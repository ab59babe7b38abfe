package models

// Centroid represents the rough centre of a tract as read from a reference source.
// Values are kept verbatim so they can be written back out without reformatting.
type Centroid struct {
	Latitude  string // Latitude of the centroid.
	Longitude string // Longitude of the centroid.
}
