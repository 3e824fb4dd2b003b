package models

import "math"

// TreeRecord represents a single tree from the municipal inventory, with its
// species common name, trunk diameter, and geographic position.
// Numeric fields that were missing or unparseable in the source CSV are NaN.
type TreeRecord struct {
	CommonName   string
	DBH          float64
	Longitude    float64
	Latitude     float64
	Neighborhood string
	Park         string
}

// HasDBH reports whether the record carries a measured diameter.
func (t TreeRecord) HasDBH() bool {
	return !math.IsNaN(t.DBH)
}

// HasValidCoordinates reports whether both coordinates are present and within
// the valid longitude/latitude ranges. Records failing this check are kept in
// the table but excluded from spatial rendering.
func (t TreeRecord) HasValidCoordinates() bool {
	if math.IsNaN(t.Longitude) || math.IsNaN(t.Latitude) {
		return false
	}
	return t.Longitude >= -180 && t.Longitude <= 180 &&
		t.Latitude >= -90 && t.Latitude <= 90
}

// SpeciesCount is one entry of a species frequency table.
type SpeciesCount struct {
	Species string `json:"species"`
	Count   int    `json:"count"`
}
