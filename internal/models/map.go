package models

// FeatureCollection is a GeoJSON FeatureCollection of tree points.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON Point feature.
type Feature struct {
	Type       string          `json:"type"`
	Geometry   Geometry        `json:"geometry"`
	Properties PointProperties `json:"properties"`
}

// Geometry holds point coordinates as [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// PointProperties carries the tooltip fields and the RGB fill color
// assigned to a plotted tree.
type PointProperties struct {
	Species      string  `json:"species"`
	DBH          float64 `json:"dbh"`
	Park         string  `json:"park"`
	Neighborhood string  `json:"neighborhood"`
	Color        [3]int  `json:"color"`
}

// ViewState describes the initial map camera.
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
	Pitch     int     `json:"pitch"`
}

// LegendEntry maps a species to its hex fill color.
type LegendEntry struct {
	Species string `json:"species"`
	Color   string `json:"color"`
}
