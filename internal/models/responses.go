package models

import "time"

// NeighborhoodSpecies is the species breakdown for one neighborhood: the total
// tree count, a bar chart of the most common species, and the top ten as a list.
type NeighborhoodSpecies struct {
	Neighborhood string         `json:"neighborhood"`
	Total        int            `json:"total"`
	Chart        *ChartConfig   `json:"chart,omitempty"`
	TopSpecies   []SpeciesCount `json:"top_species"`
}

// ParkMap is the point-map payload for one park. Total counts every tree in the
// park; Plotted counts only those with valid coordinates. Message is set
// instead of map content when nothing can be plotted.
type ParkMap struct {
	Park    string            `json:"park"`
	Total   int               `json:"total"`
	Plotted int               `json:"plotted"`
	Points  FeatureCollection `json:"points"`
	Legend  []LegendEntry     `json:"legend,omitempty"`
	View    *ViewState        `json:"view,omitempty"`
	Message string            `json:"message,omitempty"`
}

// DiameterDistribution is the species share of trees whose diameter falls in
// [MinDBH, MaxDBH]. Message is set instead of a chart when no tree matches.
type DiameterDistribution struct {
	MinDBH  float64        `json:"min_dbh"`
	MaxDBH  float64        `json:"max_dbh"`
	Total   int            `json:"total"`
	Counts  []SpeciesCount `json:"counts,omitempty"`
	Chart   *ChartConfig   `json:"chart,omitempty"`
	Message string         `json:"message,omitempty"`
}

// DatasetSummary describes the loaded table.
type DatasetSummary struct {
	Rows          int       `json:"rows"`
	Neighborhoods int       `json:"neighborhoods"`
	Parks         int       `json:"parks"`
	MinDBH        int       `json:"min_dbh"`
	MaxDBH        int       `json:"max_dbh"`
	LoadedAt      time.Time `json:"loaded_at"`
}
