package service

import (
	"context"
	"fmt"

	"tree-explorer-api/internal/models"
)

// Fill colors for the ten most common species in a park; every other species
// is drawn gray.
var speciesPalette = [][3]int{
	{255, 0, 0}, {0, 0, 255}, {0, 128, 0}, {255, 165, 0}, {128, 0, 128},
	{165, 42, 42}, {255, 192, 203}, {0, 255, 255}, {255, 255, 0}, {0, 0, 0},
}

var fallbackColor = [3]int{169, 169, 169}

const (
	// Camera fallback when no coordinates are available: central Boston.
	defaultLatitude  = 42.3601
	defaultLongitude = -71.0589
	defaultZoom      = 15
	defaultPitch     = 30

	// Substituted diameter for trees without a measurement, so every point
	// still carries a plottable size.
	defaultDBH = 5

	unknownSpecies = "Unknown"

	noCoordinateMessage = "No valid coordinate data to display."
)

// ParkMapService contains the core logic for the park map view.
type ParkMapService struct {
	repo ParkRepository
}

// ParkRepository interface for dependency injection
type ParkRepository interface {
	HasPark(name string) bool
	TreesInPark(name string) []models.TreeRecord
}

// NewParkMapService creates a new park map service
func NewParkMapService(repo ParkRepository) *ParkMapService {
	return &ParkMapService{repo: repo}
}

// Map builds the point-map payload for one park: a GeoJSON feature per tree
// with valid coordinates, colored by species, plus a legend and camera state.
func (s *ParkMapService) Map(ctx context.Context, name string) (*models.ParkMap, error) {
	if name == "" {
		return nil, fmt.Errorf("service: park name cannot be empty")
	}
	if !s.repo.HasPark(name) {
		return nil, ErrUnknownPark
	}

	trees := s.repo.TreesInPark(name)

	plottable := make([]models.TreeRecord, 0, len(trees))
	for _, t := range trees {
		if t.HasValidCoordinates() {
			plottable = append(plottable, t)
		}
	}

	result := &models.ParkMap{
		Park:   name,
		Total:  len(trees),
		Points: models.FeatureCollection{Type: "FeatureCollection", Features: []models.Feature{}},
	}

	if len(plottable) == 0 {
		result.Message = noCoordinateMessage
		return result, nil
	}

	topSpecies := countSpecies(withUnknownSpecies(plottable))
	colorMap, legend := assignSpeciesColors(topN(topSpecies, 10))

	var sumLat, sumLon float64
	features := make([]models.Feature, 0, len(plottable))
	for _, t := range plottable {
		species := t.CommonName
		if species == "" {
			species = unknownSpecies
		}
		dbh := t.DBH
		if !t.HasDBH() {
			dbh = defaultDBH
		}
		color, ok := colorMap[species]
		if !ok {
			color = fallbackColor
		}

		features = append(features, models.Feature{
			Type: "Feature",
			Geometry: models.Geometry{
				Type:        "Point",
				Coordinates: []float64{t.Longitude, t.Latitude},
			},
			Properties: models.PointProperties{
				Species:      species,
				DBH:          dbh,
				Park:         t.Park,
				Neighborhood: t.Neighborhood,
				Color:        color,
			},
		})

		sumLon += t.Longitude
		sumLat += t.Latitude
	}

	result.Plotted = len(features)
	result.Points.Features = features
	result.Legend = legend
	result.View = &models.ViewState{
		Latitude:  sumLat / float64(len(plottable)),
		Longitude: sumLon / float64(len(plottable)),
		Zoom:      defaultZoom,
		Pitch:     defaultPitch,
	}
	return result, nil
}

// withUnknownSpecies substitutes the unknown label for empty species names so
// unnamed trees still rank in the color assignment.
func withUnknownSpecies(trees []models.TreeRecord) []models.TreeRecord {
	out := make([]models.TreeRecord, len(trees))
	copy(out, trees)
	for i := range out {
		if out[i].CommonName == "" {
			out[i].CommonName = unknownSpecies
		}
	}
	return out
}

// assignSpeciesColors pairs the ranked species with the fixed palette and
// produces the matching hex legend.
func assignSpeciesColors(ranked []models.SpeciesCount) (map[string][3]int, []models.LegendEntry) {
	colors := make(map[string][3]int, len(ranked))
	legend := make([]models.LegendEntry, 0, len(ranked))
	for i, sc := range ranked {
		if i >= len(speciesPalette) {
			break
		}
		c := speciesPalette[i]
		colors[sc.Species] = c
		legend = append(legend, models.LegendEntry{
			Species: sc.Species,
			Color:   fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]),
		})
	}
	return colors, legend
}
