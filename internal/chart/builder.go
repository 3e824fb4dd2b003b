// Package chart builds render-ready chart payloads from species frequency
// tables. Rendering itself is delegated to the API consumer.
package chart

import (
	"math"

	"tree-explorer-api/internal/models"
)

// barPalette provides one color per bar, cycled when there are more bars
// than colors.
var barPalette = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// pieStartAngle matches the rotation the original charts were drawn with.
const pieStartAngle = 140

// BuildBar produces a bar chart of the first topN species counts.
// Returns nil when there is nothing to plot.
func BuildBar(title, xAxis, yAxis string, counts []models.SpeciesCount, topN int) *models.ChartConfig {
	if len(counts) == 0 {
		return nil
	}
	if topN > 0 && len(counts) > topN {
		counts = counts[:topN]
	}

	points := make([]models.ChartPoint, 0, len(counts))
	colors := make([]string, 0, len(counts))
	for i, c := range counts {
		points = append(points, models.ChartPoint{
			Label: c.Species,
			Value: float64(c.Count),
		})
		colors = append(colors, barPalette[i%len(barPalette)])
	}

	return &models.ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     []models.ChartSeries{{Name: yAxis, Data: points}},
		Colors:     colors,
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// BuildPie produces a pie chart of species shares. Each slice carries its
// percentage of the total rounded to one decimal place.
// Returns nil when there is nothing to plot.
func BuildPie(title string, counts []models.SpeciesCount) *models.ChartConfig {
	if len(counts) == 0 {
		return nil
	}

	var total int
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return nil
	}

	points := make([]models.ChartPoint, 0, len(counts))
	colors := make([]string, 0, len(counts))
	for i, c := range counts {
		share := float64(c.Count) / float64(total) * 100
		points = append(points, models.ChartPoint{
			Label: c.Species,
			Value: float64(c.Count),
			Share: roundTo1(share),
		})
		colors = append(colors, barPalette[i%len(barPalette)])
	}

	return &models.ChartConfig{
		ChartType:  "pie",
		Title:      title,
		StartAngle: pieStartAngle,
		Series:     []models.ChartSeries{{Name: title, Data: points}},
		Colors:     colors,
		ShowLegend: true,
		ShowGrid:   false,
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
