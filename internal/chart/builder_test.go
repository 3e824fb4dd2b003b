package chart

import (
	"fmt"
	"testing"

	"tree-explorer-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBar(t *testing.T) {
	counts := []models.SpeciesCount{
		{Species: "Red Maple", Count: 40},
		{Species: "Norway Maple", Count: 25},
		{Species: "Honeylocust", Count: 10},
	}

	cfg := BuildBar("Top Species", "Species", "Number of Trees", counts, 30)
	require.NotNil(t, cfg)

	assert.Equal(t, "bar", cfg.ChartType)
	assert.Equal(t, "Top Species", cfg.Title)
	assert.Equal(t, "Species", cfg.XAxis)
	assert.Equal(t, "Number of Trees", cfg.YAxis)
	assert.True(t, cfg.ShowGrid)
	assert.False(t, cfg.ShowLegend)

	require.Len(t, cfg.Series, 1)
	require.Len(t, cfg.Series[0].Data, 3)
	assert.Equal(t, models.ChartPoint{Label: "Red Maple", Value: 40}, cfg.Series[0].Data[0])

	require.Len(t, cfg.Colors, 3)
	assert.Equal(t, "#1f77b4", cfg.Colors[0])
}

func TestBuildBar_TruncatesAndCyclesColors(t *testing.T) {
	var counts []models.SpeciesCount
	for i := 0; i < 45; i++ {
		counts = append(counts, models.SpeciesCount{
			Species: fmt.Sprintf("species-%d", i),
			Count:   45 - i,
		})
	}

	cfg := BuildBar("Top Species", "Species", "Count", counts, 30)
	require.NotNil(t, cfg)

	assert.Len(t, cfg.Series[0].Data, 30)
	require.Len(t, cfg.Colors, 30)
	// Palette has 20 entries, so bar 21 reuses the first color.
	assert.Equal(t, cfg.Colors[0], cfg.Colors[20])
}

func TestBuildBar_Empty(t *testing.T) {
	assert.Nil(t, BuildBar("Top Species", "Species", "Count", nil, 30))
}

func TestBuildPie(t *testing.T) {
	counts := []models.SpeciesCount{
		{Species: "Red Maple", Count: 2},
		{Species: "Red Oak", Count: 1},
	}

	cfg := BuildPie("Distribution", counts)
	require.NotNil(t, cfg)

	assert.Equal(t, "pie", cfg.ChartType)
	assert.Equal(t, 140, cfg.StartAngle)
	assert.True(t, cfg.ShowLegend)
	assert.False(t, cfg.ShowGrid)

	require.Len(t, cfg.Series, 1)
	points := cfg.Series[0].Data
	require.Len(t, points, 2)
	// Shares rounded to one decimal place.
	assert.Equal(t, 66.7, points[0].Share)
	assert.Equal(t, 33.3, points[1].Share)
}

func TestBuildPie_Empty(t *testing.T) {
	assert.Nil(t, BuildPie("Distribution", nil))
	assert.Nil(t, BuildPie("Distribution", []models.SpeciesCount{{Species: "Red Maple", Count: 0}}))
}
