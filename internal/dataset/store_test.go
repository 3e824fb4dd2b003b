package dataset

import (
	"math"
	"testing"

	"tree-explorer-api/internal/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(species string, dbh float64, neighborhood, park string) models.TreeRecord {
	return models.TreeRecord{
		CommonName:   species,
		DBH:          dbh,
		Longitude:    -71.06,
		Latitude:     42.36,
		Neighborhood: neighborhood,
		Park:         park,
	}
}

func testRecords() []models.TreeRecord {
	return []models.TreeRecord{
		tree("Red Maple", 12.5, "Roslindale", "Franklin Park"),
		tree("Red Maple", math.NaN(), "Roslindale", "Franklin Park"),
		tree("Norway Maple", 8.9, "Roslindale", "Franklin Park"),
		tree("Honeylocust", 30, "Dorchester", "Ronan Park"),
		tree("Red Oak", 22, "Dorchester", "Ronan Park"),
		tree("Red Oak", 15, "", ""),
	}
}

func TestNewStore_Catalogs(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewStore(testRecords(), clock)

	assert.Equal(t, []string{"Dorchester", "Roslindale"}, store.Neighborhoods())
	assert.Equal(t, []string{"Franklin Park", "Ronan Park"}, store.Parks())
	assert.Equal(t, clock.Now(), store.LoadedAt())

	assert.True(t, store.HasNeighborhood("Roslindale"))
	assert.False(t, store.HasNeighborhood("roslindale"))
	assert.False(t, store.HasNeighborhood("Allston"))
	assert.True(t, store.HasPark("Ronan Park"))
	assert.False(t, store.HasPark("Boston Common"))
}

func TestNewStore_DBHBounds(t *testing.T) {
	store := NewStore(testRecords(), clockwork.NewFakeClock())

	minDBH, maxDBH := store.DBHBounds()
	assert.Equal(t, 8, minDBH) // truncated from 8.9
	assert.Equal(t, 30, maxDBH)
}

func TestStore_TreesInNeighborhood(t *testing.T) {
	store := NewStore(testRecords(), clockwork.NewFakeClock())

	trees := store.TreesInNeighborhood("Roslindale")
	require.Len(t, trees, 3)
	for _, tr := range trees {
		assert.Equal(t, "Roslindale", tr.Neighborhood)
	}

	assert.Empty(t, store.TreesInNeighborhood("Allston"))
}

func TestStore_TreesInDiameterRange(t *testing.T) {
	store := NewStore(testRecords(), clockwork.NewFakeClock())

	tests := []struct {
		name     string
		min, max float64
		want     int
	}{
		{name: "inclusive bounds", min: 12.5, max: 22, want: 3},
		{name: "full range", min: 0, max: 100, want: 5}, // NaN DBH excluded
		{name: "no matches", min: 40, max: 50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, store.TreesInDiameterRange(tt.min, tt.max), tt.want)
		})
	}
}
