package dataset

import (
	"sort"
	"time"

	"tree-explorer-api/internal/models"

	"github.com/jonboulle/clockwork"
)

// Store holds the loaded tree table as immutable process-wide shared state.
// Catalogs and diameter bounds are precomputed at construction; queries return
// derived slices and never mutate the table.
type Store struct {
	records       []models.TreeRecord
	neighborhoods []string
	parks         []string
	minDBH        int
	maxDBH        int
	loadedAt      time.Time
}

// NewStore builds a Store from parsed records. The clock stamps load time so
// callers can report dataset age.
func NewStore(records []models.TreeRecord, clock clockwork.Clock) *Store {
	s := &Store{
		records:  records,
		loadedAt: clock.Now(),
	}

	s.neighborhoods = distinctSorted(records, func(t models.TreeRecord) string { return t.Neighborhood })
	s.parks = distinctSorted(records, func(t models.TreeRecord) string { return t.Park })

	first := true
	var minDBH, maxDBH float64
	for _, t := range records {
		if !t.HasDBH() {
			continue
		}
		if first || t.DBH < minDBH {
			minDBH = t.DBH
		}
		if first || t.DBH > maxDBH {
			maxDBH = t.DBH
		}
		first = false
	}
	// Truncation matches how the original bounds were derived from the table.
	s.minDBH = int(minDBH)
	s.maxDBH = int(maxDBH)

	return s
}

// Len returns the number of rows in the table.
func (s *Store) Len() int { return len(s.records) }

// LoadedAt returns when the table was loaded.
func (s *Store) LoadedAt() time.Time { return s.loadedAt }

// Records exposes the underlying table as a read-only view.
func (s *Store) Records() []models.TreeRecord { return s.records }

// Neighborhoods returns the sorted distinct non-empty neighborhood names.
func (s *Store) Neighborhoods() []string { return s.neighborhoods }

// Parks returns the sorted distinct non-empty park names.
func (s *Store) Parks() []string { return s.parks }

// HasNeighborhood reports whether name appears in the neighborhood catalog.
func (s *Store) HasNeighborhood(name string) bool {
	return containsSorted(s.neighborhoods, name)
}

// HasPark reports whether name appears in the park catalog.
func (s *Store) HasPark(name string) bool {
	return containsSorted(s.parks, name)
}

// TreesInNeighborhood returns all rows for the given neighborhood.
func (s *Store) TreesInNeighborhood(name string) []models.TreeRecord {
	return s.filter(func(t models.TreeRecord) bool { return t.Neighborhood == name })
}

// TreesInPark returns all rows for the given park.
func (s *Store) TreesInPark(name string) []models.TreeRecord {
	return s.filter(func(t models.TreeRecord) bool { return t.Park == name })
}

// TreesInDiameterRange returns rows with a measured diameter in [min, max].
func (s *Store) TreesInDiameterRange(min, max float64) []models.TreeRecord {
	return s.filter(func(t models.TreeRecord) bool {
		return t.HasDBH() && t.DBH >= min && t.DBH <= max
	})
}

// DBHBounds returns the integer diameter bounds of the table.
func (s *Store) DBHBounds() (int, int) {
	return s.minDBH, s.maxDBH
}

func (s *Store) filter(keep func(models.TreeRecord) bool) []models.TreeRecord {
	var out []models.TreeRecord
	for _, t := range s.records {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func distinctSorted(records []models.TreeRecord, key func(models.TreeRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range records {
		k := key(t)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func containsSorted(items []string, name string) bool {
	i := sort.SearchStrings(items, name)
	return i < len(items) && items[i] == name
}
