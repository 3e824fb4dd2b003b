package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"tree-explorer-api/internal/models"

	"github.com/jonboulle/clockwork"
)

// Column names expected in the inventory CSV, matched case-insensitively.
const (
	colSpecies      = "spp_com"
	colDBH          = "dbh"
	colLongitude    = "point_x"
	colLatitude     = "point_y"
	colNeighborhood = "neighborhood"
	colPark         = "park"
)

// Load reads the tree inventory CSV at path and returns an immutable in-memory
// Store. Headers are lowercased before matching. Numeric fields (dbh, point_x,
// point_y) are coerced; values that fail to parse become NaN rather than
// aborting the load.
func Load(path string, clock clockwork.Clock) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to open %s: %w", path, err)
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		return nil, err
	}

	return NewStore(records, clock), nil
}

func parseCSV(r io.Reader) ([]models.TreeRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.TreeRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: failed to read record: %w", err)
		}

		records = append(records, models.TreeRecord{
			CommonName:   field(row, cols[colSpecies]),
			DBH:          parseNumeric(field(row, cols[colDBH])),
			Longitude:    parseNumeric(field(row, cols[colLongitude])),
			Latitude:     parseNumeric(field(row, cols[colLatitude])),
			Neighborhood: field(row, cols[colNeighborhood]),
			Park:         field(row, cols[colPark]),
		})
	}

	return records, nil
}

// indexColumns maps the required column names to their positions in the
// lowercased header, erroring on any that are absent.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	required := []string{colSpecies, colDBH, colLongitude, colLatitude, colNeighborhood, colPark}
	cols := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset: missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseNumeric coerces a CSV cell to float64, returning NaN for empty or
// unparseable values.
func parseNumeric(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
