package service

import (
	"sort"

	"tree-explorer-api/internal/models"
)

// countSpecies builds a species frequency table sorted by count descending.
// Ties keep first-seen order so results are deterministic. Rows without a
// species name are skipped.
func countSpecies(trees []models.TreeRecord) []models.SpeciesCount {
	counts := make(map[string]int)
	var order []string
	for _, t := range trees {
		if t.CommonName == "" {
			continue
		}
		if _, seen := counts[t.CommonName]; !seen {
			order = append(order, t.CommonName)
		}
		counts[t.CommonName]++
	}

	out := make([]models.SpeciesCount, 0, len(order))
	for _, name := range order {
		out = append(out, models.SpeciesCount{Species: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// topN returns the first n entries of a frequency table.
func topN(counts []models.SpeciesCount, n int) []models.SpeciesCount {
	if len(counts) <= n {
		return counts
	}
	return counts[:n]
}
