package service

import (
	"context"
	"fmt"

	"tree-explorer-api/internal/chart"
	"tree-explorer-api/internal/models"
)

// NeighborhoodService contains the core logic for the species-by-neighborhood view.
type NeighborhoodService struct {
	repo NeighborhoodRepository
}

// NeighborhoodRepository interface for dependency injection
type NeighborhoodRepository interface {
	HasNeighborhood(name string) bool
	TreesInNeighborhood(name string) []models.TreeRecord
}

// NewNeighborhoodService creates a new neighborhood service
func NewNeighborhoodService(repo NeighborhoodRepository) *NeighborhoodService {
	return &NeighborhoodService{repo: repo}
}

// SpeciesBreakdown counts trees by species in one neighborhood and returns the
// total, a bar chart of the thirty most common species, and the top ten as a list.
func (s *NeighborhoodService) SpeciesBreakdown(ctx context.Context, name string) (*models.NeighborhoodSpecies, error) {
	if name == "" {
		return nil, fmt.Errorf("service: neighborhood name cannot be empty")
	}
	if !s.repo.HasNeighborhood(name) {
		return nil, ErrUnknownNeighborhood
	}

	trees := s.repo.TreesInNeighborhood(name)
	counts := countSpecies(trees)

	return &models.NeighborhoodSpecies{
		Neighborhood: name,
		Total:        len(trees),
		Chart: chart.BuildBar(
			fmt.Sprintf("Top 30 Tree Species in %s", name),
			"Species", "Number of Trees",
			counts, 30,
		),
		TopSpecies: topN(counts, 10),
	}, nil
}
