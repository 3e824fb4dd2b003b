package service

import (
	"context"
	"fmt"
	"math"

	"tree-explorer-api/internal/chart"
	"tree-explorer-api/internal/models"
)

const noMatchMessage = "No trees found in this diameter range."

// DiameterService contains the core logic for the diameter filter view.
type DiameterService struct {
	repo DiameterRepository
}

// DiameterRepository interface for dependency injection
type DiameterRepository interface {
	TreesInDiameterRange(min, max float64) []models.TreeRecord
	DBHBounds() (int, int)
}

// NewDiameterService creates a new diameter service
func NewDiameterService(repo DiameterRepository) *DiameterService {
	return &DiameterService{repo: repo}
}

// Distribution returns the species share of trees with a diameter in
// [min, max]. NaN bounds fall back to the dataset's own diameter bounds,
// mirroring how the original range control was initialized.
func (s *DiameterService) Distribution(ctx context.Context, min, max float64) (*models.DiameterDistribution, error) {
	lo, hi := s.repo.DBHBounds()
	if math.IsNaN(min) {
		min = float64(lo)
	}
	if math.IsNaN(max) {
		max = float64(hi)
	}
	if min > max {
		return nil, ErrInvalidRange
	}

	trees := s.repo.TreesInDiameterRange(min, max)
	counts := countSpecies(trees)

	result := &models.DiameterDistribution{
		MinDBH: min,
		MaxDBH: max,
		Total:  len(trees),
		Counts: counts,
	}

	if len(counts) == 0 {
		result.Message = noMatchMessage
		return result, nil
	}

	result.Chart = chart.BuildPie(
		fmt.Sprintf("Species Distribution for DBH %g-%g", min, max),
		counts,
	)
	return result, nil
}
