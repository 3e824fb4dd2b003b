package service

import (
	"context"
	"time"

	"tree-explorer-api/internal/models"
)

// CatalogService exposes the selection catalogs and dataset summary the
// exploration views are driven by.
type CatalogService struct {
	repo CatalogRepository
}

// CatalogRepository interface for dependency injection
type CatalogRepository interface {
	Neighborhoods() []string
	Parks() []string
	Len() int
	DBHBounds() (int, int)
	LoadedAt() time.Time
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Neighborhoods returns the sorted neighborhood catalog.
func (s *CatalogService) Neighborhoods(ctx context.Context) []string {
	return s.repo.Neighborhoods()
}

// Parks returns the sorted park catalog.
func (s *CatalogService) Parks(ctx context.Context) []string {
	return s.repo.Parks()
}

// Summary describes the loaded table.
func (s *CatalogService) Summary(ctx context.Context) *models.DatasetSummary {
	minDBH, maxDBH := s.repo.DBHBounds()
	return &models.DatasetSummary{
		Rows:          s.repo.Len(),
		Neighborhoods: len(s.repo.Neighborhoods()),
		Parks:         len(s.repo.Parks()),
		MinDBH:        minDBH,
		MaxDBH:        maxDBH,
		LoadedAt:      s.repo.LoadedAt(),
	}
}
