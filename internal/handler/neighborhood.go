package handler

import (
	"context"
	"errors"
	"net/http"

	"tree-explorer-api/internal/models"
	"tree-explorer-api/internal/observability"
	"tree-explorer-api/internal/service"

	"github.com/gin-gonic/gin"
)

// NeighborhoodHandler handles species-by-neighborhood requests
type NeighborhoodHandler struct {
	service NeighborhoodService
	metrics *observability.Metrics
}

// Service interface for dependency injection
type NeighborhoodService interface {
	SpeciesBreakdown(context.Context, string) (*models.NeighborhoodSpecies, error)
}

// NewNeighborhoodHandler creates a new neighborhood handler
func NewNeighborhoodHandler(svc NeighborhoodService, metrics *observability.Metrics) *NeighborhoodHandler {
	return &NeighborhoodHandler{service: svc, metrics: metrics}
}

// Species handles GET /neighborhood/species requests
//
//	@Summary	Species breakdown for a neighborhood
//	@Produce	json
//	@Param		name	query		string	true	"Neighborhood name"
//	@Success	200		{object}	models.NeighborhoodSpecies
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/neighborhood/species [get]
func (h *NeighborhoodHandler) Species(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.metrics.QueriesServed.WithLabelValues("neighborhood_species", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'name'"})
		return
	}

	breakdown, err := h.service.SpeciesBreakdown(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrUnknownNeighborhood) {
			h.metrics.QueriesServed.WithLabelValues("neighborhood_species", "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown neighborhood"})
			return
		}
		h.metrics.QueriesServed.WithLabelValues("neighborhood_species", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.metrics.QueriesServed.WithLabelValues("neighborhood_species", "ok").Inc()
	c.JSON(http.StatusOK, breakdown)
}
