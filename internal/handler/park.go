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

// ParkHandler handles park map requests
type ParkHandler struct {
	service ParkMapService
	metrics *observability.Metrics
}

// Service interface for dependency injection
type ParkMapService interface {
	Map(context.Context, string) (*models.ParkMap, error)
}

// NewParkHandler creates a new park handler
func NewParkHandler(svc ParkMapService, metrics *observability.Metrics) *ParkHandler {
	return &ParkHandler{service: svc, metrics: metrics}
}

// Map handles GET /park/map requests
//
//	@Summary	Point map of trees in a park
//	@Produce	json
//	@Param		name	query		string	true	"Park name"
//	@Success	200		{object}	models.ParkMap
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/park/map [get]
func (h *ParkHandler) Map(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.metrics.QueriesServed.WithLabelValues("park_map", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'name'"})
		return
	}

	parkMap, err := h.service.Map(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPark) {
			h.metrics.QueriesServed.WithLabelValues("park_map", "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown park"})
			return
		}
		h.metrics.QueriesServed.WithLabelValues("park_map", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	outcome := "ok"
	if parkMap.Plotted == 0 {
		outcome = "empty"
	}
	h.metrics.QueriesServed.WithLabelValues("park_map", outcome).Inc()
	c.JSON(http.StatusOK, parkMap)
}
