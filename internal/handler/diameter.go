package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"tree-explorer-api/internal/models"
	"tree-explorer-api/internal/observability"
	"tree-explorer-api/internal/service"

	"github.com/gin-gonic/gin"
)

// DiameterHandler handles diameter distribution requests
type DiameterHandler struct {
	service DiameterService
	metrics *observability.Metrics
}

// Service interface for dependency injection
type DiameterService interface {
	Distribution(context.Context, float64, float64) (*models.DiameterDistribution, error)
}

// NewDiameterHandler creates a new diameter handler
func NewDiameterHandler(svc DiameterService, metrics *observability.Metrics) *DiameterHandler {
	return &DiameterHandler{service: svc, metrics: metrics}
}

// Distribution handles GET /trees/diameter requests. Omitted bounds default to
// the dataset's own diameter bounds.
//
//	@Summary	Species distribution for a diameter range
//	@Produce	json
//	@Param		min	query		number	false	"Minimum DBH in inches"
//	@Param		max	query		number	false	"Maximum DBH in inches"
//	@Success	200	{object}	models.DiameterDistribution
//	@Failure	400	{object}	map[string]string
//	@Router		/trees/diameter [get]
func (h *DiameterHandler) Distribution(c *gin.Context) {
	min, err := parseBound(c.Query("min"))
	if err != nil {
		h.metrics.QueriesServed.WithLabelValues("diameter", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'min' format"})
		return
	}
	max, err := parseBound(c.Query("max"))
	if err != nil {
		h.metrics.QueriesServed.WithLabelValues("diameter", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'max' format"})
		return
	}

	dist, err := h.service.Distribution(c.Request.Context(), min, max)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			h.metrics.QueriesServed.WithLabelValues("diameter", "bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "'min' must not exceed 'max'"})
			return
		}
		h.metrics.QueriesServed.WithLabelValues("diameter", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	outcome := "ok"
	if dist.Total == 0 {
		outcome = "empty"
	}
	h.metrics.QueriesServed.WithLabelValues("diameter", outcome).Inc()
	c.JSON(http.StatusOK, dist)
}

// parseBound converts an optional bound parameter; absent means "use the
// dataset bound", signalled downstream as NaN.
func parseBound(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
