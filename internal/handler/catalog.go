package handler

import (
	"context"
	"net/http"

	"tree-explorer-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the selection catalogs and the dataset summary.
type CatalogHandler struct {
	service CatalogService
}

// Service interface for dependency injection
type CatalogService interface {
	Neighborhoods(context.Context) []string
	Parks(context.Context) []string
	Summary(context.Context) *models.DatasetSummary
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Neighborhoods handles GET /neighborhoods requests
//
//	@Summary	List neighborhoods
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/neighborhoods [get]
func (h *CatalogHandler) Neighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Neighborhoods(c.Request.Context()))
}

// Parks handles GET /parks requests
//
//	@Summary	List parks
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/parks [get]
func (h *CatalogHandler) Parks(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Parks(c.Request.Context()))
}

// Dataset handles GET /dataset requests
//
//	@Summary	Dataset summary
//	@Produce	json
//	@Success	200	{object}	models.DatasetSummary
//	@Router		/dataset [get]
func (h *CatalogHandler) Dataset(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summary(c.Request.Context()))
}
