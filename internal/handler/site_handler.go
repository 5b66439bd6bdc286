package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ramdani/geocell-backend-go/internal/models"
	"github.com/ramdani/geocell-backend-go/internal/service"
	"github.com/ramdani/geocell-backend-go/pkg/response"
)

// SiteHandler handles HTTP requests for the loaded site list
type SiteHandler struct {
	service *service.CoverageService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(service *service.CoverageService) *SiteHandler {
	return &SiteHandler{service: service}
}

// BulkLoad handles POST /api/v1/sites/bulk
func (h *SiteHandler) BulkLoad(c *gin.Context) {
	var sectors []models.AntennaSector
	if err := c.ShouldBindJSON(&sectors); err != nil {
		response.BadRequest(c, "Invalid site list payload: "+err.Error())
		return
	}

	if err := h.service.LoadSectors(sectors); err != nil {
		response.BadRequest(c, "Failed to load site list: "+err.Error())
		return
	}

	response.Success(c, gin.H{"loaded": len(sectors)})
}

// List handles GET /api/v1/sites
func (h *SiteHandler) List(c *gin.Context) {
	sectors, err := h.service.Sectors()
	if err != nil {
		response.InternalError(c, "Failed to list sites: "+err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  sectors,
		"count": len(sectors),
	})
}
