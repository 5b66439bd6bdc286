package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ramdani/geocell-backend-go/internal/service"
	"github.com/ramdani/geocell-backend-go/pkg/response"
)

// CoverageHandler handles HTTP requests for derived coverage data:
// footprints, spider-graph segments, statistics and the scene summary.
type CoverageHandler struct {
	service *service.CoverageService
}

// NewCoverageHandler creates a new coverage handler
func NewCoverageHandler(service *service.CoverageService) *CoverageHandler {
	return &CoverageHandler{service: service}
}

// Footprints handles GET /api/v1/coverage/footprints
func (h *CoverageHandler) Footprints(c *gin.Context) {
	views, err := h.service.Footprints()
	if err != nil {
		response.InternalError(c, "Failed to compute footprints: "+err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  views,
		"count": len(views),
	})
}

// Spider handles GET /api/v1/coverage/spider
func (h *CoverageHandler) Spider(c *gin.Context) {
	segments, err := h.service.Spider(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to build spider graph: "+err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  segments,
		"count": len(segments),
	})
}

// CellStats handles GET /api/v1/coverage/stats/cells
func (h *CoverageHandler) CellStats(c *gin.Context) {
	stats, err := h.service.CategoryStats()
	if err != nil {
		response.InternalError(c, "Failed to compute cell statistics: "+err.Error())
		return
	}

	response.Success(c, gin.H{"data": stats})
}

// RSRPStats handles GET /api/v1/coverage/stats/rsrp
func (h *CoverageHandler) RSRPStats(c *gin.Context) {
	stats, err := h.service.BucketStats()
	if err != nil {
		response.InternalError(c, "Failed to compute RSRP statistics: "+err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  stats,
		"scale": h.service.SignalScale(),
	})
}

// Scene handles GET /api/v1/coverage/scene
func (h *CoverageHandler) Scene(c *gin.Context) {
	scene, err := h.service.Scene()
	if err != nil {
		response.InternalError(c, "Failed to summarize scene: "+err.Error())
		return
	}

	response.Success(c, scene)
}
