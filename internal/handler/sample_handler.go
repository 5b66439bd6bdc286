package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ramdani/geocell-backend-go/internal/models"
	"github.com/ramdani/geocell-backend-go/internal/service"
	"github.com/ramdani/geocell-backend-go/pkg/response"
)

// SampleHandler handles HTTP requests for drive-test samples
type SampleHandler struct {
	service *service.CoverageService
}

// NewSampleHandler creates a new sample handler
func NewSampleHandler(service *service.CoverageService) *SampleHandler {
	return &SampleHandler{service: service}
}

// BulkLoad handles POST /api/v1/samples/bulk
func (h *SampleHandler) BulkLoad(c *gin.Context) {
	var samples []models.MeasurementSample
	if err := c.ShouldBindJSON(&samples); err != nil {
		response.BadRequest(c, "Invalid sample payload: "+err.Error())
		return
	}

	if err := h.service.LoadSamples(samples); err != nil {
		response.BadRequest(c, "Failed to load samples: "+err.Error())
		return
	}

	response.Success(c, gin.H{"loaded": len(samples)})
}

// List handles GET /api/v1/samples
func (h *SampleHandler) List(c *gin.Context) {
	var filter models.SampleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	// Default limit keeps a dense drive-test from flooding the frontend
	if filter.Limit == 0 {
		filter.Limit = 10000
	}

	samples, err := h.service.Samples(filter)
	if err != nil {
		response.InternalError(c, "Failed to list samples: "+err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  samples,
		"count": len(samples),
	})
}
