package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"iban-service/internal/services"
	"iban-service/pkg/common"
)

const maxBatchSize = 10000

type BatchHandler struct {
	Service *services.BatchService
}

func NewBatchHandler(service *services.BatchService) *BatchHandler {
	return &BatchHandler{Service: service}
}

type CreateBatchRequest struct {
	IBANs        []string `json:"ibans" binding:"required,min=1"`
	ValidateBBAN bool     `json:"validate_bban"`
}

// CreateBatch queues a validation job and returns its reference for polling.
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.IBANs) > maxBatchSize {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Batch exceeds maximum size", gin.H{"max": maxBatchSize}, http.StatusBadRequest))
		return
	}

	job, err := h.Service.CreateJob(req.IBANs, req.ValidateBBAN)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to queue validation job", nil, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusAccepted, common.NewSuccessResponse(job, "Validation job queued"))
}

// GetBatch returns a job's status and a page of its per item results.
func (h *BatchHandler) GetBatch(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}

	job, records, total, err := h.Service.GetJob(c.Param("reference"), page, limit)
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Validation job not found", nil, http.StatusNotFound))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"job":     job,
		"records": common.PaginateResponse(records, total, page, limit, ""),
	}, "Validation job"))
}
