package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iban-service/internal/services"
	"iban-service/pkg/common"
)

type ValidateBICRequest struct {
	BIC    string `json:"bic" binding:"required"`
	Strict bool   `json:"strict"`
}

// ValidateBIC reports the validation outcome for one BIC.
func ValidateBIC(c *gin.Context) {
	var req ValidateBICRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := services.BuildBICReport(req.BIC, req.Strict)
	c.JSON(http.StatusOK, common.NewSuccessResponse(report, "BIC validated"))
}

// GetBIC decomposes a path supplied BIC.
func GetBIC(c *gin.Context) {
	strict := c.Query("strict") == "true"
	report := services.BuildBICReport(c.Param("bic"), strict)
	if !report.Valid {
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(report.Error.Message, report, http.StatusUnprocessableEntity))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(report, "BIC details"))
}
