package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iban-service/internal/services"
	"iban-service/pkg/common"
)

type ValidateIBANRequest struct {
	IBAN         string `json:"iban" binding:"required"`
	ValidateBBAN bool   `json:"validate_bban"`
}

type GenerateIBANRequest struct {
	CountryCode string `json:"country_code" binding:"required"`
	BankCode    string `json:"bank_code" binding:"required"`
	BranchCode  string `json:"branch_code"`
	AccountCode string `json:"account_code" binding:"required"`
}

// ValidateIBAN reports the validation outcome for one IBAN. An invalid IBAN
// is a regular 200 response with valid=false; only malformed requests fail.
func ValidateIBAN(c *gin.Context) {
	var req ValidateIBANRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := services.BuildIBANReport(req.IBAN, req.ValidateBBAN)
	c.JSON(http.StatusOK, common.NewSuccessResponse(report, "IBAN validated"))
}

// GetIBAN decomposes a path supplied IBAN into its components.
func GetIBAN(c *gin.Context) {
	validateBBAN := c.Query("validate_bban") == "true"
	report := services.BuildIBANReport(c.Param("iban"), validateBBAN)
	if !report.Valid {
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(report.Error.Message, report, http.StatusUnprocessableEntity))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(report, "IBAN details"))
}

// GenerateIBAN assembles an IBAN from national components.
func GenerateIBAN(c *gin.Context) {
	var req GenerateIBANRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := services.GenerateIBANReport(req.CountryCode, req.BankCode, req.BranchCode, req.AccountCode, false)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(err.Error(), nil, http.StatusUnprocessableEntity))
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(report, "IBAN generated"))
}

// RandomIBAN returns a randomly generated valid IBAN, optionally pinned to
// the country query parameter.
func RandomIBAN(c *gin.Context) {
	report, err := services.RandomIBANReport(c.Query("country"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(err.Error(), nil, http.StatusUnprocessableEntity))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(report, "Random IBAN"))
}
