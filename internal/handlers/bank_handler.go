package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"iban-service/pkg/common"
	"iban-service/pkg/iban"
	"iban-service/pkg/iban/registry"
)

// GetBankBIC resolves the BIC registered for a national bank code. With
// ?all=true every candidate is returned, the canonical one first.
func GetBankBIC(c *gin.Context) {
	country := c.Param("country")
	bankCode := c.Param("bank_code")

	if c.Query("all") == "true" {
		candidates, err := iban.BICCandidatesFromBankCode(country, bankCode)
		if err != nil {
			c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error(), nil, http.StatusNotFound))
			return
		}
		values := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			values = append(values, candidate.Compact())
		}
		c.JSON(http.StatusOK, common.NewSuccessResponse(values, "BIC candidates"))
		return
	}

	bic, err := iban.BICFromBankCode(country, bankCode)
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error(), nil, http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"bic": bic.Compact()}, "BIC resolved"))
}

// ListBanks returns the bank registry records of a country, paginated.
func ListBanks(c *gin.Context) {
	country := strings.ToUpper(strings.TrimSpace(c.Param("country")))

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	banks := registry.BanksInCountry(country)
	if len(banks) == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No banks registered for country", nil, http.StatusNotFound))
		return
	}

	start := (page - 1) * limit
	if start > len(banks) {
		start = len(banks)
	}
	end := start + limit
	if end > len(banks) {
		end = len(banks)
	}

	c.JSON(http.StatusOK, common.PaginateResponse(banks[start:end], int64(len(banks)), page, limit, ""))
}
