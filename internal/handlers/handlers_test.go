package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/ibans/validate", ValidateIBAN)
	r.POST("/ibans/generate", GenerateIBAN)
	r.GET("/ibans/:iban", GetIBAN)
	r.POST("/bics/validate", ValidateBIC)
	r.GET("/bics/:bic", GetBIC)
	r.GET("/banks/:country", ListBanks)
	r.GET("/banks/:country/:bank_code/bic", GetBankBIC)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("Non-JSON response: %s", w.Body.String())
	}
	return w, parsed
}

func TestValidateIBANEndpoint(t *testing.T) {
	r := testRouter()

	w, res := doRequest(t, r, http.MethodPost, "/ibans/validate", `{"iban":"DE89370400440532013000"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := res["data"].(map[string]interface{})
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "COBADEFFXXX", data["bic"])

	// Invalid IBANs are still a 200: the report carries the outcome.
	w, res = doRequest(t, r, http.MethodPost, "/ibans/validate", `{"iban":"DE99370400440532013000"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data = res["data"].(map[string]interface{})
	assert.Equal(t, false, data["valid"])
	assert.Equal(t, "invalid_checksum_digits", data["error"].(map[string]interface{})["kind"])

	// Missing body fields are a request error.
	w, _ = doRequest(t, r, http.MethodPost, "/ibans/validate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIBANEndpoint(t *testing.T) {
	r := testRouter()

	w, res := doRequest(t, r, http.MethodGet, "/ibans/FR1420041010050500013M02606", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := res["data"].(map[string]interface{})
	assert.Equal(t, "20041", data["bank_code"])
	assert.Equal(t, "01005", data["branch_code"])

	w, _ = doRequest(t, r, http.MethodGet, "/ibans/FR1420041010050500013M02607", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGenerateIBANEndpoint(t *testing.T) {
	r := testRouter()

	w, res := doRequest(t, r, http.MethodPost, "/ibans/generate",
		`{"country_code":"DE","bank_code":"43060967","account_code":"7000534100"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := res["data"].(map[string]interface{})
	assert.Equal(t, "DE42430609677000534100", data["compact"])

	w, _ = doRequest(t, r, http.MethodPost, "/ibans/generate",
		`{"country_code":"DZ","bank_code":"1","account_code":"1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBICEndpoints(t *testing.T) {
	r := testRouter()

	w, res := doRequest(t, r, http.MethodPost, "/bics/validate", `{"bic":"GENODEM1GLS"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := res["data"].(map[string]interface{})
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "passive", data["type"])

	w, res = doRequest(t, r, http.MethodGet, "/bics/COBADEFFXXX", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data = res["data"].(map[string]interface{})
	assert.Equal(t, true, data["exists"])

	w, _ = doRequest(t, r, http.MethodGet, "/bics/COBADEFFX", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBankBICEndpoint(t *testing.T) {
	r := testRouter()

	w, res := doRequest(t, r, http.MethodGet, "/banks/DE/20070024/bic", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DEUTDEDBHAM", res["data"].(map[string]interface{})["bic"])

	w, res = doRequest(t, r, http.MethodGet, "/banks/FR/30004/bic?all=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	candidates := res["data"].([]interface{})
	assert.Len(t, candidates, 3)
	assert.Equal(t, "BNPAFRPPXXX", candidates[0])

	w, _ = doRequest(t, r, http.MethodGet, "/banks/DE/00000000/bic", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBanksEndpoint(t *testing.T) {
	r := testRouter()

	w, res := doRequest(t, r, http.MethodGet, "/banks/DE?page=1&limit=3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), res["currentPage"])
	banks := res["data"].([]interface{})
	assert.Len(t, banks, 3)

	// Country codes in the path are case insensitive.
	w, res = doRequest(t, r, http.MethodGet, "/banks/de?page=1&limit=3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, res["data"].([]interface{}), 3)

	w, _ = doRequest(t, r, http.MethodGet, "/banks/XX", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
