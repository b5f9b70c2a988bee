package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"facilityai/config"
	recordsRepo "facilityai/database/repository/records"
	"facilityai/utils"
)

const diagnosticErrorMax = 80

// HealthHandler serves the liveness and store-diagnostic endpoints.
type HealthHandler struct {
	Records recordsRepo.RecordRepository
}

func NewHealthHandler(records recordsRepo.RecordRepository) *HealthHandler {
	return &HealthHandler{Records: records}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "FacilityAI backend is running"})
}

// TestDatabase handles GET /test. Store failures are reported as truncated
// descriptive strings rather than error statuses; this endpoint always
// answers 200 so operators can read the diagnosis.
func (h *HealthHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if config.AppConfig.DatabaseURL != "" {
		response["database_url"] = "set"
	}

	if h.Records == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database_name"] = h.Records.DatabaseName()
	if err := h.Records.Ping(c.Request.Context()); err != nil {
		response["database"] = "error: " + utils.Truncate(err.Error(), diagnosticErrorMax)
		c.JSON(http.StatusOK, response)
		return
	}
	response["database"] = "available"
	response["connection_status"] = "connected"

	collections, err := h.Records.ListCollections(c.Request.Context())
	if err != nil {
		response["database"] = "connected but error: " + utils.Truncate(err.Error(), diagnosticErrorMax)
		c.JSON(http.StatusOK, response)
		return
	}
	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["collections"] = collections
	response["database"] = "connected and working"

	c.JSON(http.StatusOK, response)
}
