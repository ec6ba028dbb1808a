// internal/api/handlers/system_handler.go
package handlers

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"agribridge-api-server/internal/models"
)

// CollectionNamer is the slice of the store the connectivity check needs.
type CollectionNamer interface {
	CollectionNames(ctx context.Context) ([]string, error)
}

type SystemHandler struct {
	Store CollectionNamer
}

// Root answers the bare readiness probe.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AgriBridge Backend Ready"})
}

// Hello is a trivial liveness endpoint under /api.
func (h *SystemHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from AgriBridge API"})
}

// TestDatabase reports connectivity to MongoDB and basic metadata.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url_set":  os.Getenv("MONGO_URI") != "",
		"database_name_set": os.Getenv("MONGO_DBNAME") != "",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	names, err := h.Store.CollectionNames(c.Request.Context())
	if err != nil {
		resp["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}

	if names == nil {
		names = []string{}
	}
	resp["database"] = "connected"
	resp["connection_status"] = "connected"
	resp["collections"] = names
	c.JSON(http.StatusOK, resp)
}

// GetSchema returns the static collection schemas for viewers and tools.
func (h *SystemHandler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, models.SchemaRegistry())
}
