// internal/api/handlers/farmer_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agribridge-api-server/internal/models"
	"agribridge-api-server/internal/query"
	"agribridge-api-server/internal/store"
)

type FarmerHandler struct {
	Store Store
}

type CreateFarmerRequest struct {
	Name           string   `json:"name" binding:"required"`
	Phone          string   `json:"phone" binding:"required"`
	Region         string   `json:"region" binding:"required"`
	FarmName       string   `json:"farm_name"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`
	Bio            string   `json:"bio"`
}

// CreateFarmer validates and stores a new farmer profile.
func (h *FarmerHandler) CreateFarmer(c *gin.Context) {
	var req CreateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	farmer := models.Farmer{
		Name:           req.Name,
		Phone:          req.Phone,
		Region:         req.Region,
		FarmName:       req.FarmName,
		Languages:      req.Languages,
		Certifications: req.Certifications,
		Bio:            req.Bio,
	}
	// Defaults apply only when the field was absent; an explicit empty
	// list stays empty.
	if farmer.Languages == nil {
		farmer.Languages = []string{"uz"}
	}
	if farmer.Certifications == nil {
		farmer.Certifications = []string{}
	}

	id, err := h.Store.Create(c.Request.Context(), store.CollectionFarmer, farmer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create farmer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListFarmers returns farmer documents, optionally filtered by region.
func (h *FarmerHandler) ListFarmers(c *gin.Context) {
	filter := query.FarmerFilter(c.Query("region"))

	docs, err := h.Store.List(c.Request.Context(), store.CollectionFarmer, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query farmers"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
