package handlers

import (
	"net/http"
	"strconv"

	"powergrid-forecast-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MaterialsHandler struct {
	db *gorm.DB
}

func NewMaterialsHandler(db *gorm.DB) *MaterialsHandler {
	return &MaterialsHandler{db: db}
}

type CreateMaterialRequest struct {
	ProjectID    uint     `json:"project_id" binding:"required"`
	MaterialName string   `json:"material_name" binding:"required"`
	Quantity     *float64 `json:"quantity" binding:"required"`
	Cost         *float64 `json:"cost" binding:"required"`
}

func (h *MaterialsHandler) Create(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	material := models.Material{
		ProjectID:    req.ProjectID,
		MaterialName: req.MaterialName,
		Quantity:     *req.Quantity,
		Cost:         *req.Cost,
	}
	if err := h.db.Create(&material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create material"})
		return
	}

	c.JSON(http.StatusCreated, material)
}

func (h *MaterialsHandler) GetForProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var materials []models.Material
	if err := h.db.Where("project_id = ?", projectID).Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	c.JSON(http.StatusOK, materials)
}

// Summary projects each stored material into a stock-style row. There
// is no inventory table, so quantity stands in for current stock.
func (h *MaterialsHandler) Summary(c *gin.Context) {
	var materials []models.Material
	if err := h.db.Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	summary := make([]gin.H, 0, len(materials))
	for _, m := range materials {
		summary = append(summary, gin.H{
			"id":           m.ID,
			"name":         m.MaterialName,
			"currentStock": m.Quantity,
			"reorderLevel": 0,
			"status":       "Good",
		})
	}

	c.JSON(http.StatusOK, summary)
}
