package handlers

import (
	"net/http"
	"strconv"

	"powergrid-forecast-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectsHandler struct {
	db *gorm.DB
}

func NewProjectsHandler(db *gorm.DB) *ProjectsHandler {
	return &ProjectsHandler{db: db}
}

type CreateProjectRequest struct {
	UserID        uint     `json:"user_id" binding:"required"`
	ProjectName   string   `json:"project_name" binding:"required"`
	ProjectBudget *float64 `json:"project_budget" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	TowerType     *string  `json:"tower_type"`
	Terrain       *string  `json:"terrain"`
}

func (h *ProjectsHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := models.Project{
		UserID:        req.UserID,
		ProjectName:   req.ProjectName,
		ProjectBudget: *req.ProjectBudget,
		Location:      req.Location,
		Category:      req.Category,
		TowerType:     req.TowerType,
		Terrain:       req.Terrain,
	}
	if err := h.db.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectsHandler) GetForUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var projects []models.Project
	if err := h.db.Where("user_id = ?", userID).Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectsHandler) List(c *gin.Context) {
	var projects []models.Project
	if err := h.db.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	c.JSON(http.StatusOK, projects)
}
