package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"powergrid-forecast-api/ml"
	"powergrid-forecast-api/services"

	"github.com/gin-gonic/gin"
)

const (
	forecastStreamChannel = "powergrid:forecasts"
	historyCacheKey       = "forecast:history"
)

// ForecastCache is the slice of CacheService the forecast endpoints
// use: read-through caching on history plus the saved-forecast stream.
type ForecastCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Publish(ctx context.Context, channel string, message interface{}) error
}

type ForecastHandler struct {
	svc   *services.ForecastService
	cache ForecastCache
}

func NewForecastHandler(svc *services.ForecastService, cache ForecastCache) *ForecastHandler {
	return &ForecastHandler{svc: svc, cache: cache}
}

// forecastRequest binds the seven modeling fields plus display-only
// name/location. Numeric fields are pointers so "missing" and an
// explicit zero stay distinguishable to the validator.
type forecastRequest struct {
	ProjectCategoryMain      string   `json:"project_category_main" binding:"required"`
	ProjectType              string   `json:"project_type" binding:"required"`
	ProjectBudgetPriceInLake *float64 `json:"project_budget_price_in_lake" binding:"required"`
	State                    string   `json:"state" binding:"required"`
	Terrain                  string   `json:"terrain" binding:"required"`
	DistanceFromStorageUnit  *float64 `json:"distance_from_storage_unit" binding:"required"`
	TransmissionLineLengthKM *float64 `json:"transmission_line_length_km" binding:"required"`
	Location                 string   `json:"location"`
	ProjectName              string   `json:"project_name"`
}

func (r forecastRequest) toInput() services.ForecastInput {
	return services.ForecastInput{
		ProjectCategoryMain:      r.ProjectCategoryMain,
		ProjectType:              r.ProjectType,
		ProjectBudgetPriceInLake: *r.ProjectBudgetPriceInLake,
		State:                    r.State,
		Terrain:                  r.Terrain,
		DistanceFromStorageUnit:  *r.DistanceFromStorageUnit,
		TransmissionLineLengthKM: *r.TransmissionLineLengthKM,
		Location:                 r.Location,
		ProjectName:              r.ProjectName,
	}
}

// Predict computes a forecast without persisting anything.
func (h *ForecastHandler) Predict(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.Compute(req.toInput())
	if err != nil {
		if errors.Is(err, ml.ErrModelUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ML model not loaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "forecast computation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Save computes a forecast and persists it with its material lines.
// The computed numbers are identical to Predict for the same body.
func (h *ForecastHandler) Save(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, entry, err := h.svc.ComputeAndSave(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, ml.ErrModelUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ML model not loaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save forecast"})
		return
	}

	// Drop the cached history so the next read sees this forecast.
	if err := h.cache.Delete(c.Request.Context(), historyCacheKey); err != nil {
		log.Printf("history cache invalidation failed: %v", err)
	}

	go h.cache.Publish(context.Background(), forecastStreamChannel, gin.H{
		"forecastId":  entry.ID,
		"projectName": entry.ProjectName,
		"total":       result.Total,
	})

	c.JSON(http.StatusOK, gin.H{
		"forecastId":  entry.ID,
		"projectName": req.ProjectName,
		"projectType": req.ProjectType,
		"location":    req.Location,
		"region":      req.State,
		"startDate":   "",
		"endDate":     "",
		"lineLength":  *req.TransmissionLineLengthKM,
		"confidence":  90,
		"materials":   result.Materials,
		"predictions": result.Predictions,
		"subtotal":    result.Subtotal,
		"gst":         result.GST,
		"total":       result.Total,
	})
}

// History lists saved forecast summaries, newest first.
func (h *ForecastHandler) History(c *gin.Context) {
	var cached []services.ForecastSummary
	if err := h.cache.Get(c.Request.Context(), historyCacheKey, &cached); err == nil && cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	summaries, err := h.svc.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	go h.cache.Set(context.Background(), historyCacheKey, summaries, 10*time.Second)

	c.JSON(http.StatusOK, summaries)
}

// List returns the full stored forecast records.
func (h *ForecastHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Root is the liveness response for the forecast route group.
func (h *ForecastHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Forecast API OK"})
}
