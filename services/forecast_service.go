package services

import (
	"context"
	"fmt"
	"time"

	"powergrid-forecast-api/catalog"
	"powergrid-forecast-api/metrics"
	"powergrid-forecast-api/ml"
	"powergrid-forecast-api/models"

	"gorm.io/gorm"
)

// GSTRate is the fixed tax rate applied to the material subtotal.
const GSTRate = 0.18

// ForecastInput carries the seven modeling fields plus the display-only
// project name and location.
type ForecastInput struct {
	ProjectCategoryMain      string  `json:"project_category_main"`
	ProjectType              string  `json:"project_type"`
	ProjectBudgetPriceInLake float64 `json:"project_budget_price_in_lake"`
	State                    string  `json:"state"`
	Terrain                  string  `json:"terrain"`
	DistanceFromStorageUnit  float64 `json:"distance_from_storage_unit"`
	TransmissionLineLengthKM float64 `json:"transmission_line_length_km"`
	Location                 string  `json:"location"`
	ProjectName              string  `json:"project_name"`
}

// MaterialPrediction is one raw model output mapped to its material name.
type MaterialPrediction struct {
	MaterialName   string  `json:"material_name"`
	PredictedValue float64 `json:"predicted_value"`
}

// MaterialLine is one priced material: quantity is the raw prediction
// (negative values propagate unclamped), total cost = quantity * unit cost.
type MaterialLine struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitCost  float64 `json:"unitCost"`
	TotalCost float64 `json:"totalCost"`
}

// ForecastResult is the full priced forecast for one input.
type ForecastResult struct {
	Materials   []MaterialLine       `json:"materials"`
	Predictions []MaterialPrediction `json:"predictions"`
	Subtotal    float64              `json:"subtotal"`
	GST         float64              `json:"gst"`
	Total       float64              `json:"total"`
}

// ForecastSummary is the history projection of a stored forecast.
type ForecastSummary struct {
	ProjectName   string   `json:"projectName"`
	EstimatedCost *float64 `json:"estimatedCost"`
	ActualCost    *float64 `json:"actualCost"`
	Accuracy      *float64 `json:"accuracy"`
	Status        string   `json:"status"`
}

// ForecastService runs the forecast pipeline: feature record ->
// inference -> name mapping -> pricing -> rollup, with optional
// persistence of the result. The engine and catalogs are read-only
// after construction, so one service serves all requests concurrently.
type ForecastService struct {
	db     *gorm.DB
	engine *ml.Engine
	prices catalog.PriceBook
	names  catalog.IndexMap
}

func NewForecastService(db *gorm.DB, engine *ml.Engine, prices catalog.PriceBook, names catalog.IndexMap) *ForecastService {
	return &ForecastService{db: db, engine: engine, prices: prices, names: names}
}

// ModelReady reports whether the inference engine loaded at startup.
func (s *ForecastService) ModelReady() bool {
	return s.engine.Ready()
}

// Compute runs inference and pricing without touching the store.
func (s *ForecastService) Compute(input ForecastInput) (*ForecastResult, error) {
	start := time.Now()
	raw, err := s.engine.Predict(ml.ProjectFeatures{
		Category:            input.ProjectCategoryMain,
		ProjectType:         input.ProjectType,
		BudgetLakh:          input.ProjectBudgetPriceInLake,
		State:               input.State,
		Terrain:             input.Terrain,
		DistanceFromStorage: input.DistanceFromStorageUnit,
		LineLengthKM:        input.TransmissionLineLengthKM,
	})
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ForecastsFailed.Inc()
		return nil, err
	}

	result := &ForecastResult{
		Materials:   make([]MaterialLine, 0, len(raw)),
		Predictions: make([]MaterialPrediction, 0, len(raw)),
	}

	// Vector order is the only link between index and name; no resort.
	for i, v := range raw {
		name := s.names.Name(i)
		unitCost := s.prices.UnitCost(name)

		result.Predictions = append(result.Predictions, MaterialPrediction{
			MaterialName:   name,
			PredictedValue: v,
		})
		result.Materials = append(result.Materials, MaterialLine{
			Name:      name,
			Quantity:  v,
			Unit:      "units",
			UnitCost:  unitCost,
			TotalCost: v * unitCost,
		})
	}

	for _, m := range result.Materials {
		result.Subtotal += m.TotalCost
	}
	result.GST = result.Subtotal * GSTRate
	result.Total = result.Subtotal + result.GST

	metrics.ForecastsComputed.Inc()
	return result, nil
}

// ComputeAndSave computes the forecast, then persists the input
// snapshot, rollup and material lines in one transaction. The returned
// numbers are the same ones Compute would produce for this input;
// persistence never alters them.
func (s *ForecastService) ComputeAndSave(ctx context.Context, input ForecastInput) (*ForecastResult, *models.Forecast, error) {
	result, err := s.Compute(input)
	if err != nil {
		return nil, nil, err
	}

	projectName := input.ProjectName
	if projectName == "" {
		projectName = "Unknown"
	}

	confidence := 90.0
	entry := &models.Forecast{
		ProjectCategoryMain:      input.ProjectCategoryMain,
		ProjectType:              input.ProjectType,
		ProjectBudgetPriceInLake: input.ProjectBudgetPriceInLake,
		State:                    input.State,
		Terrain:                  input.Terrain,
		DistanceFromStorageUnit:  input.DistanceFromStorageUnit,
		TransmissionLineLengthKM: input.TransmissionLineLengthKM,
		ProjectName:              projectName,
		Location:                 input.Location,
		Confidence:               &confidence,
		Status:                   "Active",
		Budget:                   &input.ProjectBudgetPriceInLake,
		Total:                    &result.Total,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Parent first so the children can reference its id.
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		for _, m := range result.Materials {
			line := models.ForecastMaterial{
				ForecastID:   entry.ID,
				MaterialName: m.Name,
				PredictedQty: m.Quantity,
				Unit:         m.Unit,
				UnitCost:     m.UnitCost,
				TotalCost:    m.TotalCost,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		metrics.ForecastsFailed.Inc()
		return nil, nil, fmt.Errorf("save forecast: %w", err)
	}

	metrics.ForecastsSaved.Inc()
	return result, entry, nil
}

// History returns stored forecasts projected to summaries, newest first.
func (s *ForecastService) History(ctx context.Context) ([]ForecastSummary, error) {
	var rows []models.Forecast
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]ForecastSummary, 0, len(rows))
	for _, f := range rows {
		summaries = append(summaries, ForecastSummary{
			ProjectName:   f.ProjectName,
			EstimatedCost: f.Total,
			ActualCost:    f.Budget,
			Accuracy:      f.Accuracy,
			Status:        f.Status,
		})
	}
	return summaries, nil
}

// List returns full stored forecast records in insertion order.
func (s *ForecastService) List(ctx context.Context) ([]models.Forecast, error) {
	var rows []models.Forecast
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
