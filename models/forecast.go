package models

import "time"

// Forecast is one saved prediction run: the modeling input snapshot,
// the cost rollup and the priced material breakdown. Rows are written
// once at save time; only the out-of-band reconciliation process fills
// ActualQty and Accuracy later.
type Forecast struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	// The seven modeling inputs, snapshotted at save time.
	ProjectCategoryMain      string  `gorm:"column:project_category_main;not null" json:"project_category_main"`
	ProjectType              string  `gorm:"column:project_type;not null" json:"project_type"`
	ProjectBudgetPriceInLake float64 `gorm:"column:project_budget_price_in_lake;not null" json:"project_budget_price_in_lake"`
	State                    string  `gorm:"column:state;not null" json:"state"`
	Terrain                  string  `gorm:"column:terrain;not null" json:"terrain"`
	DistanceFromStorageUnit  float64 `gorm:"column:distance_from_storage_unit;not null" json:"distance_from_storage_unit"`
	TransmissionLineLengthKM float64 `gorm:"column:transmission_line_length_km;not null" json:"transmission_line_length_km"`

	// Display-only
	ProjectName string `gorm:"column:project_name;not null" json:"project_name"`
	Location    string `gorm:"column:location;not null" json:"location"`

	Confidence *float64 `gorm:"column:confidence;default:90" json:"confidence"`
	Status     string   `gorm:"column:status;default:Active" json:"status"`
	ActualQty  *float64 `gorm:"column:actual_qty" json:"actual_qty"`
	Accuracy   *float64 `gorm:"column:accuracy" json:"accuracy"`

	Budget *float64 `gorm:"column:budget" json:"budget"`
	Total  *float64 `gorm:"column:total" json:"total"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Materials []ForecastMaterial `gorm:"foreignKey:ForecastID;constraint:OnDelete:CASCADE" json:"materials,omitempty"`
}

func (Forecast) TableName() string { return "forecasts" }

// ForecastMaterial is one priced material line owned by a Forecast.
type ForecastMaterial struct {
	ID           uint    `gorm:"column:id;primaryKey" json:"id"`
	ForecastID   uint    `gorm:"column:forecast_id;not null;index" json:"forecast_id"`
	MaterialName string  `gorm:"column:material_name;not null" json:"material_name"`
	PredictedQty float64 `gorm:"column:predicted_qty;not null" json:"predicted_qty"`
	Unit         string  `gorm:"column:unit;default:units" json:"unit"`
	UnitCost     float64 `gorm:"column:unit_cost" json:"unit_cost"`
	TotalCost    float64 `gorm:"column:total_cost" json:"total_cost"`
}

func (ForecastMaterial) TableName() string { return "forecast_materials" }
