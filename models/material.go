package models

type Material struct {
	ID           uint    `gorm:"column:id;primaryKey" json:"id"`
	ProjectID    uint    `gorm:"column:project_id;not null;index" json:"project_id"`
	MaterialName string  `gorm:"column:material_name;not null" json:"material_name"`
	Quantity     float64 `gorm:"column:quantity;not null" json:"quantity"`
	Cost         float64 `gorm:"column:cost;not null" json:"cost"`
}

func (Material) TableName() string { return "materials" }
