package models

import "time"

type Project struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID        uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProjectName   string    `gorm:"column:project_name;not null" json:"project_name"`
	ProjectBudget float64   `gorm:"column:project_budget;not null" json:"project_budget"`
	Location      string    `gorm:"column:location;not null" json:"location"`
	Category      string    `gorm:"column:category;not null" json:"category"`
	TowerType     *string   `gorm:"column:tower_type" json:"tower_type"`
	Terrain       *string   `gorm:"column:terrain" json:"terrain"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Project) TableName() string { return "projects" }
