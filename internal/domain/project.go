package domain

import (
	"time"
)

// Project is a showcase entry (community or conservation project)
// Table: projects
type Project struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ImageURL    *string   `gorm:"column:image_url;type:varchar(500)" json:"image_url,omitempty"`
	Location    string    `gorm:"column:location;type:varchar(255)" json:"location"`
	IsActive    bool      `gorm:"column:is_active;not null;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
