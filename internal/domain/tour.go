package domain

import (
	"time"
)

// Tour is a bookable tour package
// Table: tours
type Tour struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug         string    `gorm:"column:slug;type:varchar(255);uniqueIndex" json:"slug"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Category     *string   `gorm:"column:category;type:varchar(100);index" json:"category,omitempty"`
	ImageURL     *string   `gorm:"column:image_url;type:varchar(500)" json:"image_url,omitempty"`
	DurationDays int       `gorm:"column:duration_days;default:1" json:"duration_days"`
	Price        float64   `gorm:"column:price;type:decimal(10,2);default:0" json:"price"`
	IsActive     bool      `gorm:"column:is_active;not null;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Tour) TableName() string { return "tours" }
