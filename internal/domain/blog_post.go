package domain

import (
	"time"
)

// Blog post statuses
const (
	BlogPostStatusDraft     = "draft"
	BlogPostStatusPublished = "published"
)

// BlogPost is an article of the site blog. Content holds HTML.
// Table: blog_posts
type BlogPost struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug          string    `gorm:"column:slug;type:varchar(255);uniqueIndex" json:"slug"`
	Content       string    `gorm:"column:content;type:mediumtext" json:"content"`
	CoverImageURL *string   `gorm:"column:cover_image_url;type:varchar(500)" json:"cover_image_url,omitempty"`
	Author        string    `gorm:"column:author;type:varchar(100)" json:"author"`
	Status        string    `gorm:"column:status;type:varchar(20);default:'published';index" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }
