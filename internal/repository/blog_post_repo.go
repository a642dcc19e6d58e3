package repository

import (
	"context"

	"github.com/tourvista/tourism-backend/internal/domain"
	"gorm.io/gorm"
)

// BlogPostRepository defines read access to blog posts used by search
type BlogPostRepository interface {
	// FindBySubstring returns published posts whose title or body
	// matches pattern, newest first, at most limit rows.
	FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.BlogPost, error)
}

type blogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new BlogPostRepository
func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.BlogPost, error) {
	var posts []*domain.BlogPost

	err := substringQuery(r.db.WithContext(ctx), "title", "content", pattern, limit).
		Where("status = ?", domain.BlogPostStatusPublished).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}
