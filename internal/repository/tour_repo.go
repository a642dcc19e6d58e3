package repository

import (
	"context"

	"github.com/tourvista/tourism-backend/internal/domain"
	"gorm.io/gorm"
)

// TourRepository defines read access to tours used by search
type TourRepository interface {
	// FindBySubstring returns active tours whose title or description
	// matches pattern, newest first, at most limit rows.
	FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.Tour, error)
}

// tourRepository implements TourRepository with GORM
type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a new TourRepository
func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.Tour, error) {
	var tours []*domain.Tour

	err := substringQuery(r.db.WithContext(ctx), "title", "description", pattern, limit).
		Where("is_active = ?", true).
		Find(&tours).Error
	if err != nil {
		return nil, err
	}

	return tours, nil
}
