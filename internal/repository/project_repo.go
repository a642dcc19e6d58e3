package repository

import (
	"context"

	"github.com/tourvista/tourism-backend/internal/domain"
	"gorm.io/gorm"
)

// ProjectRepository defines read access to projects used by search
type ProjectRepository interface {
	FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.Project, error) {
	var projects []*domain.Project

	err := substringQuery(r.db.WithContext(ctx), "title", "description", pattern, limit).
		Where("is_active = ?", true).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}
