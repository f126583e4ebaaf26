package services

import "github.com/escolar/escolar-backend/internal/app/models"

// GradeService serves the static grade catalog
type GradeService struct{}

// NewGradeService creates a new grade service instance
func NewGradeService() *GradeService {
	return &GradeService{}
}

// List returns every grade with its sections.
func (s *GradeService) List() []models.Grade {
	return models.GradeCatalog
}
