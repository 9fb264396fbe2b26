package services

import (
	"context"
	"strings"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

// TechnologyService handles technology tag operations
type TechnologyService struct {
	technologyRepo *repositories.TechnologyRepository
}

// NewTechnologyService creates a new technology service instance
func NewTechnologyService(technologyRepo *repositories.TechnologyRepository) *TechnologyService {
	return &TechnologyService{technologyRepo: technologyRepo}
}

// ListTechnologies returns every technology tag
func (s *TechnologyService) ListTechnologies(ctx context.Context) ([]*models.Technology, error) {
	return s.technologyRepo.ListTechnologies(ctx)
}

// GetTechnology returns a single technology tag
func (s *TechnologyService) GetTechnology(ctx context.Context, id int64) (*models.Technology, error) {
	return s.technologyRepo.GetTechnologyByID(ctx, id)
}

// CreateTechnology adds a new technology tag
func (s *TechnologyService) CreateTechnology(ctx context.Context, req *dto.CreateTechnologyRequest) (*models.Technology, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingField, "name is required").WithField("name")
	}

	tech := &models.Technology{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	return s.technologyRepo.CreateTechnology(ctx, tech)
}

// UpdateTechnology renames a technology tag
func (s *TechnologyService) UpdateTechnology(ctx context.Context, id int64, req *dto.UpdateTechnologyRequest) (*models.Technology, error) {
	tech, err := s.technologyRepo.GetTechnologyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingField, "name is required").WithField("name")
	}

	tech.Name = name
	tech.Description = strings.TrimSpace(req.Description)
	if err := s.technologyRepo.UpdateTechnology(ctx, tech); err != nil {
		return nil, err
	}
	return tech, nil
}

// DeleteTechnology removes a technology tag and its course links
func (s *TechnologyService) DeleteTechnology(ctx context.Context, id int64) error {
	return s.technologyRepo.DeleteTechnology(ctx, id)
}
