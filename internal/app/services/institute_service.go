package services

import (
	"context"
	"strings"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

// InstituteService handles institute operations
type InstituteService struct {
	instituteRepo *repositories.InstituteRepository
}

// NewInstituteService creates a new institute service instance
func NewInstituteService(instituteRepo *repositories.InstituteRepository) *InstituteService {
	return &InstituteService{instituteRepo: instituteRepo}
}

func validateInstitute(name, code string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewCustomError(apperrors.ErrMissingField, "name is required").WithField("name")
	}
	if strings.TrimSpace(code) == "" {
		return apperrors.NewCustomError(apperrors.ErrMissingField, "code is required").WithField("code")
	}
	// institute codes are short uppercase identifiers
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return apperrors.NewCustomError(apperrors.ErrInvalidRange, "code must be uppercase letters and digits").WithField("code")
		}
	}
	return nil
}

// ListInstitutes returns institutes with optional name search, paginated
func (s *InstituteService) ListInstitutes(ctx context.Context, nameQuery string, page, pageSize int) ([]*models.Institute, int64, error) {
	return s.instituteRepo.ListInstitutes(ctx, strings.TrimSpace(nameQuery), page, pageSize)
}

// GetInstitute returns a single institute
func (s *InstituteService) GetInstitute(ctx context.Context, id int64) (*models.Institute, error) {
	return s.instituteRepo.GetInstituteByID(ctx, id)
}

// CreateInstitute adds a new institute
func (s *InstituteService) CreateInstitute(ctx context.Context, req *dto.CreateInstituteRequest) (*models.Institute, error) {
	if err := validateInstitute(req.Name, req.Code); err != nil {
		return nil, err
	}

	institute := &models.Institute{
		Name:    strings.TrimSpace(req.Name),
		Code:    strings.TrimSpace(req.Code),
		Address: strings.TrimSpace(req.Address),
		Phone:   req.Phone,
	}
	return s.instituteRepo.CreateInstitute(ctx, institute)
}

// UpdateInstitute modifies an existing institute
func (s *InstituteService) UpdateInstitute(ctx context.Context, id int64, req *dto.UpdateInstituteRequest) (*models.Institute, error) {
	institute, err := s.instituteRepo.GetInstituteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateInstitute(req.Name, req.Code); err != nil {
		return nil, err
	}

	institute.Name = strings.TrimSpace(req.Name)
	institute.Code = strings.TrimSpace(req.Code)
	institute.Address = strings.TrimSpace(req.Address)
	institute.Phone = req.Phone

	if err := s.instituteRepo.UpdateInstitute(ctx, institute); err != nil {
		return nil, err
	}
	return institute, nil
}

// DeleteInstitute removes an institute that has no users or courses
func (s *InstituteService) DeleteInstitute(ctx context.Context, id int64) error {
	return s.instituteRepo.DeleteInstitute(ctx, id)
}
