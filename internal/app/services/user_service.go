package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

// UserService handles profile and admin user-management operations
type UserService struct {
	userRepo  *repositories.UserRepository
	tokenRepo *repositories.TokenRepository
	logger    zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, tokenRepo *repositories.TokenRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// ListUsers returns users filtered by role and institute, paginated
func (s *UserService) ListUsers(ctx context.Context, roleType *models.RoleType, instituteID *int64, page, pageSize int) ([]*models.User, int64, error) {
	return s.userRepo.ListUsers(ctx, roleType, instituteID, page, pageSize)
}

// GetUser returns a single user
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

// UpdateProfile updates the authenticated user's own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingField, "first name is required").WithField("firstName")
	}
	if lastName == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingField, "last name is required").WithField("lastName")
	}

	user.FirstName = firstName
	user.LastName = lastName
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetProfilePhoto stores the URL of an uploaded profile photo
func (s *UserService) SetProfilePhoto(ctx context.Context, userID int64, photoURL string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.ProfilePhotoURL = &photoURL
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole changes a user's role. Admins cannot demote themselves,
// which would lock the last admin out of user management.
func (s *UserService) UpdateRole(ctx context.Context, targetID int64, roleType models.RoleType, actorID int64) (*models.User, error) {
	if targetID == actorID {
		return nil, apperrors.NewForbiddenError("cannot change your own role")
	}
	if !roleType.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRange, "unknown role").WithField("roleType")
	}

	if err := s.userRepo.UpdateRole(ctx, targetID, roleType); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", targetID).Str("role", string(roleType)).Msg("User role changed")
	return s.userRepo.GetUserByID(ctx, targetID)
}

// SetActive enables or disables a user account. Disabling revokes the
// user's refresh tokens so open sessions die at access-token expiry.
func (s *UserService) SetActive(ctx context.Context, targetID int64, active bool, actorID int64) error {
	if targetID == actorID {
		return apperrors.NewForbiddenError("cannot disable your own account")
	}
	if err := s.userRepo.SetActive(ctx, targetID, active); err != nil {
		return err
	}
	if !active {
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, targetID); err != nil {
			s.logger.Warn().Err(err).Int64("userId", targetID).Msg("Failed to revoke tokens of disabled user")
		}
	}
	return nil
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(ctx context.Context, targetID int64, actorID int64) error {
	if targetID == actorID {
		return apperrors.NewForbiddenError("cannot delete your own account")
	}
	if err := s.userRepo.DeleteUser(ctx, targetID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", targetID).Msg("User deleted")
	return nil
}
