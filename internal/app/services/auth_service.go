package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/auth"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/email"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/validation"
)

// passwordResetTokenTTL bounds how long a reset link stays valid.
const passwordResetTokenTTL = 1 * time.Hour

// AuthService handles authentication operations
type AuthService struct {
	userRepo      *repositories.UserRepository
	tokenRepo     *repositories.TokenRepository
	resetRepo     *repositories.PasswordResetTokenRepository
	instituteRepo *repositories.InstituteRepository
	jwtService    *auth.JWTService
	emailService  email.EmailService
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	resetRepo *repositories.PasswordResetTokenRepository,
	instituteRepo *repositories.InstituteRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		resetRepo:     resetRepo,
		instituteRepo: instituteRepo,
		jwtService:    jwtService,
		emailService:  emailService,
		logger:        logger,
	}
}

// Register creates a new student or teacher account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidEmail(emailAddr) {
		return nil, apperrors.NewValidationError("invalid email format").WithField("email")
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength)).WithField("password")
	}

	role := models.RoleType(req.RoleType)
	if role != models.RoleStudent && role != models.RoleTeacher {
		return nil, apperrors.NewValidationError("role must be STUDENT or TEACHER").WithField("roleType")
	}

	if req.InstituteID != nil {
		if _, err := s.instituteRepo.GetInstituteByID(ctx, *req.InstituteID); err != nil {
			return nil, err
		}
	}

	exists, err := s.userRepo.EmailExists(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       emailAddr,
		Password:    hashed,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		RoleType:    role,
		InstituteID: req.InstituteID,
		IsActive:    true,
	}

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.RoleType)).Msg("User registered")

	if err := s.emailService.SendWelcomeEmail(user.Email, user.FullName()); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}
	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// do not leak whether the account exists
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to stamp last login")
	}
	return tokens, user, nil
}

// RefreshToken rotates a refresh token into a fresh token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// single-use rotation: the presented token dies here
	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.InstituteID != nil {
		institute, err := s.instituteRepo.GetInstituteByID(ctx, *user.InstituteID)
		if err == nil {
			user.Institute = institute
		}
	}
	return user, nil
}

// ForgotPassword issues a password reset token and mails the link.
// Unknown emails succeed silently so the endpoint cannot be used to
// probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		s.logger.Debug().Str("email", emailAddr).Msg("Password reset requested for unknown email")
		return nil
	}

	if err := s.resetRepo.InvalidateUserTokens(ctx, user.ID); err != nil {
		return err
	}

	token := uuid.New().String()
	if err := s.resetRepo.CreateToken(ctx, user.ID, token, time.Now().Add(passwordResetTokenTTL)); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.FullName(), token); err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to send password reset email")
		return err
	}
	return nil
}

// ResetPassword consumes a reset token and sets the new password.
// All refresh tokens of the user are revoked afterwards.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if !validation.IsValidPassword(newPassword) {
		return apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength)).WithField("newPassword")
	}

	userID, err := s.resetRepo.GetTokenInfo(ctx, token)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}
	if err := s.resetRepo.MarkTokenUsed(ctx, token); err != nil {
		return err
	}
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to revoke refresh tokens after password reset")
	}

	s.logger.Info().Int64("userId", userID).Msg("Password reset completed")
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.SaveRefreshToken(ctx, user.ID, refreshToken, expiry); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
