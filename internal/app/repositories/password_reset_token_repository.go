package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

// PasswordResetTokenRepository handles database operations for password reset tokens
type PasswordResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewPasswordResetTokenRepository creates a new password reset token repository
func NewPasswordResetTokenRepository(db *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: db}
}

// CreateToken stores a password reset token for a user
func (r *PasswordResetTokenRepository) CreateToken(ctx context.Context, userID int64, token string, expiryDate time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (user_id, token, expiry_date, used, created_at)
		VALUES ($1, $2, $3, false, NOW())`

	_, err := r.db.Exec(ctx, query, userID, token, expiryDate)
	return err
}

// GetTokenInfo validates a reset token and returns the owning user ID
func (r *PasswordResetTokenRepository) GetTokenInfo(ctx context.Context, token string) (int64, error) {
	query := `
		SELECT user_id, expiry_date, used
		FROM password_reset_tokens
		WHERE token = $1`

	var userID int64
	var expiryDate time.Time
	var used bool
	err := r.db.QueryRow(ctx, query, token).Scan(&userID, &expiryDate, &used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrInvalidPasswordResetToken
		}
		return 0, err
	}

	if used {
		return 0, apperrors.ErrPasswordResetTokenUsed
	}
	if time.Now().After(expiryDate) {
		return 0, apperrors.ErrInvalidPasswordResetToken
	}
	return userID, nil
}

// MarkTokenUsed marks a reset token as consumed
func (r *PasswordResetTokenRepository) MarkTokenUsed(ctx context.Context, token string) error {
	tag, err := r.db.Exec(ctx, "UPDATE password_reset_tokens SET used = true WHERE token = $1", token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidPasswordResetToken
	}
	return nil
}

// InvalidateUserTokens marks all outstanding reset tokens of a user as used
func (r *PasswordResetTokenRepository) InvalidateUserTokens(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, "UPDATE password_reset_tokens SET used = true WHERE user_id = $1 AND used = false", userID)
	return err
}

// DeleteExpiredTokens removes reset tokens past their expiry, returning the count
func (r *PasswordResetTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM password_reset_tokens WHERE expiry_date < NOW()")
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
