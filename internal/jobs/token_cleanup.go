// Package jobs hosts background maintenance tasks driven by cron schedules.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
)

// TokenCleanupJob periodically purges expired refresh tokens and
// password reset tokens so the auth tables do not grow unbounded.
type TokenCleanupJob struct {
	tokenRepo *repositories.TokenRepository
	resetRepo *repositories.PasswordResetTokenRepository
	logger    zerolog.Logger
	cron      *cron.Cron
}

// NewTokenCleanupJob creates a cleanup job, not yet started.
func NewTokenCleanupJob(
	tokenRepo *repositories.TokenRepository,
	resetRepo *repositories.PasswordResetTokenRepository,
	logger zerolog.Logger,
) *TokenCleanupJob {
	return &TokenCleanupJob{
		tokenRepo: tokenRepo,
		resetRepo: resetRepo,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start registers the job under the given cron schedule and starts the scheduler.
func (j *TokenCleanupJob) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info().Str("schedule", schedule).Msg("Token cleanup job scheduled")
	return nil
}

// Stop halts the scheduler, waiting for a running invocation to finish.
func (j *TokenCleanupJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// Run executes a single cleanup pass.
func (j *TokenCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	refreshDeleted, err := j.tokenRepo.DeleteExpiredTokens(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("Failed to purge expired refresh tokens")
	}

	resetDeleted, err := j.resetRepo.DeleteExpiredTokens(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("Failed to purge expired password reset tokens")
	}

	j.logger.Info().
		Int64("refreshTokens", refreshDeleted).
		Int64("resetTokens", resetDeleted).
		Msg("Expired token cleanup complete")
}
