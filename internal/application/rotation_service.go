package application

import (
	"context"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"go.uber.org/zap"
)

// SessionRunner performs one generation attempt for one profile.
type SessionRunner interface {
	RunSession(ctx context.Context, profile domain.Profile) domain.Outcome
}

type Attempt struct {
	Profile domain.Profile
	Outcome domain.Outcome
}

type RunSummary struct {
	Attempts []Attempt
	// Winner is the profile that produced a video, empty when none did.
	Winner      domain.Profile
	Interrupted bool
}

func (s RunSummary) Succeeded() bool {
	return s.Winner != ""
}

// RotationService walks profiles in order, one session at a time, and stops at
// the first success. Failures are logged and never returned.
type RotationService struct {
	runner SessionRunner
	logger *zap.Logger
}

func NewRotationService(runner SessionRunner, logger *zap.Logger) *RotationService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RotationService{runner: runner, logger: logger}
}

func (s *RotationService) Run(ctx context.Context, profiles []domain.Profile) RunSummary {
	summary := RunSummary{Attempts: make([]Attempt, 0, len(profiles))}

	for _, profile := range profiles {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("Rotation interrupted", zap.Int("attempted", len(summary.Attempts)), zap.Error(err))
			summary.Interrupted = true
			return summary
		}

		logger := s.logger.With(zap.String("profile", string(profile)))
		logger.Info("Attempting with profile")

		outcome := s.runner.RunSession(ctx, profile)
		summary.Attempts = append(summary.Attempts, Attempt{Profile: profile, Outcome: outcome})

		switch outcome.Kind {
		case domain.OutcomeSuccess:
			logger.Info("Successfully generated video with profile", zap.String("artifact", outcome.Artifact))
			summary.Winner = profile
			return summary
		case domain.OutcomeRecoverable:
			fields := []zap.Field{zap.String("reason", string(outcome.Reason))}
			if outcome.Detail != "" {
				fields = append(fields, zap.String("detail", outcome.Detail))
			}
			logger.Warn("Failed with profile", fields...)
		default:
			logger.Error("Fatal error with profile", zap.String("detail", outcome.Detail))
		}
	}

	if len(profiles) > 0 {
		s.logger.Warn("No profile produced a video", zap.Int("attempted", len(summary.Attempts)))
	}

	return summary
}
