// Package housekeeping prunes day records that have aged out of the retention window.
package housekeeping

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Pruner deletes stored days before a cutoff.
type Pruner interface {
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}

// Scheduler wraps a gocron scheduler running the daily retention prune.
type Scheduler struct {
	scheduler     gocron.Scheduler
	pruner        Pruner
	retentionDays int
	now           func() time.Time
	logger        zerolog.Logger
}

// NewScheduler creates a retention scheduler. A retention of zero days disables pruning.
func NewScheduler(pruner Pruner, retentionDays int, logger zerolog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		scheduler:     s,
		pruner:        pruner,
		retentionDays: retentionDays,
		now:           time.Now,
		logger:        logger.With().Str("component", "housekeeping").Logger(),
	}, nil
}

// Start prunes once immediately and then every day shortly after midnight.
func (s *Scheduler) Start() error {
	if s.retentionDays <= 0 {
		s.logger.Info().Msg("Retention pruning disabled")
		return nil
	}

	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(s.Run, context.Background()),
		gocron.WithName("retention-prune"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create retention job: %w", err)
	}

	s.scheduler.Start()
	s.logger.Info().Int("retention_days", s.retentionDays).Msg("Retention scheduler started")
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

// Run deletes days older than the retention window.
func (s *Scheduler) Run(ctx context.Context) {
	if s.retentionDays <= 0 {
		return
	}
	cutoff := s.now().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.pruner.Prune(ctx, cutoff)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to prune old days")
		return
	}
	s.logger.Info().
		Int("days_deleted", deleted).
		Str("cutoff_date", cutoff.UTC().Format("2006-01-02")).
		Msg("Retention prune complete")
}
