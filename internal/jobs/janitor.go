package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"prepmate/server/internal/repositories"
)

// JanitorJob periodically removes interviews that were created but never got
// questions and were never completed, i.e. users who bailed out of the setup
// screen.
type JanitorJob struct {
	interviews *repositories.InterviewRepository
	logger     *zap.Logger
	config     *JanitorConfig
	cron       *cron.Cron
}

// JanitorConfig contains configuration for the janitor job
type JanitorConfig struct {
	Schedule string        // Cron schedule (e.g., "0 3 * * *" for 3 AM daily)
	MaxAge   time.Duration // How old an abandoned interview must be before removal
	Enabled  bool
}

func NewJanitorJob(interviews *repositories.InterviewRepository, logger *zap.Logger, config *JanitorConfig) *JanitorJob {
	return &JanitorJob{
		interviews: interviews,
		logger:     logger,
		config:     config,
		cron:       cron.New(),
	}
}

// Start begins the scheduled cleanup job
func (j *JanitorJob) Start() error {
	if !j.config.Enabled {
		j.logger.Info("janitor is disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunOnce(); err != nil {
			j.logger.Error("janitor run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule janitor job: %w", err)
	}

	j.cron.Start()
	j.logger.Info("janitor started", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop stops the scheduled cleanup job
func (j *JanitorJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunOnce performs a single cleanup pass.
func (j *JanitorJob) RunOnce() error {
	cutoff := time.Now().Add(-j.config.MaxAge)
	removed, err := j.interviews.DeleteAbandonedBefore(cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune abandoned interviews: %w", err)
	}
	if removed > 0 {
		j.logger.Info("pruned abandoned interviews",
			zap.Int64("removed", removed),
			zap.Time("cutoff", cutoff))
	}
	return nil
}
