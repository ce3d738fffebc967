package cron

import (
	"Chronicle/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	postPurgeJob *job.PostPurgeJob
}

func NewCronManager(postPurgeJob *job.PostPurgeJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		postPurgeJob: postPurgeJob,
	}
}

// RegisterJobs registers the scheduled jobs.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.postPurgeJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
