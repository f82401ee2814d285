package cron

import (
	"Inkwell/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// Manager 持有调度引擎与全部定时任务
type Manager struct {
	engine      *cron.Cron
	viewSyncJob *job.ViewSyncJob
}

func NewCronManager(viewSyncJob *job.ViewSyncJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		viewSyncJob: viewSyncJob,
	}
}

// Start 注册全部任务并启动调度引擎
func (s *Manager) Start() error {
	if _, err := s.engine.AddJob("@every 1m", s.viewSyncJob); err != nil {
		return err
	}
	s.engine.Start()
	log.Info("cron engine started", "jobs", len(s.engine.Entries()))
	return nil
}

func (s *Manager) Stop() {
	s.engine.Stop()
	log.Info("cron engine stopped")
}
