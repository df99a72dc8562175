package snapshot

import (
	"ad-ledger/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Target is a store that can persist itself to a file
type Target interface {
	SaveSnapshot(path string) error
}

// CronScheduler periodically saves a Target to disk
type CronScheduler struct {
	cron     *cron.Cron
	target   Target
	path     string
	schedule string

	mu       sync.Mutex // serializes saves
	lastSave time.Time
	started  bool
}

// NewCronScheduler validates the cron schedule (standard 5-field expression or descriptors like "@every 30s")
func NewCronScheduler(target Target, path, schedule string) (*CronScheduler, error) {
	if target == nil {
		return nil, errors.New("snapshot: nil target")
	}
	if path == "" {
		return nil, errors.New("snapshot: empty path")
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("snapshot: invalid schedule %q: %w", schedule, err)
	}

	return &CronScheduler{
		cron:     cron.New(),
		target:   target,
		path:     path,
		schedule: schedule,
	}, nil
}

func (s *CronScheduler) Start() error {
	utils.Info("Starting snapshot scheduler", map[string]any{"path": s.path, "schedule": s.schedule})

	if _, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.SaveNow(); err != nil {
			utils.Error("snapshot: scheduled save failed", map[string]any{"path": s.path, "error": err.Error()})
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.started = true
	return nil
}

// Stop halts the schedule and always writes a final snapshot. ctx only bounds the wait
// for the scheduler to drain; SaveNow is serialized with any save still running.
func (s *CronScheduler) Stop(ctx context.Context) error {
	utils.Info("Stopping snapshot scheduler", map[string]any{"path": s.path})

	if s.started {
		select {
		case <-s.cron.Stop().Done():
		case <-ctx.Done():
			utils.Warn("snapshot: scheduler did not drain before deadline", map[string]any{
				"path":  s.path,
				"error": ctx.Err().Error(),
			})
		}
	}
	return s.SaveNow()
}

// SaveNow writes a snapshot immediately
func (s *CronScheduler) SaveNow() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if err := s.target.SaveSnapshot(s.path); err != nil {
		return err
	}
	s.lastSave = time.Now()

	utils.Debug("snapshot saved", map[string]any{"path": s.path, "duration": time.Since(start).String()})
	return nil
}

// LastSave returns when the last snapshot completed; zero if none has
func (s *CronScheduler) LastSave() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSave
}
