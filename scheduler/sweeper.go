package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"confgive/repository"
)

// AttemptSweeper periodically fails attempts that never reached settlement,
// so the audit log does not accumulate dangling form-state rows.
type AttemptSweeper struct {
	cron   *cron.Cron
	maxAge time.Duration
}

func NewAttemptSweeper() *AttemptSweeper {
	return &AttemptSweeper{
		cron:   cron.New(),
		maxAge: 15 * time.Minute,
	}
}

// Start schedules the sweep every ten minutes.
func (s *AttemptSweeper) Start() {
	entryID, err := s.cron.AddFunc("*/10 * * * *", func() {
		s.sweep()
	})
	if err != nil {
		log.Printf("Error scheduling attempt sweeper: %v", err)
		return
	}

	log.Printf("Attempt sweeper started with entry ID: %d", entryID)
	s.cron.Start()
}

// Stop halts the scheduler.
func (s *AttemptSweeper) Stop() {
	s.cron.Stop()
}

func (s *AttemptSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	swept, err := repository.MarkStalePendingAttempts(ctx, s.maxAge)
	if err != nil {
		log.Println("attempt sweep failed:", err)
		return
	}
	if swept > 0 {
		log.Printf("attempt sweep: marked %d stale attempts failed", swept)
	}
}
