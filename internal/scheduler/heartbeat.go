// Package scheduler runs the periodic liveness log. The heartbeat makes
// silent hangs visible in hosted logs where no traffic arrives for hours.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type Heartbeat struct {
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
	startedAt time.Time
}

func NewHeartbeat(schedule string) *Heartbeat {
	return &Heartbeat{
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins emitting heartbeat log lines on the configured schedule.
func (h *Heartbeat) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.isRunning {
		return nil
	}

	entryID, err := h.cron.AddFunc(h.schedule, h.beat)
	if err != nil {
		return fmt.Errorf("invalid heartbeat schedule '%s': %w", h.schedule, err)
	}
	h.entryID = entryID
	h.startedAt = time.Now()

	h.cron.Start()
	h.isRunning = true

	log.Printf("Heartbeat: started with schedule '%s'", h.schedule)
	return nil
}

// Stop halts the heartbeat and waits for an in-flight beat to finish.
func (h *Heartbeat) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.isRunning {
		return
	}

	ctx := h.cron.Stop()
	<-ctx.Done()
	h.isRunning = false

	log.Printf("Heartbeat: stopped")
}

// IsRunning returns whether the heartbeat is active.
func (h *Heartbeat) IsRunning() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.isRunning
}

func (h *Heartbeat) beat() {
	log.Printf("Heartbeat: bot alive, uptime %s", time.Since(h.startedAt).Round(time.Second))
}
