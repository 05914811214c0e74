package services

import (
	"context"
	"sync"
	"time"

	"atlas_inventory_server/config"
	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/events"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/colors"

	"gorm.io/gorm"
)

// WatchdogService is the heartbeat watchdog: a background loop that
// demotes elements that stopped reporting. Each sweep is one set-based
// conditional UPDATE, so an element refreshing its heartbeat
// concurrently simply falls outside the staleness predicate.
type WatchdogService struct {
	staleness time.Duration
	interval  time.Duration

	stop     chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// NewWatchdogService creates a watchdog from configuration
func NewWatchdogService(cfg *config.WatchdogConfig) *WatchdogService {
	return &WatchdogService{
		staleness: cfg.Staleness,
		interval:  cfg.Interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the watchdog loop in its own goroutine. The loop runs
// until Stop is called or the context is cancelled; a failed sweep is
// logged and the next one proceeds on schedule.
func (w *WatchdogService) Start(ctx context.Context) {
	colors.PrintWatchdog("Heartbeat watchdog started (staleness %s, interval %s)", w.staleness, w.interval)
	w.started = true

	go func() {
		defer close(w.done)

		// elements already stale at startup are demoted right away,
		// not one interval later
		w.sweep()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				colors.PrintWatchdog("Heartbeat watchdog stopped: %v", ctx.Err())
				return
			case <-w.stop:
				colors.PrintWatchdog("Heartbeat watchdog stopped")
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

// sweep runs one demotion pass, logging failures without ending the loop
func (w *WatchdogService) sweep() {
	demoted, err := w.SweepOnce(db.GetDB())
	if err != nil {
		colors.PrintError("Watchdog sweep failed: %v", err)
		return
	}
	if demoted > 0 {
		colors.PrintWatchdog("Demoted %d stale element(s) to DETACHED", demoted)
		if events.WSHub != nil {
			events.WSHub.BroadcastWatchdogSweep(demoted)
		}
	}
}

// Stop requests cooperative shutdown and waits for the loop to exit. A
// watchdog that was never started stops immediately.
func (w *WatchdogService) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	if !w.started {
		return
	}
	<-w.done
}

// SweepOnce transitions every UP element whose heartbeat timestamp is
// older than the staleness threshold to DETACHED, in a single
// conditional UPDATE. Returns the number of demoted elements.
func (w *WatchdogService) SweepOnce(tx *gorm.DB) (int64, error) {
	cutoff := time.Now().Add(-w.staleness)

	result := tx.Model(&models.Element{}).
		Where("oper_state = ? AND last_modified < ?", models.OperStateUp, cutoff).
		Updates(map[string]interface{}{
			"oper_state": models.OperStateDetached,
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
