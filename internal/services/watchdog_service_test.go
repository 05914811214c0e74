package services

import (
	"context"
	"testing"
	"time"

	"atlas_inventory_server/config"
	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatchdog() *WatchdogService {
	return NewWatchdogService(&config.WatchdogConfig{
		Staleness: 180 * time.Second,
		Interval:  time.Minute,
	})
}

// backdate rewrites the heartbeat timestamp, bypassing the lifecycle
// service so the element looks stale
func backdate(t *testing.T, element *models.Element, age time.Duration) {
	t.Helper()
	err := db.GetDB().Model(&models.Element{}).
		Where("id = ?", element.ID).
		Update("last_modified", time.Now().Add(-age)).Error
	require.NoError(t, err)
}

func TestSweepOnceDemotesStaleElements(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	elementService := NewElementService()
	watchdog := newTestWatchdog()

	stale := seedElement(t, fixture, nil)
	fresh := seedElement(t, fixture, nil)
	require.NoError(t, elementService.RecordHeartbeat(stale.ElementID))
	require.NoError(t, elementService.RecordHeartbeat(fresh.ElementID))

	// one element just past the threshold, one well inside it
	backdate(t, stale, 181*time.Second)
	backdate(t, fresh, 10*time.Second)

	demoted, err := watchdog.SweepOnce(db.GetDB())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, demoted, int64(1))

	var staleRow, freshRow models.Element
	require.NoError(t, db.GetDB().Where("element_id = ?", stale.ElementID).First(&staleRow).Error)
	require.NoError(t, db.GetDB().Where("element_id = ?", fresh.ElementID).First(&freshRow).Error)

	assert.Equal(t, models.OperStateDetached, staleRow.OperState)
	assert.Equal(t, models.OperStateUp, freshRow.OperState)
}

func TestSweepOnceIgnoresNonUpElements(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	watchdog := newTestWatchdog()

	// never reported UP; staleness does not apply
	element := seedElement(t, fixture, nil)
	backdate(t, element, time.Hour)

	_, err := watchdog.SweepOnce(db.GetDB())
	require.NoError(t, err)

	var row models.Element
	require.NoError(t, db.GetDB().Where("element_id = ?", element.ElementID).First(&row).Error)
	assert.Equal(t, models.OperStateUnknown, row.OperState)
}

func TestSweepOnceBumpsVersion(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	elementService := NewElementService()
	watchdog := newTestWatchdog()

	element := seedElement(t, fixture, nil)
	require.NoError(t, elementService.RecordHeartbeat(element.ElementID))

	var before models.Element
	require.NoError(t, db.GetDB().Where("element_id = ?", element.ElementID).First(&before).Error)

	backdate(t, element, 200*time.Second)

	_, err := watchdog.SweepOnce(db.GetDB())
	require.NoError(t, err)

	var after models.Element
	require.NoError(t, db.GetDB().Where("element_id = ?", element.ElementID).First(&after).Error)
	assert.Equal(t, before.Version+1, after.Version)
}

func TestWatchdogStartStop(t *testing.T) {
	setupTestDB(t)
	watchdog := NewWatchdogService(&config.WatchdogConfig{
		Staleness: 180 * time.Second,
		Interval:  50 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	watchdog.Start(ctx)
	time.Sleep(120 * time.Millisecond)
	watchdog.Stop()
}

func TestWatchdogStopWithoutStart(t *testing.T) {
	watchdog := newTestWatchdog()

	done := make(chan struct{})
	go func() {
		watchdog.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked with no running watchdog")
	}
}

func TestWatchdogSweepsImmediatelyOnStart(t *testing.T) {
	setupTestDB(t)
	fixture := seedTopology(t)
	elementService := NewElementService()

	element := seedElement(t, fixture, nil)
	require.NoError(t, elementService.RecordHeartbeat(element.ElementID))
	backdate(t, element, time.Hour)

	// a long interval proves the demotion came from the startup sweep
	watchdog := NewWatchdogService(&config.WatchdogConfig{
		Staleness: 180 * time.Second,
		Interval:  time.Hour,
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	watchdog.Start(ctx)
	defer watchdog.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		var row models.Element
		require.NoError(t, db.GetDB().Where("element_id = ?", element.ElementID).First(&row).Error)
		if row.OperState == models.OperStateDetached {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Stale element was not demoted by the startup sweep")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
