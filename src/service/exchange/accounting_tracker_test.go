package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-volume-bot/src/config"
)

func TestAddFillsAccumulates(t *testing.T) {
	assertion := assert.New(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewAccountingTracker(start)

	tracker.AddFills(2, 10.00, 0.02)
	tracker.AddFills(3, 15.00, 0.03)

	assertion.Equal(25.00, tracker.TotalVolume)
	assertion.Equal(int64(5), tracker.TotalTrades)
	assertion.InDelta(0.05, tracker.TotalFees, 1e-12)
	assertion.Equal(25.00, tracker.HourVolume)
	assertion.Equal(int64(5), tracker.HourTrades)
}

func TestHourElapsedExactBoundary(t *testing.T) {
	assertion := assert.New(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewAccountingTracker(start)

	assertion.False(tracker.HourElapsed(start.Add(time.Hour - time.Second)))
	assertion.True(tracker.HourElapsed(start.Add(time.Hour)))
}

func TestCloseHourResetsBucketAndFlagsBehind(t *testing.T) {
	assertion := assert.New(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewAccountingTracker(start)

	tracker.AddFills(4, 100.00, 0.20)

	closeTime := start.Add(time.Hour)
	stat := tracker.CloseHour(closeTime, 200.00)

	// 100 < 80% of 200
	assertion.True(stat.Behind)
	assertion.Equal(int64(1), stat.Hour)
	assertion.Equal(100.00, stat.Volume)
	assertion.Equal(int64(4), stat.Trades)

	assertion.Equal(0.00, tracker.HourVolume)
	assertion.Equal(int64(0), tracker.HourTrades)
	assertion.Equal(closeTime, tracker.HourStart)
	assertion.Equal(100.00, tracker.TotalVolume)

	assertion.False(tracker.HourElapsed(closeTime.Add(time.Minute)))
	assertion.True(tracker.HourElapsed(closeTime.Add(time.Hour)))

	tracker.AddFills(1, 170.00, 0.34)
	second := tracker.CloseHour(closeTime.Add(time.Hour), 200.00)

	// 170 >= 80% of 200
	assertion.False(second.Behind)
	assertion.Equal(int64(2), second.Hour)
	assertion.Len(tracker.HourlyStats, 2)
}

func TestSnapshotGuardsZeroElapsed(t *testing.T) {
	assertion := assert.New(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewAccountingTracker(start)
	tracker.AddFills(1, 50.00, 0.10)

	botConfig := &config.BotConfig{
		TargetVolume: 1000.00,
		TargetHours:  24,
	}

	snapshot := tracker.Snapshot(start, botConfig)

	// elapsed hours floored to 0.01
	assertion.Equal(5000.00, snapshot.VolumeRate)
	assertion.Equal(5.00, snapshot.ProgressPercent)
	assertion.Greater(snapshot.RequiredRate, 0.00)
	assertion.Equal(0.00, snapshot.HoursElapsed)
}

func TestSnapshotAfterDeadlineHasZeroRequiredRate(t *testing.T) {
	assertion := assert.New(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewAccountingTracker(start)

	botConfig := &config.BotConfig{
		TargetVolume: 1000.00,
		TargetHours:  1,
	}

	snapshot := tracker.Snapshot(start.Add(2*time.Hour), botConfig)

	assertion.Equal(0.00, snapshot.RequiredRate)
	assertion.Equal(0.00, snapshot.HoursLeft)
}

func TestSnapshotFeePercentWithZeroVolume(t *testing.T) {
	assertion := assert.New(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewAccountingTracker(start)

	botConfig := &config.BotConfig{
		TargetVolume: 1000.00,
		TargetHours:  24,
	}

	snapshot := tracker.Snapshot(start.Add(time.Minute), botConfig)

	assertion.Equal(0.00, snapshot.FeePercentOfVolume)
}
