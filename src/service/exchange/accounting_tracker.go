package exchange

import (
	"math"
	"time"

	"gitlab.com/open-soft/go-volume-bot/src/config"
	"gitlab.com/open-soft/go-volume-bot/src/model"
)

// minElapsedHours floors rate denominators so derived metrics never
// divide by zero right after startup.
const minElapsedHours = 0.01

// AccountingTracker keeps the running volume, trade and fee totals
// plus the rolling hour bucket. Mutated only by the cycle engine.
type AccountingTracker struct {
	SessionStart time.Time
	HourStart    time.Time

	TotalVolume float64
	TotalTrades int64
	TotalFees   float64

	HourVolume float64
	HourTrades int64

	HourlyStats []model.HourlyStat
}

func NewAccountingTracker(now time.Time) *AccountingTracker {
	return &AccountingTracker{
		SessionStart: now,
		HourStart:    now,
		HourlyStats:  make([]model.HourlyStat, 0),
	}
}

func (a *AccountingTracker) AddFills(fills int64, fillVolume float64, fees float64) {
	a.TotalVolume += fillVolume
	a.HourVolume += fillVolume
	a.TotalTrades += fills
	a.HourTrades += fills
	a.TotalFees += fees
}

func (a *AccountingTracker) HourElapsed(now time.Time) bool {
	return now.Sub(a.HourStart) >= time.Hour
}

// CloseHour seals the current hour bucket, flags it behind when the
// realized volume is under 80% of the hourly target, and resets the
// bucket counters.
func (a *AccountingTracker) CloseHour(now time.Time, hourlyTarget float64) model.HourlyStat {
	stat := model.HourlyStat{
		Hour:   int64(len(a.HourlyStats) + 1),
		Volume: a.HourVolume,
		Trades: a.HourTrades,
		Behind: a.HourVolume < hourlyTarget*0.8,
	}

	a.HourlyStats = append(a.HourlyStats, stat)
	a.HourVolume = 0.00
	a.HourTrades = 0
	a.HourStart = now

	return stat
}

func (a *AccountingTracker) HoursElapsed(now time.Time) float64 {
	return now.Sub(a.SessionStart).Hours()
}

// Snapshot derives the reporting metrics from the raw counters.
func (a *AccountingTracker) Snapshot(now time.Time, botConfig *config.BotConfig) model.AccountingSnapshot {
	hoursElapsed := a.HoursElapsed(now)
	hoursLeft := float64(botConfig.TargetHours) - hoursElapsed

	volumeRate := a.TotalVolume / math.Max(hoursElapsed, minElapsedHours)
	tradeRate := float64(a.TotalTrades) / math.Max(hoursElapsed, minElapsedHours)

	requiredRate := 0.00
	if hoursLeft > 0 {
		requiredRate = (botConfig.TargetVolume - a.TotalVolume) / math.Max(hoursLeft, minElapsedHours)
	}

	return model.AccountingSnapshot{
		TotalVolume:        a.TotalVolume,
		TotalTrades:        a.TotalTrades,
		TotalFees:          a.TotalFees,
		HourVolume:         a.HourVolume,
		HourTrades:         a.HourTrades,
		HoursElapsed:       hoursElapsed,
		HoursLeft:          math.Max(0, hoursLeft),
		VolumeRate:         volumeRate,
		TradeRate:          tradeRate,
		RequiredRate:       requiredRate,
		ProgressPercent:    (a.TotalVolume / botConfig.TargetVolume) * 100.00,
		ProjectedVolume:    volumeRate * float64(botConfig.TargetHours),
		FeePercentOfVolume: (a.TotalFees / math.Max(a.TotalVolume, 1)) * 100.00,
		HourlyStats:        append([]model.HourlyStat(nil), a.HourlyStats...),
	}
}
