package exchange

import (
	"log"
	"strings"

	"github.com/samber/lo"
	"gitlab.com/open-soft/go-volume-bot/src/config"
	"gitlab.com/open-soft/go-volume-bot/src/model"
)

// StatusReporter renders the startup banner, the periodic status
// block and the final report. Presentation only.
type StatusReporter struct {
	Config *config.BotConfig
}

func (r *StatusReporter) separator() string {
	return strings.Repeat("=", 75)
}

func (r *StatusReporter) PrintBanner() {
	botConfig := r.Config

	log.Println(r.separator())
	log.Println("VOLUME GENERATOR BOT - FOR ASTERDEX.COM")
	log.Println(r.separator())
	log.Println("CONFIGURATION:")
	log.Printf("Market: %s (Index: %d)", botConfig.Symbol, botConfig.MarketIndex)
	log.Printf("Investment: $%.2f (Leverage: %.0fx)", botConfig.Investment, botConfig.Leverage)
	log.Printf("Effective Capital: $%.2f", botConfig.EffectiveCapital())
	log.Println("TARGETS:")
	log.Printf("   Volume Goal: $%.0f in %dh", botConfig.TargetVolume, botConfig.TargetHours)
	log.Printf("   Hourly Goal: $%.0f", botConfig.HourlyTarget())
	log.Printf("   Max Loss: $%.2f", botConfig.MaxLoss)
	log.Println("STRATEGY CONFIG:")
	log.Printf("   Spread: %.3f%% (%.1f bps)", botConfig.SpreadBps/100.00, botConfig.SpreadBps)
	log.Printf("   Orders: %d total (%d each side)", botConfig.OrdersPerSide*2, botConfig.OrdersPerSide)
	log.Printf("   Order Size: %.1f%% of capital", botConfig.OrderSizePercent*100.00)
	log.Printf("   Refresh: Every %s", botConfig.RefreshInterval)
	log.Println("RATE LIMIT PROTECTION:")
	log.Printf("   Delay Between Orders: %s", botConfig.DelayBetweenOrders)
	log.Printf("   Delay After Cancel: %s", botConfig.DelayAfterCancel)
	log.Printf("   Max Orders/Cycle: %d per side", botConfig.MaxOrdersToPlace)
	log.Printf("   Status Updates: Every %s", botConfig.StatusInterval)
	log.Println("PROJECTIONS:")
	log.Printf("   Est. Trades Needed: ~%d", botConfig.TradesNeeded())
	log.Printf("   Avg Trade Size: $%.2f", botConfig.AvgTradeSize())
	log.Printf("   Trading Fee: %.2f%%", botConfig.TradingFeePercent)
	log.Printf("   Order Type: %s", botConfig.TimeInForce())
	log.Println(r.separator())
}

func (r *StatusReporter) PrintStatus(snapshot model.AccountingSnapshot, book model.OrderBookSnapshot, placedBuy int64, placedSell int64) {
	botConfig := r.Config

	log.Println(r.separator())
	log.Printf(
		"%.1fh elapsed | %.1fh remaining | Price: $%.2f",
		snapshot.HoursElapsed,
		snapshot.HoursLeft,
		book.MidPrice,
	)
	log.Printf("Orders: %d BUY + %d SELL | Market Spread: %.3f%%", placedBuy, placedSell, book.SpreadPct)
	log.Println("VOLUME PROGRESS:")
	log.Printf("   Current: $%.0f / $%.0f (%.1f%%)", snapshot.TotalVolume, botConfig.TargetVolume, snapshot.ProgressPercent)
	log.Printf("   This Hour: $%.0f / $%.0f", snapshot.HourVolume, botConfig.HourlyTarget())
	log.Printf("   Trades: %d (%.0f/hour)", snapshot.TotalTrades, snapshot.TradeRate)
	log.Println("PERFORMANCE:")
	log.Printf("   Current Rate: $%.0f/hour", snapshot.VolumeRate)
	log.Printf("   %dh Projection: $%.0f", botConfig.TargetHours, snapshot.ProjectedVolume)
	log.Printf("   Required Rate: $%.0f/hour", snapshot.RequiredRate)
	log.Printf("   Status: %s", lo.Ternary(snapshot.VolumeRate >= snapshot.RequiredRate*0.9, "ON TRACK", "NEED TO SPEED UP"))
	log.Println("COSTS:")
	log.Printf("   Fees Paid: $%.2f / $%.2f", snapshot.TotalFees, botConfig.MaxLoss)
	log.Printf("   Budget Left: $%.2f", botConfig.MaxLoss-snapshot.TotalFees)
	log.Printf("   Fee %%: %.3f%%", snapshot.FeePercentOfVolume)
	log.Println(r.separator())
}

func (r *StatusReporter) PrintHourComplete(stat model.HourlyStat) {
	log.Printf("HOUR %d COMPLETE:", stat.Hour)
	log.Printf("   Volume: $%.0f", stat.Volume)
	log.Printf("   Trades: %d", stat.Trades)
	log.Printf("   Target: $%.0f", r.Config.HourlyTarget())
	log.Printf("   Status: %s", lo.Ternary(stat.Behind, "BEHIND", "ON TRACK"))
}

func (r *StatusReporter) PrintFinalReport(snapshot model.AccountingSnapshot) {
	botConfig := r.Config

	log.Println(r.separator())
	log.Println("FINAL REPORT")
	log.Println(r.separator())
	log.Printf("Runtime: %.2f hours (%d completed)", snapshot.HoursElapsed, len(snapshot.HourlyStats))
	log.Println("VOLUME:")
	log.Printf("   Total: $%.2f", snapshot.TotalVolume)
	log.Printf("   Target: $%.0f", botConfig.TargetVolume)
	log.Printf("   Achievement: %.1f%%", snapshot.ProgressPercent)
	log.Printf("   Hourly Avg: $%.0f/hour", snapshot.VolumeRate)

	if len(snapshot.HourlyStats) > 0 {
		completedVolume := lo.SumBy(snapshot.HourlyStats, func(stat model.HourlyStat) float64 {
			return stat.Volume
		})
		log.Printf("   Completed Hours: $%.0f over %d buckets", completedVolume, len(snapshot.HourlyStats))
	}

	log.Println("TRADES:")
	log.Printf("   Total: %d", snapshot.TotalTrades)
	log.Printf("   Avg/Hour: %.0f", snapshot.TradeRate)
	log.Println("COSTS:")
	log.Printf("   Fees: $%.2f", snapshot.TotalFees)
	log.Printf("   Budget: $%.2f", botConfig.MaxLoss)
	log.Printf("   Used: %.1f%%", (snapshot.TotalFees/botConfig.MaxLoss)*100.00)
	log.Println("EFFICIENCY:")

	if snapshot.TotalFees > 0 {
		log.Printf("   Volume/$1 Loss: $%.0f", snapshot.TotalVolume/snapshot.TotalFees)
		log.Printf("   Loss %%: %.3f%%", snapshot.FeePercentOfVolume)
	} else {
		log.Println("   ZERO FEES - Pure volume generation!")
	}

	log.Println(r.separator())
}
