package exchange

import (
	"context"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"gitlab.com/open-soft/go-volume-bot/src/client"
	"gitlab.com/open-soft/go-volume-bot/src/config"
	"gitlab.com/open-soft/go-volume-bot/src/model"
	"gitlab.com/open-soft/go-volume-bot/src/utils"
	"golang.org/x/time/rate"
)

type BookSourceInterface interface {
	GetSnapshot(maxAge time.Duration) *model.OrderBookSnapshot
}

type StatRecorderInterface interface {
	WriteHourlyStat(symbol string, stat model.HourlyStat) error
	WriteOrderRecord(record model.OrderRecord) error
}

// CycleEngine drives the quote-and-cancel loop: fetch book, cancel
// everything, recompute the ladder, requote, account, sleep to the
// next cycle boundary. Single cycle context, no concurrent writers.
type CycleEngine struct {
	ExchangeApi       client.ExchangePriceAPIInterface
	OrderApi          client.ExchangeOrderAPIInterface
	BookSource        BookSourceInterface
	PrecisionResolver *PrecisionResolver
	LadderCalculator  *LadderCalculator
	Accounting        *AccountingTracker
	Reporter          *StatusReporter
	StatRecorder      StatRecorderInterface
	TimeService       utils.TimeServiceInterface
	Formatter         *utils.Formatter
	Config            *config.BotConfig
	Ctx               context.Context

	limiter      *rate.Limiter
	activeOrders map[int64]model.OrderRecord
	cycle        int64
	lastStatusAt time.Time

	stopped  bool
	stopLock sync.Mutex

	lastSnapshot model.AccountingSnapshot
	snapshotLock sync.RWMutex
}

func (e *CycleEngine) Stop() {
	e.stopLock.Lock()
	e.stopped = true
	e.stopLock.Unlock()
}

func (e *CycleEngine) IsRunning() bool {
	e.stopLock.Lock()
	stopped := e.stopped
	e.stopLock.Unlock()

	return !stopped
}

// Snapshot returns the accounting state as of the last finished
// cycle. Safe to call from the HTTP controller.
func (e *CycleEngine) Snapshot() model.AccountingSnapshot {
	e.snapshotLock.RLock()
	defer e.snapshotLock.RUnlock()

	return e.lastSnapshot
}

func (e *CycleEngine) Run() {
	e.bootstrap()

	log.Printf("[%s] Starting order refresh (%s cycles)...", e.Config.Symbol, e.Config.RefreshInterval)

	for e.IsRunning() {
		e.cycle++
		cycleStart := e.TimeService.GetNow()

		completed := e.safeCycle()
		e.publishSnapshot()

		if !e.IsRunning() {
			break
		}

		if !completed {
			e.TimeService.WaitMilliseconds(e.Config.RefreshInterval.Milliseconds())
			continue
		}

		elapsed := e.TimeService.GetNow().Sub(cycleStart)
		if remaining := e.Config.RefreshInterval - elapsed; remaining > 0 {
			e.TimeService.WaitMilliseconds(remaining.Milliseconds())
		}
	}
}

// Shutdown cancels whatever is still resting on the book (best
// effort) and prints the final report.
func (e *CycleEngine) Shutdown() {
	log.Printf("[%s] Cleaning up...", e.Config.Symbol)

	if err := e.OrderApi.CancelAllOrders(e.Config.Symbol); err != nil {
		log.Printf("[%s] Shutdown cancel-all: %s", e.Config.Symbol, err.Error())
	}

	e.Reporter.PrintFinalReport(e.Accounting.Snapshot(e.TimeService.GetNow(), e.Config))
}

func (e *CycleEngine) bootstrap() {
	if e.activeOrders == nil {
		e.activeOrders = make(map[int64]model.OrderRecord)
	}
	if e.limiter == nil {
		e.limiter = rate.NewLimiter(rate.Every(e.Config.DelayBetweenOrders), 1)
	}
	if e.Ctx == nil {
		e.Ctx = context.Background()
	}

	e.lastStatusAt = e.TimeService.GetNow()
}

// safeCycle isolates the loop from a single bad cycle: a panic is
// logged with its trace and the loop retries after one interval.
func (e *CycleEngine) safeCycle() (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] Cycle %d error: %v\n%s", e.Config.Symbol, e.cycle, r, debug.Stack())
			completed = false
		}
	}()

	return e.runCycle()
}

func (e *CycleEngine) runCycle() bool {
	symbol := e.Config.Symbol

	book := e.fetchBook()
	if book == nil {
		log.Printf("[%s] Skipping cycle %d - no orderbook data", symbol, e.cycle)
		return false
	}

	e.cancelAllOrders()
	e.TimeService.WaitMilliseconds(e.Config.DelayAfterCancel.Milliseconds())

	precision := e.PrecisionResolver.Resolve(symbol)
	ladder := e.LadderCalculator.ComputeLevels(*book, e.Config, precision)

	if ladder.Size <= 0.00 {
		log.Printf("[%s] Invalid order size detected: %f", symbol, ladder.Size)

		ladder = e.LadderCalculator.ComputeLevels(*book, e.Config, precision)
		if ladder.Size <= 0.00 {
			ladder.Size = e.LadderCalculator.MinQty(precision)
		}
	}

	requestedBuy, placedBuy := e.placeSide(model.SideBuy, ladder.BuyLevels, ladder.Size, precision)
	requestedSell, placedSell := e.placeSide(model.SideSell, ladder.SellLevels, ladder.Size, precision)

	// There is no execution feed: quotes that failed to place are
	// treated as executed trades. The proxy overcounts when the
	// exchange rejects for other reasons - known approximation.
	estimatedFills := (requestedBuy - placedBuy) + (requestedSell - placedSell)

	if estimatedFills > 0 {
		fillVolume := float64(estimatedFills) * ladder.Size * book.MidPrice
		fees := fillVolume * (e.Config.TradingFeePercent / 100.00)
		e.Accounting.AddFills(estimatedFills, fillVolume, fees)
	}

	now := e.TimeService.GetNow()

	if now.Sub(e.lastStatusAt) >= e.Config.StatusInterval {
		e.Reporter.PrintStatus(e.Accounting.Snapshot(now, e.Config), *book, placedBuy, placedSell)
		e.lastStatusAt = now
	}

	if e.Accounting.HourElapsed(now) {
		stat := e.Accounting.CloseHour(now, e.Config.HourlyTarget())
		e.Reporter.PrintHourComplete(stat)

		if e.StatRecorder != nil {
			if err := e.StatRecorder.WriteHourlyStat(symbol, stat); err != nil {
				log.Printf("[%s] WriteHourlyStat: %s", symbol, err.Error())
			}
		}
	}

	if e.Accounting.TotalFees >= e.Config.MaxLoss {
		log.Printf("[%s] MAX LOSS REACHED: $%.2f", symbol, e.Accounting.TotalFees)
		e.Stop()
	}

	return true
}

func (e *CycleEngine) fetchBook() *model.OrderBookSnapshot {
	symbol := e.Config.Symbol

	if e.BookSource != nil {
		if snapshot := e.BookSource.GetSnapshot(e.Config.RefreshInterval); snapshot != nil {
			return snapshot
		}
	}

	depth, err := e.ExchangeApi.GetDepth(symbol, 10)
	if err != nil {
		log.Printf("[%s] Error fetching orderbook: %s", symbol, err.Error())
		return nil
	}

	return depth.ToSnapshot(symbol)
}

// cancelAllOrders drops every resting quote unconditionally, no
// diffing against the previous ladder.
func (e *CycleEngine) cancelAllOrders() {
	if err := e.OrderApi.CancelAllOrders(e.Config.Symbol); err != nil {
		log.Printf("[%s] Error canceling orders: %s", e.Config.Symbol, err.Error())
	}

	e.activeOrders = make(map[int64]model.OrderRecord)
}

func (e *CycleEngine) placeSide(side string, levels []float64, size float64, precision model.Precision) (int64, int64) {
	symbol := e.Config.Symbol
	quantity := e.Formatter.FormatAtPrecision(size, precision.Quantity)

	requested := int64(0)
	placed := int64(0)

	for _, level := range levels {
		if requested >= e.Config.MaxOrdersToPlace {
			break
		}
		if !e.IsRunning() {
			break
		}

		requested++

		_ = e.limiter.Wait(e.Ctx)

		price := e.Formatter.FormatAtPrecision(level, precision.Price)

		order, err := e.OrderApi.LimitOrder(symbol, side, quantity, price, e.Config.TimeInForce())
		if err != nil {
			log.Printf("[%s] %s order at %s failed: %s", symbol, side, price, err.Error())
			continue
		}

		placed++
		e.registerOrder(order, side, size)
	}

	return requested, placed
}

func (e *CycleEngine) registerOrder(order model.AsterOrder, side string, size float64) {
	record := model.OrderRecord{
		OrderId:  order.OrderId,
		Symbol:   order.Symbol,
		Side:     side,
		Price:    order.Price,
		Quantity: size,
		PlacedAt: e.TimeService.GetNowUnix(),
	}

	e.activeOrders[order.OrderId] = record

	if e.StatRecorder != nil {
		if err := e.StatRecorder.WriteOrderRecord(record); err != nil {
			log.Printf("[%s] WriteOrderRecord: %s", e.Config.Symbol, err.Error())
		}
	}
}

func (e *CycleEngine) publishSnapshot() {
	snapshot := e.Accounting.Snapshot(e.TimeService.GetNow(), e.Config)

	e.snapshotLock.Lock()
	e.lastSnapshot = snapshot
	e.snapshotLock.Unlock()
}
