package exchange

import (
	"log"
	"math"

	"gitlab.com/open-soft/go-volume-bot/src/config"
	"gitlab.com/open-soft/go-volume-bot/src/model"
	"gitlab.com/open-soft/go-volume-bot/src/utils"
)

// lastResortQty is the placement floor when quantity precision is
// degenerate and 10^-precision collapses to a useless unit.
const lastResortQty = 0.0001

// damping tightens inner ladder levels around the touch while outer
// levels fan out more slowly than a linear ladder would.
const damping = 0.4

type Ladder struct {
	BuyLevels  []float64
	SellLevels []float64
	Size       float64
}

type LadderCalculator struct {
	Formatter *utils.Formatter
}

// ComputeLevels builds the symmetric quote ladder and the single
// order size in base-asset units for one cycle.
func (c *LadderCalculator) ComputeLevels(book model.OrderBookSnapshot, botConfig *config.BotConfig, precision model.Precision) Ladder {
	midPrice := c.Formatter.ToFixed(book.MidPrice, precision.Price)
	bestBid := c.Formatter.ToFixed(book.BestBid, precision.Price)
	bestAsk := c.Formatter.ToFixed(book.BestAsk, precision.Price)

	if midPrice <= 0.00 || bestBid <= 0.00 || bestAsk <= 0.00 || math.IsNaN(midPrice) {
		log.Printf("[%s] ComputeLevels: degenerate book, quoting single level at mid", book.Symbol)
		return c.fallbackLadder(book, precision)
	}

	spreadAbsolute := midPrice * (botConfig.SpreadBps / 10000.00)

	size := c.ComputeSize(botConfig, midPrice, precision)

	buyLevels := make([]float64, 0, botConfig.OrdersPerSide)
	sellLevels := make([]float64, 0, botConfig.OrdersPerSide)

	for i := int64(0); i < botConfig.OrdersPerSide; i++ {
		buyLevels = append(buyLevels, c.Formatter.ToFixed(bestBid-spreadAbsolute*float64(i)*damping, precision.Price))
		sellLevels = append(sellLevels, c.Formatter.ToFixed(bestAsk+spreadAbsolute*float64(i)*damping, precision.Price))
	}

	return Ladder{
		BuyLevels:  buyLevels,
		SellLevels: sellLevels,
		Size:       size,
	}
}

// ComputeSize never returns a non-positive size: an underflow is
// substituted with the smallest representable unit so a cycle never
// silently skips placement.
func (c *LadderCalculator) ComputeSize(botConfig *config.BotConfig, midPrice float64, precision model.Precision) float64 {
	size := (botConfig.Investment * botConfig.Leverage * botConfig.OrderSizePercent) / midPrice

	if size <= 0.00 {
		log.Printf("[%s] ComputeSize: invalid order size %f", botConfig.Symbol, size)
		size = math.Max(c.MinQty(precision), math.Abs(size))
	}

	size = c.Formatter.ToFixed(size, precision.Quantity)

	if size <= 0.00 {
		log.Printf("[%s] ComputeSize: order size underflows quantity precision %d", botConfig.Symbol, precision.Quantity)
		size = math.Max(c.MinQty(precision), lastResortQty)
	}

	return size
}

// MinQty is the smallest representable unit at the quantity
// precision, or the last-resort floor when precision is degenerate.
func (c *LadderCalculator) MinQty(precision model.Precision) float64 {
	if precision.Quantity <= 0 {
		return lastResortQty
	}

	return math.Pow(10, -float64(precision.Quantity))
}

func (c *LadderCalculator) fallbackLadder(book model.OrderBookSnapshot, precision model.Precision) Ladder {
	midPrice := c.Formatter.ToFixed((book.BestBid+book.BestAsk)/2.00, precision.Price)

	minQty := precision.MinQuantity
	if minQty <= 0.00 {
		minQty = c.MinQty(precision)
	}

	return Ladder{
		BuyLevels:  []float64{midPrice},
		SellLevels: []float64{midPrice},
		Size:       minQty,
	}
}
