package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-volume-bot/src/config"
	"gitlab.com/open-soft/go-volume-bot/src/model"
	"gitlab.com/open-soft/go-volume-bot/src/utils"
)

func newTestBotConfig() *config.BotConfig {
	return &config.BotConfig{
		Symbol:           "ETHUSDT",
		Investment:       10,
		Leverage:         5,
		OrderSizePercent: 0.1,
		SpreadBps:        5,
		OrdersPerSide:    3,
	}
}

func TestComputeLevelsSpreadScenario(t *testing.T) {
	assertion := assert.New(t)
	calculator := LadderCalculator{Formatter: &utils.Formatter{}}

	book := model.OrderBookSnapshot{
		Symbol:   "ETHUSDT",
		BestBid:  99.98,
		BestAsk:  100.02,
		MidPrice: 100.00,
	}
	precision := model.Precision{Price: 2, Quantity: 2}

	ladder := calculator.ComputeLevels(book, newTestBotConfig(), precision)

	// spreadAbsolute = 100 * (5/10000) = 0.05, damped by 0.4 per level
	assertion.Equal([]float64{99.98, 99.96, 99.94}, ladder.BuyLevels)
	assertion.Equal([]float64{100.02, 100.04, 100.06}, ladder.SellLevels)
	assertion.Equal(0.05, ladder.Size)
}

func TestComputeLevelsBuyLevelsNonIncreasingSellNonDecreasing(t *testing.T) {
	assertion := assert.New(t)
	calculator := LadderCalculator{Formatter: &utils.Formatter{}}

	botConfig := newTestBotConfig()
	botConfig.OrdersPerSide = 7
	botConfig.SpreadBps = 12

	book := model.OrderBookSnapshot{
		Symbol:   "ETHUSDT",
		BestBid:  1999.90,
		BestAsk:  2000.10,
		MidPrice: 2000.00,
	}
	precision := model.Precision{Price: 2, Quantity: 6}

	ladder := calculator.ComputeLevels(book, botConfig, precision)

	assertion.Len(ladder.BuyLevels, 7)
	assertion.Len(ladder.SellLevels, 7)

	for i := 1; i < len(ladder.BuyLevels); i++ {
		assertion.LessOrEqual(ladder.BuyLevels[i], ladder.BuyLevels[i-1])
		assertion.GreaterOrEqual(ladder.SellLevels[i], ladder.SellLevels[i-1])
	}
}

func TestComputeSizeScenario(t *testing.T) {
	assertion := assert.New(t)
	calculator := LadderCalculator{Formatter: &utils.Formatter{}}

	// (10 * 5 * 0.1) / 100 = 0.05
	size := calculator.ComputeSize(newTestBotConfig(), 100.00, model.Precision{Quantity: 6})

	assertion.Equal(0.05, size)
}

func TestComputeSizeNeverNonPositive(t *testing.T) {
	assertion := assert.New(t)
	calculator := LadderCalculator{Formatter: &utils.Formatter{}}

	botConfig := newTestBotConfig()

	for _, precision := range []int{0, 1, 2, 4, 8} {
		size := calculator.ComputeSize(botConfig, 1e12, model.Precision{Quantity: precision})
		assertion.Greater(size, 0.00, "qty precision %d", precision)
	}
}

func TestComputeSizeUnderflowSubstitutesSmallestUnit(t *testing.T) {
	assertion := assert.New(t)
	calculator := LadderCalculator{Formatter: &utils.Formatter{}}

	// 0.05 rounds to zero at integer quantity precision
	size := calculator.ComputeSize(newTestBotConfig(), 100.00, model.Precision{Quantity: 0})

	assertion.Equal(lastResortQty, size)

	// 0.05 underflows three decimals only at much higher prices
	size = calculator.ComputeSize(newTestBotConfig(), 1e6, model.Precision{Quantity: 3})
	assertion.Equal(0.001, size)
}

func TestComputeLevelsDegenerateBookFallsBackToMid(t *testing.T) {
	assertion := assert.New(t)
	calculator := LadderCalculator{Formatter: &utils.Formatter{}}

	book := model.OrderBookSnapshot{
		Symbol:   "ETHUSDT",
		BestBid:  0,
		BestAsk:  100.00,
		MidPrice: 0,
	}
	precision := model.Precision{Price: 2, Quantity: 3, MinQuantity: 0.01}

	ladder := calculator.ComputeLevels(book, newTestBotConfig(), precision)

	assertion.Equal([]float64{50.00}, ladder.BuyLevels)
	assertion.Equal([]float64{50.00}, ladder.SellLevels)
	assertion.Equal(0.01, ladder.Size)
}
