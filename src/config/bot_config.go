package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"
	"gitlab.com/open-soft/go-volume-bot/src/model"
)

// Markets maps the MARKET_INDEX option to a tradable symbol.
var Markets = map[int64]string{
	0: "BTCUSDT",
	1: "ETHUSDT",
	2: "SOLUSDT",
	3: "DOGEUSDT",
	4: "HYPEUSDT",
	5: "ASTERUSDT",
	6: "WLDUSDT",
	7: "XPLUSDT",
	8: "LINKUSDT",
	9: "AVAXUSDT",
}

// BotConfig holds the strategy parameters. Loaded once at startup,
// read-only afterwards.
type BotConfig struct {
	ApiKey    string
	ApiSecret string
	BaseUrl   string
	WsDsn     string

	MarketIndex int64
	Symbol      string
	Leverage    float64
	Investment  float64

	TargetVolume float64
	MaxLoss      float64
	TargetHours  int64

	SpreadBps        float64
	OrdersPerSide    int64
	OrderSizePercent float64
	RefreshInterval  time.Duration

	DelayBetweenOrders time.Duration
	DelayAfterCancel   time.Duration
	StatusInterval     time.Duration

	UsePostOnly       bool
	MaxOrdersToPlace  int64
	TradingFeePercent float64
}

func (c *BotConfig) HourlyTarget() float64 {
	return c.TargetVolume / float64(c.TargetHours)
}

func (c *BotConfig) TradesNeeded() int64 {
	return int64(c.TargetVolume / 10.00)
}

func (c *BotConfig) AvgTradeSize() float64 {
	return c.TargetVolume / float64(c.TradesNeeded())
}

func (c *BotConfig) EffectiveCapital() float64 {
	return c.Investment * c.Leverage
}

func (c *BotConfig) TimeInForce() string {
	return lo.Ternary(c.UsePostOnly, model.TimeInForcePostOnly, model.TimeInForceGTC)
}

// LoadBotConfig reads the strategy parameters from the environment,
// applies defaults and fails fast on invalid values.
func LoadBotConfig() *BotConfig {
	botConfig := BotConfig{
		ApiKey:    os.Getenv("API_KEY"),
		ApiSecret: os.Getenv("API_SECRET"),
		BaseUrl:   getStringEnv("BASE_URL", "https://fapi.asterdex.com"),
		WsDsn:     os.Getenv("WS_DSN"),

		MarketIndex: getIntEnv("MARKET_INDEX", 1),
		Leverage:    getFloatEnv("LEVERAGE", 5),
		Investment:  getFloatEnv("INVESTMENT_USDT", 10),

		TargetVolume: getFloatEnv("TARGET_VOLUME", 100000),
		MaxLoss:      getFloatEnv("MAX_LOSS", 10),
		TargetHours:  getIntEnv("TARGET_HOURS", 24),

		SpreadBps:        getFloatEnv("SPREAD_BPS", 5),
		OrdersPerSide:    getIntEnv("ORDERS_PER_SIDE", 3),
		OrderSizePercent: getFloatEnv("ORDER_SIZE_PERCENT", 0.1),
		RefreshInterval:  getSecondsEnv("REFRESH_INTERVAL", 2.0),

		DelayBetweenOrders: getSecondsEnv("DELAY_BETWEEN_ORDERS", 0.05),
		DelayAfterCancel:   getSecondsEnv("DELAY_AFTER_CANCEL", 0.3),
		StatusInterval:     getSecondsEnv("STATUS_INTERVAL", 30),

		UsePostOnly:       getBoolEnv("USE_POST_ONLY", false),
		MaxOrdersToPlace:  getIntEnv("MAX_ORDERS_TO_PLACE", 10),
		TradingFeePercent: getFloatEnv("TRADING_FEE_PERCENT", 0.2),
	}

	symbol, ok := Markets[botConfig.MarketIndex]
	if !ok {
		log.Fatalf("MARKET_INDEX %d has no known symbol", botConfig.MarketIndex)
	}
	botConfig.Symbol = symbol

	if botConfig.Investment <= 0 {
		log.Fatal("INVESTMENT_USDT must be greater than 0")
	}
	if botConfig.Leverage <= 0 {
		log.Fatal("LEVERAGE must be greater than 0")
	}
	if botConfig.OrderSizePercent <= 0 {
		log.Fatal("ORDER_SIZE_PERCENT must be greater than 0")
	}
	if botConfig.TargetHours <= 0 {
		log.Fatal("TARGET_HOURS must be greater than 0")
	}
	if botConfig.RefreshInterval <= 0 {
		log.Fatal("REFRESH_INTERVAL must be greater than 0")
	}

	return &botConfig
}

func getStringEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getFloatEnv(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("%s: invalid numeric value %s", key, raw)
	}

	return value
}

func getIntEnv(key string, defaultValue int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("%s: invalid integer value %s", key, raw)
	}

	return value
}

func getSecondsEnv(key string, defaultValue float64) time.Duration {
	return time.Duration(getFloatEnv(key, defaultValue) * float64(time.Second))
}

func getBoolEnv(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	return raw == "true" || raw == "1"
}
