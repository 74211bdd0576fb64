package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-volume-bot/src/client"
	"gitlab.com/open-soft/go-volume-bot/src/model"
	"gitlab.com/open-soft/go-volume-bot/src/utils"
)

// PrecisionResolver derives price/quantity decimal precision and
// quantity bounds from exchange metadata. It never fails: anything
// unexpected in the payload degrades to the (8, 8) defaults.
type PrecisionResolver struct {
	ExchangeApi client.ExchangePriceAPIInterface
	Formatter   *utils.Formatter

	// Optional metadata cache, nil when Redis is not configured.
	RDB      *redis.Client
	Ctx      *context.Context
	CacheTTL time.Duration
}

func (p *PrecisionResolver) Resolve(symbol string) model.Precision {
	if cached := p.getCached(symbol); cached != nil {
		return *cached
	}

	exchangeInfo, err := p.ExchangeApi.GetExchangeInfo()
	if err != nil {
		log.Printf("[%s] Resolve precision: %s", symbol, err.Error())
		return model.DefaultPrecision()
	}

	for _, exchangeSymbol := range exchangeInfo.Symbols {
		if exchangeSymbol.Symbol != symbol {
			continue
		}

		precision := p.fromFilters(symbol, exchangeSymbol.Filters)
		p.setCached(symbol, precision)

		return precision
	}

	log.Printf("[%s] Resolve precision: symbol is not listed in exchangeInfo", symbol)

	return model.DefaultPrecision()
}

func (p *PrecisionResolver) fromFilters(symbol string, filters []model.ExchangeFilter) model.Precision {
	precision := model.DefaultPrecision()

	for _, filter := range filters {
		switch filter.FilterType {
		case model.ExchangeFilterTypePrice:
			value, err := p.Formatter.PrecisionFromStep(filter.TickSize)
			if err != nil {
				log.Printf("[%s] Resolve precision: tickSize %s: %s", symbol, filter.TickSize, err.Error())
				return model.DefaultPrecision()
			}
			precision.Price = value
		case model.ExchangeFilterTypeLotSize:
			value, err := p.Formatter.PrecisionFromStep(filter.StepSize)
			if err != nil {
				log.Printf("[%s] Resolve precision: stepSize %s: %s", symbol, filter.StepSize, err.Error())
				return model.DefaultPrecision()
			}
			precision.Quantity = value

			if filter.MinQuantity != nil {
				precision.MinQuantity = *filter.MinQuantity
			}
			if filter.MaxQuantity != nil {
				precision.MaxQuantity = *filter.MaxQuantity
			}
		}
	}

	return precision
}

func (p *PrecisionResolver) getCached(symbol string) *model.Precision {
	if p.RDB == nil {
		return nil
	}

	res := p.RDB.Get(*p.Ctx, p.cacheKey(symbol)).Val()
	if len(res) == 0 {
		return nil
	}

	var precision model.Precision
	if err := json.Unmarshal([]byte(res), &precision); err != nil {
		log.Printf("[%s] precision cache invalid", symbol)
		return nil
	}

	return &precision
}

func (p *PrecisionResolver) setCached(symbol string, precision model.Precision) {
	if p.RDB == nil {
		return
	}

	encoded, _ := json.Marshal(precision)
	p.RDB.Set(*p.Ctx, p.cacheKey(symbol), string(encoded), p.CacheTTL)
}

func (p *PrecisionResolver) cacheKey(symbol string) string {
	return fmt.Sprintf("symbol-precision-%s", symbol)
}
