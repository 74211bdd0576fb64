package model

const ExchangeFilterTypePrice = "PRICE_FILTER"
const ExchangeFilterTypeLotSize = "LOT_SIZE"

type ExchangeFilter struct {
	FilterType  string   `json:"filterType"`
	TickSize    string   `json:"tickSize"`
	StepSize    string   `json:"stepSize"`
	MinQuantity *float64 `json:"minQty,string"`
	MaxQuantity *float64 `json:"maxQty,string"`
}

type ExchangeSymbol struct {
	Symbol  string           `json:"symbol"`
	Status  string           `json:"status"`
	Filters []ExchangeFilter `json:"filters"`
}

type ExchangeInfo struct {
	Timezone   string           `json:"timezone"`
	ServerTime int64            `json:"serverTime"`
	Symbols    []ExchangeSymbol `json:"symbols"`
}

type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// Precision holds per-symbol decimal precision and quantity bounds.
type Precision struct {
	Price       int     `json:"price"`
	Quantity    int     `json:"quantity"`
	MinQuantity float64 `json:"minQuantity"`
	MaxQuantity float64 `json:"maxQuantity"`
}

// DefaultPrecision is the safe fallback when exchange metadata is
// unavailable or malformed.
func DefaultPrecision() Precision {
	return Precision{
		Price:    8,
		Quantity: 8,
	}
}
