package model

const SideBuy = "BUY"
const SideSell = "SELL"

const OrderTypeLimit = "LIMIT"

const TimeInForceGTC = "GTC"
const TimeInForcePostOnly = "PostOnly"

type ApiError struct {
	Code    int64  `json:"code"`
	Message string `json:"msg"`
}

type AsterOrder struct {
	OrderId       int64   `json:"orderId"`
	ClientOrderId string  `json:"clientOrderId"`
	Symbol        string  `json:"symbol"`
	Status        string  `json:"status"`
	Price         float64 `json:"price,string"`
	OrigQty       float64 `json:"origQty,string"`
	Side          string  `json:"side"`
	Type          string  `json:"type"`
	TimeInForce   string  `json:"timeInForce"`
	UpdateTime    int64   `json:"updateTime"`
}

func (o *AsterOrder) IsPlaced() bool {
	return o.OrderId > 0
}

// OrderRecord is an entry of the engine's active-order registry.
// Entries are dropped en masse on the next cycle's cancel-all call.
type OrderRecord struct {
	OrderId  int64   `json:"orderId"`
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	PlacedAt int64   `json:"placedAt"`
}
