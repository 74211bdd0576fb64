package model

import "time"

type Depth struct {
	LastUpdateId int64       `json:"lastUpdateId"`
	Bids         [][2]Number `json:"bids"`
	Asks         [][2]Number `json:"asks"`
}

func (d *Depth) IsEmpty() bool {
	return len(d.Bids) == 0 || len(d.Asks) == 0
}

func (d *Depth) GetBestBid() float64 {
	if len(d.Bids) > 0 {
		return d.Bids[0][0].Value()
	}

	return 0.00
}

func (d *Depth) GetBestAsk() float64 {
	if len(d.Asks) > 0 {
		return d.Asks[0][0].Value()
	}

	return 0.00
}

// OrderBookSnapshot is immutable once constructed, one snapshot
// drives exactly one quoting cycle.
type OrderBookSnapshot struct {
	Symbol    string  `json:"symbol"`
	BestBid   float64 `json:"bestBid"`
	BestAsk   float64 `json:"bestAsk"`
	MidPrice  float64 `json:"midPrice"`
	SpreadPct float64 `json:"spreadPct"`
	Timestamp int64   `json:"timestamp"`
}

func (d *Depth) ToSnapshot(symbol string) *OrderBookSnapshot {
	if d.IsEmpty() {
		return nil
	}

	bestBid := d.GetBestBid()
	bestAsk := d.GetBestAsk()

	if bestBid <= 0.00 || bestAsk <= 0.00 {
		return nil
	}

	midPrice := (bestBid + bestAsk) / 2.00

	return &OrderBookSnapshot{
		Symbol:    symbol,
		BestBid:   bestBid,
		BestAsk:   bestAsk,
		MidPrice:  midPrice,
		SpreadPct: ((bestAsk - bestBid) / midPrice) * 100.00,
		Timestamp: time.Now().UnixMilli(),
	}
}

// DepthStreamEvent is the partial book depth payload of the
// <symbol>@depth5 futures stream.
type DepthStreamEvent struct {
	Event     string      `json:"e"`
	Symbol    string      `json:"s"`
	Timestamp int64       `json:"E"`
	Bids      [][2]Number `json:"b"`
	Asks      [][2]Number `json:"a"`
}

func (e *DepthStreamEvent) ToDepth() Depth {
	return Depth{
		Bids: e.Bids,
		Asks: e.Asks,
	}
}
