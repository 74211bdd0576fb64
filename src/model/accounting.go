package model

type HourlyStat struct {
	Hour   int64   `json:"hour"`
	Volume float64 `json:"volume"`
	Trades int64   `json:"trades"`
	Behind bool    `json:"behind"`
}

// AccountingSnapshot is a read-only copy of the engine accounting
// state plus the derived reporting metrics.
type AccountingSnapshot struct {
	TotalVolume        float64      `json:"totalVolume"`
	TotalTrades        int64        `json:"totalTrades"`
	TotalFees          float64      `json:"totalFees"`
	HourVolume         float64      `json:"hourVolume"`
	HourTrades         int64        `json:"hourTrades"`
	HoursElapsed       float64      `json:"hoursElapsed"`
	HoursLeft          float64      `json:"hoursLeft"`
	VolumeRate         float64      `json:"volumeRate"`
	TradeRate          float64      `json:"tradeRate"`
	RequiredRate       float64      `json:"requiredRate"`
	ProgressPercent    float64      `json:"progressPercent"`
	ProjectedVolume    float64      `json:"projectedVolume"`
	FeePercentOfVolume float64      `json:"feePercentOfVolume"`
	HourlyStats        []HourlyStat `json:"hourlyStats"`
}
