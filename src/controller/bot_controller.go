package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gitlab.com/open-soft/go-volume-bot/src/client"
	"gitlab.com/open-soft/go-volume-bot/src/service/exchange"
)

type BotController struct {
	ExchangeApi client.ExchangePriceAPIInterface
	Engine      *exchange.CycleEngine
	StartedAt   time.Time
}

func (b *BotController) GetHealthCheckAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	serverTime, err := b.ExchangeApi.GetServerTime()

	health := map[string]interface{}{
		"exchange":      "ok",
		"serverTime":    serverTime,
		"uptimeSeconds": int64(time.Since(b.StartedAt).Seconds()),
		"running":       b.Engine.IsRunning(),
	}

	if err != nil {
		health["exchange"] = err.Error()
	}

	encoded, _ := json.Marshal(health)
	fmt.Fprintf(w, "%s", string(encoded))
}

func (b *BotController) GetStatusAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	encoded, _ := json.Marshal(b.Engine.Snapshot())
	fmt.Fprintf(w, "%s", string(encoded))
}
