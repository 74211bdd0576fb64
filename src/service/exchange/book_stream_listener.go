package exchange

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gitlab.com/open-soft/go-volume-bot/src/client"
	"gitlab.com/open-soft/go-volume-bot/src/model"
)

// BookStreamListener keeps the latest partial book snapshot from the
// <symbol>@depth5 stream so the engine can skip the REST round trip.
type BookStreamListener struct {
	Symbol string

	snapshot     *model.OrderBookSnapshot
	snapshotLock sync.RWMutex
}

// Start connects to the stream and consumes depth events until the
// process exits. Reconnection is handled by the websocket client.
func (l *BookStreamListener) Start(wsDsn string) {
	address := fmt.Sprintf("%s/ws/%s@depth5@100ms", wsDsn, strings.ToLower(l.Symbol))
	eventChannel := make(chan []byte)

	client.Listen(address, eventChannel, 1)

	go func() {
		for message := range eventChannel {
			var event model.DepthStreamEvent
			if err := json.Unmarshal(message, &event); err != nil {
				log.Printf("[%s] depth stream: %s", l.Symbol, err.Error())
				continue
			}

			depth := event.ToDepth()
			if snapshot := depth.ToSnapshot(l.Symbol); snapshot != nil {
				l.snapshotLock.Lock()
				l.snapshot = snapshot
				l.snapshotLock.Unlock()
			}
		}
	}()
}

// GetSnapshot returns the latest stream snapshot, or nil when none
// arrived within maxAge so callers fall back to REST.
func (l *BookStreamListener) GetSnapshot(maxAge time.Duration) *model.OrderBookSnapshot {
	l.snapshotLock.RLock()
	defer l.snapshotLock.RUnlock()

	if l.snapshot == nil {
		return nil
	}

	if time.Now().UnixMilli()-l.snapshot.Timestamp > maxAge.Milliseconds() {
		return nil
	}

	return l.snapshot
}
