package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthUnmarshal(t *testing.T) {
	assertion := assert.New(t)

	content := []byte(`{
		"lastUpdateId": 1027024,
		"bids": [["99.98", "10.5"], ["99.97", "3"]],
		"asks": [["100.02", "1.2"]]
	}`)

	var depth Depth
	err := json.Unmarshal(content, &depth)

	assertion.NoError(err)
	assertion.False(depth.IsEmpty())
	assertion.Equal(99.98, depth.GetBestBid())
	assertion.Equal(100.02, depth.GetBestAsk())
}

func TestDepthToSnapshot(t *testing.T) {
	assertion := assert.New(t)

	depth := Depth{
		Bids: [][2]Number{{99.98, 10.5}},
		Asks: [][2]Number{{100.02, 1.2}},
	}

	snapshot := depth.ToSnapshot("ETHUSDT")

	assertion.NotNil(snapshot)
	assertion.Equal("ETHUSDT", snapshot.Symbol)
	assertion.Equal(99.98, snapshot.BestBid)
	assertion.Equal(100.02, snapshot.BestAsk)
	assertion.InDelta(100.00, snapshot.MidPrice, 0.000001)
	assertion.InDelta(0.04, snapshot.SpreadPct, 0.000001)
}

func TestDepthToSnapshotEmptyBook(t *testing.T) {
	assertion := assert.New(t)

	depth := Depth{
		Bids: [][2]Number{},
		Asks: [][2]Number{{100.02, 1.2}},
	}

	assertion.Nil(depth.ToSnapshot("ETHUSDT"))
}

func TestDepthToSnapshotZeroBid(t *testing.T) {
	assertion := assert.New(t)

	depth := Depth{
		Bids: [][2]Number{{0, 1}},
		Asks: [][2]Number{{100.02, 1.2}},
	}

	assertion.Nil(depth.ToSnapshot("ETHUSDT"))
}

func TestNumberAcceptsStringAndFloat(t *testing.T) {
	assertion := assert.New(t)

	var fromString Number
	assertion.NoError(json.Unmarshal([]byte(`"12.5"`), &fromString))
	assertion.Equal(12.5, fromString.Value())

	var fromFloat Number
	assertion.NoError(json.Unmarshal([]byte(`12.5`), &fromFloat))
	assertion.Equal(12.5, fromFloat.Value())
}

func TestDepthStreamEventToDepth(t *testing.T) {
	assertion := assert.New(t)

	content := []byte(`{
		"e": "depthUpdate",
		"s": "ETHUSDT",
		"E": 1700000000000,
		"b": [["2000.10", "5"]],
		"a": [["2000.30", "7"]]
	}`)

	var event DepthStreamEvent
	assertion.NoError(json.Unmarshal(content, &event))

	depth := event.ToDepth()
	assertion.Equal(2000.10, depth.GetBestBid())
	assertion.Equal(2000.30, depth.GetBestAsk())
}
