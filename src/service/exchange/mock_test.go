package exchange

import (
	"time"

	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-volume-bot/src/model"
)

type ExchangePriceAPIMock struct {
	mock.Mock
}

func (m *ExchangePriceAPIMock) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ExchangePriceAPIMock) GetServerTime() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *ExchangePriceAPIMock) GetDepth(symbol string, limit int64) (*model.Depth, error) {
	args := m.Called(symbol, limit)
	depth := args.Get(0)
	if depth == nil {
		return nil, args.Error(1)
	}
	return depth.(*model.Depth), args.Error(1)
}

func (m *ExchangePriceAPIMock) GetExchangeInfo() (*model.ExchangeInfo, error) {
	args := m.Called()
	exchangeInfo := args.Get(0)
	if exchangeInfo == nil {
		return nil, args.Error(1)
	}
	return exchangeInfo.(*model.ExchangeInfo), args.Error(1)
}

type ExchangeOrderAPIMock struct {
	mock.Mock
}

func (m *ExchangeOrderAPIMock) LimitOrder(symbol string, side string, quantity string, price string, timeInForce string) (model.AsterOrder, error) {
	args := m.Called(symbol, side, quantity, price, timeInForce)
	return args.Get(0).(model.AsterOrder), args.Error(1)
}

func (m *ExchangeOrderAPIMock) CancelAllOrders(symbol string) error {
	args := m.Called(symbol)
	return args.Error(0)
}

type StatRecorderMock struct {
	mock.Mock
}

func (m *StatRecorderMock) WriteHourlyStat(symbol string, stat model.HourlyStat) error {
	args := m.Called(symbol, stat)
	return args.Error(0)
}

func (m *StatRecorderMock) WriteOrderRecord(record model.OrderRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

// timeServiceFake advances a virtual clock instead of sleeping so
// engine tests run instantly and deterministically.
type timeServiceFake struct {
	now    time.Time
	waited []int64
}

func (t *timeServiceFake) WaitMilliseconds(milliseconds int64) {
	t.waited = append(t.waited, milliseconds)
	t.now = t.now.Add(time.Duration(milliseconds) * time.Millisecond)
}

func (t *timeServiceFake) GetNow() time.Time {
	return t.now
}

func (t *timeServiceFake) GetNowUnix() int64 {
	return t.now.Unix()
}

func (t *timeServiceFake) GetNowDateTimeString() string {
	return t.now.Format("2006-01-02 15:04:05")
}
