package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	uuid2 "github.com/google/uuid"
	"gitlab.com/open-soft/go-volume-bot/src/model"
)

const recvWindow = 5000

type ExchangePriceAPIInterface interface {
	Ping() error
	GetServerTime() (int64, error)
	GetDepth(symbol string, limit int64) (*model.Depth, error)
	GetExchangeInfo() (*model.ExchangeInfo, error)
}

type ExchangeOrderAPIInterface interface {
	LimitOrder(symbol string, side string, quantity string, price string, timeInForce string) (model.AsterOrder, error)
	CancelAllOrders(symbol string) error
}

// QueryParam is a single request parameter. Signed requests are
// canonicalized in the order the parameters are given.
type QueryParam struct {
	Key   string
	Value string
}

// Aster talks to the fapi-compatible REST surface of asterdex.com.
type Aster struct {
	ApiKey     string
	ApiSecret  string
	DSN        string
	HttpClient HttpClientInterface
}

func (a *Aster) Ping() error {
	_, err := a.HttpClient.Get(fmt.Sprintf("%s/fapi/v1/ping", a.DSN), nil)

	return err
}

func (a *Aster) GetServerTime() (int64, error) {
	result, err := a.HttpClient.Get(fmt.Sprintf("%s/fapi/v1/time", a.DSN), nil)
	if err != nil {
		return 0, err
	}

	var serverTime model.ServerTime
	err = json.Unmarshal(result, &serverTime)
	if err != nil {
		return 0, err
	}

	return serverTime.ServerTime, nil
}

func (a *Aster) GetDepth(symbol string, limit int64) (*model.Depth, error) {
	queryString := BuildQuery([]QueryParam{
		{"symbol", symbol},
		{"limit", strconv.FormatInt(limit, 10)},
	})

	result, err := a.HttpClient.Get(fmt.Sprintf("%s/fapi/v1/depth?%s", a.DSN, queryString), nil)
	if err != nil {
		return nil, err
	}

	var depth model.Depth
	err = json.Unmarshal(result, &depth)
	if err != nil {
		log.Printf("[%s] GetDepth: %s", symbol, err.Error())
		return nil, err
	}

	return &depth, nil
}

func (a *Aster) GetExchangeInfo() (*model.ExchangeInfo, error) {
	result, err := a.HttpClient.Get(fmt.Sprintf("%s/fapi/v1/exchangeInfo", a.DSN), nil)
	if err != nil {
		return nil, err
	}

	var exchangeInfo model.ExchangeInfo
	err = json.Unmarshal(result, &exchangeInfo)
	if err != nil {
		log.Printf("GetExchangeInfo: %s", err.Error())
		return nil, err
	}

	return &exchangeInfo, nil
}

func (a *Aster) LimitOrder(symbol string, side string, quantity string, price string, timeInForce string) (model.AsterOrder, error) {
	var order model.AsterOrder

	payload := a.SignQuery([]QueryParam{
		{"symbol", symbol},
		{"side", side},
		{"type", model.OrderTypeLimit},
		{"timeInForce", timeInForce},
		{"quantity", quantity},
		{"price", price},
		{"newClientOrderId", uuid2.New().String()},
		{"timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10)},
		{"recvWindow", strconv.FormatInt(recvWindow, 10)},
	})

	result, err := a.HttpClient.PostForm(fmt.Sprintf("%s/fapi/v1/order", a.DSN), payload, a.GetHeaders())
	if err != nil {
		return order, a.apiError(result, err)
	}

	err = json.Unmarshal(result, &order)
	if err != nil {
		log.Printf("[%s] LimitOrder: %s", symbol, err.Error())
		return order, err
	}

	if !order.IsPlaced() {
		return order, errors.New(fmt.Sprintf("[%s] order was not accepted: %s", symbol, string(result)))
	}

	return order, nil
}

func (a *Aster) CancelAllOrders(symbol string) error {
	queryString := a.SignQuery([]QueryParam{
		{"symbol", symbol},
		{"timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10)},
		{"recvWindow", strconv.FormatInt(recvWindow, 10)},
	})

	result, err := a.HttpClient.Delete(fmt.Sprintf("%s/fapi/v1/allOpenOrders?%s", a.DSN, queryString), a.GetHeaders())
	if err != nil {
		return a.apiError(result, err)
	}

	return nil
}

// BuildQuery URL-encodes parameters keeping the given ordering,
// repeated keys included.
func BuildQuery(params []QueryParam) string {
	parts := make([]string, 0, len(params))

	for _, param := range params {
		parts = append(parts, fmt.Sprintf("%s=%s", url.QueryEscape(param.Key), url.QueryEscape(param.Value)))
	}

	return strings.Join(parts, "&")
}

// Sign computes the HMAC-SHA256 signature over the canonical query.
func (a *Aster) Sign(queryString string) string {
	mac := hmac.New(sha256.New, []byte(a.ApiSecret))
	mac.Write([]byte(queryString))

	return hex.EncodeToString(mac.Sum(nil))
}

// SignQuery appends the signature as the trailing parameter.
func (a *Aster) SignQuery(params []QueryParam) string {
	queryString := BuildQuery(params)

	return fmt.Sprintf("%s&signature=%s", queryString, a.Sign(queryString))
}

func (a *Aster) GetHeaders() map[string]string {
	return map[string]string{
		"X-MBX-APIKEY": a.ApiKey,
	}
}

func (a *Aster) apiError(result []byte, err error) error {
	if len(result) == 0 {
		return err
	}

	var apiError model.ApiError
	if json.Unmarshal(result, &apiError) == nil && apiError.Message != "" {
		return errors.New(apiError.Message)
	}

	return err
}
