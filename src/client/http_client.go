package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type HttpClientInterface interface {
	Get(url string, headers map[string]string) ([]byte, error)
	PostForm(url string, payload string, headers map[string]string) ([]byte, error)
	Delete(url string, headers map[string]string) ([]byte, error)
}

// HttpClient wraps raw exchange calls with bounded timeouts. Market
// data reads use ReadTimeout, signed order calls use WriteTimeout.
// Retry policy belongs to callers, never to this client.
type HttpClient struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (h *HttpClient) Get(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	return h.do(req, headers, h.readTimeout())
}

func (h *HttpClient) PostForm(url string, payload string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("POST", url, strings.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return h.do(req, headers, h.writeTimeout())
}

func (h *HttpClient) Delete(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("DELETE", url, nil)
	if err != nil {
		return nil, err
	}

	return h.do(req, headers, h.writeTimeout())
}

func (h *HttpClient) do(req *http.Request, headers map[string]string, timeout time.Duration) ([]byte, error) {
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	client := &http.Client{
		Timeout: timeout,
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	responseBody, err := io.ReadAll(res.Body)
	defer res.Body.Close()

	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 400 {
		return responseBody, errors.New(fmt.Sprintf("Request [%s] failed with error code: %d", req.URL.String(), res.StatusCode))
	}

	return responseBody, nil
}

func (h *HttpClient) readTimeout() time.Duration {
	if h.ReadTimeout > 0 {
		return h.ReadTimeout
	}

	return time.Second * 5
}

func (h *HttpClient) writeTimeout() time.Duration {
	if h.WriteTimeout > 0 {
		return h.WriteTimeout
	}

	return time.Second * 7
}
