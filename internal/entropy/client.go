package entropy

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Client is a Source backed by random.org true randomness with a local
// pool. Falls back to crypto/rand when the API is unavailable.
type Client struct {
	apiKey string
	client *http.Client

	mu   sync.Mutex
	pool []float64
}

// NewClient creates a random.org client. Returns nil if apiKey is empty; a
// nil *Client is still a usable Source via the crypto/rand fallback.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Intn returns a uniform integer in [0, n). Uses the pool, refilling from
// random.org when low. Falls back to crypto/rand on API failure.
func (c *Client) Intn(n int) int {
	if c == nil {
		return CryptoIntn(n)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < 10 {
		c.refill()
	}

	if len(c.pool) == 0 {
		return CryptoIntn(n)
	}

	val := c.pool[0]
	c.pool = c.pool[1:]
	return int(val * float64(n))
}

func (c *Client) refill() {
	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "generateDecimalFractions",
		"params": map[string]any{
			"apiKey":        c.apiKey,
			"n":             100,
			"decimalPlaces": 6,
		},
		"id": 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		slog.Debug("random.org marshal failed", "error", err)
		return
	}

	resp, err := c.client.Post("https://api.random.org/json-rpc/4/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Debug("random.org fetch failed", "error", err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("random.org read failed", "error", err)
		return
	}

	var result struct {
		Result struct {
			Random struct {
				Data []float64 `json:"data"`
			} `json:"random"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		slog.Debug("random.org parse failed", "error", err)
		return
	}

	if result.Error != nil {
		slog.Debug("random.org API error", "error", result.Error.Message)
		return
	}

	c.pool = append(c.pool, result.Result.Random.Data...)
	slog.Debug("random.org pool refilled", "count", len(result.Result.Random.Data))
}
