package finnhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type RESTClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRESTClient(baseURL, apiKey string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RESTClient) HTTPClient() *http.Client {
	return c.httpClient
}

// RegisterWebhook subscribes the given symbol's trade events to callbackURL.
func (c *RESTClient) RegisterWebhook(ctx context.Context, symbol, callbackURL string) error {
	endpoint := c.baseURL + "/webhook"

	body, err := json.Marshal(WebhookRegistration{
		Symbol:  symbol,
		Webhook: callbackURL,
	})
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}

	// Construct the POST request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Finnhub-Token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("finnhub error: %s", respBody)
	}

	return nil
}

// SendTestBatch posts a synthetic trade batch to targetURL, mimicking the
// Finnhub webhook delivery format. Used to smoke-test a deployed receiver.
func (c *RESTClient) SendTestBatch(ctx context.Context, targetURL string, trades []TradeData) error {
	body, err := json.Marshal(TradeMessage{
		Type: "trade",
		Data: trades,
	})
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("receiver error: %s", respBody)
	}

	return nil
}
