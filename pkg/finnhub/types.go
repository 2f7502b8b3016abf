package finnhub

// TradeData is one trade entry in a Finnhub trade message, shared by the
// webhook payload and the WebSocket stream.
type TradeData struct {
	Symbol    string  `json:"s"` // e.g., "NVDA"
	Price     float64 `json:"p"` // last price
	Volume    int64   `json:"v"` // traded volume
	Timestamp int64   `json:"t"` // trade time (milliseconds since epoch)
}

// TradeMessage is the envelope for trade events: {"type":"trade","data":[...]}.
type TradeMessage struct {
	Type string      `json:"type"`
	Data []TradeData `json:"data"`
}

// WebhookRegistration is the request body for registering a webhook
// subscription for a symbol.
type WebhookRegistration struct {
	Symbol  string `json:"symbol"`
	Webhook string `json:"webhook"`
}
