package stream

import (
	"encoding/json"

	"tradepipe/internal/market/ingest"
	"tradepipe/pkg/finnhub"

	"go.uber.org/zap"
)

// MakeMessageHandler returns a function that handles incoming WebSocket
// messages by parsing trade events and feeding them into the ingestor.
// Non-trade messages (pings, subscription acks) are ignored.
func MakeMessageHandler(logger *zap.Logger, ingestor *ingest.Ingestor) func(msg []byte) {
	return func(msg []byte) {
		// Step 1: Extract message type for early filtering
		var meta struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &meta); err != nil {
			logger.Warn("failed to extract message type", zap.Error(err))
			return
		}
		if meta.Type != "trade" {
			return
		}

		// Step 2: Fully parse the trade payload
		var parsed finnhub.TradeMessage
		if err := json.Unmarshal(msg, &parsed); err != nil {
			logger.Warn("failed to parse trade payload", zap.Error(err))
			return
		}

		// Step 3: Run the batch through the pipeline
		ticks := make([]ingest.RawTick, 0, len(parsed.Data))
		for _, d := range parsed.Data {
			ticks = append(ticks, ingest.RawTick{
				Symbol:    d.Symbol,
				Price:     d.Price,
				Volume:    d.Volume,
				Timestamp: d.Timestamp,
			})
		}

		res := ingestor.IngestBatch(ticks)
		if len(res.Skipped) > 0 {
			logger.Warn("stream batch partially skipped",
				zap.Int("accepted", res.Accepted),
				zap.Int("skipped", len(res.Skipped)))
		}
	}
}
