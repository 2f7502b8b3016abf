package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tradepipe/internal/market/ingest"
	"tradepipe/pkg/finnhub"

	"github.com/gin-gonic/gin"
)

// handleWebhook accepts a Finnhub-style trade batch. Per-tick validation
// failures degrade to partial success; only an unreadable body is a 400.
func (s *Server) handleWebhook(c *gin.Context) {
	var msg finnhub.TradeMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no data received"})
		return
	}

	ticks := make([]ingest.RawTick, 0, len(msg.Data))
	for _, d := range msg.Data {
		ticks = append(ticks, ingest.RawTick{
			Symbol:    d.Symbol,
			Price:     d.Price,
			Volume:    d.Volume,
			Timestamp: d.Timestamp,
		})
	}

	res := s.ingestor.IngestBatch(ticks)

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"processed_trades": res.Accepted,
		"trades":           res.Trades,
		"skipped":          res.Skipped,
	})
}

func (s *Server) handleStats(c *gin.Context) {
	summary := s.ingestor.CurrentStats()
	if summary.TotalTrades == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no trades data available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_trades":  summary.TotalTrades,
		"total_volume":  summary.TotalVolume,
		"latest_price":  summary.LatestPrice,
		"highest_price": summary.HighestPrice,
		"lowest_price":  summary.LowestPrice,
		"average_price": summary.AveragePrice,
		"price_range":   summary.PriceRange,
		"last_updated":  time.Now().UTC().Format(time.RFC3339),
	})
}

// handleRecentTrades returns up to ?limit= trades in chronological order,
// oldest first.
func (s *Server) handleRecentTrades(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		limit = 10
	}

	trades := s.ingestor.RecentTrades(limit)
	_, total := s.ingestor.WindowCounts()

	c.JSON(http.StatusOK, gin.H{
		"trades":          trades,
		"count":           len(trades),
		"total_available": total,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	resp := gin.H{
		"status":    "healthy",
		"service":   "tradepipe",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if s.db.IsHealthy(ctx) {
			resp["database"] = "healthy"
		} else {
			resp["database"] = "unreachable"
		}
	}

	c.JSON(http.StatusOK, resp)
}
