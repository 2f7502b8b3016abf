// Command webhooksetup registers the configured webhook callback with
// Finnhub for every tracked symbol, or sends a synthetic trade batch to a
// deployed receiver with -test.
package main

import (
	"context"
	"flag"
	"time"

	"tradepipe/config"
	"tradepipe/logger"
	"tradepipe/pkg/finnhub"

	"go.uber.org/zap"
)

func main() {
	testURL := flag.String("test", "", "send a synthetic trade batch to this webhook URL instead of registering")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	client := finnhub.NewRESTClient(cfg.Finnhub.BaseURL, cfg.Finnhub.APIKey, cfg.Finnhub.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Finnhub.Timeout)
	defer cancel()

	if *testURL != "" {
		batch := []finnhub.TradeData{
			{Symbol: "NVDA", Price: 450.25, Volume: 1000, Timestamp: time.Now().UnixMilli()},
		}
		if err := client.SendTestBatch(ctx, *testURL, batch); err != nil {
			log.Fatal("test batch failed", zap.String("url", *testURL), zap.Error(err))
		}
		log.Info("test batch delivered", zap.String("url", *testURL))
		return
	}

	if cfg.Finnhub.APIKey == "" {
		log.Fatal("finnhub.api_key is not set")
	}
	if cfg.Finnhub.WebhookURL == "" {
		log.Fatal("finnhub.webhook_url is not set")
	}

	for _, symbol := range cfg.Market.Symbols {
		if err := client.RegisterWebhook(ctx, symbol, cfg.Finnhub.WebhookURL); err != nil {
			log.Fatal("webhook registration failed", zap.String("symbol", symbol), zap.Error(err))
		}
		log.Info("webhook registered",
			zap.String("symbol", symbol),
			zap.String("url", cfg.Finnhub.WebhookURL))
	}
}
