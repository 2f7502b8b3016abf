package main

import (
	"tradepipe/config"
	"tradepipe/internal/feed/stream"
	"tradepipe/internal/market/alert"
	"tradepipe/internal/market/ingest"
	"tradepipe/internal/market/window"
	"tradepipe/internal/persist"
	"tradepipe/internal/server"
	"tradepipe/logger"
	"tradepipe/pkg/finnhub"
	"tradepipe/pkg/storage/postgres"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// Postgres is a best-effort side effect; the pipeline runs without it.
	var (
		db     *postgres.Client
		writer *persist.Writer
	)
	db, err = postgres.InitializeAndMigrateTradeRecord(cfg.Postgres, cfg.Log.Environment, true)
	if err != nil {
		log.Warn("starting without persistence", zap.Error(err))
		db = nil
	} else {
		writer = persist.NewWriter(db, cfg.Market.PersistQueue, log)
		defer writer.Close()
	}

	// Assemble the pipeline
	win := window.New(cfg.Market.PriceWindow, cfg.Market.TradeWindow)
	evaluator := alert.NewEvaluator(thresholdMap(cfg.Market.Thresholds), cfg.Market.SpikePercent)

	var persister ingest.Persister
	if writer != nil {
		persister = writer
	}
	ingestor := ingest.New(win, evaluator, persister, cfg.Market.Symbols, log)

	// Optional WebSocket trade stream alongside the webhook receiver
	if cfg.Finnhub.Stream {
		wsURL := cfg.Finnhub.WSURL + "?token=" + cfg.Finnhub.APIKey
		wsClient := finnhub.NewWSClient(wsURL, cfg.Market.Symbols, log)
		wsClient.SetMessageHandler(stream.MakeMessageHandler(log, ingestor))

		if err := wsClient.Connect(); err != nil {
			log.Warn("trade stream unavailable", zap.Error(err))
		} else {
			go wsClient.Listen()
		}
	}

	srv := server.New(cfg.Server, ingestor, db, log)
	if err := srv.Run(); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func thresholdMap(src map[string]config.Threshold) map[string]alert.Thresholds {
	out := make(map[string]alert.Thresholds, len(src))
	for symbol, t := range src {
		out[symbol] = alert.Thresholds{High: t.High, Low: t.Low}
	}
	return out
}
