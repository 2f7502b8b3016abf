package postgres

import (
	"context"

	"tradepipe/internal/market/window"
)

// SaveTrade persists one accepted trade. It satisfies the persist.Store
// interface used by the background writer.
func (p *Client) SaveTrade(ctx context.Context, t window.Trade) error {
	return p.InsertTrade(ctx, ToTradeRecord(t))
}

func (p *Client) InsertTrade(ctx context.Context, record *TradeRecord) error {
	return p.DB.WithContext(ctx).Create(record).Error
}

// RecentTrades returns up to limit records for the symbol, newest first.
func (p *Client) RecentTrades(ctx context.Context, symbol string, limit int) ([]TradeRecord, error) {
	var trades []TradeRecord
	err := p.DB.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("timestamp DESC").
		Limit(limit).
		Find(&trades).Error

	if err != nil {
		return nil, err
	}
	return trades, nil
}

// DeleteOldTrades removes records with an exchange timestamp before the
// given epoch milliseconds. Retention is an operator concern, not part of
// the ingestion path.
func (p *Client) DeleteOldTrades(ctx context.Context, beforeMs int64) error {
	return p.DB.WithContext(ctx).
		Where("timestamp < ?", beforeMs).
		Delete(&TradeRecord{}).Error
}

// ToTradeRecord converts an enriched trade into its DB row.
func ToTradeRecord(t window.Trade) *TradeRecord {
	return &TradeRecord{
		Symbol:      t.Symbol,
		Price:       t.Price,
		Volume:      t.Volume,
		Timestamp:   t.Timestamp,
		Datetime:    t.Datetime,
		ProcessedAt: t.ProcessedAt,
	}
}
