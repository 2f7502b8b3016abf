package postgres

import "time"

// TradeRecord represents one accepted trade stored in the database. The
// table is append-only; records are never updated by the pipeline.
type TradeRecord struct {
	ID uint `gorm:"primaryKey"`

	Symbol    string  `gorm:"type:text;not null;index:idx_trade_symbol"`
	Price     float64 `gorm:"type:numeric;not null"`
	Volume    int64   `gorm:"not null"`
	Timestamp int64   `gorm:"not null;index:idx_trade_timestamp"` // exchange time (milliseconds since epoch)
	Datetime  string  `gorm:"type:text;not null"`                 // exchange time as RFC 3339

	ProcessedAt time.Time `gorm:"not null"`
	RecordedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (TradeRecord) TableName() string {
	return "trade_record"
}
