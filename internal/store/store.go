// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"journal-analyst/internal/models"
)

// DataStore defines the interface for data persistence. It is the external
// collaborator that supplies the analytics engine's inputs; the engine
// itself never touches storage.
type DataStore interface {
	// Trades
	SaveTrade(ctx context.Context, trade *models.Trade) error
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error)

	// Journal
	SaveJournalEntry(ctx context.Context, entry *models.JournalEntry) error
	GetJournal(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error)

	// Insight dismissals. The engine regenerates insights with stable IDs
	// and holds no memory of dismissals, so the caller records them here
	// and filters regenerated output.
	DismissInsight(ctx context.Context, insightID string) error
	GetDismissedInsights(ctx context.Context) ([]string, error)

	// Lifecycle
	Close() error
}

// TradeFilter represents filters for querying trades. Results are always
// ordered newest-first, the ordering the alert generator assumes.
type TradeFilter struct {
	Symbol    string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}

// JournalFilter represents filters for querying journal entries.
type JournalFilter struct {
	TradeID   string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
