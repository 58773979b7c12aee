package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"journal-analyst/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		timestamp DATETIME,
		entry TEXT,
		notes TEXT,
		net REAL NOT NULL DEFAULT 0,
		risk_reward REAL,
		evidence INTEGER NOT NULL DEFAULT 0,
		setup TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_trades_timestamp ON trades(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);

	CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		trade_id TEXT,
		date DATETIME NOT NULL,
		content TEXT NOT NULL,
		mood TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_journal_date ON journal_entries(date DESC);

	CREATE TABLE IF NOT EXISTS dismissed_insights (
		insight_id TEXT PRIMARY KEY,
		dismissed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveTrade inserts or replaces a trade. An empty ID gets a generated one.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.Trade) error {
	if trade.ID == "" {
		trade.ID = uuid.NewString()
	}

	var timestamp interface{}
	if !trade.Timestamp.IsZero() {
		timestamp = trade.Timestamp.UTC()
	}

	var riskReward interface{}
	if trade.Metrics.RiskReward != nil {
		riskReward = *trade.Metrics.RiskReward
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades (id, symbol, timestamp, entry, notes, net, risk_reward, evidence, setup)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trade.ID, trade.Symbol, timestamp, trade.Entry, trade.Notes,
		trade.Metrics.Net, riskReward, trade.Evidence, trade.Setup,
	)
	if err != nil {
		return fmt.Errorf("saving trade %s: %w", trade.ID, err)
	}
	return nil
}

// GetTrades returns trades matching the filter, newest-first. Trades with
// no recorded timestamp sort last.
func (s *SQLiteStore) GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error) {
	query := `SELECT id, symbol, timestamp, entry, notes, net, risk_reward, evidence, setup FROM trades WHERE 1=1`
	var args []interface{}

	if filter.Symbol != "" {
		query += " AND symbol = ?"
		args = append(args, filter.Symbol)
	}
	if !filter.StartDate.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.StartDate.UTC())
	}
	if !filter.EndDate.IsZero() {
		query += " AND timestamp < ?"
		args = append(args, filter.EndDate.UTC())
	}

	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trades: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		var timestamp sql.NullTime
		var entry, notes, setup sql.NullString
		var riskReward sql.NullFloat64

		if err := rows.Scan(&t.ID, &t.Symbol, &timestamp, &entry, &notes, &t.Metrics.Net, &riskReward, &t.Evidence, &setup); err != nil {
			return nil, fmt.Errorf("scanning trade: %w", err)
		}

		if timestamp.Valid {
			t.Timestamp = timestamp.Time.Local()
		}
		t.Entry = entry.String
		t.Notes = notes.String
		t.Setup = setup.String
		if riskReward.Valid {
			rr := riskReward.Float64
			t.Metrics.RiskReward = &rr
		}

		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// SaveJournalEntry inserts or replaces a journal entry.
func (s *SQLiteStore) SaveJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO journal_entries (id, trade_id, date, content, mood)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.TradeID, entry.Date.UTC(), entry.Content, entry.Mood,
	)
	if err != nil {
		return fmt.Errorf("saving journal entry %s: %w", entry.ID, err)
	}
	return nil
}

// GetJournal returns journal entries matching the filter, newest-first.
func (s *SQLiteStore) GetJournal(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error) {
	query := `SELECT id, trade_id, date, content, mood, created_at FROM journal_entries WHERE 1=1`
	var args []interface{}

	if filter.TradeID != "" {
		query += " AND trade_id = ?"
		args = append(args, filter.TradeID)
	}
	if !filter.StartDate.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.UTC())
	}
	if !filter.EndDate.IsZero() {
		query += " AND date < ?"
		args = append(args, filter.EndDate.UTC())
	}

	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		var tradeID, mood sql.NullString
		var createdAt sql.NullTime

		if err := rows.Scan(&e.ID, &tradeID, &e.Date, &e.Content, &mood, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}

		e.TradeID = tradeID.String
		e.Mood = mood.String
		e.Date = e.Date.Local()
		if createdAt.Valid {
			e.CreatedAt = createdAt.Time.Local()
		}

		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DismissInsight records an insight kind as dismissed.
func (s *SQLiteStore) DismissInsight(ctx context.Context, insightID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO dismissed_insights (insight_id) VALUES (?)`, insightID)
	if err != nil {
		return fmt.Errorf("dismissing insight %s: %w", insightID, err)
	}
	return nil
}

// GetDismissedInsights returns all dismissed insight IDs.
func (s *SQLiteStore) GetDismissedInsights(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT insight_id FROM dismissed_insights`)
	if err != nil {
		return nil, fmt.Errorf("querying dismissed insights: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning dismissed insight: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
