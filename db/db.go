package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/okbaghel/devfolio/model"

	_ "github.com/mattn/go-sqlite3"
)

// Visits older than this are dropped by Prune.
const Retention = 365 * 24 * time.Hour

type SQLiteStorage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db}
}

func InitDbStorage(db *sql.DB) error {
	statements := []string{
		`create table if not exists visits(hashed_ip text not null, user_agent text, path text, ts datetime);`,
		`create index if not exists visits_tsix on visits (ts ASC);`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not run %q: %w", stmt, err)
		}
	}

	return nil
}

// ConnectDB opens (creating if needed) the sqlite file at path. Use ":memory:" in tests.
func ConnectDB(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// a single connection keeps ":memory:" databases shared between calls
	db.SetMaxOpenConns(1)

	if err := InitDbStorage(db); err != nil {
		db.Close()

		return nil, err
	}

	return NewStorage(db), nil
}

func (s *SQLiteStorage) Store(visit *model.Visit) error {
	ts := visit.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.db.Exec(`insert into visits(hashed_ip, user_agent, path, ts) values(?, ?, ?, ?)`,
		visit.HashedIP, visit.UserAgent, visit.Path, ts.UTC())
	if err != nil {
		return fmt.Errorf("could not store visit: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Summary() (model.VisitSummary, error) {
	var summary model.VisitSummary

	err := s.db.QueryRow(`select count(*), count(distinct hashed_ip) from visits`).
		Scan(&summary.Total, &summary.Unique)
	if err != nil {
		return summary, fmt.Errorf("could not count visits: %w", err)
	}

	rows, err := s.db.Query(
		`select path, count(*) as cnt
        from visits
        group by path
        order by cnt desc, path`)
	if err != nil {
		return summary, fmt.Errorf("could not group visits: %w", err)
	}

	defer rows.Close()

	summary.Paths = make([]model.PathCount, 0)

	for rows.Next() {
		var pc model.PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return summary, fmt.Errorf("could not scan visit row: %w", err)
		}

		summary.Paths = append(summary.Paths, pc)
	}

	return summary, rows.Err()
}

// Prune deletes visits older than the retention window and returns how many went.
func (s *SQLiteStorage) Prune(now time.Time) (int64, error) {
	result, err := s.db.Exec(`delete from visits where ts < ?`, now.Add(-Retention).UTC())
	if err != nil {
		return 0, fmt.Errorf("could not prune visits: %w", err)
	}

	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		slog.Info("Pruned old visits", "count", deleted)
	}

	return deleted, nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("Failed to close storage", "error", err)
	}
}
