// Package litcache is a sqlite-backed read-through cache for
// literature search results. It wraps any searcher so repeated
// degradation runs against the same query skip the network. Only
// non-empty result sets are cached: a level that previously failed
// must still be retried on the next diagnosis.
package litcache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agrovista/agridiag/pkg/agridiag/query"
)

// Store is a caching searcher backed by sqlite.
type Store struct {
	db   *sql.DB
	next query.Searcher
}

// Open opens (creating if needed) the cache database at path, with
// WAL mode enabled, and wraps the given searcher.
func Open(ctx context.Context, path string, next query.Searcher) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, next: next}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS searches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	query TEXT NOT NULL,
	max_results INTEGER NOT NULL,
	fetched_at TEXT NOT NULL,
	UNIQUE(query, max_results)
);

CREATE TABLE IF NOT EXISTS articles (
	search_id INTEGER NOT NULL,
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	abstract TEXT NOT NULL,
	PRIMARY KEY(search_id, position),
	FOREIGN KEY(search_id) REFERENCES searches(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Search returns cached articles for the query when present,
// otherwise delegates to the wrapped searcher and stores any
// non-empty result. Cache write failures are not fatal: the fetched
// articles are still returned.
func (s *Store) Search(ctx context.Context, q string, maxResults int) ([]query.Article, error) {
	if cached, ok, err := s.lookup(ctx, q, maxResults); err == nil && ok {
		return cached, nil
	}

	articles, err := s.next.Search(ctx, q, maxResults)
	if err != nil || len(articles) == 0 {
		return articles, err
	}

	if err := s.store(ctx, q, maxResults, articles); err != nil {
		return articles, nil
	}
	return articles, nil
}

func (s *Store) lookup(ctx context.Context, q string, maxResults int) ([]query.Article, bool, error) {
	var searchID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM searches WHERE query = ? AND max_results = ?`,
		q, maxResults).Scan(&searchID)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, abstract FROM articles WHERE search_id = ? ORDER BY position`,
		searchID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var articles []query.Article
	for rows.Next() {
		var a query.Article
		if err := rows.Scan(&a.Title, &a.Abstract); err != nil {
			return nil, false, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	// An empty cached set would shadow levels that must be retried.
	if len(articles) == 0 {
		return nil, false, nil
	}
	return articles, true, nil
}

func (s *Store) store(ctx context.Context, q string, maxResults int, articles []query.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO searches (query, max_results, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(query, max_results) DO UPDATE SET fetched_at = excluded.fetched_at`,
		q, maxResults, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upsert search: %w", err)
	}

	// LastInsertId is unreliable across the upsert's update path, so
	// read the row id back.
	var searchID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM searches WHERE query = ? AND max_results = ?`,
		q, maxResults).Scan(&searchID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE search_id = ?`, searchID); err != nil {
		return err
	}
	for i, a := range articles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles (search_id, position, title, abstract) VALUES (?, ?, ?, ?)`,
			searchID, i, a.Title, a.Abstract); err != nil {
			return fmt.Errorf("insert article: %w", err)
		}
	}

	return tx.Commit()
}
