// Package db persists news items in a local SQLite database with upsert
// semantics keyed by the stable item id.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newshub/models"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
	log "github.com/sirupsen/logrus"
)

// loadLimit caps LoadAll to bound memory use; the interface never needs more
// than the most recent items.
const loadLimit = 500

// DB owns the database handle. It is lent by reference to the session and
// must only be touched from the main loop.
type DB struct {
	db *sql.DB
}

// Open creates parent directories as needed, runs migrations and opens the
// database. Failures here are fatal to startup.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	if err := Migrate(path); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := connection(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Upsert inserts a new item or, on id conflict, updates everything except id
// and published. The publish date is treated as immutable once recorded;
// title, summary and url tolerate source edits. A conflicting (source, url)
// pair with a different id is an error, catching identity-derivation
// regressions at the persistence layer.
func (d *DB) Upsert(item models.NewsItem) error {
	_, err := d.db.Exec(`
		INSERT INTO news (id, source, title, url, summary, published, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			source = excluded.source,
			title = excluded.title,
			url = excluded.url,
			summary = excluded.summary,
			updated_at = excluded.updated_at`,
		item.Id,
		item.Source,
		item.Title,
		item.Url,
		item.Summary,
		item.Published.UTC().Format(time.RFC3339),
		item.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert error: %w", err)
	}

	return nil
}

// LoadAll returns the stored items ordered by publish date, newest first,
// capped at loadLimit.
func (d *DB) LoadAll() ([]models.NewsItem, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "source", "title", "url", "summary", "published", "updated_at").From("news")
	sb.OrderBy("published").Desc()
	sb.Limit(loadLimit)

	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var items []models.NewsItem
	for rows.Next() {
		var item models.NewsItem
		var published, updatedAt string
		if err := rows.Scan(&item.Id, &item.Source, &item.Title, &item.Url, &item.Summary, &published, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		item.Published, err = time.Parse(time.RFC3339, published)
		if err != nil {
			log.WithFields(log.Fields{
				"id": item.Id,
			}).Warnf("Unparsable published timestamp: %v", err)
			item.Published = time.Now().UTC()
		}
		item.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			item.UpdatedAt = item.Published
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// Count returns the total number of stored items.
func (d *DB) Count() (int64, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("count(*)").From("news")

	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)

	var count int64
	if err := d.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count error: %w", err)
	}

	return count, nil
}
