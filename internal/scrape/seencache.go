package scrape

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SeenCache is a local sqlite set of notice hashes already handed to the
// pipeline. It keeps repeat scrape runs from hitting Postgres for every
// listing that is still on the overview page.
type SeenCache struct {
	db *sql.DB
}

func OpenSeenCache(path string) (*SeenCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open seen cache: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS seen (
		hash TEXT PRIMARY KEY,
		first_seen TIMESTAMP NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init seen cache: %w", err)
	}
	return &SeenCache{db: db}, nil
}

func (c *SeenCache) Seen(hash string) (bool, error) {
	var one int
	err := c.db.QueryRow(`SELECT 1 FROM seen WHERE hash = ?`, hash).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *SeenCache) Mark(hash string) error {
	_, err := c.db.Exec(`INSERT OR IGNORE INTO seen(hash, first_seen) VALUES(?, ?)`, hash, time.Now().UTC())
	return err
}

func (c *SeenCache) Close() error {
	return c.db.Close()
}
