// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package srv exposes the analysis engine as a small HTTP service with a
// persistent result cache and per-client rate limiting
package srv

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	_ "modernc.org/sqlite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS results (
	key     TEXT PRIMARY KEY,
	body    BLOB NOT NULL,
	created INTEGER NOT NULL
);
`

// Cache is a content-addressed store of analysis responses backed by an
// embedded SQLite database. Keys are SHA-256 digests of the canonical
// request body, so invalidation is automatic: a changed model is a new key.
type Cache struct {
	conn *sql.DB
}

// OpenCache opens or creates the cache database at the given path
func OpenCache(path string) (*Cache, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(cacheSchema); err != nil {
		conn.Close()
		return nil, err
	}
	return &Cache{conn: conn}, nil
}

// Close closes the database connection
func (o *Cache) Close() error {
	return o.conn.Close()
}

// Key digests a request body
func Key(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for a key, if any
func (o *Cache) Get(key string) (body []byte, ok bool, err error) {
	err = o.conn.QueryRow("SELECT body FROM results WHERE key = ?", key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

// Put stores a response under a key, replacing any previous entry
func (o *Cache) Put(key string, body []byte) error {
	_, err := o.conn.Exec("INSERT OR REPLACE INTO results (key, body, created) VALUES (?, ?, ?)",
		key, body, time.Now().Unix())
	return err
}
