package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS statistics (
    id INTEGER PRIMARY KEY,
    metric TEXT,
    value REAL
);

CREATE TABLE IF NOT EXISTS top_words (
    id INTEGER PRIMARY KEY,
    rank INTEGER,
    word TEXT,
    count INTEGER
);

CREATE TABLE IF NOT EXISTS longest_words (
    id INTEGER PRIMARY KEY,
    rank INTEGER,
    word TEXT,
    length INTEGER
);

CREATE TABLE IF NOT EXISTS keywords (
    id INTEGER PRIMARY KEY,
    keyword TEXT,
    count INTEGER,
    density REAL,
    status TEXT
);

CREATE TABLE IF NOT EXISTS readability (
    id INTEGER PRIMARY KEY,
    metric TEXT,
    value REAL,
    label TEXT
);

CREATE TABLE IF NOT EXISTS heatmap (
    id INTEGER PRIMARY KEY,
    word TEXT,
    chunk INTEGER,
    chunk_start INTEGER,
    chunk_end INTEGER,
    count INTEGER
);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
