package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT,
		image TEXT,
		password_hash TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS residencies (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price REAL NOT NULL,
		address TEXT NOT NULL UNIQUE,
		city TEXT,
		country TEXT,
		image TEXT,
		-- Store amenity counts as JSON text
		facilities_json TEXT,
		owner_email TEXT NOT NULL REFERENCES users(email),
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS booked_visits (
		user_id TEXT NOT NULL REFERENCES users(id),
		residency_id TEXT NOT NULL REFERENCES residencies(id),
		visit_date DATETIME NOT NULL,
		PRIMARY KEY (user_id, residency_id)
	);

	CREATE TABLE IF NOT EXISTS fav_residencies (
		user_id TEXT NOT NULL REFERENCES users(id),
		residency_id TEXT NOT NULL REFERENCES residencies(id),
		PRIMARY KEY (user_id, residency_id)
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
