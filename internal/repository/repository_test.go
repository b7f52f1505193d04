package repository

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testSchema mirrors the production schema in sqlite dialect: same tables,
// same unique indexes, same cascading foreign keys.
var testSchema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL
	);`,
	`CREATE TABLE people (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		height REAL NOT NULL,
		birthdate TEXT NOT NULL,
		gender TEXT NOT NULL,
		eyes TEXT NOT NULL,
		skin TEXT NOT NULL
	);`,
	`CREATE TABLE planets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		gravity TEXT NOT NULL,
		terrain TEXT NOT NULL,
		climate TEXT NOT NULL,
		orbital_period TEXT NOT NULL,
		population TEXT NOT NULL,
		diameter TEXT NOT NULL
	);`,
	`CREATE TABLE vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		model TEXT NOT NULL,
		length TEXT NOT NULL,
		max_speed TEXT NOT NULL,
		cargo_capacity TEXT NOT NULL,
		manufacturer TEXT NOT NULL
	);`,
	`CREATE TABLE favorite_people (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		people_id INTEGER NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		UNIQUE(user_id, people_id)
	);`,
	`CREATE TABLE favorite_planets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		planet_id INTEGER NOT NULL REFERENCES planets(id) ON DELETE CASCADE,
		UNIQUE(user_id, planet_id)
	);`,
	`CREATE TABLE favorite_vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		vehicle_id INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		UNIQUE(user_id, vehicle_id)
	);`,
	`CREATE TABLE token_blocked_list (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		token TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL,
		email TEXT
	);`,
}

// openTestDB creates an in-memory sqlite database for repository tests.
// Connections are capped at one so every query sees the same memory
// database, and foreign keys are enabled so cascades behave like MySQL.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range testSchema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create test schema: %v", err)
		}
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
