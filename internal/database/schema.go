package database

import "database/sql"

// schema lists every table the application needs, in dependency order so
// foreign keys always reference tables created earlier.  The unique index on
// each favorite pair is the real guard against two concurrent adds for the
// same (user, entity); the handler-level existence checks only produce
// friendlier error messages.  token_blocked_list is append-only: rows are
// inserted on logout and never updated or deleted.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		email VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(250) NOT NULL,
		is_active BOOLEAN NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS people (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		height DOUBLE NOT NULL,
		birthdate VARCHAR(80) NOT NULL,
		gender VARCHAR(80) NOT NULL,
		eyes VARCHAR(80) NOT NULL,
		skin VARCHAR(80) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS planets (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		gravity VARCHAR(80) NOT NULL,
		terrain VARCHAR(80) NOT NULL,
		climate VARCHAR(80) NOT NULL,
		orbital_period VARCHAR(80) NOT NULL,
		population VARCHAR(80) NOT NULL,
		diameter VARCHAR(80) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		model VARCHAR(80) NOT NULL,
		length VARCHAR(80) NOT NULL,
		max_speed VARCHAR(80) NOT NULL,
		cargo_capacity VARCHAR(80) NOT NULL,
		manufacturer VARCHAR(80) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS favorite_people (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		people_id BIGINT UNSIGNED NOT NULL,
		UNIQUE KEY uq_favorite_people (user_id, people_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (people_id) REFERENCES people(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS favorite_planets (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		planet_id BIGINT UNSIGNED NOT NULL,
		UNIQUE KEY uq_favorite_planets (user_id, planet_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (planet_id) REFERENCES planets(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS favorite_vehicles (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		vehicle_id BIGINT UNSIGNED NOT NULL,
		UNIQUE KEY uq_favorite_vehicles (user_id, vehicle_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (vehicle_id) REFERENCES vehicles(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS token_blocked_list (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		token VARCHAR(250) NOT NULL UNIQUE,
		created_at DATETIME NOT NULL,
		email VARCHAR(120)
	);`,
}

// Migrate applies the schema to the given database.  Statements use
// CREATE TABLE IF NOT EXISTS so running it on every startup is safe.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
