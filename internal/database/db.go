package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Open connects to the SQLite store at path and verifies the connection.
// Pass ":memory:" for an in-memory database (used by tests).
func Open(path string) (*sql.DB, error) {
	// foreign_keys keeps referential checks on | busy_timeout avoids
	// immediate SQLITE_BUSY errors under overlapping statements
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; pinning the pool to one connection
	// serializes statements and keeps in-memory databases coherent.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// InitSchema creates the trains and seats tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Train registry
CREATE TABLE IF NOT EXISTS trains (
    train_number TEXT PRIMARY KEY,
    train_name TEXT NOT NULL,
    departure_date TEXT NOT NULL,
    starting_destination TEXT NOT NULL,
    ending_destination TEXT NOT NULL
);

-- Seat inventories, one row set per train. Inventories are seeded and
-- destroyed by the application rather than cascaded from trains: an
-- inventory may be recreated after its train row is gone.
CREATE TABLE IF NOT EXISTS seats (
    train_number TEXT NOT NULL,
    seat_number INTEGER NOT NULL,
    seat_type TEXT NOT NULL,
    booked INTEGER NOT NULL DEFAULT 0,
    passenger_name TEXT,
    passenger_age INTEGER,
    passenger_gender TEXT,
    PRIMARY KEY (train_number, seat_number)
);

CREATE INDEX IF NOT EXISTS idx_seats_train_type ON seats(train_number, seat_type, booked);

CREATE INDEX IF NOT EXISTS idx_trains_route ON trains(starting_destination, ending_destination);
`
