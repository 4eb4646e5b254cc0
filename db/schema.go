// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sqlx.DB) error {
	_, err := conn.Exec(SchemaFor(conn.DriverName()))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SchemaFor returns the DDL for the given driver name.
func SchemaFor(driver string) string {
	if driver == PostgresDriver {
		return postgresSchema
	}
	return sqliteSchema
}

const sqliteSchema = `
-- Participants
CREATE TABLE IF NOT EXISTS person (
    person_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    checked_in BOOLEAN NOT NULL DEFAULT FALSE
);

-- Skills
CREATE TABLE IF NOT EXISTS skill (
    skill_id INTEGER PRIMARY KEY AUTOINCREMENT,
    skill TEXT NOT NULL UNIQUE
);

-- Ratings
CREATE TABLE IF NOT EXISTS person_skill (
    person_id INTEGER NOT NULL REFERENCES person(person_id) ON DELETE CASCADE,
    skill_id INTEGER NOT NULL REFERENCES skill(skill_id) ON DELETE CASCADE,
    rating INTEGER NOT NULL CHECK (rating >= 0),
    PRIMARY KEY (person_id, skill_id)
);

CREATE INDEX IF NOT EXISTS idx_person_skill_skill_id ON person_skill(skill_id);

-- Hardware inventory
CREATE TABLE IF NOT EXISTS hardware (
    hardware_id INTEGER PRIMARY KEY AUTOINCREMENT,
    hardware_name TEXT NOT NULL,
    quantity_available INTEGER NOT NULL DEFAULT 0 CHECK (quantity_available >= 0)
);

-- Hardware loans
CREATE TABLE IF NOT EXISTS hardware_loan (
    loan_id INTEGER PRIMARY KEY AUTOINCREMENT,
    hardware_id INTEGER NOT NULL REFERENCES hardware(hardware_id) ON DELETE CASCADE,
    person_id INTEGER NOT NULL REFERENCES person(person_id) ON DELETE CASCADE,
    checked_out_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    returned BOOLEAN NOT NULL DEFAULT FALSE,
    returned_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_hardware_loan_person_id ON hardware_loan(person_id);

-- Events
CREATE TABLE IF NOT EXISTS event (
    event_id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_name TEXT NOT NULL,
    starts_at TIMESTAMP
);

-- Attendance scans
CREATE TABLE IF NOT EXISTS event_scan (
    scan_id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_id INTEGER NOT NULL REFERENCES person(person_id) ON DELETE CASCADE,
    event_id INTEGER NOT NULL REFERENCES event(event_id) ON DELETE CASCADE,
    scanned_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (person_id, event_id)
);

CREATE INDEX IF NOT EXISTS idx_event_scan_event_id ON event_scan(event_id);
`

const postgresSchema = `
-- Participants
CREATE TABLE IF NOT EXISTS person (
    person_id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    checked_in BOOLEAN NOT NULL DEFAULT FALSE
);

-- Skills
CREATE TABLE IF NOT EXISTS skill (
    skill_id BIGSERIAL PRIMARY KEY,
    skill TEXT NOT NULL UNIQUE
);

-- Ratings
CREATE TABLE IF NOT EXISTS person_skill (
    person_id BIGINT NOT NULL REFERENCES person(person_id) ON DELETE CASCADE,
    skill_id BIGINT NOT NULL REFERENCES skill(skill_id) ON DELETE CASCADE,
    rating INTEGER NOT NULL CHECK (rating >= 0),
    PRIMARY KEY (person_id, skill_id)
);

CREATE INDEX IF NOT EXISTS idx_person_skill_skill_id ON person_skill(skill_id);

-- Hardware inventory
CREATE TABLE IF NOT EXISTS hardware (
    hardware_id BIGSERIAL PRIMARY KEY,
    hardware_name TEXT NOT NULL,
    quantity_available INTEGER NOT NULL DEFAULT 0 CHECK (quantity_available >= 0)
);

-- Hardware loans
CREATE TABLE IF NOT EXISTS hardware_loan (
    loan_id BIGSERIAL PRIMARY KEY,
    hardware_id BIGINT NOT NULL REFERENCES hardware(hardware_id) ON DELETE CASCADE,
    person_id BIGINT NOT NULL REFERENCES person(person_id) ON DELETE CASCADE,
    checked_out_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    returned BOOLEAN NOT NULL DEFAULT FALSE,
    returned_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_hardware_loan_person_id ON hardware_loan(person_id);

-- Events
CREATE TABLE IF NOT EXISTS event (
    event_id BIGSERIAL PRIMARY KEY,
    event_name TEXT NOT NULL,
    starts_at TIMESTAMP
);

-- Attendance scans
CREATE TABLE IF NOT EXISTS event_scan (
    scan_id BIGSERIAL PRIMARY KEY,
    person_id BIGINT NOT NULL REFERENCES person(person_id) ON DELETE CASCADE,
    event_id BIGINT NOT NULL REFERENCES event(event_id) ON DELETE CASCADE,
    scanned_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (person_id, event_id)
);

CREATE INDEX IF NOT EXISTS idx_event_scan_event_id ON event_scan(event_id);
`
