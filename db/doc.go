// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and handles schema creation.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg)

SQLite (modernc.org/sqlite, pure Go) is the default. Every SQLite
connection enables foreign keys and a busy timeout, and the pool is limited
to a single connection. PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables for the connection's dialect:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - person: Participants and their check-in flag
  - skill: Skill names, unique
  - person_skill: One rating per (person, skill)
  - hardware: Inventory with quantity_available
  - hardware_loan: Checkout log, open until returned
  - event: Scheduled events
  - event_scan: One attendance scan per (person, event)

# Relationships

	person *──* skill (via person_skill)
	person 1──* hardware_loan *──1 hardware
	person *──* event (via event_scan)

All foreign keys use ON DELETE CASCADE.
*/
package db
