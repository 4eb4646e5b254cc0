// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Store runs every query the API needs against one connection pool.
type Store struct {
	db *sqlx.DB
	ph sq.PlaceholderFormat
}

func New(db *sqlx.DB) *Store {
	var ph sq.PlaceholderFormat = sq.Question
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		ph = sq.Dollar
	}
	return &Store{db: db, ph: ph}
}

// DB returns the underlying pool.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx is a transaction handle exposing the write primitives shared by the
// update workflow and bulk imports.
type Tx struct {
	tx *sqlx.Tx
	ph sq.PlaceholderFormat
}

// WithTx runs fn inside one transaction. The transaction commits only if fn
// returns nil; any error rolls back every statement fn issued.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx, ph: s.ph}); err != nil {
		slog.Debug("transaction rolled back", "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// InsertPerson adds a participant and returns its generated id.
func (t *Tx) InsertPerson(ctx context.Context, name, company, email, phone string) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, t.tx.Rebind(`
		INSERT INTO person (name, company, email, phone)
		VALUES (?, ?, ?, ?)
		RETURNING person_id
	`), name, company, email, phone).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert person")
	}
	return id, nil
}

// InsertHardware adds an inventory item and returns its generated id.
func (t *Tx) InsertHardware(ctx context.Context, name string, quantity int) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, t.tx.Rebind(`
		INSERT INTO hardware (hardware_name, quantity_available)
		VALUES (?, ?)
		RETURNING hardware_id
	`), name, quantity).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert hardware")
	}
	return id, nil
}

// InsertEvent adds an event and returns its generated id.
func (t *Tx) InsertEvent(ctx context.Context, name string, startsAt *time.Time) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, t.tx.Rebind(`
		INSERT INTO event (event_name, starts_at)
		VALUES (?, ?)
		RETURNING event_id
	`), name, startsAt).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert event")
	}
	return id, nil
}

// SkillID returns the id of the named skill, creating the skill row the
// first time the name is seen. Names match exactly, case included.
func (t *Tx) SkillID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := t.tx.GetContext(ctx, &id, t.tx.Rebind(`SELECT skill_id FROM skill WHERE skill = ?`), name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, errors.Wrapf(err, "failed to query skill %q", name)
	}

	err = t.tx.QueryRowxContext(ctx, t.tx.Rebind(`
		INSERT INTO skill (skill) VALUES (?)
		RETURNING skill_id
	`), name).Scan(&id)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to insert skill %q", name)
	}
	return id, nil
}

// RateSkill sets the person's rating for the named skill. An existing
// (person, skill) row is updated in place; otherwise one is inserted.
func (t *Tx) RateSkill(ctx context.Context, personID int64, skill string, rating int) error {
	skillID, err := t.SkillID(ctx, skill)
	if err != nil {
		return err
	}

	var current int
	err = t.tx.GetContext(ctx, &current, t.tx.Rebind(`
		SELECT rating FROM person_skill
		WHERE person_id = ? AND skill_id = ?
	`), personID, skillID)

	switch {
	case err == nil:
		_, err = t.tx.ExecContext(ctx, t.tx.Rebind(`
			UPDATE person_skill SET rating = ?
			WHERE person_id = ? AND skill_id = ?
		`), rating, personID, skillID)
		if err != nil {
			return errors.Wrapf(err, "failed to update rating for skill %q", skill)
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = t.tx.ExecContext(ctx, t.tx.Rebind(`
			INSERT INTO person_skill (person_id, skill_id, rating)
			VALUES (?, ?, ?)
		`), personID, skillID, rating)
		if err != nil {
			return errors.Wrapf(err, "failed to insert rating for skill %q", skill)
		}
	default:
		return errors.Wrapf(err, "failed to query rating for skill %q", skill)
	}

	return nil
}

func (t *Tx) personExists(ctx context.Context, personID int64) error {
	var one int
	err := t.tx.GetContext(ctx, &one, t.tx.Rebind(`SELECT 1 FROM person WHERE person_id = ?`), personID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPersonNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to query person")
	}
	return nil
}
