// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/danielhkuo/hackathon-registry/models"
)

const selectScans = `
	SELECT sc.scan_id, sc.person_id, sc.event_id, e.event_name, sc.scanned_at
	FROM event_scan sc
	JOIN event e ON e.event_id = sc.event_id
`

func scansFor(ctx context.Context, q queryer, personID int64) ([]models.EventScan, error) {
	scans := []models.EventScan{}
	err := sqlx.SelectContext(ctx, q, &scans, q.Rebind(selectScans+`
		WHERE sc.person_id = ?
		ORDER BY sc.scanned_at, sc.scan_id
	`), personID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query scans")
	}
	return scans, nil
}

// ListEvents returns every event with the number of people scanned into it.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	err := s.db.SelectContext(ctx, &events, `
		SELECT e.event_id, e.event_name, e.starts_at,
		       (SELECT COUNT(*) FROM event_scan sc WHERE sc.event_id = e.event_id) AS scan_count
		FROM event e
		ORDER BY e.event_id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query events")
	}
	return events, nil
}

// ListPersonEvents returns the events a person has been scanned into.
func (s *Store) ListPersonEvents(ctx context.Context, personID int64) ([]models.EventScan, error) {
	if _, err := getPerson(ctx, s.db, personID); err != nil {
		return nil, err
	}
	return scansFor(ctx, s.db, personID)
}

// RecordScan records a person's attendance at an event. A second scan of
// the same pair fails with ErrScanAlreadyRecorded and leaves the first one.
func (s *Store) RecordScan(ctx context.Context, personID, eventID int64) (models.EventScan, error) {
	if _, err := getPerson(ctx, s.db, personID); err != nil {
		return models.EventScan{}, err
	}

	var one int
	err := s.db.GetContext(ctx, &one, s.db.Rebind(`SELECT 1 FROM event WHERE event_id = ?`), eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EventScan{}, ErrEventNotFound
	}
	if err != nil {
		return models.EventScan{}, errors.Wrap(err, "failed to query event")
	}

	_, err = s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO event_scan (person_id, event_id)
		VALUES (?, ?)
	`), personID, eventID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.EventScan{}, ErrScanAlreadyRecorded
		}
		return models.EventScan{}, errors.Wrap(err, "failed to insert scan")
	}

	var scan models.EventScan
	err = s.db.GetContext(ctx, &scan, s.db.Rebind(selectScans+`
		WHERE sc.person_id = ? AND sc.event_id = ?
	`), personID, eventID)
	if err != nil {
		return models.EventScan{}, errors.Wrap(err, "failed to read back scan")
	}
	return scan, nil
}
