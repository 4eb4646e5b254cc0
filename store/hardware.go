// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/danielhkuo/hackathon-registry/models"
)

const selectLoans = `
	SELECT l.loan_id, l.hardware_id, h.hardware_name, l.person_id,
	       l.checked_out_at, l.returned, l.returned_at
	FROM hardware_loan l
	JOIN hardware h ON h.hardware_id = l.hardware_id
`

// ListHardware returns the inventory ordered by id.
func (s *Store) ListHardware(ctx context.Context) ([]models.HardwareItem, error) {
	items := []models.HardwareItem{}
	err := s.db.SelectContext(ctx, &items, `
		SELECT hardware_id, hardware_name, quantity_available
		FROM hardware
		ORDER BY hardware_id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query hardware")
	}
	return items, nil
}

// CheckoutHardware lends one unit of an item to a person. The count is
// decremented and the loan row inserted in the same transaction, and only
// when at least one unit is available.
func (s *Store) CheckoutHardware(ctx context.Context, personID, hardwareID int64) (models.HardwareLoan, error) {
	var loan models.HardwareLoan

	err := s.WithTx(ctx, func(tx *Tx) error {
		if err := tx.personExists(ctx, personID); err != nil {
			return err
		}

		var available int
		err := tx.tx.GetContext(ctx, &available, tx.tx.Rebind(`
			SELECT quantity_available FROM hardware WHERE hardware_id = ?
		`), hardwareID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrHardwareNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to query hardware")
		}
		if available <= 0 {
			return ErrHardwareUnavailable
		}

		res, err := tx.tx.ExecContext(ctx, tx.tx.Rebind(`
			UPDATE hardware
			SET quantity_available = quantity_available - 1
			WHERE hardware_id = ? AND quantity_available > 0
		`), hardwareID)
		if err != nil {
			return errors.Wrap(err, "failed to decrement hardware")
		}
		if n, err := res.RowsAffected(); err != nil {
			return errors.Wrap(err, "failed to decrement hardware")
		} else if n == 0 {
			return ErrHardwareUnavailable
		}

		var loanID int64
		err = tx.tx.QueryRowxContext(ctx, tx.tx.Rebind(`
			INSERT INTO hardware_loan (hardware_id, person_id)
			VALUES (?, ?)
			RETURNING loan_id
		`), hardwareID, personID).Scan(&loanID)
		if err != nil {
			return errors.Wrap(err, "failed to insert loan")
		}

		loan, err = tx.loan(ctx, loanID)
		return err
	})

	return loan, err
}

// ReturnHardware closes an open loan and puts the unit back in inventory.
func (s *Store) ReturnHardware(ctx context.Context, loanID int64) (models.HardwareLoan, error) {
	var loan models.HardwareLoan

	err := s.WithTx(ctx, func(tx *Tx) error {
		current, err := tx.loan(ctx, loanID)
		if err != nil {
			return err
		}
		if current.Returned {
			return ErrLoanAlreadyReturned
		}

		_, err = tx.tx.ExecContext(ctx, tx.tx.Rebind(`
			UPDATE hardware
			SET quantity_available = quantity_available + 1
			WHERE hardware_id = ?
		`), current.HardwareID)
		if err != nil {
			return errors.Wrap(err, "failed to increment hardware")
		}

		res, err := tx.tx.ExecContext(ctx, tx.tx.Rebind(`
			UPDATE hardware_loan
			SET returned = TRUE, returned_at = CURRENT_TIMESTAMP
			WHERE loan_id = ? AND returned = FALSE
		`), loanID)
		if err != nil {
			return errors.Wrap(err, "failed to mark loan returned")
		}
		if n, err := res.RowsAffected(); err != nil {
			return errors.Wrap(err, "failed to mark loan returned")
		} else if n == 0 {
			return ErrLoanAlreadyReturned
		}

		loan, err = tx.loan(ctx, loanID)
		return err
	})

	return loan, err
}

func (t *Tx) loan(ctx context.Context, loanID int64) (models.HardwareLoan, error) {
	var loan models.HardwareLoan
	err := t.tx.GetContext(ctx, &loan, t.tx.Rebind(selectLoans+`WHERE l.loan_id = ?`), loanID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HardwareLoan{}, ErrLoanNotFound
	}
	if err != nil {
		return models.HardwareLoan{}, errors.Wrap(err, "failed to query loan")
	}
	return loan, nil
}
