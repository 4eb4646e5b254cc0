// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/hackathon-registry/testutil"
)

func quantity(t *testing.T, s *Store, hardwareID int64) int {
	t.Helper()
	return testutil.CountRows(t, s.DB(), `SELECT quantity_available FROM hardware WHERE hardware_id = ?`, hardwareID)
}

func TestCheckoutDecrementsAndLogs(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)
	ctx := context.Background()

	person := testutil.CreateTestPerson(t, conn, "olga")
	hw := testutil.CreateTestHardware(t, conn, "Arduino", 2)

	loan, err := s.CheckoutHardware(ctx, person, hw)
	require.NoError(t, err)

	assert.NotZero(t, loan.ID)
	assert.Equal(t, hw, loan.HardwareID)
	assert.Equal(t, "Arduino", loan.HardwareName)
	assert.Equal(t, person, loan.PersonID)
	assert.False(t, loan.Returned)
	assert.Nil(t, loan.ReturnedAt)
	assert.False(t, loan.CheckedOutAt.IsZero())

	assert.Equal(t, 1, quantity(t, s, hw))
	assert.Equal(t, 1, testutil.CountRows(t, conn, `SELECT COUNT(*) FROM hardware_loan`))
}

func TestCheckoutUnavailableLeavesStateUnchanged(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)

	person := testutil.CreateTestPerson(t, conn, "pete")
	hw := testutil.CreateTestHardware(t, conn, "Oculus", 0)

	_, err := s.CheckoutHardware(context.Background(), person, hw)
	assert.ErrorIs(t, err, ErrHardwareUnavailable)

	assert.Equal(t, 0, quantity(t, s, hw))
	assert.Equal(t, 0, testutil.CountRows(t, conn, `SELECT COUNT(*) FROM hardware_loan`))
}

func TestCheckoutMissingEntities(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)
	ctx := context.Background()

	person := testutil.CreateTestPerson(t, conn, "quinn")
	hw := testutil.CreateTestHardware(t, conn, "Pi", 1)

	_, err := s.CheckoutHardware(ctx, 999, hw)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, err = s.CheckoutHardware(ctx, person, 999)
	assert.ErrorIs(t, err, ErrHardwareNotFound)

	assert.Equal(t, 1, quantity(t, s, hw))
}

func TestReturnHardware(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)
	ctx := context.Background()

	person := testutil.CreateTestPerson(t, conn, "rita")
	hw := testutil.CreateTestHardware(t, conn, "Pi", 1)

	loan, err := s.CheckoutHardware(ctx, person, hw)
	require.NoError(t, err)
	assert.Equal(t, 0, quantity(t, s, hw))

	returned, err := s.ReturnHardware(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, returned.Returned)
	require.NotNil(t, returned.ReturnedAt)
	assert.Equal(t, 1, quantity(t, s, hw))

	// A second return is rejected and changes nothing
	_, err = s.ReturnHardware(ctx, loan.ID)
	assert.ErrorIs(t, err, ErrLoanAlreadyReturned)
	assert.Equal(t, 1, quantity(t, s, hw))
	assert.Equal(t, 1, testutil.CountRows(t, conn, `SELECT COUNT(*) FROM hardware_loan WHERE returned = TRUE`))
}

func TestReturnUnknownLoan(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)

	_, err := s.ReturnHardware(context.Background(), 42)
	assert.ErrorIs(t, err, ErrLoanNotFound)
}

func TestListHardware(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)

	testutil.CreateTestHardware(t, conn, "Arduino", 3)
	testutil.CreateTestHardware(t, conn, "Pi", 0)

	items, err := s.ListHardware(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Arduino", items[0].Name)
	assert.Equal(t, 3, items[0].QuantityAvailable)
	assert.Equal(t, "Pi", items[1].Name)
}
