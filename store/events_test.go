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

func TestRecordScanOncePerPair(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)
	ctx := context.Background()

	person := testutil.CreateTestPerson(t, conn, "sam")
	event := testutil.CreateTestEvent(t, conn, "Opening Ceremony")

	scan, err := s.RecordScan(ctx, person, event)
	require.NoError(t, err)
	assert.Equal(t, person, scan.PersonID)
	assert.Equal(t, event, scan.EventID)
	assert.Equal(t, "Opening Ceremony", scan.EventName)
	assert.False(t, scan.ScannedAt.IsZero())

	_, err = s.RecordScan(ctx, person, event)
	assert.ErrorIs(t, err, ErrScanAlreadyRecorded)

	assert.Equal(t, 1, testutil.CountRows(t, conn, `SELECT COUNT(*) FROM event_scan`))
}

func TestRecordScanMissingEntities(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)
	ctx := context.Background()

	person := testutil.CreateTestPerson(t, conn, "tina")
	event := testutil.CreateTestEvent(t, conn, "Lunch")

	_, err := s.RecordScan(ctx, 999, event)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, err = s.RecordScan(ctx, person, 999)
	assert.ErrorIs(t, err, ErrEventNotFound)

	assert.Equal(t, 0, testutil.CountRows(t, conn, `SELECT COUNT(*) FROM event_scan`))
}

func TestListEventsAndPersonEvents(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)
	ctx := context.Background()

	a := testutil.CreateTestPerson(t, conn, "uma")
	b := testutil.CreateTestPerson(t, conn, "vic")
	opening := testutil.CreateTestEvent(t, conn, "Opening")
	lunch := testutil.CreateTestEvent(t, conn, "Lunch")

	for _, pair := range [][2]int64{{a, opening}, {b, opening}, {a, lunch}} {
		_, err := s.RecordScan(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Opening", events[0].Name)
	assert.Equal(t, 2, events[0].ScanCount)
	assert.Equal(t, "Lunch", events[1].Name)
	assert.Equal(t, 1, events[1].ScanCount)
	assert.Nil(t, events[0].StartsAt)

	mine, err := s.ListPersonEvents(ctx, a)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	_, err = s.ListPersonEvents(ctx, 999)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestGetPersonInfo(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := New(conn)
	ctx := context.Background()

	person := testutil.CreateTestPerson(t, conn, "wes")
	testutil.RateTestSkill(t, conn, person, "Go", 4)
	hw := testutil.CreateTestHardware(t, conn, "Arduino", 1)
	event := testutil.CreateTestEvent(t, conn, "Demo")

	_, err := s.CheckoutHardware(ctx, person, hw)
	require.NoError(t, err)
	_, err = s.RecordScan(ctx, person, event)
	require.NoError(t, err)

	info, err := s.GetPersonInfo(ctx, person)
	require.NoError(t, err)
	assert.Equal(t, "wes", info.Name)
	require.Len(t, info.Skills, 1)
	require.Len(t, info.Hardware, 1)
	assert.Equal(t, "Arduino", info.Hardware[0].HardwareName)
	require.Len(t, info.Events, 1)
	assert.Equal(t, "Demo", info.Events[0].EventName)

	_, err = s.GetPersonInfo(ctx, 999)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}
