// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/hackathon-registry/cliparse"
	"github.com/danielhkuo/hackathon-registry/db"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration pointing at a temp database
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    "file:" + filepath.Join(t.TempDir(), "test.db"),
		DatabaseType:   cliparse.DatabaseSQLite,
		MetricsEnabled: true,
	}
}

// CreateTestPerson inserts a person and returns its ID
func CreateTestPerson(t *testing.T, conn *sqlx.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(conn.Rebind(`
		INSERT INTO person (name, company, email, phone)
		VALUES (?, 'Acme', ?, '555-0100')
		RETURNING person_id
	`), name, name+"@example.com").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test person: %v", err)
	}

	return id
}

// RateTestSkill gives a person a rating, creating the skill if needed
func RateTestSkill(t *testing.T, conn *sqlx.DB, personID int64, skill string, rating int) {
	t.Helper()

	_, err := conn.Exec(conn.Rebind(`INSERT INTO skill (skill) VALUES (?) ON CONFLICT (skill) DO NOTHING`), skill)
	if err != nil {
		t.Fatalf("Failed to create test skill: %v", err)
	}

	_, err = conn.Exec(conn.Rebind(`
		INSERT INTO person_skill (person_id, skill_id, rating)
		SELECT ?, skill_id, ? FROM skill WHERE skill = ?
	`), personID, rating, skill)
	if err != nil {
		t.Fatalf("Failed to create test rating: %v", err)
	}
}

// CreateTestHardware inserts an inventory item and returns its ID
func CreateTestHardware(t *testing.T, conn *sqlx.DB, name string, quantity int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(conn.Rebind(`
		INSERT INTO hardware (hardware_name, quantity_available)
		VALUES (?, ?)
		RETURNING hardware_id
	`), name, quantity).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test hardware: %v", err)
	}

	return id
}

// CreateTestEvent inserts an event and returns its ID
func CreateTestEvent(t *testing.T, conn *sqlx.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(conn.Rebind(`
		INSERT INTO event (event_name) VALUES (?)
		RETURNING event_id
	`), name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return id
}

// CountRows runs a COUNT query and returns the result
func CountRows(t *testing.T, conn *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()

	var n int
	if err := conn.Get(&n, conn.Rebind(query), args...); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
