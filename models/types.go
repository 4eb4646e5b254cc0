// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Mutable person columns, the only ones an update may touch.
const (
	FieldName    = "name"
	FieldCompany = "company"
	FieldEmail   = "email"
	FieldPhone   = "phone"
)

// Request types

// SkillRating is one {skill, rating} pair as submitted and as returned.
type SkillRating struct {
	Skill  string `json:"skill" db:"skill"`
	Rating int    `json:"rating" db:"rating"`
}

// SkillInput is a submitted rating. Rating is a pointer so an entry that
// omits it can be rejected instead of read as 0.
type SkillInput struct {
	Skill  string `json:"skill"`
	Rating *int   `json:"rating"`
}

// UpdatePersonRequest is the body of PUT /user/{id}. Nil fields are left unchanged.
type UpdatePersonRequest struct {
	Name    *string      `json:"name,omitempty"`
	Company *string      `json:"company,omitempty"`
	Email   *string      `json:"email,omitempty"`
	Phone   *string      `json:"phone,omitempty"`
	Skills  []SkillInput `json:"skills,omitempty"`
}

// Ratings returns the submitted skills in order. Call it only after every
// entry has been checked for a rating.
func (r UpdatePersonRequest) Ratings() []SkillRating {
	ratings := make([]SkillRating, 0, len(r.Skills))
	for _, s := range r.Skills {
		ratings = append(ratings, SkillRating{Skill: s.Skill, Rating: *s.Rating})
	}
	return ratings
}

// Fields returns the supplied person columns keyed by column name.
func (r UpdatePersonRequest) Fields() map[string]string {
	fields := make(map[string]string)
	if r.Name != nil {
		fields[FieldName] = *r.Name
	}
	if r.Company != nil {
		fields[FieldCompany] = *r.Company
	}
	if r.Email != nil {
		fields[FieldEmail] = *r.Email
	}
	if r.Phone != nil {
		fields[FieldPhone] = *r.Phone
	}
	return fields
}

type CheckInRequest struct {
	CheckedIn *bool `json:"checked_in,omitempty"`
}

type CheckoutRequest struct {
	PersonID   int64 `json:"person_id"`
	HardwareID int64 `json:"hardware_id"`
}

type ReturnRequest struct {
	LoanID int64 `json:"loan_id"`
}

type ScanRequest struct {
	PersonID int64 `json:"person_id"`
	EventID  int64 `json:"event_id"`
}

// Response types

type CheckInStatus struct {
	PersonID  int64 `json:"person_id"`
	CheckedIn bool  `json:"checked_in"`
}

type SkillFrequency struct {
	Skill     string `json:"skill" db:"skill"`
	Frequency int    `json:"frequency" db:"frequency"`
}

// Domain types

type Person struct {
	ID        int64  `json:"person_id" db:"person_id"`
	Name      string `json:"name" db:"name"`
	Company   string `json:"company" db:"company"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"phone" db:"phone"`
	CheckedIn bool   `json:"checked_in" db:"checked_in"`
}

type PersonWithSkills struct {
	Person
	Skills []SkillRating `json:"skills"`
}

// PersonInfo is the full participant view: skills, loans and attended events.
type PersonInfo struct {
	Person
	Skills   []SkillRating  `json:"skills"`
	Hardware []HardwareLoan `json:"hardware"`
	Events   []EventScan    `json:"events"`
}

type HardwareItem struct {
	ID                int64  `json:"hardware_id" db:"hardware_id"`
	Name              string `json:"hardware_name" db:"hardware_name"`
	QuantityAvailable int    `json:"quantity_available" db:"quantity_available"`
}

type HardwareLoan struct {
	ID           int64      `json:"loan_id" db:"loan_id"`
	HardwareID   int64      `json:"hardware_id" db:"hardware_id"`
	HardwareName string     `json:"hardware_name" db:"hardware_name"`
	PersonID     int64      `json:"person_id" db:"person_id"`
	CheckedOutAt time.Time  `json:"checked_out_at" db:"checked_out_at"`
	Returned     bool       `json:"returned" db:"returned"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty" db:"returned_at"`
}

type Event struct {
	ID        int64      `json:"event_id" db:"event_id"`
	Name      string     `json:"event_name" db:"event_name"`
	StartsAt  *time.Time `json:"starts_at,omitempty" db:"starts_at"`
	ScanCount int        `json:"scan_count" db:"scan_count"`
}

type EventScan struct {
	ID        int64     `json:"scan_id" db:"scan_id"`
	PersonID  int64     `json:"person_id" db:"person_id"`
	EventID   int64     `json:"event_id" db:"event_id"`
	EventName string    `json:"event_name" db:"event_name"`
	ScannedAt time.Time `json:"scanned_at" db:"scanned_at"`
}

// Error response

// ErrorResponse carries the specific failure in Error and the HTTP status
// text in Status.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}
