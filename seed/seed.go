// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/danielhkuo/hackathon-registry/store"
)

// Hacker is one registration record from the sign-up export.
type Hacker struct {
	Name    string        `json:"name"`
	Company string        `json:"company"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Skills  []SkillRecord `json:"skills"`
}

// SkillRecord is a self-assessed rating. Older exports call the rating
// "level"; it is used when "rating" is absent.
type SkillRecord struct {
	Skill  string `json:"skill"`
	Rating *int   `json:"rating"`
	Level  *int   `json:"level"`
}

func (r SkillRecord) value() int {
	switch {
	case r.Rating != nil:
		return *r.Rating
	case r.Level != nil:
		return *r.Level
	default:
		return 0
	}
}

type HardwareRecord struct {
	Name              string `json:"hardware_name"`
	QuantityAvailable int    `json:"quantity_available"`
}

type EventRecord struct {
	Name     string     `json:"event_name"`
	StartsAt *time.Time `json:"starts_at"`
}

// Bundle is everything imported in one run.
type Bundle struct {
	Hackers  []Hacker
	Hardware []HardwareRecord
	Events   []EventRecord
}

// Summary counts the rows an import created.
type Summary struct {
	Persons  int
	Ratings  int
	Hardware int
	Events   int
}

// ErrInvalidRecord marks input that fails validation before anything is written.
var ErrInvalidRecord = errors.New("invalid seed record")

// Decode reads a JSON array from r into v.
func Decode(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode seed file")
	}
	return nil
}

// LoadFile decodes the file at path into v. An empty path leaves v unchanged.
func LoadFile(path string, v interface{}) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	return errors.Wrap(Decode(f, v), path)
}

// Validate checks the bundle without touching the database.
func (b Bundle) Validate() error {
	for i, h := range b.Hackers {
		if strings.TrimSpace(h.Name) == "" {
			return errors.Wrapf(ErrInvalidRecord, "hacker %d: name is required", i)
		}
		for _, s := range h.Skills {
			if strings.TrimSpace(s.Skill) == "" {
				return errors.Wrapf(ErrInvalidRecord, "hacker %q: skill name is required", h.Name)
			}
			if s.value() < 0 {
				return errors.Wrapf(ErrInvalidRecord, "hacker %q: rating for %q must be >= 0", h.Name, s.Skill)
			}
		}
	}
	for i, hw := range b.Hardware {
		if strings.TrimSpace(hw.Name) == "" {
			return errors.Wrapf(ErrInvalidRecord, "hardware %d: hardware_name is required", i)
		}
		if hw.QuantityAvailable < 0 {
			return errors.Wrapf(ErrInvalidRecord, "hardware %q: quantity_available must be >= 0", hw.Name)
		}
	}
	for i, e := range b.Events {
		if strings.TrimSpace(e.Name) == "" {
			return errors.Wrapf(ErrInvalidRecord, "event %d: event_name is required", i)
		}
	}
	return nil
}

// Import writes the bundle in a single transaction. Skills are matched by
// exact name and created on first use, the same way profile updates do it.
func Import(ctx context.Context, s *store.Store, b Bundle) (Summary, error) {
	var sum Summary

	if err := b.Validate(); err != nil {
		return sum, err
	}

	err := s.WithTx(ctx, func(tx *store.Tx) error {
		for _, h := range b.Hackers {
			personID, err := tx.InsertPerson(ctx, h.Name, h.Company, h.Email, h.Phone)
			if err != nil {
				return err
			}
			sum.Persons++

			for _, skill := range h.Skills {
				if err := tx.RateSkill(ctx, personID, skill.Skill, skill.value()); err != nil {
					return err
				}
				sum.Ratings++
			}
		}

		for _, hw := range b.Hardware {
			if _, err := tx.InsertHardware(ctx, hw.Name, hw.QuantityAvailable); err != nil {
				return err
			}
			sum.Hardware++
		}

		for _, e := range b.Events {
			if _, err := tx.InsertEvent(ctx, e.Name, e.StartsAt); err != nil {
				return err
			}
			sum.Events++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	return sum, nil
}
