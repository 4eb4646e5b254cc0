// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/danielhkuo/hackathon-registry/models"
)

// mutablePersonFields is the allow-list for partial person updates.
var mutablePersonFields = map[string]bool{
	models.FieldName:    true,
	models.FieldCompany: true,
	models.FieldEmail:   true,
	models.FieldPhone:   true,
}

const selectPerson = `
	SELECT person_id, name, company, email, phone, checked_in
	FROM person
	WHERE person_id = ?
`

type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

func getPerson(ctx context.Context, q queryer, personID int64) (models.Person, error) {
	var p models.Person
	err := sqlx.GetContext(ctx, q, &p, q.Rebind(selectPerson), personID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Person{}, ErrPersonNotFound
	}
	if err != nil {
		return models.Person{}, errors.Wrap(err, "failed to query person")
	}
	return p, nil
}

func skillsFor(ctx context.Context, q queryer, personID int64) ([]models.SkillRating, error) {
	skills := []models.SkillRating{}
	err := sqlx.SelectContext(ctx, q, &skills, q.Rebind(`
		SELECT s.skill, ps.rating
		FROM person_skill ps
		JOIN skill s ON s.skill_id = ps.skill_id
		WHERE ps.person_id = ?
		ORDER BY s.skill
	`), personID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query skills")
	}
	return skills, nil
}

// ListPersons returns every person with their skill ratings. People with no
// ratings get an empty list, never a placeholder entry.
func (s *Store) ListPersons(ctx context.Context) ([]models.PersonWithSkills, error) {
	var persons []models.Person
	err := s.db.SelectContext(ctx, &persons, `
		SELECT person_id, name, company, email, phone, checked_in
		FROM person
		ORDER BY person_id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query persons")
	}

	var ratings []struct {
		PersonID int64 `db:"person_id"`
		models.SkillRating
	}
	err = s.db.SelectContext(ctx, &ratings, `
		SELECT ps.person_id, s.skill, ps.rating
		FROM person_skill ps
		JOIN skill s ON s.skill_id = ps.skill_id
		ORDER BY ps.person_id, s.skill
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query skills")
	}

	bySkill := make(map[int64][]models.SkillRating, len(persons))
	for _, r := range ratings {
		bySkill[r.PersonID] = append(bySkill[r.PersonID], r.SkillRating)
	}

	result := make([]models.PersonWithSkills, 0, len(persons))
	for _, p := range persons {
		skills := bySkill[p.ID]
		if skills == nil {
			skills = []models.SkillRating{}
		}
		result = append(result, models.PersonWithSkills{Person: p, Skills: skills})
	}
	return result, nil
}

// GetPerson returns one person with their skill ratings.
func (s *Store) GetPerson(ctx context.Context, personID int64) (models.PersonWithSkills, error) {
	p, err := getPerson(ctx, s.db, personID)
	if err != nil {
		return models.PersonWithSkills{}, err
	}

	skills, err := skillsFor(ctx, s.db, personID)
	if err != nil {
		return models.PersonWithSkills{}, err
	}

	return models.PersonWithSkills{Person: p, Skills: skills}, nil
}

// GetPersonInfo returns a person with skills, hardware loans and scanned events.
func (s *Store) GetPersonInfo(ctx context.Context, personID int64) (models.PersonInfo, error) {
	withSkills, err := s.GetPerson(ctx, personID)
	if err != nil {
		return models.PersonInfo{}, err
	}

	loans := []models.HardwareLoan{}
	err = s.db.SelectContext(ctx, &loans, s.db.Rebind(selectLoans+`
		WHERE l.person_id = ?
		ORDER BY l.loan_id
	`), personID)
	if err != nil {
		return models.PersonInfo{}, errors.Wrap(err, "failed to query loans")
	}

	events, err := scansFor(ctx, s.db, personID)
	if err != nil {
		return models.PersonInfo{}, err
	}

	return models.PersonInfo{
		Person:   withSkills.Person,
		Skills:   withSkills.Skills,
		Hardware: loans,
		Events:   events,
	}, nil
}

// UpdatePerson applies partial person fields and reconciles skill ratings as
// one transaction, then reads the person back.
//
// fields maps column name to new value and may only name mutable columns.
// Ratings are applied in order, so a skill named twice keeps the last
// rating. Skills not mentioned are left as they are. If any statement fails
// nothing is kept.
func (s *Store) UpdatePerson(ctx context.Context, personID int64, fields map[string]string, ratings []models.SkillRating) (models.PersonWithSkills, error) {
	clauses := make(map[string]interface{}, len(fields))
	for col, value := range fields {
		if !mutablePersonFields[col] {
			return models.PersonWithSkills{}, errors.Wrap(ErrInvalidField, col)
		}
		clauses[col] = value
	}

	err := s.WithTx(ctx, func(tx *Tx) error {
		if err := tx.personExists(ctx, personID); err != nil {
			return err
		}

		if len(clauses) > 0 {
			query, args, err := sq.Update("person").
				SetMap(clauses).
				Where(sq.Eq{"person_id": personID}).
				PlaceholderFormat(s.ph).
				ToSql()
			if err != nil {
				return errors.Wrap(err, "failed to build person update")
			}
			if _, err := tx.tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrap(err, "failed to update person")
			}
		}

		for _, r := range ratings {
			if err := tx.RateSkill(ctx, personID, r.Skill, r.Rating); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.PersonWithSkills{}, err
	}

	return s.GetPerson(ctx, personID)
}

// GetCheckIn reports whether the person has checked in.
func (s *Store) GetCheckIn(ctx context.Context, personID int64) (models.CheckInStatus, error) {
	var checkedIn bool
	err := s.db.GetContext(ctx, &checkedIn, s.db.Rebind(`SELECT checked_in FROM person WHERE person_id = ?`), personID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CheckInStatus{}, ErrPersonNotFound
	}
	if err != nil {
		return models.CheckInStatus{}, errors.Wrap(err, "failed to query check-in")
	}
	return models.CheckInStatus{PersonID: personID, CheckedIn: checkedIn}, nil
}

// SetCheckIn sets the person's check-in flag.
func (s *Store) SetCheckIn(ctx context.Context, personID int64, checkedIn bool) (models.CheckInStatus, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE person SET checked_in = ? WHERE person_id = ?`), checkedIn, personID)
	if err != nil {
		return models.CheckInStatus{}, errors.Wrap(err, "failed to update check-in")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.CheckInStatus{}, errors.Wrap(err, "failed to update check-in")
	}
	if n == 0 {
		return models.CheckInStatus{}, ErrPersonNotFound
	}
	return models.CheckInStatus{PersonID: personID, CheckedIn: checkedIn}, nil
}
