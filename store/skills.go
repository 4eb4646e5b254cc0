// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/danielhkuo/hackathon-registry/models"
)

// SkillFrequencies counts how many people are rated on each skill. Both
// bounds are inclusive and optional. Results are ordered most common first.
func (s *Store) SkillFrequencies(ctx context.Context, minFrequency, maxFrequency *int) ([]models.SkillFrequency, error) {
	builder := sq.Select("s.skill", "COUNT(ps.person_id) AS frequency").
		From("skill s").
		Join("person_skill ps ON ps.skill_id = s.skill_id").
		GroupBy("s.skill_id", "s.skill")

	if minFrequency != nil {
		builder = builder.Having("COUNT(ps.person_id) >= ?", *minFrequency)
	}
	if maxFrequency != nil {
		builder = builder.Having("COUNT(ps.person_id) <= ?", *maxFrequency)
	}

	query, args, err := builder.
		OrderBy("frequency DESC", "s.skill ASC").
		PlaceholderFormat(s.ph).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build skill query")
	}

	freqs := []models.SkillFrequency{}
	if err := s.db.SelectContext(ctx, &freqs, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to query skills")
	}
	return freqs, nil
}
