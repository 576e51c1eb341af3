// Package search composes member search conditions into SQL and runs them
// against a caller-scoped Postgres handle.
package search

import (
	"member-search/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

const (
	colMemberID = "m.id"
	colUsername = "m.username"
	colAge      = "m.age"
	colTeamID   = "t.id"
	colTeamName = "t.name"
)

type unitPredicate func(entities.MemberSearchCondition) (sq.Sqlizer, bool)

var unitPredicates = []unitPredicate{usernameEq, ageGoe, ageLoe, teamNameEq}

// Where folds every present field of cond into a single conjunction.
// An empty condition renders as "(1=1)" and matches every row.
func Where(cond entities.MemberSearchCondition) sq.Sqlizer {
	and := sq.And{}
	for _, p := range unitPredicates {
		if pred, ok := p(cond); ok {
			and = append(and, pred)
		}
	}
	return and
}

// Absent fields must be skipped, not passed as nil: sq.Eq renders nil as IS NULL.

func usernameEq(c entities.MemberSearchCondition) (sq.Sqlizer, bool) {
	if c.Username == nil {
		return nil, false
	}
	return sq.Eq{colUsername: *c.Username}, true
}

func ageGoe(c entities.MemberSearchCondition) (sq.Sqlizer, bool) {
	if c.AgeGoe == nil {
		return nil, false
	}
	return sq.GtOrEq{colAge: *c.AgeGoe}, true
}

func ageLoe(c entities.MemberSearchCondition) (sq.Sqlizer, bool) {
	if c.AgeLoe == nil {
		return nil, false
	}
	return sq.LtOrEq{colAge: *c.AgeLoe}, true
}

func teamNameEq(c entities.MemberSearchCondition) (sq.Sqlizer, bool) {
	if c.TeamName == nil {
		return nil, false
	}
	return sq.Eq{colTeamName: *c.TeamName}, true
}
