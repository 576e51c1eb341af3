// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strings"
)

// SortField enumerates columns a search result can be ordered by.
type SortField string

const (
	// SortMemberID orders by member id.
	SortMemberID SortField = "member_id"
	// SortUsername orders by member username.
	SortUsername SortField = "username"
	// SortAge orders by member age.
	SortAge SortField = "age"
	// SortTeamID orders by team id.
	SortTeamID SortField = "team_id"
	// SortTeamName orders by team name.
	SortTeamName SortField = "team_name"
)

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortMemberID, SortUsername, SortAge, SortTeamID, SortTeamName:
		return true
	}
	return false
}

// Order is a single caller-supplied ordering term.
type Order struct {
	Field     SortField `json:"field"`
	Desc      bool      `json:"desc,omitempty"`
	NullsLast bool      `json:"nulls_last,omitempty"`
}

// ParseOrder parses "field[:asc|desc][:nullslast]", e.g. "username:desc:nullslast".
func ParseOrder(s string) (Order, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	o := Order{Field: SortField(strings.ToLower(parts[0]))}
	if !o.Field.Valid() {
		return Order{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidArgument, parts[0])
	}
	for _, p := range parts[1:] {
		switch strings.ToLower(p) {
		case "asc":
			o.Desc = false
		case "desc":
			o.Desc = true
		case "nullslast":
			o.NullsLast = true
		default:
			return Order{}, fmt.Errorf("%w: unknown sort modifier %q", ErrInvalidArgument, p)
		}
	}
	return o, nil
}

// PageRequest describes the slice of a result set to fetch.
type PageRequest struct {
	Offset uint64  `json:"offset"`
	Limit  uint64  `json:"limit"`
	Sort   []Order `json:"sort,omitempty"`
}

// Page is a bounded slice of a result set plus the total matching count.
type Page[T any] struct {
	Content []T    `json:"content"`
	Total   int64  `json:"total"`
	Offset  uint64 `json:"offset"`
	Limit   uint64 `json:"limit"`
}

// TotalPages returns the number of pages of size Limit needed for Total rows.
func (p Page[T]) TotalPages() int64 {
	if p.Limit == 0 {
		return 1
	}
	limit := int64(p.Limit)
	return (p.Total + limit - 1) / limit
}

// Number returns the zero-based page number of this page.
func (p Page[T]) Number() int64 {
	if p.Limit == 0 {
		return 0
	}
	return int64(p.Offset / p.Limit)
}

// HasNext reports whether rows exist beyond this page.
func (p Page[T]) HasNext() bool {
	return int64(p.Offset)+int64(len(p.Content)) < p.Total
}
