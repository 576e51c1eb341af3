// Package entities contains core business entities.
package entities

// Member belongs to at most one team. Username and TeamID are nullable.
type Member struct {
	ID       int64   `json:"id"`
	Username *string `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
}

// NewMember returns a member with the given username and age and no team.
func NewMember(username string, age int) Member {
	return Member{Username: &username, Age: age}
}

// MemberTeamDto is a flat read-only view of a member joined with its team.
type MemberTeamDto struct {
	MemberID int64   `json:"member_id"`
	Username *string `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
	TeamName *string `json:"team_name"`
}

// MemberSearchCondition holds independently optional search filters.
// A nil field means the field is not filtered on.
type MemberSearchCondition struct {
	Username *string `json:"username,omitempty"`
	AgeGoe   *int    `json:"age_goe,omitempty"`
	AgeLoe   *int    `json:"age_loe,omitempty"`
	TeamName *string `json:"team_name,omitempty"`
}

// WithUsername returns a copy of c filtering on an exact username.
func (c MemberSearchCondition) WithUsername(username string) MemberSearchCondition {
	c.Username = &username
	return c
}

// WithAgeGoe returns a copy of c filtering on age >= age.
func (c MemberSearchCondition) WithAgeGoe(age int) MemberSearchCondition {
	c.AgeGoe = &age
	return c
}

// WithAgeLoe returns a copy of c filtering on age <= age.
func (c MemberSearchCondition) WithAgeLoe(age int) MemberSearchCondition {
	c.AgeLoe = &age
	return c
}

// WithTeamName returns a copy of c filtering on an exact team name.
func (c MemberSearchCondition) WithTeamName(name string) MemberSearchCondition {
	c.TeamName = &name
	return c
}
