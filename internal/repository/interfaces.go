// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"member-search/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	SaveTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, name string) (*entities.Team, error)
}

// MemberInterface exposes member-related operations.
type MemberInterface interface {
	SaveMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	FindMember(ctx context.Context, id int64) (*entities.Member, error)
	FindAllMembers(ctx context.Context) ([]entities.Member, error)
	FindMembersByUsername(ctx context.Context, username string) ([]entities.Member, error)
	RenameMembersYoungerThan(ctx context.Context, age int, username string) (int64, error)
}

// SearchInterface exposes dynamic member/team searches.
type SearchInterface interface {
	Search(ctx context.Context, cond entities.MemberSearchCondition, order ...entities.Order) ([]entities.MemberTeamDto, error)
	SearchPage(ctx context.Context, cond entities.MemberSearchCondition, req entities.PageRequest) (entities.Page[entities.MemberTeamDto], error)
}

// StatsInterface exposes aggregated age statistics.
type StatsInterface interface {
	AgeStats(ctx context.Context) (entities.AgeStats, error)
	TeamAgeStats(ctx context.Context) ([]entities.TeamAgeStat, error)
}
