package usecase

import (
	"context"

	"member-search/internal/entities"
)

// SearchUsecaseInterface abstracts dynamic member searches for delivery layer.
type SearchUsecaseInterface interface {
	SearchMembers(ctx context.Context, cond entities.MemberSearchCondition, order ...entities.Order) ([]entities.MemberTeamDto, error)
	SearchMembersPage(ctx context.Context, cond entities.MemberSearchCondition, req entities.PageRequest) (entities.Page[entities.MemberTeamDto], error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, name string) (*entities.Team, error)
}

// MemberUsecaseInterface abstracts member-related operations.
type MemberUsecaseInterface interface {
	CreateMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	Member(ctx context.Context, id int64) (*entities.Member, error)
	Members(ctx context.Context) ([]entities.Member, error)
	MembersByUsername(ctx context.Context, username string) ([]entities.Member, error)
	RenameMembersYoungerThan(ctx context.Context, age int, username string) (int64, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	AgeStats(ctx context.Context) (entities.AgeStats, error)
	TeamAgeStats(ctx context.Context) ([]entities.TeamAgeStat, error)
}
