// Package domain contains application Usecases orchestrating domain logic by member.
package domain

import (
	"context"
	"fmt"

	"member-search/internal/entities"
)

// CreateMember stores a member, optionally attached to an existing team.
func (u *Usecase) CreateMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if member.Age < 0 {
		u.log.Errorw("failed to create member: negative age", "age", member.Age)
		return nil, fmt.Errorf("%w: age must not be negative", entities.ErrInvalidArgument)
	}
	return u.repo.SaveMember(ctx, member)
}

// Member returns member by id.
func (u *Usecase) Member(ctx context.Context, id int64) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: member_id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.FindMember(ctx, id)
}

// Members returns all members.
func (u *Usecase) Members(ctx context.Context) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.FindAllMembers(ctx)
}

// MembersByUsername returns members with the given username.
func (u *Usecase) MembersByUsername(ctx context.Context, username string) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}
	return u.repo.FindMembersByUsername(ctx, username)
}

// RenameMembersYoungerThan bulk-renames members younger than age.
func (u *Usecase) RenameMembersYoungerThan(ctx context.Context, age int, username string) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" {
		u.log.Errorw("failed to rename members: missing username")
		return 0, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	updated, err := u.repo.RenameMembersYoungerThan(ctx, age, username)
	if err != nil {
		return 0, err
	}
	u.log.Infow("members renamed", "younger_than", age, "updated", updated)
	return updated, nil
}
