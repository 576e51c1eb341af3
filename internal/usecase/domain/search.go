// Package domain contains application Usecases orchestrating domain logic by member search.
package domain

import (
	"context"
	"fmt"

	"member-search/internal/entities"
)

// SearchMembers returns every member/team row matching cond.
func (u *Usecase) SearchMembers(
	ctx context.Context,
	cond entities.MemberSearchCondition,
	order ...entities.Order,
) ([]entities.MemberTeamDto, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateOrder(order); err != nil {
		u.log.Errorw("failed to search members", "error", err)
		return nil, err
	}
	return u.repo.Search(ctx, cond, order...)
}

// SearchMembersPage returns one page of member/team rows matching cond.
// A zero Limit falls back to the configured default page size.
func (u *Usecase) SearchMembersPage(
	ctx context.Context,
	cond entities.MemberSearchCondition,
	req entities.PageRequest,
) (entities.Page[entities.MemberTeamDto], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.Limit == 0 {
		req.Limit = u.search.DefaultPageSize
	}
	if u.search.MaxPageSize > 0 && req.Limit > u.search.MaxPageSize {
		u.log.Errorw("failed to search members page: limit too large", "limit", req.Limit, "max", u.search.MaxPageSize)
		return entities.Page[entities.MemberTeamDto]{},
			fmt.Errorf("%w: limit %d exceeds %d", entities.ErrInvalidArgument, req.Limit, u.search.MaxPageSize)
	}
	if err := validateOrder(req.Sort); err != nil {
		u.log.Errorw("failed to search members page", "error", err)
		return entities.Page[entities.MemberTeamDto]{}, err
	}
	return u.repo.SearchPage(ctx, cond, req)
}

func validateOrder(order []entities.Order) error {
	for _, o := range order {
		if !o.Field.Valid() {
			return fmt.Errorf("%w: unknown sort field %q", entities.ErrInvalidArgument, o.Field)
		}
	}
	return nil
}
