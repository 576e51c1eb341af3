package postgres

import (
	"context"

	"member-search/internal/entities"
	"member-search/internal/search"
)

// Search runs a flat member/team search on the pool.
func (p *Postgres) Search(ctx context.Context, cond entities.MemberSearchCondition, order ...entities.Order) ([]entities.MemberTeamDto, error) {
	res, err := search.New(p.db).Search(ctx, cond, order...)
	if err != nil {
		p.log.Errorw("member search failed", "error", err)
		return nil, err
	}

	p.log.Debugw("member search", "rows", len(res))
	return res, nil
}

// SearchPage runs a paginated member/team search on the pool.
func (p *Postgres) SearchPage(ctx context.Context, cond entities.MemberSearchCondition, req entities.PageRequest) (entities.Page[entities.MemberTeamDto], error) {
	page, err := search.New(p.db).SearchPage(ctx, cond, req)
	if err != nil {
		p.log.Errorw("member page search failed", "error", err, "offset", req.Offset, "limit", req.Limit)
		return entities.Page[entities.MemberTeamDto]{}, err
	}

	p.log.Debugw("member page search", "offset", req.Offset, "limit", req.Limit, "rows", len(page.Content), "total", page.Total)
	return page, nil
}
