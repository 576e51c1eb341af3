package search

import (
	"context"
	"errors"
	"fmt"

	"member-search/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	memberTable = "member m"
	teamJoin    = "team t ON t.id = m.team_id"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sortColumns = map[entities.SortField]string{
	entities.SortMemberID: colMemberID,
	entities.SortUsername: colUsername,
	entities.SortAge:      colAge,
	entities.SortTeamID:   colTeamID,
	entities.SortTeamName: colTeamName,
}

// Querier is the query-execution handle the executor runs on.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it; the caller owns
// connection and transaction lifetime.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Executor runs member searches. It holds no state besides the querier and
// is safe for concurrent use if the querier is.
type Executor struct {
	q Querier
}

// New returns an executor bound to q.
func New(q Querier) *Executor {
	return &Executor{q: q}
}

// Search returns every member matching cond, joined with its team if any.
// Rows come back in store-default order unless order is given.
func (e *Executor) Search(ctx context.Context, cond entities.MemberSearchCondition, order ...entities.Order) ([]entities.MemberTeamDto, error) {
	b, err := orderBy(selectMemberTeam().Where(Where(cond)), order)
	if err != nil {
		return nil, err
	}
	return e.fetch(ctx, b)
}

// SearchPage returns at most req.Limit rows starting at req.Offset together
// with the number of rows matching cond. The count query is skipped when the
// first page is already short, since it then holds the whole result.
func (e *Executor) SearchPage(ctx context.Context, cond entities.MemberSearchCondition, req entities.PageRequest) (entities.Page[entities.MemberTeamDto], error) {
	pred := Where(cond)

	b, err := orderBy(selectMemberTeam().Where(pred), req.Sort)
	if err != nil {
		return entities.Page[entities.MemberTeamDto]{}, err
	}

	content, err := e.fetch(ctx, b.Offset(req.Offset).Limit(req.Limit))
	if err != nil {
		return entities.Page[entities.MemberTeamDto]{}, err
	}

	page := entities.Page[entities.MemberTeamDto]{
		Content: content,
		Offset:  req.Offset,
		Limit:   req.Limit,
	}
	if req.Offset == 0 && uint64(len(content)) < req.Limit {
		page.Total = int64(len(content))
		return page, nil
	}

	total, err := e.count(ctx, pred)
	if err != nil {
		return entities.Page[entities.MemberTeamDto]{}, err
	}
	page.Total = total
	return page, nil
}

func selectMemberTeam() sq.SelectBuilder {
	return psql.
		Select(colMemberID, colUsername, colAge, colTeamID, colTeamName).
		From(memberTable).
		LeftJoin(teamJoin)
}

func orderBy(b sq.SelectBuilder, order []entities.Order) (sq.SelectBuilder, error) {
	if len(order) == 0 {
		return b, nil
	}
	terms := make([]string, 0, len(order))
	for _, o := range order {
		col, ok := sortColumns[o.Field]
		if !ok {
			return b, fmt.Errorf("%w: unknown sort field %q", entities.ErrInvalidArgument, o.Field)
		}
		term := col + " ASC"
		if o.Desc {
			term = col + " DESC"
		}
		if o.NullsLast {
			term += " NULLS LAST"
		}
		terms = append(terms, term)
	}
	return b.OrderBy(terms...), nil
}

func (e *Executor) fetch(ctx context.Context, b sq.SelectBuilder) ([]entities.MemberTeamDto, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build member search: %w", entities.ErrStoreAccess, err)
	}

	rows, err := e.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: member search: %w", entities.ErrStoreAccess, err)
	}

	res, err := pgx.CollectRows(rows, scanMemberTeam)
	if err != nil {
		if errors.Is(err, entities.ErrProjection) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: iterate member search: %w", entities.ErrStoreAccess, err)
	}
	return res, nil
}

func (e *Executor) count(ctx context.Context, pred sq.Sqlizer) (int64, error) {
	query, args, err := psql.
		Select("count(" + colMemberID + ")").
		From(memberTable).
		LeftJoin(teamJoin).
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: build member count: %w", entities.ErrStoreAccess, err)
	}

	var total int64
	if err := e.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: member count: %w", entities.ErrStoreAccess, err)
	}
	return total, nil
}

func scanMemberTeam(row pgx.CollectableRow) (entities.MemberTeamDto, error) {
	var d entities.MemberTeamDto
	if err := row.Scan(&d.MemberID, &d.Username, &d.Age, &d.TeamID, &d.TeamName); err != nil {
		return d, fmt.Errorf("%w: scan member team: %w", entities.ErrProjection, err)
	}
	return d, nil
}
