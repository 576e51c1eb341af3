package search

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"member-search/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type querierMock struct{ mock.Mock }

var _ Querier = (*querierMock)(nil)

func (m *querierMock) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ret := m.Called(ctx, sql, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(pgx.Rows), ret.Error(1)
}

func (m *querierMock) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgx.Row)
}

// memRows serves fixed values; Scan assigns each value to the matching dest.
type memRows struct {
	data   [][]any
	pos    int
	err    error
	closed bool
}

func (r *memRows) Close()                                       { r.closed = true }
func (r *memRows) Err() error                                   { return r.err }
func (r *memRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *memRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *memRows) RawValues() [][]byte                          { return nil }
func (r *memRows) Conn() *pgx.Conn                              { return nil }

func (r *memRows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *memRows) Values() ([]any, error) { return r.data[r.pos-1], nil }

func (r *memRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("got %d destinations for %d columns", len(dest), len(row))
	}
	for i, v := range row {
		dv := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		sv := reflect.ValueOf(v)
		if !sv.Type().AssignableTo(dv.Type()) {
			return fmt.Errorf("column %d: cannot assign %T to %s", i, v, dv.Type())
		}
		dv.Set(sv)
	}
	return nil
}

type countRow struct {
	n   int64
	err error
}

func (r countRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.n
	return nil
}

func strPtr(s string) *string { return &s }
func idPtr(id int64) *int64   { return &id }

func dto(id int64, username string, age int, teamID int64, team string) entities.MemberTeamDto {
	return entities.MemberTeamDto{MemberID: id, Username: strPtr(username), Age: age, TeamID: idPtr(teamID), TeamName: strPtr(team)}
}

func rowsOf(dtos ...entities.MemberTeamDto) *memRows {
	data := make([][]any, 0, len(dtos))
	for _, d := range dtos {
		data = append(data, []any{d.MemberID, d.Username, d.Age, d.TeamID, d.TeamName})
	}
	return &memRows{data: data}
}

func sqlContains(parts ...string) any {
	return mock.MatchedBy(func(sql string) bool {
		for _, p := range parts {
			if !strings.Contains(sql, p) {
				return false
			}
		}
		return true
	})
}

func TestSearchEmptyConditionJoinsTeam(t *testing.T) {
	q := &querierMock{}
	unaffiliated := entities.MemberTeamDto{MemberID: 5, Username: strPtr("loner"), Age: 50}
	want := []entities.MemberTeamDto{dto(1, "member1", 10, 1, "teamA"), unaffiliated}
	rows := rowsOf(want...)

	q.On("Query", mock.Anything,
		sqlContains("SELECT m.id, m.username, m.age, t.id, t.name FROM member m LEFT JOIN team t ON t.id = m.team_id", "WHERE (1=1)"),
		[]any(nil)).Return(rows, nil).Once()

	got, err := New(q).Search(context.Background(), entities.MemberSearchCondition{})
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Nil(t, got[1].TeamID)
	require.Nil(t, got[1].TeamName)
	require.True(t, rows.closed)
	q.AssertExpectations(t)
}

func TestSearchBindsDollarPlaceholders(t *testing.T) {
	q := &querierMock{}
	cond := entities.MemberSearchCondition{}.WithAgeGoe(35).WithAgeLoe(40).WithTeamName("teamB")

	q.On("Query", mock.Anything,
		sqlContains("WHERE (m.age >= $1 AND m.age <= $2 AND t.name = $3)"),
		[]any{35, 40, "teamB"}).Return(rowsOf(dto(4, "member4", 40, 2, "teamB")), nil).Once()

	got, err := New(q).Search(context.Background(), cond)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "member4", *got[0].Username)
	q.AssertExpectations(t)
}

func TestSearchNoRowsReturnsEmptySlice(t *testing.T) {
	q := &querierMock{}
	q.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(rowsOf(), nil).Once()

	got, err := New(q).Search(context.Background(), entities.MemberSearchCondition{}.WithUsername("nobody"))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSearchAppliesCallerOrder(t *testing.T) {
	q := &querierMock{}
	q.On("Query", mock.Anything,
		sqlContains("ORDER BY m.age DESC, m.username ASC NULLS LAST"),
		mock.Anything).Return(rowsOf(), nil).Once()

	_, err := New(q).Search(context.Background(), entities.MemberSearchCondition{},
		entities.Order{Field: entities.SortAge, Desc: true},
		entities.Order{Field: entities.SortUsername, NullsLast: true},
	)
	require.NoError(t, err)
	q.AssertExpectations(t)
}

func TestSearchWithoutOrderHasNoOrderBy(t *testing.T) {
	q := &querierMock{}
	q.On("Query", mock.Anything, mock.MatchedBy(func(sql string) bool {
		return !strings.Contains(sql, "ORDER BY")
	}), mock.Anything).Return(rowsOf(), nil).Once()

	_, err := New(q).Search(context.Background(), entities.MemberSearchCondition{})
	require.NoError(t, err)
	q.AssertExpectations(t)
}

func TestSearchRejectsUnknownSortField(t *testing.T) {
	q := &querierMock{}

	_, err := New(q).Search(context.Background(), entities.MemberSearchCondition{}, entities.Order{Field: "password"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	q.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchStoreErrors(t *testing.T) {
	connErr := errors.New("connection refused")

	t.Run("query", func(t *testing.T) {
		q := &querierMock{}
		q.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, connErr).Once()

		got, err := New(q).Search(context.Background(), entities.MemberSearchCondition{})
		require.Nil(t, got)
		require.ErrorIs(t, err, entities.ErrStoreAccess)
		require.ErrorIs(t, err, connErr)
	})

	t.Run("iteration", func(t *testing.T) {
		q := &querierMock{}
		rows := rowsOf(dto(1, "member1", 10, 1, "teamA"))
		rows.err = connErr
		q.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil).Once()

		got, err := New(q).Search(context.Background(), entities.MemberSearchCondition{})
		require.Nil(t, got)
		require.ErrorIs(t, err, entities.ErrStoreAccess)
		require.ErrorIs(t, err, connErr)
	})
}

func TestSearchProjectionError(t *testing.T) {
	q := &querierMock{}
	rows := &memRows{data: [][]any{{int64(1), strPtr("member1"), "not-an-age", nil, nil}}}
	q.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil).Once()

	got, err := New(q).Search(context.Background(), entities.MemberSearchCondition{})
	require.Nil(t, got)
	require.ErrorIs(t, err, entities.ErrProjection)
	require.NotErrorIs(t, err, entities.ErrStoreAccess)
	require.True(t, rows.closed)
}

func TestSearchPageShortFirstPageSkipsCount(t *testing.T) {
	q := &querierMock{}
	cond := entities.MemberSearchCondition{}.WithTeamName("teamB")
	q.On("Query", mock.Anything, sqlContains("LIMIT 10 OFFSET 0"), []any{"teamB"}).
		Return(rowsOf(dto(3, "member3", 30, 2, "teamB"), dto(4, "member4", 40, 2, "teamB")), nil).Once()

	page, err := New(q).SearchPage(context.Background(), cond, entities.PageRequest{Offset: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, uint64(10), page.Limit)
	q.AssertExpectations(t)
	q.AssertNotCalled(t, "QueryRow", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchPageWithOffsetCounts(t *testing.T) {
	q := &querierMock{}
	q.On("Query", mock.Anything, sqlContains("LIMIT 2 OFFSET 1"), []any(nil)).
		Return(rowsOf(dto(2, "member2", 20, 1, "teamA"), dto(3, "member3", 30, 2, "teamB")), nil).Once()
	q.On("QueryRow", mock.Anything,
		mock.MatchedBy(func(sql string) bool {
			return strings.HasPrefix(sql, "SELECT count(m.id) FROM member m LEFT JOIN team t ON t.id = m.team_id WHERE (1=1)") &&
				!strings.Contains(sql, "LIMIT") && !strings.Contains(sql, "ORDER BY")
		}),
		[]any(nil)).Return(countRow{n: 4}).Once()

	page, err := New(q).SearchPage(context.Background(), entities.MemberSearchCondition{}, entities.PageRequest{
		Offset: 1,
		Limit:  2,
		Sort:   []entities.Order{{Field: entities.SortUsername, Desc: true}},
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.Equal(t, int64(4), page.Total)
	require.Equal(t, uint64(1), page.Offset)
	q.AssertExpectations(t)
}

func TestSearchPageOffsetWithShortPageStillCounts(t *testing.T) {
	q := &querierMock{}
	q.On("Query", mock.Anything, mock.Anything, mock.Anything).
		Return(rowsOf(dto(4, "member4", 40, 2, "teamB")), nil).Once()
	q.On("QueryRow", mock.Anything, sqlContains("count(m.id)"), mock.Anything).Return(countRow{n: 4}).Once()

	page, err := New(q).SearchPage(context.Background(), entities.MemberSearchCondition{}, entities.PageRequest{Offset: 3, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, int64(4), page.Total)
	q.AssertExpectations(t)
}

func TestSearchPageFullFirstPageCounts(t *testing.T) {
	q := &querierMock{}
	cond := entities.MemberSearchCondition{}.WithAgeGoe(10)
	q.On("Query", mock.Anything, mock.Anything, []any{10}).
		Return(rowsOf(dto(1, "member1", 10, 1, "teamA"), dto(2, "member2", 20, 1, "teamA")), nil).Once()
	q.On("QueryRow", mock.Anything, sqlContains("WHERE (m.age >= $1)"), []any{10}).Return(countRow{n: 4}).Once()

	page, err := New(q).SearchPage(context.Background(), cond, entities.PageRequest{Offset: 0, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, int64(4), page.Total)
	require.True(t, page.HasNext())
	q.AssertExpectations(t)
}

func TestSearchPageCountFailureReturnsNoPage(t *testing.T) {
	q := &querierMock{}
	countErr := errors.New("conn closed")
	q.On("Query", mock.Anything, mock.Anything, mock.Anything).
		Return(rowsOf(dto(1, "member1", 10, 1, "teamA"), dto(2, "member2", 20, 1, "teamA")), nil).Once()
	q.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(countRow{err: countErr}).Once()

	page, err := New(q).SearchPage(context.Background(), entities.MemberSearchCondition{}, entities.PageRequest{Limit: 2})
	require.ErrorIs(t, err, entities.ErrStoreAccess)
	require.ErrorIs(t, err, countErr)
	require.Nil(t, page.Content)
	require.Zero(t, page.Total)
}

func TestSearchPageFetchFailureSkipsCount(t *testing.T) {
	q := &querierMock{}
	q.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	_, err := New(q).SearchPage(context.Background(), entities.MemberSearchCondition{}, entities.PageRequest{Offset: 5, Limit: 2})
	require.ErrorIs(t, err, entities.ErrStoreAccess)
	q.AssertNotCalled(t, "QueryRow", mock.Anything, mock.Anything, mock.Anything)
}
