package postgres

import (
	"context"
	"errors"
	"fmt"

	"member-search/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertMemberQuery            = `INSERT INTO member(username, age, team_id) VALUES ($1, $2, $3) RETURNING id`
	selectMemberQuery            = `SELECT id, username, age, team_id FROM member WHERE id=$1`
	selectMembersQuery           = `SELECT id, username, age, team_id FROM member ORDER BY id`
	selectMembersByUsernameQuery = `SELECT id, username, age, team_id FROM member WHERE username=$1 ORDER BY id`
	renameYoungerMembersQuery    = `UPDATE member SET username=$1 WHERE age < $2`
)

// SaveMember inserts a member and returns it with its generated id.
func (p *Postgres) SaveMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	if err := p.db.QueryRow(ctx, insertMemberQuery, member.Username, member.Age, member.TeamID).Scan(&member.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to insert member", "error", err)
		return nil, fmt.Errorf("%w: insert member: %w", entities.ErrStoreAccess, err)
	}

	p.log.Debugw("member saved", "member_id", member.ID)
	return &member, nil
}

// FindMember returns the member with the given id.
func (p *Postgres) FindMember(ctx context.Context, id int64) (*entities.Member, error) {
	var m entities.Member
	err := p.db.QueryRow(ctx, selectMemberQuery, id).Scan(&m.ID, &m.Username, &m.Age, &m.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("%w: find member: %w", entities.ErrStoreAccess, err)
	}
	return &m, nil
}

// FindAllMembers returns every member ordered by id.
func (p *Postgres) FindAllMembers(ctx context.Context) ([]entities.Member, error) {
	return p.queryMembers(ctx, selectMembersQuery)
}

// FindMembersByUsername returns members with exactly the given username.
func (p *Postgres) FindMembersByUsername(ctx context.Context, username string) ([]entities.Member, error) {
	return p.queryMembers(ctx, selectMembersByUsernameQuery, username)
}

// RenameMembersYoungerThan sets username on every member younger than age
// in one statement and returns the number of updated rows. Nothing is cached
// here, so later reads through the same handle see the new names.
func (p *Postgres) RenameMembersYoungerThan(ctx context.Context, age int, username string) (int64, error) {
	tag, err := p.db.Exec(ctx, renameYoungerMembersQuery, username, age)
	if err != nil {
		p.log.Errorw("failed to rename members", "error", err, "age", age)
		return 0, fmt.Errorf("%w: rename members: %w", entities.ErrStoreAccess, err)
	}

	p.log.Infow("members renamed", "younger_than", age, "updated", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func (p *Postgres) queryMembers(ctx context.Context, query string, args ...any) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query members: %w", entities.ErrStoreAccess, err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var m entities.Member
		if err := rows.Scan(&m.ID, &m.Username, &m.Age, &m.TeamID); err != nil {
			p.log.Errorw("failed to scan member", "error", err)
			return nil, fmt.Errorf("%w: scan member: %w", entities.ErrProjection, err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate members", "error", err)
		return nil, fmt.Errorf("%w: iterate members: %w", entities.ErrStoreAccess, err)
	}

	return members, nil
}
