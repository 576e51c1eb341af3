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
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const (
	insertTeamQuery        = "INSERT INTO team(name) VALUES($1) RETURNING id"
	selectTeamIDQuery      = "SELECT id FROM team WHERE name=$1"
	selectTeamMembersQuery = "SELECT id, username, age, team_id FROM member WHERE team_id=$1 ORDER BY id"
)

// SaveTeam inserts a team and its members in one transaction.
// Members are attached to the new team regardless of their TeamID.
func (p *Postgres) SaveTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %w", entities.ErrStoreAccess, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var teamID int64
	if err := tx.QueryRow(ctx, insertTeamQuery, team.Name).Scan(&teamID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, entities.ErrTeamExists
		}
		p.log.Errorw("failed to insert team", "error", err, "team", team.Name)
		return nil, fmt.Errorf("%w: insert team: %w", entities.ErrStoreAccess, err)
	}

	members := make([]entities.Member, 0, len(team.Members))
	for _, m := range team.Members {
		m.TeamID = &teamID
		if err := tx.QueryRow(ctx, insertMemberQuery, m.Username, m.Age, m.TeamID).Scan(&m.ID); err != nil {
			p.log.Errorw("failed to insert member", "error", err, "team", team.Name)
			return nil, fmt.Errorf("%w: insert member: %w", entities.ErrStoreAccess, err)
		}
		members = append(members, m)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit: %w", entities.ErrStoreAccess, err)
	}

	p.log.Infow("team saved", "team", team.Name, "id", teamID, "members", len(members))
	return &entities.Team{ID: teamID, Name: team.Name, Members: members}, nil
}

// GetTeam fetches team with members by name.
func (p *Postgres) GetTeam(ctx context.Context, name string) (*entities.Team, error) {
	var teamID int64
	if err := p.db.QueryRow(ctx, selectTeamIDQuery, name).Scan(&teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("%w: get team: %w", entities.ErrStoreAccess, err)
	}

	members, err := p.queryMembers(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, err
	}

	return &entities.Team{ID: teamID, Name: name, Members: members}, nil
}
