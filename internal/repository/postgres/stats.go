package postgres

import (
	"context"
	"fmt"

	"member-search/internal/entities"
)

const (
	ageStatsQuery = `
SELECT COUNT(*), COALESCE(SUM(age), 0), COALESCE(AVG(age), 0)::float8, COALESCE(MAX(age), 0), COALESCE(MIN(age), 0)
FROM member`
	teamAgeStatsQuery = `
SELECT t.name, AVG(m.age)::float8
FROM member m
JOIN team t ON t.id = m.team_id
GROUP BY t.name
ORDER BY t.name`
)

// AgeStats returns count, sum, average, max and min of member ages.
func (p *Postgres) AgeStats(ctx context.Context) (entities.AgeStats, error) {
	var res entities.AgeStats
	if err := p.db.QueryRow(ctx, ageStatsQuery).Scan(&res.Count, &res.Sum, &res.Avg, &res.Max, &res.Min); err != nil {
		return res, fmt.Errorf("%w: age stats: %w", entities.ErrStoreAccess, err)
	}
	return res, nil
}

// TeamAgeStats returns the average member age per team, ordered by team name.
// Members without a team are not counted.
func (p *Postgres) TeamAgeStats(ctx context.Context) ([]entities.TeamAgeStat, error) {
	rows, err := p.db.Query(ctx, teamAgeStatsQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: team age stats: %w", entities.ErrStoreAccess, err)
	}
	defer rows.Close()

	res := make([]entities.TeamAgeStat, 0)
	for rows.Next() {
		var s entities.TeamAgeStat
		if err := rows.Scan(&s.TeamName, &s.AvgAge); err != nil {
			return nil, fmt.Errorf("%w: scan team age stat: %w", entities.ErrProjection, err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate team age stats: %w", entities.ErrStoreAccess, err)
	}

	return res, nil
}
