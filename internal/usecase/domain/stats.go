// Package domain contains application services orchestrating domain logic by statistics.
package domain

import (
	"context"

	"member-search/internal/entities"
)

// AgeStats returns aggregated member age stats.
func (u *Usecase) AgeStats(ctx context.Context) (entities.AgeStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.AgeStats(ctx)
}

// TeamAgeStats returns average member age per team.
func (u *Usecase) TeamAgeStats(ctx context.Context) ([]entities.TeamAgeStat, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.TeamAgeStats(ctx)
}
