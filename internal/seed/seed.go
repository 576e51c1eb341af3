// Package seed creates the sample teamA/teamB data set.
package seed

import (
	"context"
	"errors"
	"fmt"

	"member-search/internal/entities"
	"member-search/internal/repository"

	"go.uber.org/zap"
)

const (
	TeamA = "teamA"
	TeamB = "teamB"
)

// Teams splits n members between teamA and teamB.
// member{i} has age i and belongs to teamA when i is even.
func Teams(n int) []entities.Team {
	a := entities.Team{Name: TeamA, Members: make([]entities.Member, 0, (n+1)/2)}
	b := entities.Team{Name: TeamB, Members: make([]entities.Member, 0, n/2)}

	for i := 0; i < n; i++ {
		m := entities.NewMember(fmt.Sprintf("member%d", i), i)
		if i%2 == 0 {
			a.Members = append(a.Members, m)
		} else {
			b.Members = append(b.Members, m)
		}
	}

	return []entities.Team{a, b}
}

// Run saves the sample teams. Teams that already exist are left untouched.
func Run(ctx context.Context, log *zap.SugaredLogger, repo repository.TeamInterface, n int) error {
	log = log.Named("seed")

	for _, team := range Teams(n) {
		saved, err := repo.SaveTeam(ctx, team)
		if errors.Is(err, entities.ErrTeamExists) {
			log.Infow("team already seeded", "team", team.Name)
			continue
		}
		if err != nil {
			return fmt.Errorf("seed team %s: %w", team.Name, err)
		}
		log.Infow("team seeded", "team", saved.Name, "members", len(saved.Members))
	}

	return nil
}
