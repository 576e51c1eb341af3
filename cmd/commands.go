package main

import (
	"encoding/json"
	"io"

	"member-search/internal/entities"
	"member-search/internal/seed"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// conditionFlags maps command line flags onto a search condition.
// Only flags set explicitly end up in the condition.
type conditionFlags struct {
	username string
	ageGoe   int
	ageLoe   int
	teamName string
	sort     []string
}

func (c *conditionFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "exact member username")
	fs.IntVar(&c.ageGoe, "age-goe", 0, "minimum age, inclusive")
	fs.IntVar(&c.ageLoe, "age-loe", 0, "maximum age, inclusive")
	fs.StringVar(&c.teamName, "team-name", "", "exact team name")
	fs.StringSliceVar(&c.sort, "sort", nil, "sort terms as field[:asc|desc][:nullslast]")
}

func (c *conditionFlags) condition(fs *pflag.FlagSet) entities.MemberSearchCondition {
	var cond entities.MemberSearchCondition
	if fs.Changed("username") {
		cond = cond.WithUsername(c.username)
	}
	if fs.Changed("age-goe") {
		cond = cond.WithAgeGoe(c.ageGoe)
	}
	if fs.Changed("age-loe") {
		cond = cond.WithAgeLoe(c.ageLoe)
	}
	if fs.Changed("team-name") {
		cond = cond.WithTeamName(c.teamName)
	}
	return cond
}

func (c *conditionFlags) order() ([]entities.Order, error) {
	order := make([]entities.Order, 0, len(c.sort))
	for _, s := range c.sort {
		o, err := entities.ParseOrder(s)
		if err != nil {
			return nil, err
		}
		order = append(order, o)
	}
	return order, nil
}

func newSearchCmd(a *app) *cobra.Command {
	var flags conditionFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List every member matching the condition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := flags.order()
			if err != nil {
				return err
			}
			res, err := a.uc.SearchMembers(cmd.Context(), flags.condition(cmd.Flags()), order...)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newPageCmd(a *app) *cobra.Command {
	var (
		flags  conditionFlags
		offset uint64
		limit  uint64
	)
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Fetch one page of members matching the condition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := flags.order()
			if err != nil {
				return err
			}
			req := entities.PageRequest{Offset: offset, Limit: limit, Sort: order}
			page, err := a.uc.SearchMembersPage(cmd.Context(), flags.condition(cmd.Flags()), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), page)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().Uint64Var(&offset, "offset", 0, "rows to skip")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "page size, 0 for the configured default")
	return cmd
}

func newTeamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "team NAME",
		Short: "Show a team with its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := a.uc.Team(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), team)
		},
	}
}

func newRenameCmd(a *app) *cobra.Command {
	var (
		youngerThan int
		username    string
	)
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Set username on every member younger than the given age",
		RunE: func(cmd *cobra.Command, _ []string) error {
			updated, err := a.uc.RenameMembersYoungerThan(cmd.Context(), youngerThan, username)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]int64{"updated": updated})
		},
	}
	cmd.Flags().IntVar(&youngerThan, "younger-than", 0, "age bound, exclusive")
	cmd.Flags().StringVar(&username, "username", "", "new username")
	_ = cmd.MarkFlagRequired("younger-than")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	var members int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create teamA and teamB with sample members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := a.cfg.Seed.Members
			if cmd.Flags().Changed("members") {
				n = members
			}
			return seed.Run(cmd.Context(), a.log, a.repo, n)
		},
	}
	cmd.Flags().IntVar(&members, "members", 0, "number of members, defaults to seed.members")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show member age statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := a.uc.AgeStats(cmd.Context())
			if err != nil {
				return err
			}
			byTeam, err := a.uc.TeamAgeStats(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), struct {
				All    entities.AgeStats      `json:"all"`
				ByTeam []entities.TeamAgeStat `json:"by_team"`
			}{all, byTeam})
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
