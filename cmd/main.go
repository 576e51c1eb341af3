// Package main wires the member search command line tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"member-search/config"
	"member-search/internal/repository"
	"member-search/internal/seed"
	"member-search/internal/transport/cli/middleware"
	"member-search/internal/usecase"
	"member-search/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg  *config.Config
	log  *zap.SugaredLogger
	repo repository.Repository
	uc   usecase.InterfaceUsecase
}

func (a *app) start(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return err
	}

	a.cfg, a.log, a.repo = cfg, log, repo
	a.uc = usecase.New(log, ctx, repo, cfg.Search)

	if cfg.Seed.Enabled {
		if err := seed.Run(ctx, log, repo, cfg.Seed.Members); err != nil {
			log.Errorw("seed error", "error", err)
			return err
		}
	}
	return nil
}

func (a *app) stop() {
	if a.repo != nil {
		_ = a.repo.OnStop(context.Background())
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "member-search",
		Short:         "Dynamic member and team search over PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.start(cmd.Context())
		},
	}

	root.AddCommand(
		newSearchCmd(a),
		newPageCmd(a),
		newTeamCmd(a),
		newRenameCmd(a),
		newSeedCmd(a),
		newStatsCmd(a),
	)
	middleware.Wrap(root, func() *zap.SugaredLogger { return a.log })
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
