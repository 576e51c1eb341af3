package usecase

import (
	"context"

	"member-search/config"
	"member-search/internal/repository"
	"member-search/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	SearchUsecaseInterface
	TeamUsecaseInterface
	MemberUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, cfg config.SearchConfig) InterfaceUsecase {
	return domain.New(log, ctx, repo, cfg)
}
