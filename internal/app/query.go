package app

import (
	"context"

	"github.com/solindexer/sonar/internal/core"
	"github.com/solindexer/sonar/internal/core/repository"
)

type QueryConfig struct {
	DB *repository.DB
}

type QueryService interface {
	GetWalletCounter(ctx context.Context, address string) (*core.WalletCounter, error)
	GetLeaderboard(ctx context.Context, limit int) ([]*core.WalletCounter, error)
	GetStatistics(ctx context.Context) (*core.Statistics, error)
}
