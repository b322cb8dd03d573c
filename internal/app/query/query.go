package query

import (
	"context"

	"github.com/solindexer/sonar/internal/app"
	"github.com/solindexer/sonar/internal/core"
	"github.com/solindexer/sonar/internal/core/repository/wallet"
)

var _ app.QueryService = (*Service)(nil)

type Service struct {
	cfg *app.QueryConfig

	walletRepo core.WalletRepository
}

func NewService(cfg *app.QueryConfig) *Service {
	var s = new(Service)

	s.cfg = cfg
	s.walletRepo = wallet.NewRepository(cfg.DB.PG)

	return s
}

func (s *Service) GetWalletCounter(ctx context.Context, address string) (*core.WalletCounter, error) {
	return s.walletRepo.GetCounter(ctx, address)
}

func (s *Service) GetLeaderboard(ctx context.Context, limit int) ([]*core.WalletCounter, error) {
	return s.walletRepo.GetLeaderboard(ctx, limit)
}

func (s *Service) GetStatistics(ctx context.Context) (*core.Statistics, error) {
	return s.walletRepo.GetStatistics(ctx)
}
