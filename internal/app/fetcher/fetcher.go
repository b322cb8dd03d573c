package fetcher

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/solindexer/sonar/internal/app"
	"github.com/solindexer/sonar/internal/core"
	"github.com/solindexer/sonar/internal/solana"
	"github.com/solindexer/sonar/lru"
)

var _ app.FetcherService = (*Service)(nil)

const bodyCacheSize = 4096

type Service struct {
	*app.FetcherConfig

	// bodies survive a failed cycle, so replaying the same window after a
	// crash or commit error does not re-pay getTransaction calls
	bodies *lru.Cache[string, *solana.Transaction]
}

func NewService(cfg *app.FetcherConfig) *Service {
	return &Service{
		FetcherConfig: cfg,
		bodies:        lru.New[string, *solana.Transaction](bodyCacheSize),
	}
}

func (s *Service) SignatureWindow(ctx context.Context, until string) ([]*core.TransactionRef, error) {
	defer app.TimeTrack(time.Now(), "SignatureWindow(%s)", until)

	infos, err := s.API.GetSignaturesForAddress(ctx, s.ProgramID, s.FetchLimit, until)
	if err != nil {
		return nil, errors.Wrap(err, "get signatures for address")
	}

	refs := make([]*core.TransactionRef, 0, len(infos))
	for _, info := range infos {
		ref := &core.TransactionRef{
			Signature: info.Signature,
			Slot:      info.Slot,
		}
		if info.BlockTime != nil {
			ref.BlockTime = *info.BlockTime
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

func (s *Service) TransactionBodies(ctx context.Context, refs []*core.TransactionRef) (map[string]*solana.Transaction, error) {
	defer app.TimeTrack(time.Now(), "TransactionBodies(%d)", len(refs))

	ret := make(map[string]*solana.Transaction, len(refs))

	var unseen []string
	for _, ref := range refs {
		if raw, ok := s.bodies.Get(ref.Signature); ok {
			ret[ref.Signature] = raw
			continue
		}
		unseen = append(unseen, ref.Signature)
	}

	for i := 0; i < len(unseen); i += s.BatchSize {
		if i > 0 {
			select {
			case <-time.After(s.BatchDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		end := i + s.BatchSize
		if end > len(unseen) {
			end = len(unseen)
		}
		chunk := unseen[i:end]

		raws, err := s.API.GetTransactions(ctx, chunk)
		if err != nil {
			return nil, errors.Wrapf(err, "get transactions chunk at %d", i)
		}

		for j, raw := range raws {
			ret[chunk[j]] = raw
			if raw != nil {
				s.bodies.Put(chunk[j], raw)
			}
		}
	}

	if len(unseen) < len(refs) {
		log.Debug().
			Int("cached", len(refs)-len(unseen)).
			Int("fetched", len(unseen)).
			Msg("transaction bodies served partially from cache")
	}

	return ret, nil
}
