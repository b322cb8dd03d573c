package indexer

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/solindexer/sonar/internal/app"
	"github.com/solindexer/sonar/internal/core"
	"github.com/solindexer/sonar/internal/metrics"
)

// runCycle performs one full scan: read checkpoint, fetch the signature
// window, filter out what was already processed, fetch and parse the novel
// transactions, then commit the per-wallet increments together with the new
// checkpoint. Any error aborts the cycle before anything was written, so the
// next cycle re-derives the same window.
func (s *Service) runCycle(ctx context.Context) error {
	defer app.TimeTrack(time.Now(), "runCycle")

	start := time.Now()

	err := s.cycle(ctx)
	if err != nil {
		metrics.CyclesTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.CyclesTotal.WithLabelValues("ok").Inc()
	metrics.CycleDuration.Observe(time.Since(start).Seconds())
	return nil
}

func (s *Service) cycle(ctx context.Context) error {
	checkpoint, err := s.Storage.GetCheckpoint(ctx)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return errors.Wrap(err, "read checkpoint")
	}

	window, err := s.Fetcher.SignatureWindow(ctx, checkpoint)
	if err != nil {
		return errors.Wrap(err, "fetch signature window")
	}
	if len(window) == 0 {
		log.Debug().Msg("no signatures in window")
		return nil
	}

	newest := window[0].Signature

	novel := core.FilterNovel(window, checkpoint)
	if len(novel) == 0 {
		// quiet program: advance the cursor so the dead window is not
		// re-fetched forever
		if err := s.Storage.CommitCycle(ctx, nil, newest); err != nil {
			return errors.Wrap(err, "fast-forward checkpoint")
		}
		return nil
	}

	raws, err := s.Fetcher.TransactionBodies(ctx, novel)
	if err != nil {
		return errors.Wrap(err, "fetch transaction bodies")
	}

	bodies := make([]*core.TransactionBody, 0, len(novel))
	for _, ref := range novel {
		bodies = append(bodies, s.Parser.ParseTransaction(ref.Signature, raws[ref.Signature]))
	}

	deltas := s.Parser.Aggregate(bodies)

	if err := s.Storage.CommitCycle(ctx, deltas, newest); err != nil {
		return errors.Wrap(err, "commit cycle")
	}

	var counted int64
	for _, inc := range deltas {
		counted += inc
	}
	metrics.TransactionsCounted.Add(float64(counted))
	metrics.WalletsUpdated.Add(float64(len(deltas)))

	log.Info().
		Int("novel", len(novel)).
		Int("wallets", len(deltas)).
		Int64("counted", counted).
		Str("checkpoint", newest).
		Msg("cycle committed")

	return nil
}
