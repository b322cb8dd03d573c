package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solindexer/sonar/internal/core"
	"github.com/solindexer/sonar/internal/solana"
)

type FetcherConfig struct {
	API *solana.Client

	ProgramID string

	// FetchLimit bounds one signature window request.
	FetchLimit int
	// BatchSize is the number of transaction bodies requested per RPC batch.
	BatchSize int
	// BatchDelay paces consecutive batches to stay under provider rate limits.
	BatchDelay time.Duration
}

func TimeTrack(start time.Time, fun string, args ...any) {
	elapsed := float64(time.Since(start)) / 1e9
	if elapsed < 0.1 {
		return
	}
	log.Debug().Str("func", fmt.Sprintf(fun, args...)).Float64("elapsed", elapsed).Msg("timer")
}

type FetcherService interface {
	// SignatureWindow returns the most recent signatures referencing the
	// target program, newest-first, down to the checkpoint when it is set.
	SignatureWindow(ctx context.Context, until string) ([]*core.TransactionRef, error)

	// TransactionBodies fetches parsed bodies for the given refs in paced
	// chunks. Every ref gets an entry; nil marks a missing transaction.
	TransactionBodies(ctx context.Context, refs []*core.TransactionRef) (map[string]*solana.Transaction, error)
}
