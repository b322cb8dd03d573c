package app

import (
	"time"

	"github.com/solindexer/sonar/internal/core"
)

type IndexerConfig struct {
	Storage core.WalletRepository
	Fetcher FetcherService
	Parser  ParserService

	// PollInterval is the wall-clock pause between scan cycles. Cycles never
	// overlap: the next timer arms only after the previous cycle finished.
	PollInterval time.Duration
}

type IndexerService interface {
	Start() error
	Stop()
}
