package app

import (
	"github.com/solindexer/sonar/internal/core"
	"github.com/solindexer/sonar/internal/solana"
)

type ParserConfig struct {
	ProgramID string
}

type ParserService interface {
	// ParseTransaction derives the countable view of one fetched transaction.
	// A nil raw body yields a missing-body record, not an error.
	ParseTransaction(signature string, raw *solana.Transaction) *core.TransactionBody

	// Aggregate folds one cycle's bodies into per-wallet increments.
	Aggregate(bodies []*core.TransactionBody) map[string]int64
}
