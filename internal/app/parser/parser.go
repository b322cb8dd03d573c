package parser

import (
	"github.com/rs/zerolog/log"

	"github.com/solindexer/sonar/internal/app"
	"github.com/solindexer/sonar/internal/core"
	"github.com/solindexer/sonar/internal/solana"
)

var _ app.ParserService = (*Service)(nil)

type Service struct {
	*app.ParserConfig
}

func NewService(cfg *app.ParserConfig) *Service {
	return &Service{ParserConfig: cfg}
}

// ParseTransaction reduces one fetched transaction to its countable view.
// The attributed wallet is the first signer account, i.e. the fee payer.
// Transactions with an execution error, without a program invocation or
// without a signer simply do not qualify; none of these are error conditions.
func (s *Service) ParseTransaction(signature string, raw *solana.Transaction) *core.TransactionBody {
	body := &core.TransactionBody{Signature: signature}

	if raw == nil {
		body.Missing = true
		log.Debug().Str("signature", signature).Msg("transaction body missing")
		return body
	}

	body.Failed = raw.Meta == nil || raw.Meta.Err != nil

	for _, inst := range raw.Transaction.Message.Instructions {
		if inst.ProgramID == s.ProgramID {
			body.InvokedProgram = true
			break
		}
	}

	for _, key := range raw.Transaction.Message.AccountKeys {
		if key.Signer {
			body.Wallet = key.Pubkey
			break
		}
	}

	return body
}

func (s *Service) Aggregate(bodies []*core.TransactionBody) map[string]int64 {
	deltas := make(map[string]int64)
	for _, b := range bodies {
		if b.Qualifies() {
			deltas[b.Wallet]++
		}
	}
	return deltas
}
