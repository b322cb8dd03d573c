package core

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// WalletCounter tracks how many times a wallet interacted with the target
// program across all completed scan cycles. Counts only grow.
type WalletCounter struct {
	bun.BaseModel `bun:"table:wallet_counters" json:"-"`

	Address          string    `bun:",pk,notnull" json:"address"`
	InteractionCount int64     `bun:",notnull" json:"interaction_count"`
	LastUpdated      time.Time `bun:",notnull" json:"last_updated"`
}

// Checkpoint is the durable scan cursor: the most recent fully-processed
// transaction signature. Exactly one row exists.
type Checkpoint struct {
	bun.BaseModel `bun:"table:checkpoints" json:"-"`

	ID        int64     `bun:",pk" json:"-"`
	Signature string    `bun:",notnull" json:"signature"`
	UpdatedAt time.Time `bun:",notnull" json:"updated_at"`
}

const CheckpointID = 1

type Statistics struct {
	Wallets           int64  `json:"wallets"`
	TotalInteractions int64  `json:"total_interactions"`
	Checkpoint        string `json:"checkpoint,omitempty"`
}

type WalletRepository interface {
	// GetCheckpoint returns the stored cursor, or ErrNotFound on cold start.
	GetCheckpoint(ctx context.Context) (string, error)

	// CommitCycle applies per-wallet increments and advances the checkpoint in
	// a single storage transaction. An empty delta set performs a
	// checkpoint-only fast-forward. On failure nothing is applied.
	CommitCycle(ctx context.Context, deltas map[string]int64, newCheckpoint string) error

	GetCounter(ctx context.Context, address string) (*WalletCounter, error)
	GetLeaderboard(ctx context.Context, limit int) ([]*WalletCounter, error)
	GetStatistics(ctx context.Context) (*Statistics, error)
}
