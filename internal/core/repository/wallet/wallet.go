package wallet

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/solindexer/sonar/internal/core"
)

var _ core.WalletRepository = (*Repository)(nil)

type Repository struct {
	pg *bun.DB
}

func NewRepository(pg *bun.DB) *Repository {
	return &Repository{pg: pg}
}

func CreateTables(ctx context.Context, pgDB *bun.DB) error {
	_, err := pgDB.NewCreateTable().
		Model(&core.WalletCounter{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "wallet counters pg create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.Checkpoint{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "checkpoints pg create table")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.WalletCounter{}).
		IfNotExists().
		Index("wallet_counters_rank_idx").
		ColumnExpr("interaction_count DESC, last_updated ASC").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "wallet counters rank pg create index")
	}

	return nil
}

func (r *Repository) GetCheckpoint(ctx context.Context) (string, error) {
	cp := new(core.Checkpoint)

	err := r.pg.NewSelect().Model(cp).
		Where("id = ?", core.CheckpointID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", core.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "select checkpoint")
	}

	return cp.Signature, nil
}

// CommitCycle upserts every wallet increment and stores the new checkpoint in
// one pg transaction. Co-committing the two is what makes a crash-and-replay
// of the same window safe: either a cycle is fully applied or it never was.
func (r *Repository) CommitCycle(ctx context.Context, deltas map[string]int64, newCheckpoint string) error {
	tx, err := r.pg.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin pg transaction")
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	if len(deltas) > 0 {
		counters := make([]*core.WalletCounter, 0, len(deltas))
		for addr, inc := range deltas {
			counters = append(counters, &core.WalletCounter{
				Address:          addr,
				InteractionCount: inc,
				LastUpdated:      now,
			})
		}
		// deterministic row order avoids upsert deadlocks
		sort.Slice(counters, func(i, j int) bool { return counters[i].Address < counters[j].Address })

		_, err = tx.NewInsert().Model(&counters).
			On("CONFLICT (address) DO UPDATE").
			Set("interaction_count = wallet_counter.interaction_count + EXCLUDED.interaction_count").
			Set("last_updated = EXCLUDED.last_updated").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "upsert wallet counters")
		}
	}

	cp := &core.Checkpoint{ID: core.CheckpointID, Signature: newCheckpoint, UpdatedAt: now}
	_, err = tx.NewInsert().Model(cp).
		On("CONFLICT (id) DO UPDATE").
		Set("signature = EXCLUDED.signature").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "store checkpoint")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit cycle")
	}

	return nil
}

func (r *Repository) GetCounter(ctx context.Context, address string) (*core.WalletCounter, error) {
	ret := new(core.WalletCounter)

	err := r.pg.NewSelect().Model(ret).
		Where("address = ?", address).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "select wallet counter")
	}

	return ret, nil
}

func (r *Repository) GetLeaderboard(ctx context.Context, limit int) ([]*core.WalletCounter, error) {
	var ret []*core.WalletCounter

	err := r.pg.NewSelect().Model(&ret).
		Order("interaction_count DESC").
		Order("last_updated ASC"). // earlier update wins ties
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "select leaderboard")
	}

	return ret, nil
}

func (r *Repository) GetStatistics(ctx context.Context) (*core.Statistics, error) {
	ret := new(core.Statistics)

	err := r.pg.NewSelect().Model((*core.WalletCounter)(nil)).
		ColumnExpr("count(*) AS wallets").
		ColumnExpr("coalesce(sum(interaction_count), 0) AS total_interactions").
		Scan(ctx, &ret.Wallets, &ret.TotalInteractions)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate wallet counters")
	}

	cp, err := r.GetCheckpoint(ctx)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}
	ret.Checkpoint = cp

	return ret, nil
}
