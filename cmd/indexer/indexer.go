package indexer

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/allisson/go-env"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/solindexer/sonar/internal/app"
	"github.com/solindexer/sonar/internal/app/fetcher"
	"github.com/solindexer/sonar/internal/app/indexer"
	"github.com/solindexer/sonar/internal/app/parser"
	"github.com/solindexer/sonar/internal/core/repository"
	"github.com/solindexer/sonar/internal/core/repository/wallet"
	"github.com/solindexer/sonar/internal/solana"
)

var Command = &cli.Command{
	Name:    "indexer",
	Aliases: []string{"idx"},
	Usage:   "Scans program interactions and maintains wallet counters",

	Action: func(ctx *cli.Context) error {
		pgURL := env.GetString("DB_PG_URL", "")
		rpcURL := env.GetString("RPC_URL", "")
		programID := env.GetString("PROGRAM_ID", "")

		if rpcURL == "" {
			return errors.New("no rpc url")
		}
		if programID == "" {
			return errors.New("no program id")
		}

		conn, err := repository.ConnectDB(pgURL)
		if err != nil {
			return errors.Wrap(err, "cannot connect to a database")
		}

		if err := wallet.CreateTables(ctx.Context, conn.PG); err != nil {
			return errors.Wrap(err, "cannot create tables")
		}

		client := solana.NewClient(rpcURL)

		f := fetcher.NewService(&app.FetcherConfig{
			API:        client,
			ProgramID:  programID,
			FetchLimit: int(env.GetInt32("FETCH_LIMIT", 100)),
			BatchSize:  int(env.GetInt32("BATCH_SIZE", 20)),
			BatchDelay: time.Duration(env.GetInt32("BATCH_DELAY_MS", 500)) * time.Millisecond,
		})

		p := parser.NewService(&app.ParserConfig{
			ProgramID: programID,
		})

		i := indexer.NewService(&app.IndexerConfig{
			Storage:      wallet.NewRepository(conn.PG),
			Fetcher:      f,
			Parser:       p,
			PollInterval: time.Duration(env.GetInt32("POLL_INTERVAL_SEC", 300)) * time.Second,
		})
		if err = i.Start(); err != nil {
			return err
		}

		c := make(chan os.Signal, 1)
		done := make(chan struct{}, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-c
			i.Stop()
			conn.Close()
			done <- struct{}{}
		}()

		<-done

		return nil
	},
}
