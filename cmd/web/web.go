package web

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/allisson/go-env"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/solindexer/sonar/internal/api/http"
	"github.com/solindexer/sonar/internal/app"
	"github.com/solindexer/sonar/internal/app/query"
	"github.com/solindexer/sonar/internal/core/repository"
)

var Command = &cli.Command{
	Name:  "web",
	Usage: "HTTP JSON API over wallet counters",

	Action: func(ctx *cli.Context) error {
		pgURL := env.GetString("DB_PG_URL", "")

		conn, err := repository.ConnectDB(pgURL)
		if err != nil {
			return errors.Wrap(err, "cannot connect to a database")
		}

		qs := query.NewService(&app.QueryConfig{
			DB: conn,
		})

		srv := http.NewServer(
			env.GetString("LISTEN", "0.0.0.0:8080"),
		)
		srv.RegisterRoutes(http.NewController(qs))

		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-c
			conn.Close()
			os.Exit(0)
		}()

		if err = srv.Run(); err != nil {
			return err
		}

		return nil
	},
}
