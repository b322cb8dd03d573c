package main

import (
	"fmt"
	"os"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/solindexer/sonar/cmd/indexer"
	"github.com/solindexer/sonar/cmd/web"
)

func init() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if env.GetBool("DEBUG_LOGS", false) {
		level = zerolog.DebugLevel
	}

	// add file and line number to log
	log.Logger = log.With().Caller().Logger().Level(level)
}

func main() {
	app := &cli.App{
		Name:  "sonar",
		Usage: "tracks wallet interactions with a Solana program",
		Commands: []*cli.Command{
			indexer.Command,
			web.Command,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
