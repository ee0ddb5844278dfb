package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "database",
			Aliases: []string{"d"},
			Value:   "data/news.db",
			Usage:   "SQLite database file location",
			EnvVars: []string{"NEWSHUB_DATABASE"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "config.toml",
			Usage:   "TOML config file with the RSS feed list",
			EnvVars: []string{"NEWSHUB_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "benzinga-key",
			Usage:   "Benzinga API key, leave empty to disable the Benzinga source",
			EnvVars: []string{"NEWSHUB_BENZINGA_KEY"},
		},
	}
}

func RootApp() *cli.App {
	return &cli.App{
		Name:  "newshub",
		Usage: "An aggregating terminal news reader",
		Description: `Aggregates news from RSS feeds and the Benzinga API into a local
		SQLite database and browses the result in an interactive terminal
		interface with live search.

		Running newshub without a command starts the interactive session.
		Flags can generally be set via environment variables, e.g.:

		--database => NEWSHUB_DATABASE=data/news.db
		--benzinga-key => NEWSHUB_BENZINGA_KEY=...
		`,
		Flags: commonFlags(),
		Commands: []*cli.Command{
			fetchCmd(),
			migrateCmd(),
		},
		Action: runSession,
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
