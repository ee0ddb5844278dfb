package cmd

import (
	"fmt"
	"os"

	"newshub/adaptors"
	"newshub/config"
	"newshub/db"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// fetchCmd runs one fetch-and-store cycle without the interactive session.
func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch all sources once and store the result",
		Description: `Fetches every configured source once, stores the items in the
		database and prints a per-source summary.

		Useful for priming the database from cron before opening the
		interactive session. Log messages go to stderr.`,
		Flags: commonFlags(),
		Action: func(ctx *cli.Context) error {
			log.SetOutput(os.Stderr)

			cfg, err := config.LoadConfig(ctx.String("config"), ctx.String("benzinga-key"))
			if err != nil {
				return err
			}

			store, err := db.Open(ctx.String("database"))
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer store.Close()

			result := adaptors.FetchAll(ctx.Context, adaptors.BuildAdaptors(cfg))

			stored := 0
			for _, item := range result.Items {
				if err := store.Upsert(item); err != nil {
					log.WithFields(log.Fields{
						"id": item.Id,
					}).Errorf("Failed to store item: %v", err)
					continue
				}
				stored++
			}

			for _, diagnostic := range result.Diagnostics {
				fmt.Printf("%-24s %s\n", diagnostic.Source, diagnostic.Message)
				for _, warning := range diagnostic.Warnings {
					fmt.Printf("%-24s warning: %s\n", "", warning)
				}
			}

			total, err := store.Count()
			if err != nil {
				return err
			}
			fmt.Printf("Stored %d of %d fetched articles, %d in database\n", stored, len(result.Items), total)

			return nil
		},
	}
}
