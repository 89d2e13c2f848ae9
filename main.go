package main

import (
	"log"
	"os"

	"github.com/dtnitsch/html-wordfreq/internal/wordfreq"
	"github.com/dtnitsch/html-wordfreq/models"
	"github.com/dtnitsch/html-wordfreq/pkg/help"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:        "wordfreq",
		Usage:       "count words across a directory of HTML documents",
		UsageText:   wordfreq.Usage,
		Description: help.QuickStart,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "run-id",
				Usage: "suffix for the timing log and summary file names (default: generated)",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "also write a YAML run summary to the output directory",
			},
			&cli.StringFlag{
				Name:  "sqlite",
				Usage: "also export the consolidated counts to this SQLite database",
			},
			&cli.IntFlag{
				Name:  "top",
				Value: models.DefaultTopKeywords,
				Usage: "number of top keywords listed in the run summary",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Action: wordfreq.RunAction,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
