package wordfreq

import (
	"log/slog"

	"github.com/dtnitsch/html-wordfreq/models"
	"github.com/urfave/cli/v2"
)

// Usage is printed to stderr when the positional arguments are wrong.
const Usage = "Usage: wordfreq [options] <input-directory> <output-directory>"

// RunAction is the root command: wordfreq <input-directory> <output-directory>.
// Only a malformed invocation is fatal; file-level failures still exit 0.
func RunAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit(Usage, 1)
	}

	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))

	config := &models.RunConfig{
		InputDir:    c.Args().Get(0),
		OutputDir:   c.Args().Get(1),
		Extension:   models.DefaultExtension,
		RunID:       c.String("run-id"),
		Summary:     c.Bool("summary"),
		SQLitePath:  c.String("sqlite"),
		TopKeywords: c.Int("top"),
	}

	outcome := Run(logger, config)
	if outcome.Failed() {
		logger.Warn("Run finished with errors", "run_id", outcome.RunID)
	}

	return nil
}
