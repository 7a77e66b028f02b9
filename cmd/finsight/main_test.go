package main

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			ctx := newCLIContext(t, level)
			assert.NoError(t, setupLogger(ctx), "level %q", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		ctx := newCLIContext(t, "verbose")
		err := setupLogger(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("debug level enables debug logging", func(t *testing.T) {
		ctx := newCLIContext(t, "debug")
		require.NoError(t, setupLogger(ctx))
		assert.True(t, slog.Default().Enabled(nil, slog.LevelDebug))
	})
}

func newCLIContext(t *testing.T, logLevel string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", logLevel, "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestIngestCommandRequiresDirectory(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Action: ingestCommand,
				Flags:  storeFlags(),
			},
		},
	}

	err := app.Run([]string{"finsight", "ingest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory argument is required")
}
