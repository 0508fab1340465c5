package main

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/poiesic/foodrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "origin",
			Aliases:  []string{"o"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     "destination",
			Aliases:  []string{"d"},
			Required: true,
		},
		&cli.IntFlag{
			Name:    "target",
			Aliases: []string{"n"},
			Value:   10,
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "detailed",
		},
	}
}

func TestSearchCommandFlags(t *testing.T) {
	var captured *cli.Context
	app := &cli.App{
		Name: "foodrec",
		Commands: []*cli.Command{
			{
				Name: "search",
				Action: func(c *cli.Context) error {
					captured = c
					return nil
				},
				Flags: searchFlags(),
			},
		},
	}

	t.Run("origin is required", func(t *testing.T) {
		err := app.Run([]string{"foodrec", "search", "--destination", "Bangkok"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "origin")
	})

	t.Run("destination is required", func(t *testing.T) {
		err := app.Run([]string{"foodrec", "search", "--origin", "Seattle"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("target defaults to 10", func(t *testing.T) {
		err := app.Run([]string{"foodrec", "search", "-o", "Seattle", "-d", "Bangkok"})
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, 10, captured.Int("target"))
		assert.Equal(t, "detailed", captured.String("format"))
	})

	t.Run("short aliases work", func(t *testing.T) {
		err := app.Run([]string{"foodrec", "search", "-o", "Seattle", "-d", "Bangkok", "-n", "5"})
		require.NoError(t, err)
		assert.Equal(t, 5, captured.Int("target"))
		assert.Equal(t, "Seattle", captured.String("origin"))
	})
}

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}

	assert.NoError(t, app.Run([]string{"foodrec", "--log-level", "debug"}))
	assert.NoError(t, app.Run([]string{"foodrec", "--log-level", "ERROR"}))
	assert.Error(t, app.Run([]string{"foodrec", "--log-level", "verbose"}))
}

func TestPrintDishesRejectsNothing(t *testing.T) {
	dishes := []*core.Dish{{Name: "Som Tam", Score: 1.2, Uniqueness: 0.6}}
	for _, format := range []string{"summary", "detailed", "json", "compact-json"} {
		assert.NoError(t, printDishes(dishes, "Seattle", "Bangkok", format))
	}
}

func TestProgressMonitorOutput(t *testing.T) {
	var buf bytes.Buffer
	monitor := &progressMonitor{out: &buf}

	monitor.StartTier(1, []string{"popular local food in Bangkok"})
	monitor.QueryDone("popular local food in Bangkok", 4, nil)
	monitor.TierDone(&core.SearchResult{Tier: 1, NewDishCount: 4})
	monitor.Finish(nil, "Found 15 dishes (1.5x target of 10)")

	out := buf.String()
	assert.Contains(t, out, "Tier 1: running 1 queries")
	assert.Contains(t, out, "4 candidates")
	assert.Contains(t, out, "Tier 1 done: 4 new dishes")
	assert.Contains(t, out, "Search complete")
}
