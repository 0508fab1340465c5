// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/foodrec"
	"github.com/poiesic/foodrec/ai"
	"github.com/poiesic/foodrec/core"
	"github.com/poiesic/foodrec/discover"
	"github.com/poiesic/foodrec/output"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "foodrec",
		Usage: "Find unique dishes to try when traveling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Discover dishes worth seeking out at a destination",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "origin",
						Aliases:  []string{"o"},
						Usage:    "Where you are traveling from",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "destination",
						Aliases:  []string{"d"},
						Usage:    "Where you are traveling to",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "target",
						Aliases: []string{"n"},
						Usage:   "Number of recommendations to return",
						Value:   10,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (summary, detailed, json, compact-json)",
						Value: "detailed",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Suppress progress output, print only results",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "Extraction service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Extraction model name",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "API token for the extraction service",
						Value: "none",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Directory for the extraction response cache (disabled when empty)",
					},
					&cli.IntFlag{
						Name:  "max-tiers",
						Usage: "Maximum number of search tiers",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for concurrent queries (0 = auto)",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed service calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := c.Int("target")
	if target < 1 {
		return fmt.Errorf("target must be at least 1")
	}

	format := c.String("format")
	switch format {
	case "summary", "detailed", "json", "compact-json":
	default:
		return fmt.Errorf("invalid format %q: must be one of summary, detailed, json, compact-json", format)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithToken(c.String("token")),
		ai.WithMaxRetries(c.Int("max-retries")),
		ai.WithRetryDelay(c.Duration("retry-delay")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	systemOpts := []foodrec.SystemOption{foodrec.WithAIConfig(aiConfig)}
	if dir := c.String("cache-dir"); dir != "" {
		systemOpts = append(systemOpts, foodrec.WithCacheDir(dir))
	}

	system, err := foodrec.NewSystem(systemOpts...)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer system.Close()

	discoverOpts := []discover.Option{
		discover.WithMaxTiers(c.Int("max-tiers")),
	}
	if !c.Bool("quiet") {
		discoverOpts = append(discoverOpts, discover.WithMonitor(&progressMonitor{out: os.Stderr}))
	}
	if size := c.Int("pool-size"); size > 0 {
		discoverOpts = append(discoverOpts, discover.WithPoolSize(size))
	}

	d, err := system.NewDiscoverer(discoverOpts...)
	if err != nil {
		return fmt.Errorf("failed to create discoverer: %w", err)
	}
	defer d.Release()

	origin := c.String("origin")
	destination := c.String("destination")

	dishes, err := d.Search(ctx, origin, destination, target)
	if err != nil {
		if !errors.Is(err, context.Canceled) || len(dishes) == 0 {
			return fmt.Errorf("search failed: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Interrupted; showing partial results.")
	}

	return printDishes(dishes, origin, destination, format)
}

func printDishes(dishes []*core.Dish, origin, destination, format string) error {
	var rendered string
	var err error

	switch format {
	case "summary":
		rendered = output.FormatQuickSummary(dishes)
	case "detailed":
		rendered = output.FormatDetailedText(dishes, origin, destination)
	case "json":
		rendered, err = output.FormatJSON(dishes, origin, destination)
	case "compact-json":
		rendered, err = output.FormatCompactJSON(dishes)
	}
	if err != nil {
		return err
	}

	fmt.Println(rendered)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
