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
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/strsim"
	"github.com/poiesic/strsim/batch"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "strsim",
		Usage: "Score string and token similarity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "score",
				Usage:     "Score two strings with a measure",
				ArgsUsage: "<a> <b>",
				Action:    scoreCommand,
				Flags:     measureFlags(),
			},
			{
				Name:   "measures",
				Usage:  "List available measures",
				Action: measuresCommand,
			},
			{
				Name:  "corpus",
				Usage: "Manage stored corpus tables",
				Subcommands: []*cli.Command{
					{
						Name:      "build",
						Usage:     "Build a table from a file with one document per line",
						ArgsUsage: "<file|->",
						Action:    corpusBuildCommand,
						Flags: []cli.Flag{
							dbFlag(true),
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Table name",
								Required: true,
							},
							stemFlag(),
						},
					},
					{
						Name:   "list",
						Usage:  "List stored tables",
						Action: corpusListCommand,
						Flags:  []cli.Flag{dbFlag(true)},
					},
				},
			},
			{
				Name:      "batch",
				Usage:     "Score tab separated pairs, one per line",
				ArgsUsage: "<file|->",
				Action:    batchCommand,
				Flags: append(measureFlags(),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of scoring workers (0 uses half the CPUs)",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N pairs (0 disables)",
					},
				),
			},
		},
	}
}

func dbFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB table store directory",
		Required: required,
	}
}

func stemFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "stem",
		Usage: "Snowball language used to stem tokens (e.g. english)",
	}
}

func measureFlags() []cli.Flag {
	defaults := strsim.DefaultMeasureConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "measure",
			Aliases: []string{"m"},
			Usage:   "Measure name (see the measures command)",
			Value:   "jaro-winkler",
		},
		dbFlag(false),
		&cli.StringFlag{
			Name:  "corpus",
			Usage: "Stored table to use for tfidf and soft-tfidf (requires --db)",
		},
		&cli.StringFlag{
			Name:  "inner",
			Usage: "Inner character measure for hybrid measures",
		},
		&cli.IntFlag{
			Name:  "cache-size",
			Usage: "Memoize the inner measure with an LRU of this size",
		},
		&cli.Float64Flag{Name: "gap-cost", Usage: "Gap cost for needleman-wunsch and smith-waterman", Value: defaults.GapCost},
		&cli.Float64Flag{Name: "gap-start", Usage: "Gap opening cost for affine", Value: defaults.GapStart},
		&cli.Float64Flag{Name: "gap-continuation", Usage: "Gap extension cost for affine", Value: defaults.GapContinuation},
		&cli.Float64Flag{Name: "match-cost", Usage: "Cost of identical characters for editex", Value: defaults.MatchCost},
		&cli.Float64Flag{Name: "group-cost", Usage: "Cost of same-group characters for editex", Value: defaults.GroupCost},
		&cli.Float64Flag{Name: "mismatch-cost", Usage: "Cost of unrelated characters for editex", Value: defaults.MismatchCost},
		&cli.Float64Flag{Name: "prefix-weight", Usage: "Prefix weight for jaro-winkler", Value: defaults.PrefixWeight},
		&cli.Float64Flag{Name: "threshold", Usage: "Similarity threshold for soft-tfidf and generalized-jaccard", Value: defaults.Threshold},
		&cli.Float64Flag{Name: "alpha", Usage: "Tversky alpha", Value: defaults.Alpha},
		&cli.Float64Flag{Name: "beta", Usage: "Tversky beta", Value: defaults.Beta},
		&cli.BoolFlag{Name: "dampen", Usage: "Log-dampen tfidf weights"},
		&cli.BoolFlag{Name: "local", Usage: "Local editex alignment"},
		stemFlag(),
	}
}

func measureConfig(c *cli.Context) strsim.MeasureConfig {
	cfg := strsim.DefaultMeasureConfig()
	cfg.GapCost = c.Float64("gap-cost")
	cfg.GapStart = c.Float64("gap-start")
	cfg.GapContinuation = c.Float64("gap-continuation")
	cfg.MatchCost = c.Float64("match-cost")
	cfg.GroupCost = c.Float64("group-cost")
	cfg.MismatchCost = c.Float64("mismatch-cost")
	cfg.PrefixWeight = c.Float64("prefix-weight")
	cfg.Threshold = c.Float64("threshold")
	cfg.Alpha = c.Float64("alpha")
	cfg.Beta = c.Float64("beta")
	cfg.Dampen = c.Bool("dampen")
	cfg.Local = c.Bool("local")
	cfg.Inner = c.String("inner")
	cfg.CacheSize = c.Int("cache-size")
	cfg.StemLanguage = c.String("stem")
	return cfg
}

// buildMeasure opens the store only when a corpus is requested.
func buildMeasure(c *cli.Context) (strsim.Measure, error) {
	name := c.String("measure")
	cfg := measureConfig(c)

	table := c.String("corpus")
	if table == "" {
		return strsim.NewMeasure(name, cfg)
	}
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("--corpus requires --db")
	}
	store, err := strsim.OpenStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open table store: %w", err)
	}
	defer store.Close()
	return store.NewMeasure(c.Context, name, table, cfg)
}

func scoreCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("score takes exactly two arguments, got %d", c.NArg())
	}
	measure, err := buildMeasure(c)
	if err != nil {
		return err
	}
	score, err := measure(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "%g\n", score)
	return nil
}

func measuresCommand(c *cli.Context) error {
	for _, name := range strsim.Measures() {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func corpusBuildCommand(c *cli.Context) error {
	lines, err := readLines(c)
	if err != nil {
		return err
	}

	var stemmer *strsim.Stemmer
	if lang := c.String("stem"); lang != "" {
		if stemmer, err = strsim.NewStemmer(lang); err != nil {
			return err
		}
	}

	store, err := strsim.OpenStore(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open table store: %w", err)
	}
	defer store.Close()

	table, err := store.BuildTableFromText(c.Context, c.String("name"), lines, stemmer)
	if err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "%s\tdocuments=%d\tvocabulary=%d\n", c.String("name"), table.Size(), table.Len())
	return nil
}

func corpusListCommand(c *cli.Context) error {
	store, err := strsim.OpenStore(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open table store: %w", err)
	}
	defer store.Close()

	infos, err := store.Tables().ListTables(c.Context)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	for _, info := range infos {
		fmt.Fprintf(c.App.Writer, "%s\tdocuments=%d\tvocabulary=%d\trevision=%d\n",
			info.Name, info.Size, info.Vocabulary, info.Revision)
	}
	return nil
}

func batchCommand(c *cli.Context) error {
	lines, err := readLines(c)
	if err != nil {
		return err
	}
	pairs := make([]batch.Pair[string], 0, len(lines))
	for i, line := range lines {
		a, b, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("line %d: expected two tab separated fields", i+1)
		}
		pairs = append(pairs, batch.Pair[string]{Key: line, A: a, B: b})
	}

	measure, err := buildMeasure(c)
	if err != nil {
		return err
	}

	opts := []batch.Option{batch.WithLogger(slog.Default())}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, batch.WithPoolSize(workers))
	}
	if interval := c.Int("report-interval"); interval > 0 {
		opts = append(opts, batch.WithProgress(c.App.ErrWriter, interval))
	}
	scorer, err := batch.NewScorer(batch.ScoreFunc[string](measure), opts...)
	if err != nil {
		return err
	}
	defer scorer.Release()

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := scorer.ScoreAll(ctx, pairs)
	if err != nil {
		return fmt.Errorf("batch scoring failed: %w", err)
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(c.App.Writer, "%s\terror: %v\n", r.Key, r.Err)
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s\t%g\n", r.Key, r.Score)
	}
	return nil
}

// readLines reads non-blank lines from the file named by the first argument,
// or from stdin when it is "-" or absent.
func readLines(c *cli.Context) ([]string, error) {
	var r io.Reader = os.Stdin
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else if c.App.Reader != nil {
		r = c.App.Reader
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func setupLogger(c *cli.Context) error {
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
