// Command teambalance splits a roster into balanced teams from the command line.
//
// Usage:
//
//	teambalance generate --players 360 --goalie-capable 40 --out roster.yaml
//	teambalance balance --roster roster.yaml --seed 7
//	teambalance balance --db --trials 8 --format json
//	teambalance import --roster roster.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/rosterbalance/internal/balance"
	"github.com/albapepper/rosterbalance/internal/config"
	"github.com/albapepper/rosterbalance/internal/db"
	"github.com/albapepper/rosterbalance/internal/report"
	"github.com/albapepper/rosterbalance/internal/roster"
	"github.com/albapepper/rosterbalance/internal/roster/postgres"
)

// Logs go to stderr so --format json stays pipeable. loadConfig replaces the
// logger once DEBUG is known.
var logger = newLogger(os.Stderr, false)

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "teambalance",
		Short:         "Split a roster into balanced teams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(balanceCmd())
	root.AddCommand(generateCmd())
	root.AddCommand(importCmd())

	if err := root.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// balance command
// --------------------------------------------------------------------------

func balanceCmd() *cobra.Command {
	var (
		rosterPath string
		useDB      bool
		seed       uint64
		trials     int
		workers    int
		strict     bool
		maxPasses  int
		format     string
	)
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Build teams from a roster file or the users table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format %q (want table or json)", format)
			}
			return runWithSource(rosterPath, useDB, func(ctx context.Context, cfg *config.Config, source roster.Source) error {
				flags := cmd.Flags()
				if !flags.Changed("trials") {
					trials = cfg.BalanceTrials
				}
				if !flags.Changed("workers") {
					workers = cfg.BalanceWorkers
				}
				if !flags.Changed("strict") {
					strict = cfg.StrictRosterSize
				}
				if !flags.Changed("max-passes") {
					maxPasses = cfg.BalanceMaxPasses
				}

				opts := balance.Options{
					Seed:             seed,
					MaxPasses:        maxPasses,
					StrictRosterSize: strict,
					Logger:           logger,
				}
				start := time.Now()
				res, err := balance.BestOf(ctx, source, opts, trials, workers)
				if err != nil {
					return err
				}
				logger.Info("Balance finished",
					"trials", trials,
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", res.Summary())
				return writeReport(cmd.OutOrStdout(), report.FromResult(res), format)
			})
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "Roster file (.json, .yaml, .yml); defaults to ROSTER_FILE")
	cmd.Flags().BoolVar(&useDB, "db", false, "Read the roster from the users table")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; 0 picks one")
	cmd.Flags().IntVar(&trials, "trials", 1, "Independent runs; the smallest spread wins")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent trial workers")
	cmd.Flags().BoolVar(&strict, "strict", true, "Reject rosters that cannot fill 18-22 players per team")
	cmd.Flags().IntVar(&maxPasses, "max-passes", balance.DefaultMaxPasses, "Balancing loop pass limit")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json)")
	cmd.MarkFlagsMutuallyExclusive("roster", "db")
	return cmd
}

func writeReport(w io.Writer, rep report.Report, format string) error {
	if format == "json" {
		data, err := rep.JSON()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return rep.WriteTables(w)
}

// --------------------------------------------------------------------------
// generate command
// --------------------------------------------------------------------------

func generateCmd() *cobra.Command {
	var (
		opts roster.GenerateOptions
		out  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic roster file",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := roster.Generate(opts)
			if err != nil {
				return err
			}
			if err := roster.WriteFile(out, players); err != nil {
				return err
			}
			logger.Info("Roster generated",
				"file", out,
				"players", opts.Players,
				"goalie_capable", opts.GoalieCapable,
				"goalies", opts.Goalies)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Players, "players", 360, "Number of players")
	cmd.Flags().IntVar(&opts.GoalieCapable, "goalie-capable", 40, "Players who can play goalie")
	cmd.Flags().IntVar(&opts.Goalies, "goalies", 20, "Regular goalies among the goalie-capable players")
	cmd.Flags().IntVar(&opts.MinRanking, "min-ranking", 1, "Lowest ranking")
	cmd.Flags().IntVar(&opts.MaxRanking, "max-ranking", 100, "Highest ranking")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "Generator seed")
	cmd.Flags().StringVar(&out, "out", "roster.yaml", "Output file (.json, .yaml, .yml)")
	return cmd
}

// --------------------------------------------------------------------------
// import command
// --------------------------------------------------------------------------

func importCmd() *cobra.Command {
	var rosterPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upsert a roster file into the users table",
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := roster.LoadFile(rosterPath)
			if err != nil {
				return err
			}
			return runWithDB(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				n, err := postgres.New(pool.Pool, logger).Upsert(ctx, mem.Players())
				if err != nil {
					return fmt.Errorf("import stopped after %d players: %w", n, err)
				}
				logger.Info("Import finished",
					"file", rosterPath,
					"players", n,
					"duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "roster.yaml", "Roster file to import")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// loadConfig reads the environment and switches the logger to debug level
// when DEBUG is set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger = newLogger(os.Stderr, cfg.Debug)
	return cfg, nil
}

// runWithDB handles config loading, DB connection, and context cancellation.
func runWithDB(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}

// runWithSource resolves the roster source: an explicit file, then --db, then
// ROSTER_FILE, then the database.
func runWithSource(rosterPath string, useDB bool, fn func(ctx context.Context, cfg *config.Config, source roster.Source) error) error {
	if rosterPath == "" && !useDB {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rosterPath = cfg.RosterFile
	}

	if rosterPath == "" {
		return runWithDB(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
			return fn(ctx, cfg, postgres.New(pool.Pool, logger))
		})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mem, err := roster.LoadFile(rosterPath)
	if err != nil {
		return err
	}
	logger.Info("Roster loaded", "file", rosterPath, "players", len(mem.Players()))
	return fn(ctx, cfg, mem)
}
