// Command dilemma-sim runs a batch of three-player iterated Prisoner's
// Dilemma tournaments and exports the ranking statistics.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"dilemma-sim/config"
	"dilemma-sim/logging"
	"dilemma-sim/model"
	"dilemma-sim/output"
	"dilemma-sim/tournament"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		seed       uint64
		runs       int
		parallel   int
	)

	cmd := &cobra.Command{
		Use:   "dilemma-sim",
		Short: "Simulate repeated three-player Prisoner's Dilemma tournaments",
		Long: `dilemma-sim plays every triple of roster strategies (with repetition)
against each other in repeated matches, ranks the strategies by total
score, repeats the whole tournament many times, and exports the per-run
scores and rank-count distributions.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("runs") {
				cfg.Tournaments = runs
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Parallelism = parallel
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for the whole batch")
	cmd.Flags().IntVar(&runs, "runs", 1000, "number of tournament runs")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "max concurrent matches within one tournament")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stdout sync failures are benign on exit

	sched, err := tournament.NewScheduler(tournament.Options{
		Roster:      cfg.StrategyRoster(),
		Params:      cfg.StrategyParams(),
		MinRounds:   cfg.Rounds.Min,
		MaxRounds:   cfg.Rounds.Max,
		Parallelism: cfg.Parallelism,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	stats, err := tournament.NewAggregator(sched, logger).RunAll(rng, cfg.Tournaments)
	if err != nil {
		return err
	}

	reportStandings(logger, stats)

	if err := output.WriteScoresCSV(cfg.Output.ScoresCSV, stats); err != nil {
		return err
	}
	if err := output.WriteRankCountsCSV(cfg.Output.RankCountsCSV, stats); err != nil {
		return err
	}
	logger.Info("results exported",
		zap.String("scores_csv", cfg.Output.ScoresCSV),
		zap.String("rank_counts_csv", cfg.Output.RankCountsCSV),
	)

	if cfg.Output.CredentialsFile != "" {
		if err := uploadStandings(ctx, cfg, stats); err != nil {
			return err
		}
		logger.Info("standings uploaded", zap.String("sheet", cfg.Output.SheetName))
	}

	return nil
}

func reportStandings(logger *zap.Logger, stats *model.AggregateStatistics) {
	for _, p := range stats.Players {
		logger.Info("player summary",
			zap.String("player", p.Name),
			zap.Float64("mean_total", p.Summary.Mean),
			zap.Float64("std_dev", p.Summary.StdDev),
			zap.Float64("min_total", p.Summary.Min),
			zap.Float64("max_total", p.Summary.Max),
			zap.Int("first_place_runs", p.RankCounts[0]),
		)
	}
}

func uploadStandings(ctx context.Context, cfg *config.Config, stats *model.AggregateStatistics) error {
	creds, err := os.ReadFile(cfg.Output.CredentialsFile)
	if err != nil {
		return fmt.Errorf("reading sheets credentials: %w", err)
	}
	client, err := output.NewSheetsClient(ctx, creds, cfg.Output.SheetURL, cfg.Output.SheetName)
	if err != nil {
		return err
	}
	return client.UploadStandings(ctx, stats)
}
