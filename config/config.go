// Package config loads and validates simulator configuration from an
// optional YAML file layered over defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"dilemma-sim/strategy"
)

// Config holds the whole simulator configuration.
type Config struct {
	Roster      []string       `mapstructure:"roster"`
	Rounds      RoundsConfig   `mapstructure:"rounds"`
	Tournaments int            `mapstructure:"tournaments"`
	Seed        uint64         `mapstructure:"seed"`
	Parallelism int            `mapstructure:"parallelism"`
	Adaptive    AdaptiveConfig `mapstructure:"adaptive"`
	Output      OutputConfig   `mapstructure:"output"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

// RoundsConfig bounds the per-match round count.
type RoundsConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// AdaptiveConfig tunes the adaptive strategies.
type AdaptiveConfig struct {
	LateGameThreshold int `mapstructure:"late_game_threshold"`
	ForgivenessRounds int `mapstructure:"forgiveness_rounds"`
}

// OutputConfig names the export targets. Sheets upload is enabled only
// when a credentials file is configured.
type OutputConfig struct {
	ScoresCSV       string `mapstructure:"scores_csv"`
	RankCountsCSV   string `mapstructure:"rank_counts_csv"`
	CredentialsFile string `mapstructure:"credentials_file"`
	SheetURL        string `mapstructure:"sheet_url"`
	SheetName       string `mapstructure:"sheet_name"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path (optional; empty path uses pure
// defaults) and returns the merged, unvalidated config.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	roster := strategy.DefaultRoster()
	names := make([]string, len(roster))
	for i, id := range roster {
		names[i] = string(id)
	}
	v.SetDefault("roster", names)
	v.SetDefault("rounds.min", 90)
	v.SetDefault("rounds.max", 110)
	v.SetDefault("tournaments", 1000)
	v.SetDefault("seed", 1)
	v.SetDefault("parallelism", 1)
	v.SetDefault("adaptive.late_game_threshold", strategy.DefaultLateGameThreshold)
	v.SetDefault("adaptive.forgiveness_rounds", strategy.DefaultForgivenessRounds)
	v.SetDefault("output.scores_csv", "3PD_TotalScores.csv")
	v.SetDefault("output.rank_counts_csv", "3PD_RankCounts.csv")
	v.SetDefault("output.sheet_name", "Standings")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// Validate rejects configurations that would abort mid-batch.
func (c *Config) Validate() error {
	if err := c.StrategyRoster().Validate(); err != nil {
		return err
	}
	if c.Rounds.Min <= 0 {
		return fmt.Errorf("rounds.min must be a positive integer")
	}
	if c.Rounds.Max < c.Rounds.Min {
		return fmt.Errorf("rounds.max must be at least rounds.min")
	}
	if c.Tournaments <= 0 {
		return fmt.Errorf("tournaments must be a positive integer")
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be a positive integer")
	}
	if c.Adaptive.LateGameThreshold <= 0 {
		return fmt.Errorf("adaptive.late_game_threshold must be a positive integer")
	}
	if c.Adaptive.ForgivenessRounds <= 0 {
		return fmt.Errorf("adaptive.forgiveness_rounds must be a positive integer")
	}
	return nil
}

// StrategyRoster converts the configured roster names to strategy IDs.
func (c *Config) StrategyRoster() strategy.Roster {
	roster := make(strategy.Roster, len(c.Roster))
	for i, name := range c.Roster {
		roster[i] = strategy.ID(name)
	}
	return roster
}

// StrategyParams converts the adaptive tuning to strategy parameters.
func (c *Config) StrategyParams() strategy.Params {
	return strategy.Params{
		LateGameThreshold: c.Adaptive.LateGameThreshold,
		ForgivenessRounds: c.Adaptive.ForgivenessRounds,
	}
}
