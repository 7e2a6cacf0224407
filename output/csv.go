// Package output serializes tournament batch results for external
// analysis: CSV files on disk and an optional Google Sheets upload.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"dilemma-sim/model"
)

// WriteScoresCSV writes one row per roster entry: the player name
// followed by its total score in each tournament run.
//
//	Player_name,round_1,...,round_N
func WriteScoresCSV(path string, stats *model.AggregateStatistics) error {
	header := []string{"Player_name"}
	for i := 0; i < stats.Runs; i++ {
		header = append(header, fmt.Sprintf("round_%d", i+1))
	}

	rows := make([][]string, 0, len(stats.Players))
	for _, p := range stats.Players {
		row := make([]string, 0, stats.Runs+1)
		row = append(row, p.Name)
		for _, score := range p.Scores {
			row = append(row, strconv.FormatFloat(score, 'f', -1, 64))
		}
		rows = append(rows, row)
	}

	return writeCSV(path, header, rows)
}

// WriteRankCountsCSV writes one row per roster entry: the player name
// followed by how many runs it finished at each rank position.
//
//	Player_name,Rank_1,...,Rank_R
func WriteRankCountsCSV(path string, stats *model.AggregateStatistics) error {
	header := []string{"Player_name"}
	for i := range stats.Players {
		header = append(header, fmt.Sprintf("Rank_%d", i+1))
	}

	rows := make([][]string, 0, len(stats.Players))
	for _, p := range stats.Players {
		row := make([]string, 0, len(p.RankCounts)+1)
		row = append(row, p.Name)
		for _, count := range p.RankCounts {
			row = append(row, strconv.Itoa(count))
		}
		rows = append(rows, row)
	}

	return writeCSV(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
