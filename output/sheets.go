package output

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"dilemma-sim/model"
)

// SheetsClient uploads batch standings to a shared Google Sheet for
// comparative analysis.
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsClient creates a client from service account credentials.
func NewSheetsClient(ctx context.Context, credentialsJSON []byte, sheetURL, sheetName string) (*SheetsClient, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	client := config.Client(ctx)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	return &SheetsClient{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// extractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func extractSpreadsheetID(url string) (string, error) {
	re := regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	matches := re.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", fmt.Errorf("could not extract spreadsheet ID from URL: %s", url)
	}
	return matches[1], nil
}

// UploadStandings replaces the sheet contents with one row per roster
// entry: summary statistics over the batch followed by the rank-count
// histogram, best mean score first.
func (c *SheetsClient) UploadStandings(ctx context.Context, stats *model.AggregateStatistics) error {
	headers := []interface{}{
		"Player_name", "Runs", "Mean Score", "Std Dev", "Min Score", "Max Score",
	}
	for i := range stats.Players {
		headers = append(headers, fmt.Sprintf("Rank_%d", i+1))
	}

	standings := make([]model.PlayerAggregate, len(stats.Players))
	copy(standings, stats.Players)
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Summary.Mean > standings[j].Summary.Mean
	})

	rows := [][]interface{}{headers}
	for _, p := range standings {
		row := []interface{}{
			p.Name, stats.Runs,
			p.Summary.Mean, p.Summary.StdDev, p.Summary.Min, p.Summary.Max,
		}
		for _, count := range p.RankCounts {
			row = append(row, count)
		}
		rows = append(rows, row)
	}

	clearRange := fmt.Sprintf("%s!A:ZZ", c.sheetName)
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	writeRange := fmt.Sprintf("%s!A1", c.sheetName)
	valueRange := &sheets.ValueRange{Values: rows}

	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write to sheet: %w", err)
	}

	return nil
}
