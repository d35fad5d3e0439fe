package export

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"cin7export/internal/harvest"
	"cin7export/internal/logger"
)

// SheetsService mirrors report rows into a Google Sheet worksheet so the
// report can be inspected without downloading the CSV artifact.
type SheetsService struct {
	sheetsService *sheets.Service
	spreadsheetID string
	log           zerolog.Logger
}

// NewSheetsService creates a Sheets client from GOOGLE_APPLICATION_CREDENTIALS
// (path to a service account JSON file) or GOOGLE_CREDENTIALS (inline JSON).
func NewSheetsService(ctx context.Context, sheetURL string) (*SheetsService, error) {
	const op = "NewSheetsService"

	log := logger.WithComponent("sheets-export")

	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to extract spreadsheet ID: %w", op, err)
	}

	var creds []byte
	if credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsFile != "" {
		creds, err = os.ReadFile(credsFile)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read credentials file: %w", op, err)
		}
	} else if credsJSON := os.Getenv("GOOGLE_CREDENTIALS"); credsJSON != "" {
		creds = []byte(credsJSON)
	} else {
		return nil, fmt.Errorf("%s: neither GOOGLE_APPLICATION_CREDENTIALS nor GOOGLE_CREDENTIALS is set", op)
	}

	config, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse credentials: %w", op, err)
	}

	client := config.Client(ctx)
	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create sheets service: %w", op, err)
	}

	return &SheetsService{
		sheetsService: sheetsService,
		spreadsheetID: spreadsheetID,
		log:           log,
	}, nil
}

// extractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL
func extractSpreadsheetID(url string) (string, error) {
	re := regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	matches := re.FindStringSubmatch(url)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Google Sheets URL format")
	}

	return matches[1], nil
}

// AppendRecords appends the report rows (with a header row) to the named
// worksheet.
func (s *SheetsService) AppendRecords(ctx context.Context, worksheet, numberColumn string, records []harvest.FlatRecord) error {
	const op = "AppendRecords"

	s.log.Info().
		Str("worksheet", worksheet).
		Int("rows", len(records)).
		Msg("Mirroring report to Google Sheet")

	values := make([][]any, 0, len(records)+1)
	values = append(values, toRowValues(Header(numberColumn)))
	for _, record := range records {
		values = append(values, toRowValues(Row(record)))
	}

	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := s.sheetsService.Spreadsheets.Values.Append(
		s.spreadsheetID,
		fmt.Sprintf("%s!A:S", worksheet),
		valueRange,
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()

	if err != nil {
		return fmt.Errorf("%s: failed to append values to sheet: %w", op, err)
	}

	s.log.Info().
		Int("rows_written", len(values)).
		Msg("Report mirrored to Google Sheet")

	return nil
}

func toRowValues(row []string) []any {
	values := make([]any, len(row))
	for i, cell := range row {
		values[i] = cell
	}
	return values
}
