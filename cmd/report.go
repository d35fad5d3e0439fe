package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"cin7export/internal/cin7"
	"cin7export/internal/config"
	"cin7export/internal/export"
	"cin7export/internal/harvest"
	"cin7export/internal/logger"
	"cin7export/internal/window"
)

// pageDelay is the minimum interval between consecutive page fetches for one
// account, required by the upstream rate limit.
const pageDelay = 500 * time.Millisecond

// addReportFlags registers the flags shared by every report command.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().String("output-dir", "tmp_files", "Directory the CSV report is written to")
	cmd.Flags().Int("rows", 250, "Documents requested per API page")
	cmd.Flags().Int("workers", 0, "Parallel account harvesters (default: one per account)")
	cmd.Flags().String("sheet-url", "", "Optional Google Sheets URL to mirror the report to")
	cmd.Flags().String("worksheet", "Report", "Worksheet name for --sheet-url")
	cmd.Flags().Bool("dry-run", false, "Harvest and report counts but write nothing")
}

// runReport executes the shared harvest pipeline for one report definition.
func runReport(cmd *cobra.Command, report harvest.Report, policy window.Policy) error {
	log := logger.WithComponent(report.Name)

	outputDir, _ := cmd.Flags().GetString("output-dir")
	rowsPerPage, _ := cmd.Flags().GetInt("rows")
	workers, _ := cmd.Flags().GetInt("workers")
	sheetURL, _ := cmd.Flags().GetString("sheet-url")
	worksheet, _ := cmd.Flags().GetString("worksheet")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if rowsPerPage <= 0 {
		return fmt.Errorf("rows must be positive")
	}

	// A missing account key must stop the run before anything is fetched.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	win, err := policy.Compute(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to compute report window: %w", err)
	}

	log.Info().
		Time("window_start", win.Start).
		Time("window_end", win.End).
		Int("accounts", len(cfg.Accounts)).
		Bool("dry_run", dryRun).
		Msg("Starting report run")

	abbreviations := cfg.Abbreviations()

	harvesters := make([]*harvest.Harvester, 0, len(cfg.Accounts))
	for _, account := range cfg.Accounts {
		client, err := cin7.NewClient(cin7.ClientConfig{
			BaseURL:     cfg.APIBaseURL,
			Endpoint:    report.Endpoint,
			Fields:      report.Fields,
			RowsPerPage: rowsPerPage,
			Credentials: cin7.Credentials{Username: account.Username, APIKey: account.APIKey},
		})
		if err != nil {
			return fmt.Errorf("failed to create API client: %w", err)
		}
		harvesters = append(harvesters, harvest.NewHarvester(client, report, abbreviations, pageDelay))
	}

	ctx := context.Background()

	results := harvest.HarvestAll(ctx, harvesters, win, workers)
	records := harvest.Merge(results)

	for _, result := range results {
		if result.Err != nil {
			log.Warn().
				Err(result.Err).
				Str("account", result.Account).
				Int("pages", result.Pages).
				Int("records", len(result.Records)).
				Msg("Account harvest ended early, partial results kept")
			continue
		}
		log.Info().
			Str("account", result.Account).
			Int("pages", result.Pages).
			Int("records", len(result.Records)).
			Int("skipped", result.Skipped).
			Msg("Account harvest finished")
	}

	if dryRun {
		log.Info().Int("records", len(records)).Msg("Dry run: no output written")
		return nil
	}

	outputPath := filepath.Join(outputDir, export.FileName(report.FilePrefix, win))
	if err := export.WriteCSV(outputPath, report.NumberField, records); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := export.PublishToGithubEnv(outputPath); err != nil {
		return fmt.Errorf("failed to publish report path: %w", err)
	}

	if sheetURL != "" {
		sheetsService, err := export.NewSheetsService(ctx, sheetURL)
		if err != nil {
			return fmt.Errorf("failed to initialize Google Sheets service: %w", err)
		}
		if err := sheetsService.AppendRecords(ctx, worksheet, report.NumberField, records); err != nil {
			return fmt.Errorf("failed to mirror report to sheet: %w", err)
		}
	}

	log.Info().
		Str("path", outputPath).
		Int("records", len(records)).
		Msg("Report run completed")

	return nil
}
