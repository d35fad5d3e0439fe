package cmd

import (
	"github.com/spf13/cobra"

	"cin7export/internal/harvest"
	"cin7export/internal/window"
)

var creditNotesCmd = &cobra.Command{
	Use:   "creditnotes",
	Short: "Export the weekly credit-note report",
	Long: `Harvest credit notes from every configured Cin7 account and write them
as a single flat CSV report.

The report covers a rolling window: from seven days ago at 14:00 UTC up to
today at 13:59:59.999999 UTC. Each credit note's line items become one row
each, with unit price and discounts adjusted by the document currency rate
and the document-level discount split evenly across its line items.

Required environment variables:
  ARL_KEY, ARNL_KEY, ARF_KEY, ARIB_KEY - API keys, one per tenant account

When GITHUB_ENV is set, the output path and file name are appended to it as
ENV_CUSTOM_DATE_FILE and ENV_CUSTOM_DATE_FILE_NAME for the next workflow
step.`,
	Example: `  # Write the weekly report to tmp_files/
  cin7export creditnotes

  # Mirror the rows to a Google Sheet as well
  cin7export creditnotes --sheet-url https://docs.google.com/spreadsheets/d/... --worksheet CreditNotes

  # Harvest without writing anything
  cin7export creditnotes --dry-run`,
	RunE: runCreditNotes,
}

func init() {
	rootCmd.AddCommand(creditNotesCmd)
	addReportFlags(creditNotesCmd)
}

func runCreditNotes(cmd *cobra.Command, args []string) error {
	return runReport(cmd, harvest.CreditNotes, window.RollingWeek{})
}
