package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cin7export/internal/harvest"
	"cin7export/internal/window"
)

var purchaseOrdersCmd = &cobra.Command{
	Use:   "purchaseorders",
	Short: "Export the fiscal-year-to-date purchase-order report",
	Long: `Harvest purchase orders from every configured Cin7 account and write
them as a single flat CSV report.

The report covers the fiscal year to date, truncated to the most recently
completed Sunday at 23:59:59.999999 UTC so it only contains whole weeks.
Void purchase orders are excluded, as are orders from companies outside the
brand scope.

Required environment variables:
  ARL_KEY, ARNL_KEY, ARF_KEY, ARIB_KEY - API keys, one per tenant account`,
	Example: `  # Year-to-date report with the default fiscal year start
  cin7export purchaseorders

  # Different fiscal year anchor
  cin7export purchaseorders --fiscal-year-start 2025-01-01`,
	RunE: runPurchaseOrders,
}

func init() {
	rootCmd.AddCommand(purchaseOrdersCmd)
	addReportFlags(purchaseOrdersCmd)

	purchaseOrdersCmd.Flags().String("fiscal-year-start", "2024-01-01", "Fiscal year anchor date (YYYY-MM-DD, UTC)")
}

func runPurchaseOrders(cmd *cobra.Command, args []string) error {
	anchorStr, _ := cmd.Flags().GetString("fiscal-year-start")

	anchor, err := time.ParseInLocation("2006-01-02", anchorStr, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid fiscal year start. Use YYYY-MM-DD: %w", err)
	}

	return runReport(cmd, harvest.PurchaseOrders, window.FiscalToLastSunday{Anchor: anchor})
}
