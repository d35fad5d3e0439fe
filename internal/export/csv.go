package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"cin7export/internal/harvest"
	"cin7export/internal/logger"
	"cin7export/internal/window"
)

// Header returns the fixed CSV column set in output order. numberColumn is
// the report-specific name of the document-number column (creditNoteNumber
// or invoiceNumber).
func Header(numberColumn string) []string {
	return []string{
		"sourceUser",
		"reference",
		numberColumn,
		"salesReference",
		"createdDate",
		"company",
		"firstName",
		"lastName",
		"projectName",
		"channel",
		"currencyCode",
		"lineItemCode",
		"lineItemName",
		"lineItemQty",
		"lineItemOption3",
		"lineItemUnitPrice",
		"lineItemDiscount",
		"discountTotal",
		"completedDate",
	}
}

// Row renders one record in Header order. Money columns are fixed to two
// decimal places.
func Row(r harvest.FlatRecord) []string {
	return []string{
		r.SourceAccount,
		r.Reference,
		r.DocumentNumber,
		r.SalesReference,
		r.CreatedDate,
		r.Company,
		r.FirstName,
		r.LastName,
		r.ProjectName,
		r.Channel,
		r.CurrencyCode,
		r.ItemCode,
		r.ItemName,
		r.ItemQty,
		r.ItemOption,
		r.UnitPrice.StringFixed(2),
		r.Discount.StringFixed(2),
		r.DiscountShare.StringFixed(2),
		r.DocumentDate,
	}
}

// FileName encodes the report window into the output file name:
// <prefix>_<start YYYYMMDD>_<end YYMMDD>.csv
func FileName(prefix string, win window.Window) string {
	return fmt.Sprintf("%s_%s_%s.csv", prefix, win.Start.Format("20060102"), win.End.Format("060102"))
}

// WriteCSV writes the full record set to path. The file is written to a
// temporary sibling first and renamed into place so a failure mid-write
// never leaves a partial CSV behind.
func WriteCSV(path, numberColumn string, records []harvest.FlatRecord) error {
	const op = "WriteCSV"

	log := logger.WithComponent("csv-export")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%s: failed to create output directory: %w", op, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("%s: failed to create temp file: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(Header(numberColumn)); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: failed to write header: %w", op, err)
	}
	for _, record := range records {
		if err := writer.Write(Row(record)); err != nil {
			tmp.Close()
			return fmt.Errorf("%s: failed to write record: %w", op, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: failed to flush output: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: failed to close temp file: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: failed to move output into place: %w", op, err)
	}

	log.Info().
		Str("path", path).
		Int("rows", len(records)).
		Msg("Report written")

	return nil
}
