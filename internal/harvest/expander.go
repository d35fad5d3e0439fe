package harvest

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"cin7export/internal/cin7"
	"cin7export/internal/logger"
)

// FlatRecord is one normalized output row: one line item of one document,
// currency-adjusted and carrying the document's metadata. Every field is
// always present so the output table has a uniform shape.
type FlatRecord struct {
	SourceAccount  string
	Reference      string
	DocumentNumber string
	SalesReference string
	CreatedDate    string
	Company        string
	FirstName      string
	LastName       string
	ProjectName    string
	Channel        string
	CurrencyCode   string
	ItemCode       string
	ItemName       string
	ItemQty        string
	ItemOption     string

	// UnitPrice is the line unit price multiplied by the document currency
	// rate, rounded to 2 decimal places.
	UnitPrice decimal.Decimal

	// Discount is the rate-adjusted line discount, emitted negative because
	// a discount reduces the price.
	Discount decimal.Decimal

	// DiscountShare is this line's equal share of the document-level
	// discount total, rate-adjusted.
	DiscountShare decimal.Decimal

	// DocumentDate is the document's primary date reformatted as
	// DD/MM/YYYY, empty when absent or unparseable.
	DocumentDate string
}

// Expander converts one validated document into flat output rows.
type Expander struct {
	dateField     string
	numberField   string
	abbreviations map[string]string
	log           zerolog.Logger
}

// NewExpander creates an expander for one report. abbreviations maps account
// usernames to the short codes used in the sourceUser column; unknown
// usernames pass through unabbreviated.
func NewExpander(report Report, abbreviations map[string]string) *Expander {
	return &Expander{
		dateField:     report.DateField,
		numberField:   report.NumberField,
		abbreviations: abbreviations,
		log: logger.WithComponent("expander").With().
			Str("report", report.Name).
			Logger(),
	}
}

// Expand flattens the document's line items into records. A document with no
// line items yields zero records and no error. A malformed numeric field
// anywhere in the document is an error; the caller skips the whole document
// so a partially-expanded document never reaches the report.
func (e *Expander) Expand(doc cin7.Document, account string) ([]FlatRecord, error) {
	const op = "Expand"

	items := doc.Items()
	if len(items) == 0 {
		return nil, nil
	}

	currencyRate, err := doc.Num("currencyRate", 1)
	if err != nil {
		return nil, fmt.Errorf("%s: document %s: %w", op, doc.Ref(), err)
	}
	discountTotal, err := doc.Num("discountTotal", 0)
	if err != nil {
		return nil, fmt.Errorf("%s: document %s: %w", op, doc.Ref(), err)
	}

	rate := decimal.NewFromFloat(currencyRate)

	// The document-level discount is split into equal, rate-adjusted shares,
	// one per line item.
	share := decimal.NewFromFloat(discountTotal).
		Div(decimal.NewFromInt(int64(len(items)))).
		Mul(rate).
		Round(2)

	sourceAccount := account
	if abbrev, ok := e.abbreviations[account]; ok {
		sourceAccount = abbrev
	}

	documentDate := ReportDate(doc.Str(e.dateField))

	records := make([]FlatRecord, 0, len(items))
	for i, item := range items {
		unitPrice, err := item.Num("unitPrice", 0)
		if err != nil {
			return nil, fmt.Errorf("%s: document %s, line %d: %w", op, doc.Ref(), i+1, err)
		}
		discount, err := item.Num("discount", 0)
		if err != nil {
			return nil, fmt.Errorf("%s: document %s, line %d: %w", op, doc.Ref(), i+1, err)
		}

		records = append(records, FlatRecord{
			SourceAccount:  sourceAccount,
			Reference:      doc.Str("reference"),
			DocumentNumber: doc.Str(e.numberField),
			SalesReference: doc.Str("salesReference"),
			CreatedDate:    item.Str("createdDate"),
			Company:        doc.Str("company"),
			FirstName:      doc.Str("firstName"),
			LastName:       doc.Str("lastName"),
			ProjectName:    doc.Str("projectName"),
			Channel:        doc.Str("source"),
			CurrencyCode:   doc.Str("currencyCode"),
			ItemCode:       item.Str("code"),
			ItemName:       item.Str("name"),
			ItemQty:        item.Str("qty"),
			ItemOption:     item.Str("option3"),
			UnitPrice:      decimal.NewFromFloat(unitPrice).Mul(rate).Round(2),
			Discount:       decimal.NewFromFloat(discount).Mul(rate).Round(2).Neg(),
			DiscountShare:  share,
			DocumentDate:   documentDate,
		})
	}

	e.log.Debug().
		Str("document", doc.Ref()).
		Int("line_items", len(items)).
		Msg("Document expanded")

	return records, nil
}
