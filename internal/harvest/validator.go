package harvest

import (
	"github.com/rs/zerolog"

	"cin7export/internal/cin7"
	"cin7export/internal/logger"
	"cin7export/internal/window"
)

// Validator decides whether a single raw document belongs in a report.
type Validator struct {
	dateField string
	companies map[string]string
	log       zerolog.Logger
}

// NewValidator creates a validator for one report definition.
func NewValidator(report Report) *Validator {
	return &Validator{
		dateField: report.DateField,
		companies: report.Companies,
		log: logger.WithComponent("validator").With().
			Str("report", report.Name).
			Logger(),
	}
}

// IsValid reports whether the document should be included. Void documents
// and documents outside the company include-list are rejected silently; a
// missing or unparseable date is logged as a warning and rejected. The date
// comparison is inclusive on both window ends.
func (v *Validator) IsValid(doc cin7.Document, win window.Window) bool {
	if doc.Flag("isVoid") {
		return false
	}

	if v.companies != nil {
		if _, ok := v.companies[doc.Str("company")]; !ok {
			v.log.Debug().
				Str("document", doc.Ref()).
				Str("company", doc.Str("company")).
				Msg("Document company not in scope, skipping")
			return false
		}
	}

	raw := doc.Str(v.dateField)
	if raw == "" {
		v.log.Warn().
			Str("document", doc.Ref()).
			Str("field", v.dateField).
			Msg("Document missing date field, skipping")
		return false
	}

	date, err := ParseUTC(raw)
	if err != nil {
		v.log.Warn().
			Err(err).
			Str("document", doc.Ref()).
			Str("date", raw).
			Msg("Failed to parse document date, skipping")
		return false
	}

	return win.Contains(date)
}
