package harvest

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"cin7export/internal/cin7"
	"cin7export/internal/logger"
	"cin7export/internal/window"
)

// PageFetcher retrieves one page of raw documents for a tenant account. An
// empty page with a nil error signals natural end of pagination.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) ([]cin7.Document, error)
	Account() string
}

// Result is the outcome of harvesting one account. Records preserves
// page/document/line-item order.
type Result struct {
	Account string
	Records []FlatRecord

	// Pages is the number of non-empty pages processed.
	Pages int

	// Skipped counts documents dropped because of malformed data.
	Skipped int

	// Err is the fetch error that aborted pagination, nil when the feed was
	// exhausted normally. Records accumulated before the error are kept.
	Err error
}

// Harvester drives fetch, validate and expand across all pages of one
// account's document feed. Each account gets its own harvester; they share
// nothing but the read-only window.
type Harvester struct {
	fetcher   PageFetcher
	validator *Validator
	expander  *Expander
	limiter   *rate.Limiter
	log       zerolog.Logger
}

// NewHarvester creates a harvester for one account. pageDelay is the minimum
// interval between consecutive page fetches, respecting the upstream rate
// limit; zero disables the delay (tests).
func NewHarvester(fetcher PageFetcher, report Report, abbreviations map[string]string, pageDelay time.Duration) *Harvester {
	var limiter *rate.Limiter
	if pageDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(pageDelay), 1)
	}
	return &Harvester{
		fetcher:   fetcher,
		validator: NewValidator(report),
		expander:  NewExpander(report, abbreviations),
		limiter:   limiter,
		log: logger.WithComponent("harvester").With().
			Str("report", report.Name).
			Str("account", fetcher.Account()).
			Logger(),
	}
}

// Run paginates the account's feed from page 1 until an empty page or a
// fetch error. Fetch errors end this account's harvest but keep everything
// accumulated so far; malformed documents are logged and skipped without
// ending the harvest.
func (h *Harvester) Run(ctx context.Context, win window.Window) Result {
	result := Result{Account: h.fetcher.Account()}

	for page := 1; ; page++ {
		if h.limiter != nil {
			if err := h.limiter.Wait(ctx); err != nil {
				h.log.Warn().Err(err).Int("page", page).Msg("Harvest canceled")
				result.Err = err
				return result
			}
		}

		h.log.Info().Int("page", page).Msg("Fetching page")

		documents, err := h.fetcher.FetchPage(ctx, page)
		if err != nil {
			h.log.Error().Err(err).Int("page", page).Msg("Page fetch failed, stopping account harvest")
			result.Err = err
			return result
		}
		if len(documents) == 0 {
			h.log.Info().Int("pages", result.Pages).Msg("No more data to fetch")
			return result
		}

		result.Pages++
		for _, doc := range documents {
			if !h.validator.IsValid(doc, win) {
				continue
			}
			records, err := h.expander.Expand(doc, result.Account)
			if err != nil {
				h.log.Warn().Err(err).Str("document", doc.Ref()).Msg("Failed to expand document, skipping")
				result.Skipped++
				continue
			}
			result.Records = append(result.Records, records...)
		}

		h.log.Info().
			Int("page", page).
			Int("records", len(result.Records)).
			Msg("Page processed")
	}
}
