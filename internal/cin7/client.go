package cin7

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"cin7export/internal/logger"
)

// Client fetches pages of documents from one Cin7 endpoint on behalf of one
// tenant account. It is safe for sequential use by a single harvester; each
// account gets its own Client.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	endpoint    string
	fields      string
	rowsPerPage int
	creds       Credentials
	log         zerolog.Logger
}

// ClientConfig describes one document feed for one account.
type ClientConfig struct {
	// BaseURL is the API root, e.g. "https://api.cin7.com/api/v1".
	BaseURL string

	// Endpoint is the document collection, e.g. "CreditNotes".
	Endpoint string

	// Fields is the comma-separated field list requested per document.
	Fields string

	// RowsPerPage is the page size (max 250 upstream).
	RowsPerPage int

	// Credentials authenticate the tenant account.
	Credentials Credentials

	// Timeout bounds a single page request. Defaults to 60s.
	Timeout time.Duration
}

// NewClient creates a client for one account and endpoint.
func NewClient(config ClientConfig) (*Client, error) {
	const op = "NewClient"

	if config.Credentials.APIKey == "" {
		return nil, fmt.Errorf("%s: account %s: %w", op, config.Credentials.Username, ErrMissingAPIKey)
	}
	if config.RowsPerPage <= 0 {
		config.RowsPerPage = 250
	}
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		baseURL:     config.BaseURL,
		endpoint:    config.Endpoint,
		fields:      config.Fields,
		rowsPerPage: config.RowsPerPage,
		creds:       config.Credentials,
		log: logger.WithComponent("cin7-client").With().
			Str("account", config.Credentials.Username).
			Str("endpoint", config.Endpoint).
			Logger(),
	}, nil
}

// Account returns the username of the account this client authenticates.
func (c *Client) Account() string {
	return c.creds.Username
}

// FetchPage retrieves one page of raw documents. An empty slice with a nil
// error means the feed is exhausted. Transport failures and non-2xx statuses
// are returned as *APIError; the caller decides whether to stop paginating.
func (c *Client) FetchPage(ctx context.Context, page int) ([]Document, error) {
	const op = "FetchPage"

	query := url.Values{}
	query.Set("fields", c.fields)
	query.Set("page", strconv.Itoa(page))
	query.Set("rows", strconv.Itoa(c.rowsPerPage))
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, c.endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &APIError{Op: op, Err: err, Endpoint: c.endpoint, Page: page}
	}
	for key, value := range c.creds.AuthHeader() {
		req.Header.Set(key, value)
	}

	c.log.Debug().Int("page", page).Msg("Fetching page")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Op: op, Err: fmt.Errorf("%w: %v", ErrRequestFailed, err), Endpoint: c.endpoint, Page: page}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Op: op, Err: ErrUnexpectedStatus, Endpoint: c.endpoint, Page: page, StatusCode: resp.StatusCode}
	}

	var documents []Document
	if err := json.NewDecoder(resp.Body).Decode(&documents); err != nil {
		return nil, &APIError{Op: op, Err: fmt.Errorf("%w: %v", ErrDecodeFailed, err), Endpoint: c.endpoint, Page: page, StatusCode: resp.StatusCode}
	}

	c.log.Debug().Int("page", page).Int("documents", len(documents)).Msg("Page fetched")

	return documents, nil
}
