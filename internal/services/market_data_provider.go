package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/stockfolio/internal/config"
	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
)

const defaultProviderTimeout = 30 * time.Second

// PolygonProvider fetches daily aggregates from the Polygon REST API.
type PolygonProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewPolygonProvider creates a new Polygon market-data provider
func NewPolygonProvider(cfg config.PolygonConfig) *PolygonProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.polygon.io"
	}
	return &PolygonProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// polygonAggsResponse is the body of /v2/aggs/ticker/{ticker}/range/1/day/{from}/{to}
type polygonAggsResponse struct {
	Status       string       `json:"status"`
	Ticker       string       `json:"ticker"`
	ResultsCount int          `json:"resultsCount"`
	Results      []polygonBar `json:"results"`
	Error        string       `json:"error"`
	Message      string       `json:"message"`
}

type polygonBar struct {
	T int64               `json:"t"`
	O decimal.NullDecimal `json:"o"`
	H decimal.NullDecimal `json:"h"`
	L decimal.NullDecimal `json:"l"`
	C decimal.NullDecimal `json:"c"`
	V decimal.NullDecimal `json:"v"`
}

// FetchDailyBars returns the daily bars of ticker between start and end, oldest first.
// "OK" and "DELAYED" responses are both data; no results is an empty slice, not an error.
// Transport failures, non-2xx answers and unparsable payloads are *errors.ProviderError.
func (p *PolygonProvider) FetchDailyBars(ctx context.Context, ticker string, start, end time.Time) ([]models.RawBar, error) {
	endpoint := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s",
		p.baseURL, url.PathEscape(ticker), models.FormatDate(start), models.FormatDate(end))

	params := url.Values{}
	params.Set("adjusted", "true")
	params.Set("sort", "asc")
	if p.apiKey != "" {
		params.Set("apiKey", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &apperrors.ProviderError{Ticker: ticker, Kind: apperrors.ProviderTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ProviderError{Ticker: ticker, Kind: transportKind(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &apperrors.ProviderError{
			Ticker:     ticker,
			Kind:       statusKind(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var payload polygonAggsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &apperrors.ProviderError{Ticker: ticker, Kind: apperrors.ProviderMalformed, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	switch strings.ToUpper(payload.Status) {
	case "OK", "DELAYED":
	case "ERROR":
		return nil, &apperrors.ProviderError{Ticker: ticker, Kind: apperrors.ProviderUpstream, Err: errors.New(payload.describe())}
	case "NOT_AUTHORIZED":
		return nil, &apperrors.ProviderError{Ticker: ticker, Kind: apperrors.ProviderUnauthorized, Err: errors.New(payload.describe())}
	default:
		// anything else carries no usable data
		return []models.RawBar{}, nil
	}

	bars := make([]models.RawBar, 0, len(payload.Results))
	for i, b := range payload.Results {
		if !b.C.Valid || b.T <= 0 {
			return nil, &apperrors.ProviderError{Ticker: ticker, Kind: apperrors.ProviderMalformed, Err: fmt.Errorf("result %d lacks close price or timestamp", i)}
		}
		bars = append(bars, models.RawBar{
			Timestamp: b.T,
			Open:      b.O,
			High:      b.H,
			Low:       b.L,
			Close:     b.C.Decimal,
			Volume:    b.V,
		})
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Timestamp < bars[j].Timestamp })
	return bars, nil
}

func (r *polygonAggsResponse) describe() string {
	msg := r.Error
	if msg == "" {
		msg = r.Message
	}
	if msg == "" {
		msg = "provider returned status " + r.Status
	}
	return msg
}

func transportKind(err error) apperrors.ProviderErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ProviderTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.ProviderTimeout
	}
	return apperrors.ProviderTransport
}

func statusKind(code int) apperrors.ProviderErrorKind {
	switch code {
	case http.StatusTooManyRequests:
		return apperrors.ProviderRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ProviderUnauthorized
	default:
		return apperrors.ProviderUpstream
	}
}
