package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"stayview/internal/infra/obs"
)

var ErrRateUnavailable = errors.New("currency: exchange rate unavailable")

// rateStaleAfter is how long a cached exchange rate is considered fresh.
// A stale rate is still used until a refresh succeeds; it is only logged.
const rateStaleAfter = 24 * time.Hour

type cachedRate struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// Converter fetches exchange rates from the external conversion API and
// caches them per currency pair.
type Converter struct {
	HTTP    *http.Client
	BaseURL string
	APIHost string
	APIKey  string
	Logger  *slog.Logger
	Now     func() time.Time

	mu    sync.Mutex
	rates map[string]cachedRate
}

type conversionResponse struct {
	BaseCurrencyCode string `json:"base_currency_code"`
	Status           string `json:"status"`
	Rates            map[string]struct {
		CurrencyName  string `json:"currency_name"`
		Rate          string `json:"rate"`
		RateForAmount string `json:"rate_for_amount"`
	} `json:"rates"`
}

// Rate returns the multiplier converting one unit of from into to,
// fetching it from the API when not cached. A cached value past its
// freshness window is returned as-is with a warning; callers keep
// displaying something sensible while a refresh is pending.
func (c *Converter) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	key := from + "_" + to
	c.mu.Lock()
	cached, ok := c.rates[key]
	c.mu.Unlock()
	if ok {
		if c.now().Sub(cached.fetchedAt) > rateStaleAfter {
			c.logWarn(ctx, "using stale exchange rate", "pair", key, "fetched_at", cached.fetchedAt)
		}
		return cached.rate, nil
	}

	rate, err := c.fetch(ctx, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	c.mu.Lock()
	if c.rates == nil {
		c.rates = make(map[string]cachedRate)
	}
	c.rates[key] = cachedRate{rate: rate, fetchedAt: c.now()}
	c.mu.Unlock()
	return rate, nil
}

func (c *Converter) fetch(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if c.HTTP == nil || c.BaseURL == "" {
		return decimal.Decimal{}, ErrRateUnavailable
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("from", from)
	query.Set("to", to)
	query.Set("amount", "1")
	endpoint := c.BaseURL + "/currency/convert?" + query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if c.APIHost != "" {
		request.Header.Set("x-rapidapi-host", c.APIHost)
	}
	if c.APIKey != "" {
		request.Header.Set("x-rapidapi-key", c.APIKey)
	}

	resp, err := c.HTTP.Do(request)
	if err != nil {
		c.logWarn(ctx, "exchange rate request failed", "pair", from+"_"+to, "error", err)
		return decimal.Decimal{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Decimal{}, fmt.Errorf("currency: status %d: %s", resp.StatusCode, string(snippet))
	}

	var payload conversionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Decimal{}, fmt.Errorf("currency: decode: %w", err)
	}
	entry, ok := payload.Rates[to]
	if !ok {
		return decimal.Decimal{}, ErrRateUnavailable
	}
	rate, err := decimal.NewFromString(entry.Rate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("currency: bad rate %q: %w", entry.Rate, err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, ErrRateUnavailable
	}
	return rate, nil
}

func (c *Converter) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Converter) logWarn(ctx context.Context, msg string, args ...any) {
	if c.Logger == nil {
		return
	}
	if id := obs.RequestIDFromContext(ctx); id != "" {
		args = append(args, "request_id", id)
	}
	c.Logger.Warn(msg, args...)
}
