package ratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"stayview/internal/domain/rates"
	"stayview/internal/domain/stay"
	"stayview/internal/infra/obs"
)

// Client fetches a property's daily rates from the remote room-rates API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Logger  *slog.Logger
}

// dailyRateRecord is the fixed wire shape of one rate entry. Field names
// are dictated by the rates API.
type dailyRateRecord struct {
	Date           string          `json:"date"`
	MinimumRate    decimal.Decimal `json:"minimum_rate"`
	HasPromotion   bool            `json:"has_promotion"`
	PriceFactor    decimal.Decimal `json:"price_factor"`
	DiscountedRate decimal.Decimal `json:"discounted_rate"`
}

// DailyRates retrieves and parses the rate list for (tenant, property).
// Records with malformed dates or out-of-contract numbers are skipped
// with a warning rather than failing the whole load.
func (c *Client) DailyRates(ctx context.Context, tenantID, propertyID int64) ([]rates.DailyRate, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("ratesapi: http client not configured")
	}
	if c.BaseURL == "" {
		return nil, errors.New("ratesapi: base url not configured")
	}

	query := url.Values{}
	query.Set("tenantId", strconv.FormatInt(tenantID, 10))
	query.Set("propertyId", strconv.FormatInt(propertyID, 10))
	endpoint := c.BaseURL + "/api/room-rates/daily-rates?" + query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(request)
	if err != nil {
		c.logError(ctx, "rates request failed", tenantID, propertyID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("ratesapi: status %d: %s", resp.StatusCode, string(snippet))
		c.logError(ctx, "rates request rejected", tenantID, propertyID, err)
		return nil, err
	}

	var records []dailyRateRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		c.logError(ctx, "rates decode failed", tenantID, propertyID, err)
		return nil, fmt.Errorf("ratesapi: decode: %w", err)
	}

	out := make([]rates.DailyRate, 0, len(records))
	for _, rec := range records {
		date, err := stay.ParseDay(rec.Date)
		if err != nil {
			c.logWarn(ctx, "rate record skipped", tenantID, propertyID, "date", rec.Date, "error", err)
			continue
		}
		rate, err := rates.NewDailyRate(date, rec.MinimumRate, rec.HasPromotion, rec.PriceFactor)
		if err != nil {
			c.logWarn(ctx, "rate record skipped", tenantID, propertyID, "date", rec.Date, "error", err)
			continue
		}
		// The derived discounted rate is authoritative; a disagreeing
		// upstream value signals a drifting rates service.
		if !rec.DiscountedRate.IsZero() && !rec.DiscountedRate.Equal(rate.DiscountedRate) {
			c.logWarn(ctx, "discounted rate mismatch", tenantID, propertyID,
				"date", rec.Date, "wire", rec.DiscountedRate, "derived", rate.DiscountedRate)
		}
		out = append(out, rate)
	}
	return out, nil
}

func (c *Client) logError(ctx context.Context, msg string, tenantID, propertyID int64, err error) {
	if c.Logger == nil {
		return
	}
	c.Logger.Error(msg, c.logArgs(ctx, tenantID, propertyID, "error", err)...)
}

func (c *Client) logWarn(ctx context.Context, msg string, tenantID, propertyID int64, args ...any) {
	if c.Logger == nil {
		return
	}
	c.Logger.Warn(msg, c.logArgs(ctx, tenantID, propertyID, args...)...)
}

func (c *Client) logArgs(ctx context.Context, tenantID, propertyID int64, args ...any) []any {
	out := []any{"tenant_id", tenantID, "property_id", propertyID}
	if id := obs.RequestIDFromContext(ctx); id != "" {
		out = append(out, "request_id", id)
	}
	return append(out, args...)
}
