package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateServer(t *testing.T, calls *atomic.Int64, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/currency/convert", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "host.example", r.Header.Get("x-rapidapi-host"))
		assert.Equal(t, "secret", r.Header.Get("x-rapidapi-key"))
		_, _ = w.Write([]byte(body))
	}))
}

func TestConverterRate(t *testing.T) {
	t.Run("fetches and caches a rate", func(t *testing.T) {
		var calls atomic.Int64
		server := rateServer(t, &calls,
			`{"base_currency_code":"USD","status":"success","rates":{"EUR":{"currency_name":"Euro","rate":"0.9234","rate_for_amount":"0.9234"}}}`)
		defer server.Close()

		conv := &Converter{
			HTTP:    server.Client(),
			BaseURL: server.URL,
			APIHost: "host.example",
			APIKey:  "secret",
		}

		first, err := conv.Rate(context.Background(), "USD", "EUR")
		require.NoError(t, err)
		assert.Equal(t, "0.9234", first.String())

		second, err := conv.Rate(context.Background(), "USD", "EUR")
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
		assert.Equal(t, int64(1), calls.Load(), "second call must hit the cache")
	})

	t.Run("same currency is always one", func(t *testing.T) {
		conv := &Converter{}
		rate, err := conv.Rate(context.Background(), "USD", "USD")
		require.NoError(t, err)
		assert.Equal(t, "1", rate.String())
	})

	t.Run("keeps serving a stale rate", func(t *testing.T) {
		var calls atomic.Int64
		server := rateServer(t, &calls,
			`{"rates":{"EUR":{"rate":"0.9"}}}`)
		defer server.Close()

		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		conv := &Converter{
			HTTP:    server.Client(),
			BaseURL: server.URL,
			APIHost: "host.example",
			APIKey:  "secret",
			Now:     func() time.Time { return now },
		}

		_, err := conv.Rate(context.Background(), "USD", "EUR")
		require.NoError(t, err)

		now = now.Add(48 * time.Hour)
		rate, err := conv.Rate(context.Background(), "USD", "EUR")
		require.NoError(t, err)
		assert.Equal(t, "0.9", rate.String())
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("missing target currency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"GBP":{"rate":"0.78"}}}`))
		}))
		defer server.Close()

		conv := &Converter{HTTP: server.Client(), BaseURL: server.URL}
		_, err := conv.Rate(context.Background(), "USD", "EUR")
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})

	t.Run("rejects non-positive rates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"EUR":{"rate":"0"}}}`))
		}))
		defer server.Close()

		conv := &Converter{HTTP: server.Client(), BaseURL: server.URL}
		_, err := conv.Rate(context.Background(), "USD", "EUR")
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})

	t.Run("error status from the API", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		conv := &Converter{HTTP: server.Client(), BaseURL: server.URL}
		_, err := conv.Rate(context.Background(), "USD", "EUR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("unconfigured converter", func(t *testing.T) {
		conv := &Converter{}
		_, err := conv.Rate(context.Background(), "USD", "EUR")
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})
}

func TestHolder(t *testing.T) {
	t.Run("starts in USD", func(t *testing.T) {
		h := NewHolder(nil)
		cur := h.Current()
		assert.Equal(t, "USD", cur.Code)
		assert.True(t, cur.Multiplier.IsZero())
	})

	t.Run("switch resolves the multiplier", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"EUR":{"rate":"0.5"}}}`))
		}))
		defer server.Close()

		h := NewHolder(&Converter{HTTP: server.Client(), BaseURL: server.URL})
		require.NoError(t, h.Switch(context.Background(), "EUR", "€"))

		cur := h.Current()
		assert.Equal(t, "EUR", cur.Code)
		assert.Equal(t, "€", cur.Symbol)
		assert.Equal(t, "0.5", cur.Multiplier.String())
	})

	t.Run("switch back to USD clears the multiplier", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"EUR":{"rate":"0.5"}}}`))
		}))
		defer server.Close()

		h := NewHolder(&Converter{HTTP: server.Client(), BaseURL: server.URL})
		require.NoError(t, h.Switch(context.Background(), "EUR", "€"))
		require.NoError(t, h.Switch(context.Background(), "USD", "$"))

		cur := h.Current()
		assert.Equal(t, "USD", cur.Code)
		assert.True(t, cur.Multiplier.IsZero())
	})

	t.Run("switch without a rate keeps the currency, reports the error", func(t *testing.T) {
		h := NewHolder(&Converter{})
		err := h.Switch(context.Background(), "EUR", "€")
		require.Error(t, err)

		cur := h.Current()
		assert.Equal(t, "EUR", cur.Code)
		assert.True(t, cur.Multiplier.IsZero(), "totals fall back to raw amounts")
	})
}

func TestByLocale(t *testing.T) {
	tests := []struct {
		locale string
		code   string
		symbol string
	}{
		{"en-US", "USD", "$"},
		{"en-GB", "GBP", "£"},
		{"hi-IN", "INR", "₹"},
		{"de", "EUR", "€"},
		{" fr ", "EUR", "€"},
		{"en-GB,en;q=0.9", "GBP", "£"},
		{"fr;q=0.8,en;q=0.5", "EUR", "€"},
		{"pt-BR", "USD", "$"},
		{"", "USD", "$"},
	}
	for _, tt := range tests {
		code, symbol := ByLocale(tt.locale)
		assert.Equal(t, tt.code, code, tt.locale)
		assert.Equal(t, tt.symbol, symbol, tt.locale)
	}
}
