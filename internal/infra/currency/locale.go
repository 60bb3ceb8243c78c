package currency

import "strings"

// localeCurrencies maps browser locales to the currency commonly used
// there. Unknown locales fall back to USD.
var localeCurrencies = map[string]struct{ code, symbol string }{
	"en":    {"USD", "$"},
	"en-us": {"USD", "$"},
	"en-gb": {"GBP", "£"},
	"en-in": {"INR", "₹"},
	"hi":    {"INR", "₹"},
	"hi-in": {"INR", "₹"},
	"de":    {"EUR", "€"},
	"fr":    {"EUR", "€"},
	"es":    {"EUR", "€"},
	"it":    {"EUR", "€"},
}

// ByLocale resolves the currency code and symbol for a locale tag. A
// full Accept-Language header is accepted; only the first tag counts,
// quality weights are ignored.
func ByLocale(locale string) (code, symbol string) {
	if i := strings.IndexAny(locale, ",;"); i >= 0 {
		locale = locale[:i]
	}
	if entry, ok := localeCurrencies[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return entry.code, entry.symbol
	}
	return "USD", "$"
}
