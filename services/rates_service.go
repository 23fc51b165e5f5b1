package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/onurusluca/qrkosta-app/utils"
)

// Live JPY rates. Primary: Frankfurter (free, no key).
// Fallback: open.er-api.com (free, no key, has TWD and more).
const (
	defaultPrimaryURL  = "https://api.frankfurter.dev/v1/latest?base=JPY"
	defaultFallbackURL = "https://open.er-api.com/v6/latest/JPY"
)

// ErrRatesUnavailable is returned when neither provider yields a usable rate set.
var ErrRatesUnavailable = errors.New("all rate providers unavailable")

// RateSet is a complete provider answer: JPY-relative rates plus an as-of date.
type RateSet struct {
	Rates map[string]float64 `json:"rates"`
	Date  string             `json:"date"`
}

// RateService queries external exchange-rate providers. It keeps no cache of
// its own; freshness is delegated to HTTP caching at the edge.
type RateService struct {
	PrimaryURL  string
	FallbackURL string

	httpClient *http.Client
}

func NewRateService() *RateService {
	primaryURL := os.Getenv("RATES_PRIMARY_URL")
	if primaryURL == "" {
		primaryURL = defaultPrimaryURL
	}
	fallbackURL := os.Getenv("RATES_FALLBACK_URL")
	if fallbackURL == "" {
		fallbackURL = defaultFallbackURL
	}

	return &RateService{
		PrimaryURL:  primaryURL,
		FallbackURL: fallbackURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetRates returns a rate set covering every supported currency. The primary
// provider wins outright when complete; otherwise the fallback fills the gaps.
// JPY is always pinned to 1 regardless of what either provider reports.
func (rs *RateService) GetRates() (*RateSet, error) {
	primary := rs.fetchPrimary()
	if primary != nil && !hasMissing(primary.Rates) {
		primary.Rates["JPY"] = 1
		return primary, nil
	}

	fallback := rs.fetchFallback()
	if fallback == nil {
		return nil, ErrRatesUnavailable
	}

	merged := fallback
	if primary != nil {
		merged = primary
		for _, code := range utils.SupportedCurrencies {
			if _, ok := merged.Rates[code]; ok {
				continue
			}
			if rate, ok := fallback.Rates[code]; ok {
				merged.Rates[code] = rate
			}
		}
	}
	merged.Rates["JPY"] = 1
	return merged, nil
}

// fetchPrimary queries the Frankfurter-shaped provider. Any transport error or
// non-2xx status means "unavailable", not a hard failure.
func (rs *RateService) fetchPrimary() *RateSet {
	resp, err := rs.httpClient.Get(rs.PrimaryURL)
	if err != nil {
		utils.ErrorLogger.Printf("primary rate provider unreachable: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.ErrorLogger.Printf("primary rate provider returned %d", resp.StatusCode)
		return nil
	}

	var body struct {
		Base  string             `json:"base"`
		Date  string             `json:"date"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		utils.ErrorLogger.Printf("primary rate provider decode failed: %v", err)
		return nil
	}

	rates := map[string]float64{"JPY": 1}
	for code, rate := range body.Rates {
		rates[code] = rate
	}
	return &RateSet{Rates: rates, Date: body.Date}
}

// fetchFallback queries open.er-api.com, accepted only on an explicit success
// indicator with a non-empty rate mapping.
func (rs *RateService) fetchFallback() *RateSet {
	resp, err := rs.httpClient.Get(rs.FallbackURL)
	if err != nil {
		utils.ErrorLogger.Printf("fallback rate provider unreachable: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.ErrorLogger.Printf("fallback rate provider returned %d", resp.StatusCode)
		return nil
	}

	var body struct {
		Result            string             `json:"result"`
		Rates             map[string]float64 `json:"rates"`
		TimeLastUpdateUTC string             `json:"time_last_update_utc"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		utils.ErrorLogger.Printf("fallback rate provider decode failed: %v", err)
		return nil
	}
	if body.Result != "success" || len(body.Rates) == 0 {
		return nil
	}
	return &RateSet{Rates: body.Rates, Date: body.TimeLastUpdateUTC}
}

func hasMissing(rates map[string]float64) bool {
	for _, code := range utils.SupportedCurrencies {
		if _, ok := rates[code]; !ok {
			return true
		}
	}
	return false
}
