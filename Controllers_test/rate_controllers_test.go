package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/onurusluca/qrkosta-app/controllers"
	"github.com/onurusluca/qrkosta-app/services"
	"github.com/onurusluca/qrkosta-app/utils"
)

func setupRateRouter(t *testing.T, primaryURL, fallbackURL string) *gin.Engine {
	t.Helper()
	utils.InitLogger()
	t.Setenv("RATES_PRIMARY_URL", primaryURL)
	t.Setenv("RATES_FALLBACK_URL", fallbackURL)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	rateCtrl := controllers.NewRateController(services.NewRateService())
	r.GET("/api/rates", rateCtrl.GetRates)
	return r
}

func fullPrimaryRates() map[string]float64 {
	rates := make(map[string]float64)
	for _, code := range utils.SupportedCurrencies {
		if code == "JPY" {
			continue // Frankfurter omits the base currency
		}
		rates[code] = 0.01
	}
	return rates
}

func primaryServer(t *testing.T, calls *int32, rates map[string]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"base":  "JPY",
			"date":  "2025-06-01",
			"rates": rates,
		})
	}))
}

func fallbackServer(t *testing.T, calls *int32, result string, rates map[string]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result":               result,
			"rates":                rates,
			"time_last_update_utc": "Sun, 01 Jun 2025 00:02:31 +0000",
		})
	}))
}

type rateResponse struct {
	Rates map[string]float64 `json:"rates"`
	Date  string             `json:"date"`
}

func TestGetRatesPrimaryComplete(t *testing.T) {
	var primaryCalls, fallbackCalls int32
	primary := primaryServer(t, &primaryCalls, fullPrimaryRates())
	defer primary.Close()
	fallback := fallbackServer(t, &fallbackCalls, "success", map[string]float64{"JPY": 1})
	defer fallback.Close()

	r := setupRateRouter(t, primary.URL, fallback.URL)
	w := doRequest(r, "GET", "/api/rates", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=3600, s-maxage=3600", w.Header().Get("Cache-Control"))

	var resp rateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-01", resp.Date)
	assert.Equal(t, float64(1), resp.Rates["JPY"])
	assert.Equal(t, 0.01, resp.Rates["USD"])

	// Primary was complete: the fallback provider is never consulted.
	assert.EqualValues(t, 1, atomic.LoadInt32(&primaryCalls))
	assert.Zero(t, atomic.LoadInt32(&fallbackCalls))
}

func TestGetRatesMergesMissingCodes(t *testing.T) {
	partial := fullPrimaryRates()
	delete(partial, "TWD")

	var primaryCalls, fallbackCalls int32
	primary := primaryServer(t, &primaryCalls, partial)
	defer primary.Close()
	fallback := fallbackServer(t, &fallbackCalls, "success", map[string]float64{
		"JPY": 1, "TWD": 0.21, "USD": 999, // USD must not override primary
	})
	defer fallback.Close()

	r := setupRateRouter(t, primary.URL, fallback.URL)
	w := doRequest(r, "GET", "/api/rates", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp rateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.21, resp.Rates["TWD"])
	assert.Equal(t, 0.01, resp.Rates["USD"])
	// Date stays the primary's when the primary responded at all.
	assert.Equal(t, "2025-06-01", resp.Date)
	assert.EqualValues(t, 1, atomic.LoadInt32(&fallbackCalls))
}

func TestGetRatesPrimaryDownFallbackUsed(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	var fallbackCalls int32
	fallbackRates := map[string]float64{"JPY": 1, "USD": 0.0067, "TWD": 0.21}
	fallback := fallbackServer(t, &fallbackCalls, "success", fallbackRates)
	defer fallback.Close()

	r := setupRateRouter(t, primary.URL, fallback.URL)
	w := doRequest(r, "GET", "/api/rates", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp rateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0067, resp.Rates["USD"])
	assert.Equal(t, "Sun, 01 Jun 2025 00:02:31 +0000", resp.Date)
}

func TestGetRatesJPYAlwaysPinned(t *testing.T) {
	rates := fullPrimaryRates()
	rates["JPY"] = 5 // a provider reporting a bogus base rate is ignored

	var calls int32
	primary := primaryServer(t, &calls, rates)
	defer primary.Close()

	r := setupRateRouter(t, primary.URL, "http://127.0.0.1:0")
	w := doRequest(r, "GET", "/api/rates", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp rateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp.Rates["JPY"])
}

func TestGetRatesBothProvidersDown(t *testing.T) {
	r := setupRateRouter(t, "http://127.0.0.1:0", "http://127.0.0.1:0")
	w := doRequest(r, "GET", "/api/rates", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rates unavailable", resp["message"])
}

func TestGetRatesFallbackNotSuccess(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer primary.Close()

	var fallbackCalls int32
	fallback := fallbackServer(t, &fallbackCalls, "error", map[string]float64{"JPY": 1})
	defer fallback.Close()

	r := setupRateRouter(t, primary.URL, fallback.URL)
	w := doRequest(r, "GET", "/api/rates", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
