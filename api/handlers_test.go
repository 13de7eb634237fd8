/*
handlers_test.go - HTTP-level tests for API handlers

Drives the full stack (router -> handlers -> services -> sqlite) through
httptest with an in-memory database.
*/
package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/rental-engine/api"
	"github.com/meridian/rental-engine/store/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(store)))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func createProduct(t *testing.T, srv *httptest.Server, id string) {
	t.Helper()
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/products", map[string]any{
		"id":   id,
		"name": "Canon R6 kit",
		"rate_card": `{
			"name": "Standard camera kit",
			"daily_rate": "1500",
			"deposit": "5000",
			"late_fee_per_day": "500"
		}`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func createBooking(t *testing.T, srv *httptest.Server, product, pickup, ret string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/bookings", map[string]any{
		"product_id":  product,
		"customer_id": "cust-1",
		"pickup_date": pickup,
		"return_date": ret,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	return body["id"].(string)
}

// =============================================================================
// BOOKINGS
// =============================================================================

func TestCreateBooking(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/bookings", map[string]any{
		"product_id":  "camera",
		"customer_id": "cust-1",
		"pickup_date": "2024-06-10",
		"return_date": "2024-06-15",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "reserved", body["status"])
	assert.Equal(t, "2024-06-10", body["pickup_date"])
	assert.Equal(t, "2024-06-15", body["return_date"])
	assert.NotEmpty(t, body["id"])
}

func TestCreateBooking_Conflict409(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")
	first := createBooking(t, srv, "camera", "2024-06-10", "2024-06-15")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/bookings", map[string]any{
		"product_id":  "camera",
		"pickup_date": "2024-06-15",
		"return_date": "2024-06-20",
	})

	require.Equal(t, http.StatusConflict, resp.StatusCode,
		"inclusive endpoints: the shared return/pickup day conflicts")
	assert.Equal(t, "booking_conflict", body["code"])

	details := body["details"].(map[string]any)
	assert.Equal(t, first, details["conflict_with"])
}

func TestCreateBooking_Validation400(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")

	// Missing product_id
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/bookings", map[string]any{
		"pickup_date": "2024-06-10",
		"return_date": "2024-06-15",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Return before pickup
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/bookings", map[string]any{
		"product_id":  "camera",
		"pickup_date": "2024-06-15",
		"return_date": "2024-06-10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown product
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/bookings", map[string]any{
		"product_id":  "ghost",
		"pickup_date": "2024-06-10",
		"return_date": "2024-06-15",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRescheduleBooking(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")
	id := createBooking(t, srv, "camera", "2024-06-10", "2024-06-15")

	// Overlapping its own window is allowed.
	resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/bookings/"+id+"/reschedule", map[string]any{
		"pickup_date": "2024-06-12",
		"return_date": "2024-06-18",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-06-12", body["pickup_date"])

	// A second booking blocks the move.
	createBooking(t, srv, "camera", "2024-06-20", "2024-06-25")
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/bookings/"+id+"/reschedule", map[string]any{
		"pickup_date": "2024-06-18",
		"return_date": "2024-06-21",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBookingLifecycle(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")
	id := createBooking(t, srv, "camera", "2024-06-10", "2024-06-15")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/bookings/"+id+"/pickup", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "out", body["status"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/bookings/"+id+"/return", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "returned", body["status"])

	// Terminal state: further transitions fail.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/bookings/"+id+"/pickup", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReturnBooking_PostsChargesOnce(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/accounts", map[string]any{
		"id":   "acc-1",
		"name": "Asha Traders",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Future dates: returning before the scheduled return date, so no
	// late fee enters the picture.
	id := createBooking(t, srv, "camera", "2030-06-10", "2030-06-15")
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/bookings/"+id+"/pickup", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/bookings/"+id+"/return",
		map[string]any{"account_id": "acc-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Six inclusive days at 1500/day, debited.
	resp, body := doJSON(t, http.MethodGet,
		srv.URL+"/api/accounts/acc-1/balance?as_of=2031-01-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "-9000", body["balance"])
	assert.Equal(t, "-Rs 9,000", body["balance_display"])
}

func TestGetBooking_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/bookings/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// AVAILABILITY AND QUOTES
// =============================================================================

func TestGetAvailability(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")
	id := createBooking(t, srv, "camera", "2024-06-10", "2024-06-15")

	url := srv.URL + "/api/products/camera/availability?pickup_date=%s&return_date=%s"

	resp, body := doJSON(t, http.MethodGet, fmt.Sprintf(url, "2024-06-14", "2024-06-20"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["available"])
	assert.Equal(t, id, body["conflict_with"])

	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf(url, "2024-06-16", "2024-06-20"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["available"])
}

func TestGetQuote(t *testing.T) {
	srv := newTestServer(t)
	createProduct(t, srv, "camera")

	resp, body := doJSON(t, http.MethodGet,
		srv.URL+"/api/products/camera/quote?pickup_date=2024-06-10&return_date=2024-06-15", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, float64(6), body["days"])
	assert.Equal(t, "9000", body["rental"])
	assert.Equal(t, "Rs 9,000", body["rental_display"])
	assert.Equal(t, "Rs 5,000", body["deposit_display"])
	assert.Equal(t, "9000", body["total"], "deposit excluded from total")
}

// =============================================================================
// ACCOUNTS AND STATEMENTS
// =============================================================================

func TestStatement(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/accounts", map[string]any{
		"id":              "acc-1",
		"name":            "Asha Traders",
		"kind":            "customer",
		"opening_balance": "1000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	post := func(date, typ, amount string) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/accounts/acc-1/transactions", map[string]any{
			"date":   date,
			"type":   typ,
			"amount": amount,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	}
	post("2024-06-01", "credit", "500")
	post("2024-06-02", "debit", "200")
	post("2024-06-03", "credit", "300")

	resp, body := doJSON(t, http.MethodGet,
		srv.URL+"/api/accounts/acc-1/statement?from=2024-06-01&to=2024-06-30", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "1000", body["opening_balance"])
	assert.Equal(t, "Rs 1,000", body["opening_balance_display"])
	assert.Equal(t, "1600", body["closing_balance"])
	assert.Equal(t, "Rs 1,600", body["closing_balance_display"])
	assert.Equal(t, "800", body["total_credits"])
	assert.Equal(t, "200", body["total_debits"])

	lines := body["lines"].([]any)
	require.Len(t, lines, 3)
	balances := make([]string, len(lines))
	for i, l := range lines {
		balances[i] = l.(map[string]any)["balance"].(string)
	}
	assert.Equal(t, []string{"1500", "1300", "1600"}, balances)
}

func TestRecordTransaction_Validation(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/accounts", map[string]any{
		"id": "acc-1", "name": "Asha Traders",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Bad type
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/accounts/acc-1/transactions", map[string]any{
		"date": "2024-06-01", "type": "transfer", "amount": "100",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown account
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/accounts/missing/transactions", map[string]any{
		"date": "2024-06-01", "type": "credit", "amount": "100",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Duplicate idempotency key
	entry := map[string]any{
		"date": "2024-06-01", "type": "credit", "amount": "100",
		"idempotency_key": "seed:1",
	}
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/accounts/acc-1/transactions", entry)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/accounts/acc-1/transactions", entry)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
