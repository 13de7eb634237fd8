/*
handlers.go - HTTP API handlers for the rental management system

PURPOSE:
  Exposes the rental engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Products:
    GET    /api/products                    List all products
    POST   /api/products                    Create product
    GET    /api/products/{id}               Get product details
    GET    /api/products/{id}/bookings      Booking history for product
    GET    /api/products/{id}/availability  Conflict hint for a candidate range
    GET    /api/products/{id}/quote         Rental charges for a range

  Bookings:
    POST   /api/bookings                    Reserve a product
    GET    /api/bookings/{id}               Get booking details
    PUT    /api/bookings/{id}/reschedule    Move booking dates
    POST   /api/bookings/{id}/pickup        Mark out
    POST   /api/bookings/{id}/return        Mark returned (optionally post charges)
    POST   /api/bookings/{id}/cancel        Cancel

  Accounts:
    GET    /api/accounts                    List accounts
    POST   /api/accounts                    Create account
    GET    /api/accounts/{id}               Get account details
    GET    /api/accounts/{id}/balance       Balance as of a day
    GET    /api/accounts/{id}/statement     Statement with running balances
    POST   /api/accounts/{id}/transactions  Record credit/debit
    GET    /api/accounts/{id}/transactions  Transactions in a window

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input (go-playground/validator on request DTOs)
  3. Call domain logic (booking service, ledger service)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Conflict (overlapping booking, duplicate idempotency key)
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridian/rental-engine/booking"
	"github.com/meridian/rental-engine/calendar"
	"github.com/meridian/rental-engine/currency"
	"github.com/meridian/rental-engine/ledger"
	"github.com/meridian/rental-engine/ratecard"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Storage is everything the API needs persisted. Both store/sqlite and
// store/memory satisfy it.
type Storage interface {
	booking.Store
	booking.ProductStore
	ledger.Store
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Bookings  *booking.Service
	Ledger    *ledger.Service
	Products  booking.ProductStore
	RateCards *ratecard.Factory
	Formatter *currency.Formatter

	validate *validator.Validate
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(store Storage) *Handler {
	return &Handler{
		Bookings:  booking.NewService(store),
		Ledger:    ledger.NewService(store),
		Products:  store,
		RateCards: ratecard.NewFactory(),
		Formatter: currency.NewFormatter(),
		validate:  validator.New(),
	}
}

// =============================================================================
// PRODUCT HANDLERS
// =============================================================================

// ListProducts returns all products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list products", err)
		return
	}

	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = toProductDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateProduct creates a new product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	if req.RateCard != "" {
		if _, err := h.RateCards.Parse(req.RateCard); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid rate card", err)
			return
		}
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	p := booking.Product{
		ID:           booking.ProductID(req.ID),
		Name:         req.Name,
		RateCardJSON: req.RateCard,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Products.SaveProduct(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductDTO(p))
}

// GetProduct returns a single product.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := booking.ProductID(chi.URLParam(r, "id"))

	p, err := h.Products.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get product", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

// GetProductBookings returns a product's booking history, newest first.
func (h *Handler) GetProductBookings(w http.ResponseWriter, r *http.Request) {
	id := booking.ProductID(chi.URLParam(r, "id"))

	if _, err := h.Products.GetProduct(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to get product", err)
		return
	}

	bookings, err := h.Bookings.ListByProduct(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list bookings", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTOs(bookings))
}

// GetAvailability reports whether a candidate range is free for a product.
// A "free" answer is a hint: a concurrent booking can still win the range,
// which the create path rejects.
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	id := booking.ProductID(chi.URLParam(r, "id"))

	period, ok := h.queryPeriod(w, r)
	if !ok {
		return
	}

	if _, err := h.Products.GetProduct(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to get product", err)
		return
	}

	res, err := h.Bookings.Availability(r.Context(), id, period)
	if err != nil {
		writeDomainError(w, "Failed to check availability", err)
		return
	}

	writeJSON(w, http.StatusOK, AvailabilityDTO{
		ProductID:    string(id),
		PickupDate:   period.Start.String(),
		ReturnDate:   period.End.String(),
		Available:    !res.Conflict,
		ConflictWith: string(res.WithBookingID),
	})
}

// GetQuote returns the rental charges for a candidate range, priced off the
// product's rate card.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id := booking.ProductID(chi.URLParam(r, "id"))

	period, ok := h.queryPeriod(w, r)
	if !ok {
		return
	}

	p, err := h.Products.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get product", err)
		return
	}
	if p.RateCardJSON == "" {
		writeError(w, http.StatusBadRequest, "Product has no rate card", nil)
		return
	}

	card, err := h.RateCards.Parse(p.RateCardJSON)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Stored rate card is invalid", err)
		return
	}

	writeJSON(w, http.StatusOK, h.toChargesDTO(card.Charges(period, 0)))
}

// =============================================================================
// BOOKING HANDLERS
// =============================================================================

// CreateBooking reserves a product for a date range.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !h.decode(w, r, &req) {
		return
	}

	period, ok := h.parsePeriod(w, req.PickupDate, req.ReturnDate)
	if !ok {
		return
	}

	productID := booking.ProductID(req.ProductID)
	if _, err := h.Products.GetProduct(r.Context(), productID); err != nil {
		writeDomainError(w, "Failed to get product", err)
		return
	}

	b, err := h.Bookings.Create(r.Context(), productID, booking.CustomerID(req.CustomerID), period, req.Notes)
	if err != nil {
		writeDomainError(w, "Failed to create booking", err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookingDTO(b))
}

// GetBooking returns a single booking.
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := booking.BookingID(chi.URLParam(r, "id"))

	b, err := h.Bookings.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get booking", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTO(b))
}

// RescheduleBooking moves an active booking to new dates. The booking's own
// occupancy is ignored when checking conflicts, so shrinking or shifting
// within the original window always succeeds.
func (h *Handler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	id := booking.BookingID(chi.URLParam(r, "id"))

	var req RescheduleBookingRequest
	if !h.decode(w, r, &req) {
		return
	}

	period, ok := h.parsePeriod(w, req.PickupDate, req.ReturnDate)
	if !ok {
		return
	}

	b, err := h.Bookings.Reschedule(r.Context(), id, period)
	if err != nil {
		writeDomainError(w, "Failed to reschedule booking", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTO(b))
}

// PickUpBooking marks a reserved booking as out.
func (h *Handler) PickUpBooking(w http.ResponseWriter, r *http.Request) {
	id := booking.BookingID(chi.URLParam(r, "id"))

	b, err := h.Bookings.PickUp(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to pick up booking", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTO(b))
}

// ReturnBooking marks an out booking as returned, releasing its days.
// When the request names an account and the product has a rate card, the
// rental charge (plus late fee for overdue returns) is posted as debits,
// keyed idempotently so a retried return never double-charges.
func (h *Handler) ReturnBooking(w http.ResponseWriter, r *http.Request) {
	id := booking.BookingID(chi.URLParam(r, "id"))

	var req ReturnBookingRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	before, err := h.Bookings.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get booking", err)
		return
	}

	b, err := h.Bookings.Return(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to return booking", err)
		return
	}

	if req.AccountID != "" {
		if err := h.postReturnCharges(r, ledger.AccountID(req.AccountID), before); err != nil {
			writeDomainError(w, "Returned, but failed to post charges", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, toBookingDTO(b))
}

// postReturnCharges debits the rental (and any late fee) to the named
// account. Charges are keyed per booking, so a retried return sees a
// duplicate idempotency key and posts nothing - already-posted is success,
// not failure.
func (h *Handler) postReturnCharges(r *http.Request, accountID ledger.AccountID, b booking.Booking) error {
	p, err := h.Products.GetProduct(r.Context(), b.ProductID)
	if err != nil {
		return err
	}
	if p.RateCardJSON == "" {
		return nil
	}

	card, err := h.RateCards.Parse(p.RateCardJSON)
	if err != nil {
		return err
	}

	overdueDays := 0
	if today := calendar.Today(); today.After(b.Period.End) {
		overdueDays = calendar.DaysBetween(b.Period.End, today)
	}
	charges := card.Charges(b.Period, overdueDays)

	_, err = h.Ledger.Record(r.Context(), ledger.Transaction{
		AccountID:      accountID,
		Date:           calendar.Today(),
		Type:           ledger.TxDebit,
		Amount:         charges.Rental,
		Description:    "Rental charge: " + p.Name,
		ReferenceType:  "booking",
		ReferenceID:    string(b.ID),
		IdempotencyKey: "rental:" + string(b.ID),
	})
	if err != nil && !errors.Is(err, ledger.ErrDuplicateIdempotencyKey) {
		return err
	}

	if charges.LateFee.IsPositive() {
		_, err = h.Ledger.Record(r.Context(), ledger.Transaction{
			AccountID:      accountID,
			Date:           calendar.Today(),
			Type:           ledger.TxDebit,
			Amount:         charges.LateFee,
			Description:    "Late fee: " + p.Name,
			ReferenceType:  "booking",
			ReferenceID:    string(b.ID),
			IdempotencyKey: "latefee:" + string(b.ID),
		})
		if err != nil && !errors.Is(err, ledger.ErrDuplicateIdempotencyKey) {
			return err
		}
	}
	return nil
}

// CancelBooking cancels a reserved or out booking.
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := booking.BookingID(chi.URLParam(r, "id"))

	b, err := h.Bookings.Cancel(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to cancel booking", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTO(b))
}

// =============================================================================
// ACCOUNT HANDLERS
// =============================================================================

// ListAccounts returns all accounts.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Ledger.ListAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list accounts", err)
		return
	}

	dtos := make([]AccountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toAccountDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateAccount creates a new ledger account.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !h.decode(w, r, &req) {
		return
	}

	opening := decimal.Zero
	if req.OpeningBalance != "" {
		var err error
		opening, err = decimal.NewFromString(req.OpeningBalance)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid opening_balance", err)
			return
		}
	}

	a, err := h.Ledger.CreateAccount(r.Context(), ledger.Account{
		ID:             ledger.AccountID(req.ID),
		Name:           req.Name,
		Kind:           ledger.AccountKind(req.Kind),
		OpeningBalance: opening,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountDTO(a))
}

// GetAccount returns a single account.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := ledger.AccountID(chi.URLParam(r, "id"))

	a, err := h.Ledger.GetAccount(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get account", err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountDTO(a))
}

// GetBalance returns the account balance as of a day (default today).
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := ledger.AccountID(chi.URLParam(r, "id"))

	asOf := calendar.Today()
	if s := r.URL.Query().Get("as_of"); s != "" {
		var err error
		asOf, err = calendar.ParseDate(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", err)
			return
		}
	}

	balance, err := h.Ledger.Balance(r.Context(), id, asOf)
	if err != nil {
		writeDomainError(w, "Failed to compute balance", err)
		return
	}

	writeJSON(w, http.StatusOK, BalanceDTO{
		AccountID:      string(id),
		AsOf:           asOf.String(),
		Balance:        balance.String(),
		BalanceDisplay: h.Formatter.Format(balance),
	})
}

// GetStatement returns the period's transactions with running balances.
// The opening balance is derived from everything before the window, so any
// window renders a correct statement.
func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id := ledger.AccountID(chi.URLParam(r, "id"))

	period, ok := h.queryStatementPeriod(w, r)
	if !ok {
		return
	}

	stmt, err := h.Ledger.BuildStatement(r.Context(), id, period)
	if err != nil {
		writeDomainError(w, "Failed to build statement", err)
		return
	}

	lines := make([]StatementLineDTO, len(stmt.Transactions))
	for i, tx := range stmt.Transactions {
		balance := stmt.RunningBalances[i].BalanceAfter
		lines[i] = StatementLineDTO{
			TransactionDTO: toTransactionDTO(tx, h.Formatter),
			Balance:        balance.String(),
			BalanceDisplay: h.Formatter.Format(balance),
		}
	}

	writeJSON(w, http.StatusOK, StatementDTO{
		AccountID:             string(id),
		From:                  period.Start.String(),
		To:                    period.End.String(),
		OpeningBalance:        stmt.OpeningBalance.String(),
		OpeningBalanceDisplay: h.Formatter.Format(stmt.OpeningBalance),
		Lines:                 lines,
		ClosingBalance:        stmt.ClosingBalance.String(),
		ClosingBalanceDisplay: h.Formatter.Format(stmt.ClosingBalance),
		TotalCredits:          stmt.TotalCredits.String(),
		TotalCreditsDisplay:   h.Formatter.Format(stmt.TotalCredits),
		TotalDebits:           stmt.TotalDebits.String(),
		TotalDebitsDisplay:    h.Formatter.Format(stmt.TotalDebits),
	})
}

// RecordTransaction appends a credit or debit to an account.
func (h *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	id := ledger.AccountID(chi.URLParam(r, "id"))

	var req RecordTransactionRequest
	if !h.decode(w, r, &req) {
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	tx, err := h.Ledger.Record(r.Context(), ledger.Transaction{
		AccountID:      id,
		Date:           date,
		Type:           ledger.TxType(req.Type),
		Amount:         amount,
		Description:    req.Description,
		ReferenceType:  req.ReferenceType,
		ReferenceID:    req.ReferenceID,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		writeDomainError(w, "Failed to record transaction", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionDTO(tx, h.Formatter))
}

// ListTransactions returns the account's transactions in a window, in
// ledger order.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	id := ledger.AccountID(chi.URLParam(r, "id"))

	period, ok := h.queryStatementPeriod(w, r)
	if !ok {
		return
	}

	stmt, err := h.Ledger.BuildStatement(r.Context(), id, period)
	if err != nil {
		writeDomainError(w, "Failed to list transactions", err)
		return
	}

	dtos := make([]TransactionDTO, len(stmt.Transactions))
	for i, tx := range stmt.Transactions {
		dtos[i] = toTransactionDTO(tx, h.Formatter)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// REQUEST HELPERS
// =============================================================================

// decode unmarshals the body into req and runs struct validation. Writes
// the error response itself; callers just bail on false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return false
	}
	return true
}

// parsePeriod builds a date range from pickup/return strings.
func (h *Handler) parsePeriod(w http.ResponseWriter, pickup, ret string) (calendar.DateRange, bool) {
	start, err := calendar.ParseDate(pickup)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pickup_date (use YYYY-MM-DD)", err)
		return calendar.DateRange{}, false
	}
	end, err := calendar.ParseDate(ret)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid return_date (use YYYY-MM-DD)", err)
		return calendar.DateRange{}, false
	}

	period := calendar.NewRange(start, end)
	if err := period.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "return_date must not be before pickup_date", err)
		return calendar.DateRange{}, false
	}
	return period, true
}

// queryPeriod reads pickup_date/return_date query params.
func (h *Handler) queryPeriod(w http.ResponseWriter, r *http.Request) (calendar.DateRange, bool) {
	pickup := r.URL.Query().Get("pickup_date")
	ret := r.URL.Query().Get("return_date")
	if pickup == "" || ret == "" {
		writeError(w, http.StatusBadRequest, "pickup_date and return_date are required", nil)
		return calendar.DateRange{}, false
	}
	return h.parsePeriod(w, pickup, ret)
}

// queryStatementPeriod reads from/to query params.
func (h *Handler) queryStatementPeriod(w http.ResponseWriter, r *http.Request) (calendar.DateRange, bool) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required", nil)
		return calendar.DateRange{}, false
	}

	start, err := calendar.ParseDate(from)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date (use YYYY-MM-DD)", err)
		return calendar.DateRange{}, false
	}
	end, err := calendar.ParseDate(to)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date (use YYYY-MM-DD)", err)
		return calendar.DateRange{}, false
	}

	period := calendar.NewRange(start, end)
	if err := period.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "to must not be before from", err)
		return calendar.DateRange{}, false
	}
	return period, true
}

func (h *Handler) toChargesDTO(c ratecard.Charges) ChargesDTO {
	return ChargesDTO{
		Days:           c.Days,
		Rental:         c.Rental.String(),
		RentalDisplay:  h.Formatter.Format(c.Rental),
		Deposit:        c.Deposit.String(),
		DepositDisplay: h.Formatter.Format(c.Deposit),
		LateFee:        c.LateFee.String(),
		LateFeeDisplay: h.Formatter.Format(c.LateFee),
		Total:          c.Total.String(),
		TotalDisplay:   h.Formatter.Format(c.Total),
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps domain errors onto HTTP statuses: conflicts and
// duplicate idempotency keys are 409, missing resources 404, other client
// errors 400, everything else 500.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingConflict):
		resp := ErrorResponse{Error: message, Code: "booking_conflict", Details: err.Error()}
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			resp.Details = map[string]string{
				"conflict_with": string(conflict.WithBookingID),
				"period":        conflict.Period.String(),
			}
		}
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, ledger.ErrDuplicateIdempotencyKey):
		writeError(w, http.StatusConflict, message, err)
	case booking.IsNotFound(err), errors.Is(err, ledger.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, message, err)
	case booking.IsClientError(err), ledger.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
