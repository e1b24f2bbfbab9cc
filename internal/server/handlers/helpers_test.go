package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/biztime"
)

// dbToday is the date the mocked store reports for CURRENT_DATE
var dbToday = pgtype.Date{Time: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), Valid: true}

var (
	errUniqueViolation     = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	errForeignKeyViolation = &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	errCheckViolation      = &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}
)

func newTestRouter(store *mockStore, policy biztime.DeletePolicy) http.Handler {
	companies := NewCompanyHandler(store, policy)
	invoices := NewInvoiceHandler(store)

	r := chi.NewRouter()
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", companies.HandleListCompanies)
		r.Post("/", companies.HandleCreateCompany)
		r.Get("/{code}", companies.HandleGetCompany)
		r.Put("/{code}", companies.HandleUpdateCompany)
		r.Delete("/{code}", companies.HandleDeleteCompany)
	})
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", invoices.HandleListInvoices)
		r.Post("/", invoices.HandleCreateInvoice)
		r.Get("/{id}", invoices.HandleGetInvoice)
		r.Put("/{id}", invoices.HandleUpdateInvoice)
		r.Delete("/{id}", invoices.HandleDeleteInvoice)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) api.ErrorDetail {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	require.Equal(t, rr.Code, resp.Error.Status)
	return resp.Error
}

func date(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}
