//go:build integration

// functions that are useful in integration tests

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/database"
)

// seedData holds the ids of the invoices created by seed
type seedData struct {
	// apple invoices in creation order: 100, 200, 300 (paid)
	appleInvoices []int32
	ibmInvoice    int32
}

// seedPaidDate is the paid_date of the third apple invoice
var seedPaidDate = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

// seed creates two companies and four invoices:
//
//	apple  100  unpaid
//	apple  200  unpaid
//	apple  300  paid on 2018-01-01
//	ibm    400  unpaid
func (e *testEnv) seed(t *testing.T) seedData {
	t.Helper()

	ctx := context.Background()

	companies := []database.CreateCompanyParams{
		{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."},
		{Code: "ibm", Name: "IBM", Description: "Big blue."},
	}
	for _, c := range companies {
		if _, err := e.queries.CreateCompany(ctx, c); err != nil {
			t.Fatalf("Failed to create company %s: %v", c.Code, err)
		}
	}

	var data seedData
	for _, amt := range []int64{100, 200, 300} {
		inv := e.createInvoice(t, "apple", amt)
		data.appleInvoices = append(data.appleInvoices, inv.ID)
	}
	data.ibmInvoice = e.createInvoice(t, "ibm", 400).ID

	paid := data.appleInvoices[2]
	if _, err := e.queries.UpdateInvoice(ctx, database.UpdateInvoiceParams{
		ID:       paid,
		Amt:      decimal.NewFromInt(300),
		Paid:     true,
		PaidDate: pgtype.Date{Time: seedPaidDate, Valid: true},
	}); err != nil {
		t.Fatalf("Failed to mark invoice %d paid: %v", paid, err)
	}

	return data
}

func (e *testEnv) createInvoice(t *testing.T, compCode string, amt int64) database.Invoice {
	t.Helper()

	inv, err := e.queries.CreateInvoice(context.Background(), database.CreateInvoiceParams{
		CompCode: compCode,
		Amt:      decimal.NewFromInt(amt),
	})
	if err != nil {
		t.Fatalf("Failed to create invoice for %s: %v", compCode, err)
	}
	return inv
}

// doJSON sends a request to the test server with body encoded as JSON (nil for no body).
// The response body is decoded into out when out is not nil.
// Returns the response status code.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	return e.doRaw(t, method, path, reader, out)
}

// doRaw sends body unmodified, for requests that are not valid JSON
func (e *testEnv) doRaw(t *testing.T, method, path string, body io.Reader, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, e.baseURL+path, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("Failed to decode response (status %d): %v\n%s", resp.StatusCode, err, data)
		}
	}
	return resp.StatusCode
}

// expectError sends the request and checks the status and error code of the response
func (e *testEnv) expectError(t *testing.T, method, path string, body any, wantStatus int, wantCode api.ErrorCode) api.ErrorResponse {
	t.Helper()

	var errResp api.ErrorResponse
	status := e.doJSON(t, method, path, body, &errResp)
	if status != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d (%+v)", method, path, wantStatus, status, errResp.Error)
	}
	if errResp.Error.Code != wantCode {
		t.Errorf("%s %s: expected error code %q, got %q", method, path, wantCode, errResp.Error.Code)
	}
	if errResp.Error.RequestID == "" {
		t.Errorf("%s %s: expected a request_id in the error response", method, path)
	}
	return errResp
}

// countRows returns the number of rows in table
func (e *testEnv) countRows(t *testing.T, table string) int {
	t.Helper()

	var n int
	if err := e.pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
