package api

// api_types.go defines the request and response bodies of the companies and invoices endpoints.

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are JSON numbers on the wire (500, not "500")
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxAmount is the exclusive upper bound for invoice amounts (the amt column is numeric(12,2)).
var MaxAmount = decimal.New(1, 10)

// Date is a calendar date serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD". null is a no-op, as it is for time.Time.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// companies

// CompanyRequest is the body of POST /companies and PUT /companies/{code}.
type CompanyRequest struct {
	Name        *string `json:"name" example:"Springboard"`
	Description *string `json:"description,omitempty" example:"Coding"`
}

// Validate checks the required fields are present.
func (c CompanyRequest) Validate() error {
	if c.Name == nil || strings.TrimSpace(*c.Name) == "" {
		return NewValidationError("name is required")
	}
	return nil
}

// Company is a company without its invoices.
type Company struct {
	Code        string `json:"code" example:"springboard"`
	Name        string `json:"name" example:"Springboard"`
	Description string `json:"description" example:"Coding"`
}

// CompanyDetail is a company with the ids of its invoices.
type CompanyDetail struct {
	Code        string  `json:"code" example:"apple"`
	Name        string  `json:"name" example:"Apple Computer"`
	Description string  `json:"description" example:"Maker of OSX."`
	Invoices    []int32 `json:"invoices"`
}

// CompanyResponse wraps a single company.
type CompanyResponse struct {
	Company Company `json:"company"`
}

// CompanyDetailResponse wraps a single company with its invoices.
type CompanyDetailResponse struct {
	Company CompanyDetail `json:"company"`
}

// CompaniesResponse is the body of GET /companies.
type CompaniesResponse struct {
	Companies []Company `json:"companies"`
}

// invoices

// CreateInvoiceRequest is the body of POST /invoices.
type CreateInvoiceRequest struct {
	CompCode *string          `json:"comp_code" example:"ibm"`
	Amt      *decimal.Decimal `json:"amt" swaggertype:"number" example:"500"`
}

// Validate checks comp_code is present and amt is a positive amount.
func (c CreateInvoiceRequest) Validate() error {
	if c.CompCode == nil || strings.TrimSpace(*c.CompCode) == "" {
		return NewValidationError("comp_code is required")
	}
	return validateAmount(c.Amt)
}

// UpdateInvoiceRequest is the body of PUT /invoices/{id}.
// Paid is optional: when it is omitted the payment status is left unchanged.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" swaggertype:"number" example:"1000"`
	Paid *bool            `json:"paid,omitempty" example:"true"`
}

// Validate checks amt is a positive amount.
func (u UpdateInvoiceRequest) Validate() error {
	return validateAmount(u.Amt)
}

func validateAmount(amt *decimal.Decimal) error {
	if amt == nil {
		return NewValidationError("amt is required")
	}
	if !amt.IsPositive() {
		return NewValidationError("amt must be greater than zero")
	}
	if amt.GreaterThanOrEqual(MaxAmount) {
		return NewValidationError(fmt.Sprintf("amt must be less than %s", MaxAmount))
	}
	// the column would round anything finer than a cent
	if !amt.Equal(amt.Truncate(2)) {
		return NewValidationError("amt must have at most two decimal places")
	}
	return nil
}

// Invoice is a full invoice row.
type Invoice struct {
	ID       int32           `json:"id" example:"5"`
	CompCode string          `json:"comp_code" example:"ibm"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"number" example:"500"`
	Paid     bool            `json:"paid" example:"false"`
	AddDate  Date            `json:"add_date" swaggertype:"string" example:"2026-10-19"`
	PaidDate *Date           `json:"paid_date" swaggertype:"string" example:"2026-10-20"`
}

// InvoiceDetail is an invoice with the company it belongs to.
type InvoiceDetail struct {
	ID       int32           `json:"id" example:"1"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"number" example:"100"`
	Paid     bool            `json:"paid" example:"false"`
	AddDate  Date            `json:"add_date" swaggertype:"string" example:"2026-10-19"`
	PaidDate *Date           `json:"paid_date" swaggertype:"string"`
	Company  Company         `json:"company"`
}

// InvoiceSummary is the narrow projection returned by GET /invoices.
type InvoiceSummary struct {
	ID       int32  `json:"id" example:"1"`
	CompCode string `json:"comp_code" example:"apple"`
}

// InvoiceResponse wraps a single invoice.
type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

// InvoiceDetailResponse wraps a single invoice with its company.
type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}

// InvoicesResponse is the body of GET /invoices.
type InvoicesResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// StatusResponse is returned by the delete endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}

// StatusDeleted is the status returned after a successful delete.
const StatusDeleted = "deleted"
