package handlers

// convert.go maps database rows to API response bodies

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/biztime"
	"github.com/biztime-dev/biztime/internal/database"
)

func companyToResponse(c database.Company) api.Company {
	return api.Company{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func invoiceToResponse(i database.Invoice) api.Invoice {
	return api.Invoice{
		ID:       i.ID,
		CompCode: i.CompCode,
		Amt:      i.Amt,
		Paid:     i.Paid,
		AddDate:  api.NewDate(i.AddDate.Time),
		PaidDate: optionalDate(i.PaidDate),
	}
}

func invoiceDetailToResponse(row database.GetInvoiceWithCompanyRow) api.InvoiceDetail {
	return api.InvoiceDetail{
		ID:       row.ID,
		Amt:      row.Amt,
		Paid:     row.Paid,
		AddDate:  api.NewDate(row.AddDate.Time),
		PaidDate: optionalDate(row.PaidDate),
		Company: api.Company{
			Code:        row.CompCode,
			Name:        row.CompanyName,
			Description: row.CompanyDescription,
		},
	}
}

// optionalDate returns nil for a NULL date so it is serialized as JSON null
func optionalDate(d pgtype.Date) *api.Date {
	if !d.Valid {
		return nil
	}
	date := api.NewDate(d.Time)
	return &date
}

func paymentStateOf(i database.Invoice) biztime.PaymentState {
	state := biztime.PaymentState{Paid: i.Paid}
	if i.PaidDate.Valid {
		t := i.PaidDate.Time
		state.PaidDate = &t
	}
	return state
}

func pgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
