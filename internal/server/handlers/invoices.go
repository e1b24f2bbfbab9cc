package handlers

// invoices.go implements the /invoices endpoints

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/biztime"
	"github.com/biztime-dev/biztime/internal/database"
	"github.com/biztime-dev/biztime/internal/logger"
)

// InvoiceHandler handles the /invoices endpoints
type InvoiceHandler struct {
	store database.Store
}

// NewInvoiceHandler creates a new handler for the invoice endpoints.
func NewInvoiceHandler(store database.Store) *InvoiceHandler {
	return &InvoiceHandler{store: store}
}

// invoiceID parses the {id} path parameter.
// Ids that are not numeric cannot exist, so they are reported as not found.
func invoiceID(r *http.Request) (int32, error) {
	idStr := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		return 0, api.WrapNotFoundError(err, fmt.Sprintf("invoice %q not found", idStr))
	}
	return int32(id), nil
}

// HandleListInvoices godoc
//
//	@Summary	List invoices
//	@Tags		Invoices
//	@Produce	json
//	@Success	200	{object}	api.InvoicesResponse
//	@Failure	500	{object}	api.ErrorResponse	"Internal error"
//	@Router		/invoices [get]
func (h *InvoiceHandler) HandleListInvoices(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListInvoices(r.Context())
	if err != nil {
		api.RespondWithError(w, r, api.WrapInternalError(err, "failed to list invoices"))
		return
	}

	resp := api.InvoicesResponse{Invoices: make([]api.InvoiceSummary, 0, len(rows))}
	for _, row := range rows {
		resp.Invoices = append(resp.Invoices, api.InvoiceSummary{ID: row.ID, CompCode: row.CompCode})
	}

	api.RespondWithJSONPayload(w, http.StatusOK, resp)
}

// HandleGetInvoice godoc
//
//	@Summary	Get an invoice
//	@Tags		Invoices
//	@Produce	json
//	@Param		id	path		int	true	"Invoice id"
//	@Success	200	{object}	api.InvoiceDetailResponse
//	@Failure	404	{object}	api.ErrorResponse	"Invoice not found"
//	@Failure	500	{object}	api.ErrorResponse	"Internal error"
//	@Router		/invoices/{id} [get]
func (h *InvoiceHandler) HandleGetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	row, err := h.store.GetInvoiceWithCompany(r.Context(), id)
	if err != nil {
		if database.IsNotFound(err) {
			api.RespondWithError(w, r, api.WrapNotFoundError(err, fmt.Sprintf("invoice %d not found", id)))
			return
		}
		api.RespondWithError(w, r, api.WrapInternalError(err, "failed to get invoice"))
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.InvoiceDetailResponse{Invoice: invoiceDetailToResponse(row)})
}

// HandleCreateInvoice godoc
//
//	@Summary		Create an invoice
//	@Description	New invoices are unpaid and dated today.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			invoice	body		api.CreateInvoiceRequest	true	"Invoice details"
//	@Success		201		{object}	api.InvoiceResponse
//	@Failure		400		{object}	api.ErrorResponse	"Invalid request or unknown company"
//	@Failure		500		{object}	api.ErrorResponse	"Internal error"
//	@Router			/invoices [post]
func (h *InvoiceHandler) HandleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqLogger := logger.ContextRequestLogger(ctx)

	var req api.CreateInvoiceRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	compCode := strings.TrimSpace(*req.CompCode)

	invoice, err := h.store.CreateInvoice(ctx, database.CreateInvoiceParams{
		CompCode: compCode,
		Amt:      *req.Amt,
	})
	if err != nil {
		switch {
		case database.IsForeignKeyViolation(err):
			api.RespondWithError(w, r, api.WrapUnknownReferenceError(err, fmt.Sprintf("company %q not found", compCode)))
		case database.IsCheckViolation(err):
			api.RespondWithError(w, r, api.NewValidationError("amt must be greater than zero"))
		default:
			api.RespondWithError(w, r, api.WrapInternalError(err, "failed to create invoice"))
		}
		return
	}

	logger.ContextWithLogAttrs(ctx, slog.Int("invoice_id", int(invoice.ID)))
	reqLogger.Info("invoice created",
		slog.Int("invoice_id", int(invoice.ID)),
		slog.String("company_code", invoice.CompCode),
	)

	api.RespondWithJSONPayload(w, http.StatusCreated, api.InvoiceResponse{Invoice: invoiceToResponse(invoice)})
}

// HandleUpdateInvoice godoc
//
//	@Summary		Update an invoice
//	@Description	amt is required. paid is optional: when it is omitted the payment status is unchanged.
//	@Description	Paying an unpaid invoice sets paid_date to today, un-paying a paid invoice clears it,
//	@Description	and otherwise paid_date is left as it was.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Invoice id"
//	@Param			invoice	body		api.UpdateInvoiceRequest	true	"Invoice details"
//	@Success		200		{object}	api.InvoiceResponse
//	@Failure		400		{object}	api.ErrorResponse	"Invalid request"
//	@Failure		404		{object}	api.ErrorResponse	"Invoice not found"
//	@Failure		500		{object}	api.ErrorResponse	"Internal error"
//	@Router			/invoices/{id} [put]
func (h *InvoiceHandler) HandleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := invoiceID(r)
	if err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	var req api.UpdateInvoiceRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	var updated database.Invoice

	err = h.store.ExecTx(ctx, func(q database.Querier) error {
		current, err := q.GetInvoiceForUpdate(ctx, id)
		if err != nil {
			if database.IsNotFound(err) {
				return api.WrapNotFoundError(err, fmt.Sprintf("invoice %d not found", id))
			}
			return api.WrapInternalError(err, "failed to get invoice")
		}

		paid := current.Paid
		if req.Paid != nil {
			paid = *req.Paid
		}

		// paid_date uses the database clock, the same one that sets add_date
		var today time.Time
		if paid && !current.Paid {
			d, err := q.GetCurrentDate(ctx)
			if err != nil {
				return api.WrapInternalError(err, "failed to read the current date")
			}
			today = d.Time
		}
		next := biztime.ApplyPayment(paymentStateOf(current), paid, today)

		updated, err = q.UpdateInvoice(ctx, database.UpdateInvoiceParams{
			ID:       id,
			Amt:      *req.Amt,
			Paid:     next.Paid,
			PaidDate: pgDate(next.PaidDate),
		})
		if err != nil {
			if database.IsCheckViolation(err) {
				return api.NewValidationError("amt must be greater than zero")
			}
			return api.WrapInternalError(err, "failed to update invoice")
		}
		return nil
	})
	if err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.InvoiceResponse{Invoice: invoiceToResponse(updated)})
}

// HandleDeleteInvoice godoc
//
//	@Summary	Delete an invoice
//	@Tags		Invoices
//	@Produce	json
//	@Param		id	path		int	true	"Invoice id"
//	@Success	200	{object}	api.StatusResponse
//	@Failure	404	{object}	api.ErrorResponse	"Invoice not found"
//	@Failure	500	{object}	api.ErrorResponse	"Internal error"
//	@Router		/invoices/{id} [delete]
func (h *InvoiceHandler) HandleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	n, err := h.store.DeleteInvoice(r.Context(), id)
	if err != nil {
		api.RespondWithError(w, r, api.WrapInternalError(err, "failed to delete invoice"))
		return
	}
	if n == 0 {
		api.RespondWithError(w, r, api.NewNotFoundError(fmt.Sprintf("invoice %d not found", id)))
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.StatusResponse{Status: api.StatusDeleted})
}
