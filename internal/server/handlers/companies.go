package handlers

// companies.go implements the /companies endpoints

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/biztime"
	"github.com/biztime-dev/biztime/internal/database"
	"github.com/biztime-dev/biztime/internal/logger"
)

// CompanyHandler handles the /companies endpoints
type CompanyHandler struct {
	store database.Store

	// what happens to a company's invoices when the company is deleted
	deletePolicy biztime.DeletePolicy
}

// NewCompanyHandler creates a new handler for the company endpoints
func NewCompanyHandler(store database.Store, deletePolicy biztime.DeletePolicy) *CompanyHandler {
	return &CompanyHandler{
		store:        store,
		deletePolicy: deletePolicy,
	}
}

// HandleListCompanies godoc
//
//	@Summary	List companies
//	@Tags		Companies
//	@Produce	json
//	@Success	200	{object}	api.CompaniesResponse
//	@Failure	500	{object}	api.ErrorResponse	"Internal error"
//	@Router		/companies [get]
func (h *CompanyHandler) HandleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.store.ListCompanies(r.Context())
	if err != nil {
		api.RespondWithError(w, r, api.WrapInternalError(err, "failed to list companies"))
		return
	}

	resp := api.CompaniesResponse{Companies: make([]api.Company, 0, len(companies))}
	for _, c := range companies {
		resp.Companies = append(resp.Companies, companyToResponse(c))
	}

	api.RespondWithJSONPayload(w, http.StatusOK, resp)
}

// HandleGetCompany godoc
//
//	@Summary		Get a company
//	@Description	Returns the company together with the ids of its invoices (ordered by id).
//	@Tags			Companies
//	@Produce		json
//	@Param			code	path		string	true	"Company code"
//	@Success		200		{object}	api.CompanyDetailResponse
//	@Failure		404		{object}	api.ErrorResponse	"Company not found"
//	@Failure		500		{object}	api.ErrorResponse	"Internal error"
//	@Router			/companies/{code} [get]
func (h *CompanyHandler) HandleGetCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	var (
		company    database.Company
		invoiceIDs []int32
	)

	// read the company and its invoices from the same snapshot
	err := h.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		company, err = q.GetCompany(ctx, code)
		if err != nil {
			if database.IsNotFound(err) {
				return api.WrapNotFoundError(err, fmt.Sprintf("company %q not found", code))
			}
			return api.WrapInternalError(err, "failed to get company")
		}

		invoiceIDs, err = q.ListInvoiceIDsByCompany(ctx, code)
		if err != nil {
			return api.WrapInternalError(err, "failed to list company invoices")
		}
		return nil
	})
	if err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.CompanyDetailResponse{
		Company: api.CompanyDetail{
			Code:        company.Code,
			Name:        company.Name,
			Description: company.Description,
			Invoices:    invoiceIDs,
		},
	})
}

// HandleCreateCompany godoc
//
//	@Summary		Create a company
//	@Description	The company code is derived from the name (lowercase, accents removed, non alphanumeric runs replaced by "-").
//	@Description	A name that derives the same code as an existing company is rejected with 409.
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Param			company	body		api.CompanyRequest	true	"Company details"
//	@Success		201		{object}	api.CompanyResponse
//	@Failure		400		{object}	api.ErrorResponse	"Invalid request"
//	@Failure		409		{object}	api.ErrorResponse	"Company code already exists"
//	@Failure		500		{object}	api.ErrorResponse	"Internal error"
//	@Router			/companies [post]
func (h *CompanyHandler) HandleCreateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqLogger := logger.ContextRequestLogger(ctx)

	var req api.CompanyRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	code := biztime.Slugify(*req.Name)
	if code == "" {
		api.RespondWithError(w, r, api.NewValidationError("name must contain at least one letter or digit"))
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	company, err := h.store.CreateCompany(ctx, database.CreateCompanyParams{
		Code:        code,
		Name:        *req.Name,
		Description: description,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			api.RespondWithError(w, r, api.WrapConflictError(err, fmt.Sprintf("company %q already exists", code)))
			return
		}
		api.RespondWithError(w, r, api.WrapInternalError(err, "failed to create company"))
		return
	}

	logger.ContextWithLogAttrs(ctx, slog.String("company_code", company.Code))
	reqLogger.Info("company created", slog.String("company_code", company.Code))

	api.RespondWithJSONPayload(w, http.StatusCreated, api.CompanyResponse{Company: companyToResponse(company)})
}

// HandleUpdateCompany godoc
//
//	@Summary		Update a company
//	@Description	name is required. description is optional: when it is omitted the stored description is kept.
//	@Description	The company code never changes.
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string				true	"Company code"
//	@Param			company	body		api.CompanyRequest	true	"Company details"
//	@Success		200		{object}	api.CompanyResponse
//	@Failure		400		{object}	api.ErrorResponse	"Invalid request"
//	@Failure		404		{object}	api.ErrorResponse	"Company not found"
//	@Failure		500		{object}	api.ErrorResponse	"Internal error"
//	@Router			/companies/{code} [put]
func (h *CompanyHandler) HandleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	var req api.CompanyRequest
	if err := api.DecodeJSONBody(r, &req); err != nil {
		api.RespondWithError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	params := database.UpdateCompanyParams{
		Code: code,
		Name: *req.Name,
	}
	if req.Description != nil {
		params.Description = pgtype.Text{String: *req.Description, Valid: true}
	}

	company, err := h.store.UpdateCompany(ctx, params)
	if err != nil {
		if database.IsNotFound(err) {
			api.RespondWithError(w, r, api.WrapNotFoundError(err, fmt.Sprintf("company %q not found", code)))
			return
		}
		api.RespondWithError(w, r, api.WrapInternalError(err, "failed to update company"))
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, api.CompanyResponse{Company: companyToResponse(company)})
}

// HandleDeleteCompany godoc
//
//	@Summary		Delete a company
//	@Description	With COMPANY_DELETE_POLICY=restrict (the default) a company that still has invoices is not deleted and 409 is returned.
//	@Description	With COMPANY_DELETE_POLICY=cascade the company's invoices are deleted in the same transaction.
//	@Tags			Companies
//	@Produce		json
//	@Param			code	path		string	true	"Company code"
//	@Success		200		{object}	api.StatusResponse
//	@Failure		404		{object}	api.ErrorResponse	"Company not found"
//	@Failure		409		{object}	api.ErrorResponse	"Company has invoices"
//	@Failure		500		{object}	api.ErrorResponse	"Internal error"
//	@Router			/companies/{code} [delete]
func (h *CompanyHandler) HandleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqLogger := logger.ContextRequestLogger(ctx)
	code := chi.URLParam(r, "code")

	var deletedInvoices int64

	err := h.store.ExecTx(ctx, func(q database.Querier) error {
		// the row lock blocks invoice inserts for this company until the transaction ends
		if _, err := q.GetCompanyForUpdate(ctx, code); err != nil {
			if database.IsNotFound(err) {
				return api.WrapNotFoundError(err, fmt.Sprintf("company %q not found", code))
			}
			return api.WrapInternalError(err, "failed to get company")
		}

		switch h.deletePolicy {
		case biztime.DeleteCascade:
			n, err := q.DeleteInvoicesByCompany(ctx, code)
			if err != nil {
				return api.WrapInternalError(err, "failed to delete company invoices")
			}
			deletedInvoices = n
		default:
			count, err := q.CountInvoicesByCompany(ctx, code)
			if err != nil {
				return api.WrapInternalError(err, "failed to count company invoices")
			}
			if count > 0 {
				return api.NewConflictError(fmt.Sprintf("company %q has %d invoice(s) and cannot be deleted", code, count))
			}
		}

		if _, err := q.DeleteCompany(ctx, code); err != nil {
			if database.IsForeignKeyViolation(err) {
				return api.WrapConflictError(err, fmt.Sprintf("company %q has invoices and cannot be deleted", code))
			}
			return api.WrapInternalError(err, "failed to delete company")
		}
		return nil
	})
	if err != nil {
		api.RespondWithError(w, r, err)
		return
	}

	reqLogger.Info("company deleted",
		slog.String("company_code", code),
		slog.String("delete_policy", string(h.deletePolicy)),
		slog.Int64("deleted_invoices", deletedInvoices),
	)

	api.RespondWithJSONPayload(w, http.StatusOK, api.StatusResponse{Status: api.StatusDeleted})
}
