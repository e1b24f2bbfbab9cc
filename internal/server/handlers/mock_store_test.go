package handlers

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"

	"github.com/biztime-dev/biztime/internal/database"
)

// mockStore is a testify mock of database.Store.
// ExecTx runs the callback against the same mock, so the queries made inside a transaction
// are set up with On() like any other call.
type mockStore struct {
	mock.Mock
}

var _ database.Store = (*mockStore)(nil)

func (m *mockStore) ExecTx(ctx context.Context, fn func(q database.Querier) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *mockStore) CountInvoicesByCompany(ctx context.Context, compCode string) (int64, error) {
	args := m.Called(ctx, compCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) GetCurrentDate(ctx context.Context) (pgtype.Date, error) {
	args := m.Called(ctx)
	return args.Get(0).(pgtype.Date), args.Error(1)
}

func (m *mockStore) CreateCompany(ctx context.Context, arg database.CreateCompanyParams) (database.Company, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Company), args.Error(1)
}

func (m *mockStore) CreateInvoice(ctx context.Context, arg database.CreateInvoiceParams) (database.Invoice, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Invoice), args.Error(1)
}

func (m *mockStore) DeleteCompany(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) DeleteInvoice(ctx context.Context, id int32) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) DeleteInvoicesByCompany(ctx context.Context, compCode string) (int64, error) {
	args := m.Called(ctx, compCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) GetCompany(ctx context.Context, code string) (database.Company, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(database.Company), args.Error(1)
}

func (m *mockStore) GetCompanyForUpdate(ctx context.Context, code string) (database.Company, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(database.Company), args.Error(1)
}

func (m *mockStore) GetInvoiceForUpdate(ctx context.Context, id int32) (database.Invoice, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(database.Invoice), args.Error(1)
}

func (m *mockStore) GetInvoiceWithCompany(ctx context.Context, id int32) (database.GetInvoiceWithCompanyRow, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(database.GetInvoiceWithCompanyRow), args.Error(1)
}

func (m *mockStore) IsDatabaseRunning(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) ListCompanies(ctx context.Context) ([]database.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Company), args.Error(1)
}

func (m *mockStore) ListInvoiceIDsByCompany(ctx context.Context, compCode string) ([]int32, error) {
	args := m.Called(ctx, compCode)
	return args.Get(0).([]int32), args.Error(1)
}

func (m *mockStore) ListInvoices(ctx context.Context) ([]database.ListInvoicesRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.ListInvoicesRow), args.Error(1)
}

func (m *mockStore) UpdateCompany(ctx context.Context, arg database.UpdateCompanyParams) (database.Company, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Company), args.Error(1)
}

func (m *mockStore) UpdateInvoice(ctx context.Context, arg database.UpdateInvoiceParams) (database.Invoice, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Invoice), args.Error(1)
}
