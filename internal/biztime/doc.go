// Package biztime holds the business rules of the record service that do not depend on
// HTTP or the database:
//
//   - company codes are derived from the company name with Slugify
//   - invoice payment status changes go through ApplyPayment, which keeps paid and paid_date consistent
//   - DeletePolicy decides what happens to a company's invoices when the company is deleted
package biztime
