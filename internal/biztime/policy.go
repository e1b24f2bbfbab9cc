package biztime

import "fmt"

// DeletePolicy controls what happens to a company's invoices when the company is deleted.
type DeletePolicy string

const (
	// DeleteRestrict refuses to delete a company that still has invoices.
	DeleteRestrict DeletePolicy = "restrict"

	// DeleteCascade deletes the company's invoices together with the company.
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy validates a COMPANY_DELETE_POLICY value.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case DeleteRestrict, DeleteCascade:
		return DeletePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown delete policy %q (use %q or %q)", s, DeleteRestrict, DeleteCascade)
	}
}
