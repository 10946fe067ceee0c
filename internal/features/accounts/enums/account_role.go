package accounts_enums

type AccountRole string

const (
	AccountRoleOwner  AccountRole = "owner"
	AccountRoleAdmin  AccountRole = "admin"
	AccountRoleMember AccountRole = "member"
	AccountRoleViewer AccountRole = "viewer"
)

// IsValid validates the AccountRole
func (r AccountRole) IsValid() bool {
	switch r {
	case AccountRoleOwner, AccountRoleAdmin, AccountRoleMember, AccountRoleViewer:
		return true
	default:
		return false
	}
}
