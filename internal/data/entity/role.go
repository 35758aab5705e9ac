package entity

// Role is resolved once from the identity token at request entry and passed
// explicitly into services. The numeric claim values come from the identity
// provider: 3 = manager, 4 = administrator.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleManager       Role = "manager"
	RoleAdministrator Role = "administrator"
)

const (
	statusClaimManager       = 3
	statusClaimAdministrator = 4
)

// RoleFromStatusClaim maps the identity provider's numeric status claim to a Role.
func RoleFromStatusClaim(status int) Role {
	switch status {
	case statusClaimManager:
		return RoleManager
	case statusClaimAdministrator:
		return RoleAdministrator
	default:
		return RoleCustomer
	}
}

func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdministrator
}
