package models

type Role string

const RoleAdmin Role = "ADMIN"

// Operator is the authenticated caller of the admin API.
type Operator struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (o *Operator) IsAdmin() bool {
	return o.Role == RoleAdmin
}

func (o *Operator) CanReload() bool {
	return o.IsAdmin()
}
