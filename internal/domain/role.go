package domain

// Role is the portal role asserted by the identity provider.
type Role string

const (
	RolePatient  Role = "patient"
	RoleDoctor   Role = "doctor"
	RoleOperator Role = "operator"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleOperator:
		return true
	}
	return false
}
