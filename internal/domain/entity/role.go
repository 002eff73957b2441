package entity

// Role is the coarse authorization label carried in token claims.
type Role string

const (
	RoleMentor Role = "ROLE_MENTOR"
	RoleMentee Role = "ROLE_MENTEE"
)

// RoleFor derives the role for a profile kind. The mapping is closed:
// there is no hierarchy and no additional grants. Callers that must not
// trust a token-time role can re-derive from stored state with this
// same function.
func RoleFor(kind ProfileKind) Role {
	if kind == ProfileMentor {
		return RoleMentor
	}
	return RoleMentee
}
