package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Role is one of the coarse roles carried by an authenticated identity.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleClient Role = "Client"
	RoleTeam   Role = "TeamMember"
)

// Identity is the resolved caller of an operation. It is produced by the
// authentication layer; the core never issues or refreshes tokens.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Roles  []Role
}

// HasRole reports whether the identity carries role r.
func (i Identity) HasRole(r Role) bool {
	return slices.Contains(i.Roles, r)
}

func (i Identity) IsAdmin() bool { return i.HasRole(RoleAdmin) }
