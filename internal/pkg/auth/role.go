package auth

import (
	"errors"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ErrForbidden reports a verified identity lacking the required role.
var ErrForbidden = errors.New("forbidden")

// RoleGate restricts operations to one privileged role.
type RoleGate struct {
	adminRoleID string
}

// NewRoleGate constructs RoleGate for the admin role id.
func NewRoleGate(adminRoleID string) *RoleGate {
	return &RoleGate{adminRoleID: adminRoleID}
}

// IsAdmin reports whether identity carries the admin role.
func (g *RoleGate) IsAdmin(identity *model.Identity) bool {
	return identity != nil && g.adminRoleID != "" && identity.RoleID == g.adminRoleID
}

// Authorize permits admins. A missing identity is an authentication failure, not a denial.
func (g *RoleGate) Authorize(identity *model.Identity) error {
	if identity == nil {
		return ErrInvalidToken
	}
	if !g.IsAdmin(identity) {
		return ErrForbidden
	}
	return nil
}
