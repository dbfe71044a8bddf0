package test

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

// VerifierStub resolves tokens via function override or a fixed identity.
type VerifierStub struct {
	Identity *model.Identity
	Err      error
	VerifyFn func(context.Context, string) (*model.Identity, error)
}

// Verify either delegates to override or returns predefined result.
func (s VerifierStub) Verify(ctx context.Context, token string) (*model.Identity, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Identity != nil {
		return s.Identity, nil
	}
	return &model.Identity{UserID: "user-1"}, nil
}

// AuthFacadeStub simulates authentication and admin checks.
// Tokens named "admin" resolve to an admin identity unless AuthenticateFn is set.
type AuthFacadeStub struct {
	AuthenticateFn func(context.Context, string) (*model.Identity, error)
	AuthorizeFn    func(*model.Identity) error
}

// AdminRoleID is the role treated as admin by AuthFacadeStub.
const AdminRoleID = "role-admin"

// Authenticate returns identity for the supplied token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, token)
	}
	if token == "admin" {
		return &model.Identity{UserID: "admin-1", RoleID: AdminRoleID}, nil
	}
	return &model.Identity{UserID: "user-1"}, nil
}

// Authorize admits identities holding AdminRoleID.
func (s AuthFacadeStub) Authorize(identity *model.Identity) error {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(identity)
	}
	if identity == nil {
		return pkgAuth.ErrInvalidToken
	}
	if identity.RoleID != AdminRoleID {
		return pkgAuth.ErrForbidden
	}
	return nil
}

var _ pkgAuth.Verifier = VerifierStub{}
