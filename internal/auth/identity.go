package auth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/manthan270/hirelite/internal/model"
)

// IdentityProvider resolves a login request into a session identity. A real
// deployment would validate credentials against an upstream here; consumers
// only see the interface, so swapping one in touches nothing else.
type IdentityProvider interface {
	Authenticate(email, role string) (model.Session, error)
}

// MockIdentityProvider accepts any email and role pair. It is a demo
// stand-in, not an authentication boundary: any caller can assume any role.
type MockIdentityProvider struct{}

// Authenticate creates a fresh session for the given email and role. The
// display name is the email local-part.
func (MockIdentityProvider) Authenticate(email, role string) (model.Session, error) {
	if !model.ValidRole(role) {
		return model.Session{}, fmt.Errorf("role %q not allowed", role)
	}

	name, _, _ := strings.Cut(email, "@")
	if name == "" {
		name = "User"
	}

	return model.Session{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
