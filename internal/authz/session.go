package authz

import (
	"context"

	"vivere-estoque/pkg/constants"
	"vivere-estoque/pkg/contextkeys"
)

// Session is the authenticated identity, built once by the auth
// middleware from validated token claims and passed explicitly down to
// services. The zero Session is anonymous: both predicates are false.
type Session struct {
	UserID     uint64
	Perfil     string
	DepositoID *uint64
}

func (s Session) IsAdmin() bool {
	return s.Perfil == constants.PerfilAdministrador
}

func (s Session) IsGestor() bool {
	return s.Perfil == constants.PerfilGestor
}

// Warehouse returns the gestor's warehouse id, or 0 when the session
// has no warehouse binding (admin or anonymous).
func (s Session) Warehouse() uint64 {
	if s.DepositoID == nil {
		return 0
	}
	return *s.DepositoID
}

// WithSession stores the session in the request context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextkeys.SessionKey, s)
}

// FromContext recovers the session; the zero (anonymous) Session is
// returned when none was stored.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(contextkeys.SessionKey).(Session); ok {
		return s
	}
	return Session{}
}
