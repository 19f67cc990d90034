package model

import (
	"errors"
	"fmt"
	"strings"
)

// Roles a session may carry.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// ErrInvalidSession is returned when a token payload does not carry the
// fields every session needs.
var ErrInvalidSession = errors.New("invalid session")

// TokenPayload is the decoded content of an access token.
type TokenPayload struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Validate checks that the payload is complete and names a known role.
func (p TokenPayload) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: missing id", ErrInvalidSession)
	case !KnownRole(p.Role):
		return fmt.Errorf("%w: unknown role %q", ErrInvalidSession, p.Role)
	case strings.TrimSpace(p.Token) == "":
		return fmt.Errorf("%w: missing token", ErrInvalidSession)
	}
	return nil
}

// KnownRole reports whether role is one of the roles sessions may carry.
func KnownRole(role string) bool {
	return role == RoleCustomer || role == RoleAdmin
}

// SessionUser is the user attached to an authenticated session.
type SessionUser struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Session is what handlers see for an authenticated request.
type Session struct {
	User SessionUser `json:"user"`
}

// NewSession validates p and builds the session around it.
func NewSession(p TokenPayload) (Session, error) {
	if err := p.Validate(); err != nil {
		return Session{}, err
	}
	return Session{User: SessionUser{ID: p.ID, Role: p.Role, Token: p.Token}}, nil
}
