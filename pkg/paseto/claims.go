package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload. A portal token binds the
// stakeholder to one fund and one role within it.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	RoleID    uuid.UUID
	FundID    uuid.UUID
	SessionID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

func (c *Claims) GetUserID() uuid.UUID { return c.UserID }

func (c *Claims) GetRoleID() uuid.UUID { return c.RoleID }

func (c *Claims) GetFundID() uuid.UUID { return c.FundID }

func (c *Claims) GetSessionID() *uuid.UUID { return c.SessionID }

func (c *Claims) GetTokenType() string { return string(c.Type) }

func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
