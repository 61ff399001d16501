package pasetotoken

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testManager(t *testing.T, mode Mode) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	if mode == ModePublic {
		keys = NewPublicKeys()
	}

	m, err := New(Config{
		Mode:      mode,
		Issuer:    "citadels",
		Audience:  "portal",
		AccessTTL: time.Minute,
	}, keys)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func testIdentity() Identity {
	sid := uuid.Must(uuid.NewV7())
	return Identity{
		UserID:    uuid.Must(uuid.NewV7()),
		RoleID:    uuid.Must(uuid.NewV7()),
		FundID:    uuid.Must(uuid.NewV7()),
		SessionID: &sid,
	}
}

func TestIssueAndVerify(t *testing.T) {
	for _, mode := range []Mode{ModeLocal, ModePublic} {
		t.Run(string(mode), func(t *testing.T) {
			m := testManager(t, mode)
			id := testIdentity()

			token, err := m.IssueAccess(id)
			if err != nil {
				t.Fatalf("IssueAccess() error = %v", err)
			}

			claims, err := m.Verify(token)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}

			if claims.Type != TokenTypeAccess {
				t.Errorf("Type = %q, want access", claims.Type)
			}
			if claims.UserID != id.UserID {
				t.Errorf("UserID = %s, want %s", claims.UserID, id.UserID)
			}
			if claims.RoleID != id.RoleID {
				t.Errorf("RoleID = %s, want %s", claims.RoleID, id.RoleID)
			}
			if claims.FundID != id.FundID {
				t.Errorf("FundID = %s, want %s", claims.FundID, id.FundID)
			}
			if claims.SessionID == nil || *claims.SessionID != *id.SessionID {
				t.Errorf("SessionID = %v, want %s", claims.SessionID, id.SessionID)
			}
			if claims.IsExpired() {
				t.Error("fresh token reported expired")
			}
		})
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	issuer := testManager(t, ModeLocal)
	verifier := testManager(t, ModeLocal) // different random key

	token, err := issuer.IssueAccess(testIdentity())
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	var invalid ErrInvalidToken
	if _, err := verifier.Verify(token); !errors.As(err, &invalid) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := testManager(t, ModeLocal)

	var invalid ErrInvalidToken
	if _, err := m.Verify("v4.local.not-a-token"); !errors.As(err, &invalid) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshTokenCarriesItsType(t *testing.T) {
	m := testManager(t, ModeLocal)

	token, err := m.IssueRefresh(testIdentity())
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}
	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want refresh", claims.Type)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	keys := NewLocalKeys()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"mode mismatch", Config{Mode: ModePublic, Issuer: "citadels", Audience: "portal"}},
		{"missing issuer", Config{Mode: ModeLocal, Audience: "portal"}},
		{"missing audience", Config{Mode: ModeLocal, Issuer: "citadels"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfgErr ErrConfig
			if _, err := New(tt.cfg, keys); !errors.As(err, &cfgErr) {
				t.Errorf("New() error = %v, want ErrConfig", err)
			}
		})
	}
}
