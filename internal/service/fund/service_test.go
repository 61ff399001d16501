package fund_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/store/memstore"
)

func newFundService(t *testing.T) (fund.Service, *memstore.Store) {
	t.Helper()
	st := memstore.New()
	perms := permission.NewService(st.Roles(), st.Grants(), st.Overrides(), nil)
	return fund.NewService(st.Funds(), perms), st
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Citadel Growth Fund", "citadel-growth-fund"},
		{"punctuation collapses", "Citadel Growth Fund II (2026)!", "citadel-growth-fund-ii-2026"},
		{"already a slug", "citadel-iii", "citadel-iii"},
		{"leading and trailing noise", "  --Fund One--  ", "fund-one"},
		{"unicode stripped", "Fonds Münchén", "fonds-m-nch-n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fund.Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateFundProvisionsRoles(t *testing.T) {
	svc, st := newFundService(t)
	ctx := context.Background()

	res, err := svc.CreateFund(ctx, fund.CreateFundRequest{Name: "Harbor Point RE Fund"})
	if err != nil {
		t.Fatalf("CreateFund() error = %v", err)
	}

	if res.Fund.Slug != "harbor-point-re-fund" {
		t.Errorf("Slug = %q, want derived slug", res.Fund.Slug)
	}
	if !res.Fund.IsActive {
		t.Error("new fund should be active")
	}
	if len(res.Roles) != len(permission.SystemRoleTypes) {
		t.Fatalf("provisioned %d roles, want %d", len(res.Roles), len(permission.SystemRoleTypes))
	}

	roles, err := st.Roles().ListByFund(ctx, res.Fund.ID)
	if err != nil {
		t.Fatalf("ListByFund() error = %v", err)
	}
	if len(roles) != len(permission.SystemRoleTypes) {
		t.Errorf("store holds %d roles, want %d", len(roles), len(permission.SystemRoleTypes))
	}

	got, err := svc.GetFundBySlug(ctx, res.Fund.Slug)
	if err != nil {
		t.Fatalf("GetFundBySlug() error = %v", err)
	}
	if got.ID != res.Fund.ID {
		t.Errorf("GetFundBySlug() ID = %s, want %s", got.ID, res.Fund.ID)
	}
}

func TestCreateFundValidation(t *testing.T) {
	svc, _ := newFundService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     fund.CreateFundRequest
		wantErr error
	}{
		{"blank name", fund.CreateFundRequest{Name: "   "}, fund.ErrInvalidName},
		{"bad explicit slug", fund.CreateFundRequest{Name: "Fund", Slug: "Has Spaces"}, fund.ErrInvalidSlug},
		{"dashes only slug", fund.CreateFundRequest{Name: "Fund", Slug: "--"}, fund.ErrInvalidSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateFund(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateFund() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateFundSlugCollision(t *testing.T) {
	svc, _ := newFundService(t)
	ctx := context.Background()

	if _, err := svc.CreateFund(ctx, fund.CreateFundRequest{Name: "Summit Fund"}); err != nil {
		t.Fatalf("CreateFund() error = %v", err)
	}
	_, err := svc.CreateFund(ctx, fund.CreateFundRequest{Name: "SUMMIT fund"})
	if !errors.Is(err, fund.ErrSlugTaken) {
		t.Errorf("CreateFund() duplicate slug error = %v, want ErrSlugTaken", err)
	}
}

func TestArchiveFund(t *testing.T) {
	svc, _ := newFundService(t)
	ctx := context.Background()

	res, err := svc.CreateFund(ctx, fund.CreateFundRequest{Name: "Sunset Fund"})
	if err != nil {
		t.Fatalf("CreateFund() error = %v", err)
	}

	if err := svc.ArchiveFund(ctx, res.Fund.ID); err != nil {
		t.Fatalf("ArchiveFund() error = %v", err)
	}
	got, err := svc.GetFund(ctx, res.Fund.ID)
	if err != nil {
		t.Fatalf("GetFund() error = %v", err)
	}
	if got.IsActive {
		t.Error("archived fund should be inactive")
	}

	// Archiving twice is a no-op.
	if err := svc.ArchiveFund(ctx, res.Fund.ID); err != nil {
		t.Errorf("ArchiveFund() second call error = %v", err)
	}

	if err := svc.ArchiveFund(ctx, uuid.Must(uuid.NewV7())); !errors.Is(err, fund.ErrFundNotFound) {
		t.Errorf("ArchiveFund() missing fund error = %v, want ErrFundNotFound", err)
	}
}
