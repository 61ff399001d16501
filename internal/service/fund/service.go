package fund

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateFundRequest struct {
	Name string
	Slug string // optional, derived from Name when empty
}

// CreateFundResult carries the new fund together with the system roles
// provisioned for it.
type CreateFundResult struct {
	Fund  Fund              `json:"fund"`
	Roles []permission.Role `json:"roles"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	ListFunds(ctx context.Context) ([]Fund, error)
	GetFund(ctx context.Context, fundID uuid.UUID) (Fund, error)
	GetFundBySlug(ctx context.Context, slug string) (Fund, error)

	// CreateFund creates the fund and provisions its system roles in one
	// call. Provisioning is idempotent, so a retry after a partial failure
	// completes the remaining roles.
	CreateFund(ctx context.Context, req CreateFundRequest) (CreateFundResult, error)

	ArchiveFund(ctx context.Context, fundID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type fundService struct {
	store Store
	perms permission.Service
}

func NewService(store Store, perms permission.Service) Service {
	return &fundService{store: store, perms: perms}
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func (s *fundService) ListFunds(ctx context.Context) ([]Fund, error) {
	return s.store.List(ctx)
}

func (s *fundService) GetFund(ctx context.Context, fundID uuid.UUID) (Fund, error) {
	return s.store.Get(ctx, fundID)
}

func (s *fundService) GetFundBySlug(ctx context.Context, slug string) (Fund, error) {
	return s.store.GetBySlug(ctx, slug)
}

func (s *fundService) CreateFund(ctx context.Context, req CreateFundRequest) (CreateFundResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CreateFundResult{}, ErrInvalidName
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if !slugRe.MatchString(slug) {
		return CreateFundResult{}, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	created, err := s.store.Create(ctx, Fund{
		Name:     name,
		Slug:     slug,
		IsActive: true,
	})
	if err != nil {
		return CreateFundResult{}, fmt.Errorf("create fund: %w", err)
	}

	roles, err := s.perms.InitializeRolesForFund(ctx, created.ID)
	if err != nil {
		return CreateFundResult{}, fmt.Errorf("provision roles for fund %s: %w", created.ID, err)
	}

	slog.Info("fund created", "fund_id", created.ID, "slug", created.Slug, "roles", len(roles))
	return CreateFundResult{Fund: created, Roles: roles}, nil
}

func (s *fundService) ArchiveFund(ctx context.Context, fundID uuid.UUID) error {
	f, err := s.store.Get(ctx, fundID)
	if err != nil {
		return err
	}
	if !f.IsActive {
		return nil
	}
	return s.store.SetActive(ctx, fundID, false)
}

// Slugify lowercases the name and collapses runs of non-alphanumerics into
// single dashes.
func Slugify(name string) string {
	var sb strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
