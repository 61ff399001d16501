package fund

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Fund is a tenant. Every stakeholder role, grant and override hangs off
// exactly one fund.
type Fund struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Store signals misses with ErrFundNotFound and slug collisions with
// ErrSlugTaken. Other errors are storage failures.
type Store interface {
	List(ctx context.Context) ([]Fund, error)
	Get(ctx context.Context, fundID uuid.UUID) (Fund, error)
	GetBySlug(ctx context.Context, slug string) (Fund, error)
	Create(ctx context.Context, f Fund) (Fund, error)
	SetActive(ctx context.Context, fundID uuid.UUID, active bool) error
}
