package entstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo"
	entfund "github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/fund"
)

type FundStore struct {
	client *repo.Client
}

func NewFundStore(client *repo.Client) *FundStore {
	return &FundStore{client: client}
}

var _ fund.Store = (*FundStore)(nil)

func (s *FundStore) List(ctx context.Context) ([]fund.Fund, error) {
	rows, err := s.client.Fund.Query().
		Order(entfund.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}

	out := make([]fund.Fund, 0, len(rows))
	for _, f := range rows {
		out = append(out, toFund(f))
	}
	return out, nil
}

func (s *FundStore) Get(ctx context.Context, fundID uuid.UUID) (fund.Fund, error) {
	f, err := s.client.Fund.Get(ctx, fundID)
	if err != nil {
		if repo.IsNotFound(err) {
			return fund.Fund{}, fund.ErrFundNotFound
		}
		return fund.Fund{}, fmt.Errorf("get fund: %w", err)
	}
	return toFund(f), nil
}

func (s *FundStore) GetBySlug(ctx context.Context, slug string) (fund.Fund, error) {
	f, err := s.client.Fund.Query().
		Where(entfund.Slug(slug)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return fund.Fund{}, fund.ErrFundNotFound
		}
		return fund.Fund{}, fmt.Errorf("get fund by slug: %w", err)
	}
	return toFund(f), nil
}

func (s *FundStore) Create(ctx context.Context, f fund.Fund) (fund.Fund, error) {
	row, err := s.client.Fund.Create().
		SetName(f.Name).
		SetSlug(f.Slug).
		SetIsActive(f.IsActive).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return fund.Fund{}, fund.ErrSlugTaken
		}
		return fund.Fund{}, fmt.Errorf("create fund: %w", err)
	}
	return toFund(row), nil
}

func (s *FundStore) SetActive(ctx context.Context, fundID uuid.UUID, active bool) error {
	err := s.client.Fund.UpdateOneID(fundID).
		SetIsActive(active).
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return fund.ErrFundNotFound
		}
		return fmt.Errorf("set fund active: %w", err)
	}
	return nil
}

func toFund(f *repo.Fund) fund.Fund {
	return fund.Fund{
		ID:        f.ID,
		Name:      f.Name,
		Slug:      f.Slug,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
	}
}
