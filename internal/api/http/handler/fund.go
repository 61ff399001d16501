package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/fund"
)

type FundHandler struct {
	svc fund.Service
}

func NewFundHandler(svc fund.Service) *FundHandler {
	return &FundHandler{svc: svc}
}

// GET /api/v1/funds
func (h *FundHandler) List(c fiber.Ctx) error {
	funds, err := h.svc.ListFunds(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, funds)
}

// GET /api/v1/funds/:id
func (h *FundHandler) Get(c fiber.Ctx) error {
	fundID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid fund id")
	}

	f, err := h.svc.GetFund(c.Context(), fundID)
	if err != nil {
		return mapFundError(c, err)
	}
	return ok(c, f)
}

// GET /api/v1/funds/slug/:slug
func (h *FundHandler) GetBySlug(c fiber.Ctx) error {
	f, err := h.svc.GetFundBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapFundError(c, err)
	}
	return ok(c, f)
}

// POST /api/v1/funds
func (h *FundHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	result, err := h.svc.CreateFund(c.Context(), fund.CreateFundRequest{
		Name: body.Name,
		Slug: body.Slug,
	})
	if err != nil {
		return mapFundError(c, err)
	}

	return created(c, result)
}

// DELETE /api/v1/funds/:id
func (h *FundHandler) Archive(c fiber.Ctx) error {
	fundID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid fund id")
	}

	if err := h.svc.ArchiveFund(c.Context(), fundID); err != nil {
		return mapFundError(c, err)
	}
	return noContent(c)
}

func mapFundError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, fund.ErrFundNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, fund.ErrSlugTaken):
		return conflict(c, err.Error())
	case errors.Is(err, fund.ErrInvalidName), errors.Is(err, fund.ErrInvalidSlug):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
