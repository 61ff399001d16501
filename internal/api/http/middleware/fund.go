package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo"
	entfund "github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	pasetotoken "github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/paseto"
)

const LocalsFundID = "fund_id"

// FundHeader reads the fund ID from the X-Fund-ID header (used for
// fund-scoped routes entered without a /funds/:id prefix). It validates the
// fund is active and that the caller's token was issued for that fund, so a
// stakeholder of one fund cannot aim requests at another.
func FundHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Fund-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Fund-ID header is required")
		}

		fundID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Fund-ID value")
		}

		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if claims.FundID != fundID {
			return fiber.ErrForbidden
		}

		exists, err := db.Fund.Query().
			Where(entfund.ID(fundID), entfund.IsActive(true)).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		c.Locals(LocalsFundID, fundID.String())
		return c.Next()
	}
}
