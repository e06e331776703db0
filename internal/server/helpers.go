// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"

	"github.com/FletchFFletchGT/sample-app/internal/auth"
	"github.com/FletchFFletchGT/sample-app/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const maxPaginationLimit = 100

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// actorFromCtx resolves the authenticated caller set by AuthRequired into an
// authorization actor, including the admin flag from the store.
func (s *Server) actorFromCtx(c *fiber.Ctx) (auth.Actor, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return auth.Anonymous, nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return auth.Anonymous, err
	}
	return auth.Actor{ID: user.ID, Admin: user.Admin, Authenticated: true}, nil
}

// respondDecision writes the response for a denied authorization decision.
// Anonymous actors get 401 pointing at sign-in, known actors get 403 pointing
// home.
func respondDecision(c *fiber.Ctx, d auth.Decision) error {
	if d.Redirect == auth.RedirectSignIn {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError(d.Reason))
	}
	return models.RespondWithError(c, fiber.StatusForbidden,
		models.NewForbiddenError(d.Reason))
}
