// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/FletchFFletchGT/sample-app/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateMicropost handles POST /api/microposts
func (s *Server) CreateMicropost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.micropostService.Create(c.Context(), userID, req.Content)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok {
			switch appErr.Code {
			case "VALIDATION_ERROR":
				return models.RespondWithError(c, fiber.StatusUnprocessableEntity, appErr)
			case "NOT_FOUND":
				return models.RespondWithError(c, fiber.StatusNotFound, appErr)
			}
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"micropost": post})
}

// DeleteMicropost handles DELETE /api/microposts/:id
func (s *Server) DeleteMicropost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.micropostService.Delete(c.Context(), userID, id); err != nil {
		if appErr, ok := err.(*models.AppError); ok {
			switch appErr.Code {
			case "NOT_FOUND":
				return models.RespondWithError(c, fiber.StatusNotFound, appErr)
			case "FORBIDDEN":
				return models.RespondWithError(c, fiber.StatusForbidden, appErr)
			}
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Micropost deleted"})
}

// GetUserMicroposts handles GET /api/users/:id/microposts (public)
func (s *Server) GetUserMicroposts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, s.config.PageSize)
	posts, err := s.micropostService.UserMicroposts(c.Context(), id, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	total, err := s.micropostService.CountByUser(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"microposts": posts,
		"total":      total,
		"limit":      p.Limit,
		"offset":     p.Offset,
	})
}

// GetFeed handles GET /api/feed. The feed merges the caller's own microposts
// with those of every user they follow, newest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	p := parsePagination(c, s.config.PageSize)
	posts, err := s.micropostService.Feed(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"feed":   posts,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}
