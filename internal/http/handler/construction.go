package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"constructdocs/internal/service"
)

type createConstructionRequest struct {
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
}

// CreateConstruction handles POST /constructions.
func CreateConstruction(svc service.ConstructionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createConstructionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		con, err := svc.Create(c.UserContext(), req.Name, req.ProjectID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(con)
	}
}

// GetConstruction handles GET /constructions/:id.
func GetConstruction(svc service.ConstructionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		con, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(con)
	}
}

// ListProjectConstructions handles GET /projects/:id/constructions.
func ListProjectConstructions(svc service.ConstructionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListByProject(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}
