package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/query-service/internal/api/dto"
	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/service"
	apperrors "github.com/spec-kit/query-service/pkg/util"
)

// TeamsHandler manages the assignment-target registry endpoints.
type TeamsHandler struct {
	service *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{service: teamService}
}

// Create POST /api/teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	team, err := h.service.Create(c.UserContext(), service.TeamInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(teamResponse(team))
}

// List GET /api/teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	teams, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, teamResponse(&teams[i]))
	}
	return c.JSON(items)
}

// Get GET /api/teams/:id.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	team, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(teamResponse(team))
}

// Update PUT /api/teams/:id.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	team, err := h.service.Update(c.UserContext(), c.Params("id"), service.TeamInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(teamResponse(team))
}

// Delete DELETE /api/teams/:id.
func (h *TeamsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Team deleted successfully"})
}

func teamResponse(team *domain.Team) dto.TeamResponse {
	return dto.TeamResponse{
		ID:         team.ID,
		Name:       team.Name,
		Email:      team.Email,
		Department: team.Department,
		CreatedAt:  team.CreatedAt,
		UpdatedAt:  team.UpdatedAt,
	}
}
