package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/query-service/internal/api/dto"
	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/repository"
	"github.com/spec-kit/query-service/internal/service"
	apperrors "github.com/spec-kit/query-service/pkg/util"
)

// QueriesHandler manages query lifecycle endpoints.
type QueriesHandler struct {
	service *service.QueryService
}

// NewQueriesHandler constructs handler.
func NewQueriesHandler(queryService *service.QueryService) *QueriesHandler {
	return &QueriesHandler{service: queryService}
}

// Create POST /api/queries.
func (h *QueriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	query, err := h.service.Create(c.UserContext(), service.CreateQueryInput{
		Channel:     req.Channel,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(querySummary(query))
}

// List GET /api/queries.
func (h *QueriesHandler) List(c *fiber.Ctx) error {
	queries, err := h.service.List(c.UserContext(), parseQueryFilter(c))
	if err != nil {
		return err
	}
	items := make([]dto.QuerySummary, 0, len(queries))
	for i := range queries {
		items = append(items, querySummary(&queries[i]))
	}
	return c.JSON(items)
}

// Get GET /api/queries/:id.
func (h *QueriesHandler) Get(c *fiber.Ctx) error {
	resolved, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(queryDetail(resolved))
}

// Update PUT /api/queries/:id.
func (h *QueriesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	resolved, err := h.service.Update(c.UserContext(), c.Params("id"), service.UpdateQueryInput{
		Status:         req.Status,
		AssignedTo:     req.AssignedTo,
		AssignedToName: req.AssignedToName,
		Note:           req.Note,
		PerformedBy:    req.PerformedBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(queryDetail(resolved))
}

// Delete DELETE /api/queries/:id.
func (h *QueriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Query deleted successfully"})
}

func parseQueryFilter(c *fiber.Ctx) repository.QueryFilter {
	filter := repository.QueryFilter{}
	if v := c.Query("status"); v != "" {
		status := domain.QueryStatus(v)
		filter.Status = &status
	}
	if v := c.Query("tag"); v != "" {
		tag := domain.QueryTag(v)
		filter.Tag = &tag
	}
	if v := c.Query("priority"); v != "" {
		priority := domain.QueryPriority(v)
		filter.Priority = &priority
	}
	if v := c.Query("channel"); v != "" {
		channel := domain.Channel(v)
		filter.Channel = &channel
	}
	if v := c.Query("assignedTo"); v != "" {
		assignedTo := v
		filter.AssignedTo = &assignedTo
	}
	return filter
}

func querySummary(query *domain.Query) dto.QuerySummary {
	return dto.QuerySummary{
		ID:             query.ID,
		Channel:        query.Channel,
		SenderName:     query.SenderName,
		SenderEmail:    query.SenderEmail,
		Subject:        query.Subject,
		Tag:            query.Tag,
		Priority:       query.Priority,
		Status:         query.Status,
		AssignedTo:     query.AssignedTo,
		AssignedToName: query.AssignedToName,
		CreatedAt:      query.CreatedAt,
		UpdatedAt:      query.UpdatedAt,
		ResolvedAt:     query.ResolvedAt,
		ResponseTime:   query.ResponseTime,
	}
}

func queryDetail(resolved *service.ResolvedQuery) dto.QueryDetailResponse {
	detail := dto.QueryDetailResponse{
		QuerySummary: querySummary(resolved.Query),
		Message:      resolved.Query.Message,
		History:      make([]dto.HistoryEntryResponse, 0, len(resolved.History)),
	}
	for _, entry := range resolved.History {
		detail.History = append(detail.History, dto.HistoryEntryResponse{
			Action:      entry.Action,
			PerformedBy: entry.PerformedBy,
			Note:        entry.Note,
			Timestamp:   entry.Timestamp,
		})
	}
	if resolved.Team != nil {
		detail.AssignedTeam = &dto.AssignedTeam{
			ID:         resolved.Team.ID,
			Name:       resolved.Team.Name,
			Department: resolved.Team.Department,
			Email:      resolved.Team.Email,
		}
	}
	return detail
}
