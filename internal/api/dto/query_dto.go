package dto

import (
	"time"

	"github.com/spec-kit/query-service/internal/domain"
)

// CreateQueryRequest payload.
type CreateQueryRequest struct {
	Channel     domain.Channel `json:"channel"`
	SenderName  string         `json:"senderName"`
	SenderEmail string         `json:"senderEmail"`
	Subject     string         `json:"subject"`
	Message     string         `json:"message"`
}

// UpdateQueryRequest payload. Pointer fields distinguish "absent" from
// zero values.
type UpdateQueryRequest struct {
	Status         *domain.QueryStatus `json:"status"`
	AssignedTo     *string             `json:"assignedTo"`
	AssignedToName *string             `json:"assignedToName"`
	Note           string              `json:"note"`
	PerformedBy    string              `json:"performedBy"`
}

// QuerySummary response, used for list views. History is omitted.
type QuerySummary struct {
	ID             string               `json:"id"`
	Channel        domain.Channel       `json:"channel"`
	SenderName     string               `json:"senderName"`
	SenderEmail    string               `json:"senderEmail"`
	Subject        string               `json:"subject"`
	Tag            domain.QueryTag      `json:"tag"`
	Priority       domain.QueryPriority `json:"priority"`
	Status         domain.QueryStatus   `json:"status"`
	AssignedTo     *string              `json:"assignedTo"`
	AssignedToName string               `json:"assignedToName"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	ResolvedAt     *time.Time           `json:"resolvedAt,omitempty"`
	ResponseTime   int                  `json:"responseTime"`
}

// QueryDetailResponse provides the full record with audit trail and the
// expanded assignment.
type QueryDetailResponse struct {
	QuerySummary
	Message      string                 `json:"message"`
	AssignedTeam *AssignedTeam          `json:"assignedTeam,omitempty"`
	History      []HistoryEntryResponse `json:"history"`
}

// AssignedTeam is the current directory record behind an assignment
// reference.
type AssignedTeam struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// HistoryEntryResponse represents one audit trail entry.
type HistoryEntryResponse struct {
	Action      string    `json:"action"`
	PerformedBy string    `json:"performedBy"`
	Note        string    `json:"note,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
