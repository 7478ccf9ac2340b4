package events

import (
	"time"

	"github.com/spec-kit/query-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventQueryCreated       EventType = "query_created"
	EventQueryStatusChanged EventType = "query_status_changed"
	EventQueryAssigned      EventType = "query_assigned"
	EventQueryResolved      EventType = "query_resolved"
	EventQueryDeleted       EventType = "query_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	QueryID   string      `json:"query_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// QueryCreatedPayload payload.
type QueryCreatedPayload struct {
	Channel  domain.Channel       `json:"channel"`
	Tag      domain.QueryTag      `json:"tag"`
	Priority domain.QueryPriority `json:"priority"`
	Subject  string               `json:"subject"`
}

// QueryStatusChangedPayload payload.
type QueryStatusChangedPayload struct {
	OldStatus domain.QueryStatus `json:"old_status"`
	NewStatus domain.QueryStatus `json:"new_status"`
	Note      string             `json:"note,omitempty"`
}

// QueryAssignedPayload payload.
type QueryAssignedPayload struct {
	TeamID   *string `json:"team_id,omitempty"`
	TeamName string  `json:"team_name"`
}

// QueryResolvedPayload payload.
type QueryResolvedPayload struct {
	ResponseTimeMinutes int `json:"response_time_minutes"`
}

// QueryDeletedPayload payload.
type QueryDeletedPayload struct {
	Subject string `json:"subject"`
}
