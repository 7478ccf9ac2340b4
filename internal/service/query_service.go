package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/query-service/internal/classifier"
	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/events"
	"github.com/spec-kit/query-service/internal/repository"
	apperrors "github.com/spec-kit/query-service/pkg/util"
)

// QueryService coordinates the query lifecycle: creation with automatic
// classification, diff-based updates with an audit trail, and the one-time
// resolution latch.
type QueryService struct {
	queries    repository.QueryRepository
	history    repository.QueryHistoryRepository
	tx         repository.TxRunner
	directory  TeamDirectory
	classifier *classifier.Classifier
	dispatcher events.Dispatcher
	now        func() time.Time
}

// QueryDependencies bundles collaborators for the query service.
type QueryDependencies struct {
	QueryRepo   repository.QueryRepository
	HistoryRepo repository.QueryHistoryRepository
	// Tx scopes each query write and its history entry to one transaction.
	Tx         repository.TxRunner
	Directory  TeamDirectory
	Classifier *classifier.Classifier
	Dispatcher events.Dispatcher
	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// CreateQueryInput describes query creation payload.
type CreateQueryInput struct {
	Channel     domain.Channel
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// UpdateQueryInput describes a proposed lifecycle update. Nil fields are
// "not provided" and never diffed.
type UpdateQueryInput struct {
	Status         *domain.QueryStatus
	AssignedTo     *string
	AssignedToName *string
	Note           string
	PerformedBy    string
}

// ResolvedQuery is a query with its audit trail and the assignment reference
// expanded against the team directory. Team is nil when the query is
// unassigned or the referenced team no longer exists; AssignedToName on the
// query remains the authoritative snapshot in that case.
type ResolvedQuery struct {
	Query   *domain.Query
	History []domain.HistoryEntry
	Team    *domain.Team
}

// NewQueryService constructs the service.
func NewQueryService(deps QueryDependencies) *QueryService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &QueryService{
		queries:    deps.QueryRepo,
		history:    deps.HistoryRepo,
		tx:         deps.Tx,
		directory:  deps.Directory,
		classifier: deps.Classifier,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// Create validates, classifies and persists a new query with its genesis
// history entry.
func (s *QueryService) Create(ctx context.Context, input CreateQueryInput) (*domain.Query, error) {
	if !input.Channel.Valid() {
		return nil, apperrors.NewValidationError("channel must be one of email, social, chat, community", map[string]any{"channel": string(input.Channel)})
	}
	if strings.TrimSpace(input.Subject) == "" {
		return nil, apperrors.NewValidationError("subject required", nil)
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewValidationError("message required", nil)
	}

	tag, priority := s.classifier.Classify(input.Subject, input.Message)

	query := &domain.Query{
		Channel:     input.Channel,
		SenderName:  input.SenderName,
		SenderEmail: input.SenderEmail,
		Subject:     input.Subject,
		Message:     input.Message,
		Tag:         tag,
		Priority:    priority,
		Status:      domain.StatusNew,
	}
	if query.SenderName == "" {
		query.SenderName = "Anonymous"
	}

	performedBy := input.SenderName
	if performedBy == "" {
		performedBy = "System"
	}
	entry := &domain.HistoryEntry{
		Action:      "Query created",
		PerformedBy: performedBy,
		Note:        fmt.Sprintf("Auto-tagged as %s with %s priority", tag, priority),
	}

	// The record and its genesis history entry commit or roll back together.
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.queries.WithTx(tx).Insert(ctx, query); err != nil {
			return err
		}
		entry.QueryID = query.ID
		return s.history.WithTx(tx).Append(ctx, entry)
	})
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventQueryCreated,
		QueryID: query.ID,
		Actor:   performedBy,
		Payload: events.QueryCreatedPayload{
			Channel:  query.Channel,
			Tag:      query.Tag,
			Priority: query.Priority,
			Subject:  query.Subject,
		},
	})
	return query, nil
}

// Update applies a proposed change set to an existing query. Status is
// diffed and applied before assignment so that an explicitly requested
// status wins over the assignment auto-transition. All change descriptions
// collapse into a single history entry; a call that changes nothing appends
// no history but still persists to refresh the update timestamp.
func (s *QueryService) Update(ctx context.Context, id string, input UpdateQueryInput) (*ResolvedQuery, error) {
	query, err := s.queries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("query", map[string]any{"query_id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}

	var changes []string
	oldStatus := query.Status
	assigned := false

	if input.Status != nil && *input.Status != query.Status {
		if !validStatus(*input.Status) {
			return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": string(*input.Status)})
		}
		changes = append(changes, fmt.Sprintf("Status changed from %s to %s", query.Status, *input.Status))
		query.Status = *input.Status
	}

	// An empty assignment id means "not provided", never an unassignment.
	if input.AssignedTo != nil && *input.AssignedTo != "" {
		current := ""
		if query.AssignedTo != nil {
			current = *query.AssignedTo
		}
		if current != *input.AssignedTo {
			name := ""
			if input.AssignedToName != nil {
				name = *input.AssignedToName
			}
			display := name
			if display == "" {
				display = "team"
			}
			changes = append(changes, fmt.Sprintf("Assigned to %s", display))
			assignee := *input.AssignedTo
			query.AssignedTo = &assignee
			query.AssignedToName = name
			if query.Status == domain.StatusNew {
				query.Status = domain.StatusAssigned
			}
			assigned = true
		}
	}

	resolvedNow := false
	if query.Status == domain.StatusResolved && query.ResolvedAt == nil {
		now := s.now()
		query.ResolvedAt = &now
		query.ResponseTime = int(math.Round(now.Sub(query.CreatedAt).Minutes()))
		resolvedNow = true
	}

	performedBy := input.PerformedBy
	if performedBy == "" {
		performedBy = "System"
	}
	var entry *domain.HistoryEntry
	if len(changes) > 0 {
		entry = &domain.HistoryEntry{
			QueryID:     query.ID,
			Action:      strings.Join(changes, ", "),
			PerformedBy: performedBy,
			Note:        input.Note,
		}
	}

	// The row update and its consolidated history entry share a transaction;
	// a failed append must not leave an unaudited state change behind.
	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.queries.WithTx(tx).Update(ctx, query); err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		return s.history.WithTx(tx).Append(ctx, entry)
	})
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	if query.Status != oldStatus {
		s.publishEvent(ctx, events.Event{
			Type:    events.EventQueryStatusChanged,
			QueryID: query.ID,
			Actor:   performedBy,
			Payload: events.QueryStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: query.Status,
				Note:      input.Note,
			},
		})
	}
	if assigned {
		s.publishEvent(ctx, events.Event{
			Type:    events.EventQueryAssigned,
			QueryID: query.ID,
			Actor:   performedBy,
			Payload: events.QueryAssignedPayload{
				TeamID:   query.AssignedTo,
				TeamName: query.AssignedToName,
			},
		})
	}
	if resolvedNow {
		s.publishEvent(ctx, events.Event{
			Type:    events.EventQueryResolved,
			QueryID: query.ID,
			Actor:   performedBy,
			Payload: events.QueryResolvedPayload{
				ResponseTimeMinutes: query.ResponseTime,
			},
		})
	}

	return s.resolve(ctx, query)
}

// Get fetches a query with its history and expanded assignment.
func (s *QueryService) Get(ctx context.Context, id string) (*ResolvedQuery, error) {
	query, err := s.queries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("query", map[string]any{"query_id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}
	return s.resolve(ctx, query)
}

// List returns queries matching the filter, newest first. History is not
// loaded for list views.
func (s *QueryService) List(ctx context.Context, filter repository.QueryFilter) ([]domain.Query, error) {
	queries, err := s.queries.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return queries, nil
}

// Delete removes a query. A convenience for the presentation layer; the
// lifecycle itself never deletes.
func (s *QueryService) Delete(ctx context.Context, id string) error {
	query, err := s.queries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("query", map[string]any{"query_id": id})
		}
		return apperrors.NewStoreError(err)
	}
	ok, err := s.queries.Delete(ctx, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if !ok {
		return apperrors.NewNotFound("query", map[string]any{"query_id": id})
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventQueryDeleted,
		QueryID: id,
		Actor:   "System",
		Payload: events.QueryDeletedPayload{Subject: query.Subject},
	})
	return nil
}

func (s *QueryService) resolve(ctx context.Context, query *domain.Query) (*ResolvedQuery, error) {
	history, err := s.history.ListByQuery(ctx, query.ID)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	resolved := &ResolvedQuery{Query: query, History: history}
	if query.AssignedTo != nil && s.directory != nil {
		team, err := s.directory.Resolve(ctx, *query.AssignedTo)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		resolved.Team = team
	}
	return resolved, nil
}

func (s *QueryService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func validStatus(status domain.QueryStatus) bool {
	for _, candidate := range domain.QueryStatuses() {
		if candidate == status {
			return true
		}
	}
	return false
}
