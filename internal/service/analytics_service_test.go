package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/query-service/internal/domain"
	apperrors "github.com/spec-kit/query-service/pkg/util"
)

func TestSummarizeEmptyStore(t *testing.T) {
	svc := NewAnalyticsService(&mockQueryRepo{})

	snapshot, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if snapshot.TotalQueries != 0 || snapshot.ResolvedQueries != 0 || snapshot.AvgResponseTime != 0 {
		t.Errorf("counts = (%d, %d, %d), want all zero", snapshot.TotalQueries, snapshot.ResolvedQueries, snapshot.AvgResponseTime)
	}
	if len(snapshot.QueryTypes) != len(domain.QueryTags()) {
		t.Errorf("queryTypes has %d keys, want %d", len(snapshot.QueryTypes), len(domain.QueryTags()))
	}
	if len(snapshot.StatusDistribution) != len(domain.QueryStatuses()) {
		t.Errorf("statusDistribution has %d keys, want %d", len(snapshot.StatusDistribution), len(domain.QueryStatuses()))
	}
	if len(snapshot.PriorityDistribution) != len(domain.QueryPriorities()) {
		t.Errorf("priorityDistribution has %d keys, want %d", len(snapshot.PriorityDistribution), len(domain.QueryPriorities()))
	}
	if len(snapshot.ChannelDistribution) != len(domain.Channels()) {
		t.Errorf("channelDistribution has %d keys, want %d", len(snapshot.ChannelDistribution), len(domain.Channels()))
	}
	for tag, v := range snapshot.ResponseTimeByTag {
		if v != 0 {
			t.Errorf("responseTimeByTag[%s] = %d, want 0", tag, v)
		}
	}
}

func TestSummarizePopulatedStore(t *testing.T) {
	repo := &mockQueryRepo{
		countAllFn: func(_ context.Context) (int, error) { return 10, nil },
		resolvedFn: func(_ context.Context) (int, error) { return 4, nil },
		byTagFn: func(_ context.Context) (map[domain.QueryTag]int, error) {
			return map[domain.QueryTag]int{domain.TagQuestion: 6, domain.TagComplaint: 4}, nil
		},
		byStatusFn: func(_ context.Context) (map[domain.QueryStatus]int, error) {
			return map[domain.QueryStatus]int{domain.StatusNew: 6, domain.StatusResolved: 3, domain.StatusClosed: 1}, nil
		},
		byPrioFn: func(_ context.Context) (map[domain.QueryPriority]int, error) {
			return map[domain.QueryPriority]int{domain.PriorityHigh: 4, domain.PriorityLow: 6}, nil
		},
		byChanFn: func(_ context.Context) (map[domain.Channel]int, error) {
			return map[domain.Channel]int{domain.ChannelEmail: 7, domain.ChannelChat: 3}, nil
		},
		avgFn: func(_ context.Context) (float64, int, error) { return 42.4, 4, nil },
		avgByTagFn: func(_ context.Context) (map[domain.QueryTag]float64, error) {
			return map[domain.QueryTag]float64{domain.TagComplaint: 12.5}, nil
		},
	}
	svc := NewAnalyticsService(repo)

	snapshot, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if snapshot.TotalQueries != 10 {
		t.Errorf("totalQueries = %d, want 10", snapshot.TotalQueries)
	}
	if snapshot.ResolvedQueries != 4 {
		t.Errorf("resolvedQueries = %d, want 4", snapshot.ResolvedQueries)
	}
	if snapshot.AvgResponseTime != 42 {
		t.Errorf("avgResponseTime = %d, want 42", snapshot.AvgResponseTime)
	}
	if snapshot.ResponseTimeByTag[domain.TagComplaint] != 13 {
		t.Errorf("responseTimeByTag[complaint] = %d, want 13", snapshot.ResponseTimeByTag[domain.TagComplaint])
	}
	if snapshot.ResponseTimeByTag[domain.TagRequest] != 0 {
		t.Errorf("responseTimeByTag[request] = %d, want 0", snapshot.ResponseTimeByTag[domain.TagRequest])
	}

	sum := 0
	for _, v := range snapshot.StatusDistribution {
		sum += v
	}
	if sum != snapshot.TotalQueries {
		t.Errorf("statusDistribution sums to %d, want totalQueries %d", sum, snapshot.TotalQueries)
	}
	sum = 0
	for _, v := range snapshot.QueryTypes {
		sum += v
	}
	if sum != snapshot.TotalQueries {
		t.Errorf("queryTypes sums to %d, want totalQueries %d", sum, snapshot.TotalQueries)
	}
	sum = 0
	for _, v := range snapshot.ChannelDistribution {
		sum += v
	}
	if sum != snapshot.TotalQueries {
		t.Errorf("channelDistribution sums to %d, want totalQueries %d", sum, snapshot.TotalQueries)
	}
}

func TestSummarizeFailsWholeCallOnSubQueryError(t *testing.T) {
	repo := &mockQueryRepo{
		countAllFn: func(_ context.Context) (int, error) { return 10, nil },
		byStatusFn: func(_ context.Context) (map[domain.QueryStatus]int, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewAnalyticsService(repo)

	snapshot, err := svc.Summarize(context.Background())
	if snapshot != nil {
		t.Error("snapshot must be nil on partial failure")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "STORE_FAILURE" {
		t.Fatalf("error = %v, want STORE_FAILURE", err)
	}
}
