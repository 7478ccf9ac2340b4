package service

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/repository"
	apperrors "github.com/spec-kit/query-service/pkg/util"
)

// AnalyticsService computes corpus-wide statistics. Snapshots are built
// fresh on every call; there is no caching layer.
type AnalyticsService struct {
	queries repository.QueryRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(queries repository.QueryRepository) *AnalyticsService {
	return &AnalyticsService{queries: queries}
}

// Summarize fans out the eight sub-aggregations concurrently and joins them
// into one snapshot. Any sub-query failure fails the whole call; callers
// never see a partially-populated snapshot.
func (s *AnalyticsService) Summarize(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	var (
		total      int
		resolved   int
		byTag      map[domain.QueryTag]int
		byStatus   map[domain.QueryStatus]int
		byPriority map[domain.QueryPriority]int
		byChannel  map[domain.Channel]int
		avg        float64
		avgCount   int
		avgByTag   map[domain.QueryTag]float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.queries.CountAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		resolved, err = s.queries.CountResolved(gctx)
		return err
	})
	g.Go(func() (err error) {
		byTag, err = s.queries.CountByTag(gctx)
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = s.queries.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		byPriority, err = s.queries.CountByPriority(gctx)
		return err
	})
	g.Go(func() (err error) {
		byChannel, err = s.queries.CountByChannel(gctx)
		return err
	})
	g.Go(func() (err error) {
		avg, avgCount, err = s.queries.AvgResponseTime(gctx)
		return err
	})
	g.Go(func() (err error) {
		avgByTag, err = s.queries.AvgResponseTimeByTag(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	snapshot := &domain.AnalyticsSnapshot{
		TotalQueries:         total,
		ResolvedQueries:      resolved,
		QueryTypes:           make(map[domain.QueryTag]int),
		StatusDistribution:   make(map[domain.QueryStatus]int),
		PriorityDistribution: make(map[domain.QueryPriority]int),
		ChannelDistribution:  make(map[domain.Channel]int),
		ResponseTimeByTag:    make(map[domain.QueryTag]int),
	}
	if avgCount > 0 {
		snapshot.AvgResponseTime = int(math.Round(avg))
	}
	for _, tag := range domain.QueryTags() {
		snapshot.QueryTypes[tag] = byTag[tag]
		if v, ok := avgByTag[tag]; ok {
			snapshot.ResponseTimeByTag[tag] = int(math.Round(v))
		} else {
			snapshot.ResponseTimeByTag[tag] = 0
		}
	}
	for _, status := range domain.QueryStatuses() {
		snapshot.StatusDistribution[status] = byStatus[status]
	}
	for _, priority := range domain.QueryPriorities() {
		snapshot.PriorityDistribution[priority] = byPriority[priority]
	}
	for _, channel := range domain.Channels() {
		snapshot.ChannelDistribution[channel] = byChannel[channel]
	}
	return snapshot, nil
}
