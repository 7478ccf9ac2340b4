package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/persistence"
	"github.com/spec-kit/query-service/internal/repository"
)

// TeamDirectory resolves an assignment reference to the current team record.
// A reference that no longer resolves yields (nil, nil); the stored name
// snapshot on the query covers that case.
type TeamDirectory interface {
	Resolve(ctx context.Context, id string) (*domain.Team, error)
}

type cachedTeamDirectory struct {
	teams repository.TeamRepository
	cache *persistence.Redis
	ttl   time.Duration
}

// NewTeamDirectory builds a directory over the team repository, fronted by a
// short-TTL redis cache. Lookups are stale-tolerant: a cached name may lag a
// rename by up to the TTL. Cache failures fall through to the repository.
func NewTeamDirectory(teams repository.TeamRepository, cache *persistence.Redis, ttl time.Duration) TeamDirectory {
	return &cachedTeamDirectory{teams: teams, cache: cache, ttl: ttl}
}

func (d *cachedTeamDirectory) Resolve(ctx context.Context, id string) (*domain.Team, error) {
	if team := d.fromCache(ctx, id); team != nil {
		return team, nil
	}

	team, err := d.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	d.store(ctx, team)
	return team, nil
}

func (d *cachedTeamDirectory) fromCache(ctx context.Context, id string) *domain.Team {
	if d.cache == nil || d.cache.Client == nil || d.ttl <= 0 {
		return nil
	}
	raw, err := d.cache.Client.Get(ctx, cacheKey(id)).Result()
	if err != nil {
		// cache miss and cache trouble look the same to callers
		return nil
	}
	var team domain.Team
	if err := json.Unmarshal([]byte(raw), &team); err != nil {
		return nil
	}
	return &team
}

func (d *cachedTeamDirectory) store(ctx context.Context, team *domain.Team) {
	if d.cache == nil || d.cache.Client == nil || d.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(team)
	if err != nil {
		return
	}
	_ = d.cache.Client.Set(ctx, cacheKey(team.ID), raw, d.ttl).Err()
}

func cacheKey(id string) string {
	return "team:" + id
}
