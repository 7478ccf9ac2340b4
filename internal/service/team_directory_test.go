package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/query-service/internal/domain"
)

type mockTeamRepo struct {
	getByIDFn func(ctx context.Context, id string) (*domain.Team, error)
}

func (m *mockTeamRepo) Create(ctx context.Context, team *domain.Team) error { return nil }
func (m *mockTeamRepo) Update(ctx context.Context, team *domain.Team) error { return nil }
func (m *mockTeamRepo) List(ctx context.Context) ([]domain.Team, error)     { return nil, nil }
func (m *mockTeamRepo) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

func (m *mockTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func TestTeamDirectoryResolve(t *testing.T) {
	directory := NewTeamDirectory(&mockTeamRepo{
		getByIDFn: func(_ context.Context, id string) (*domain.Team, error) {
			return &domain.Team{ID: id, Name: "Support"}, nil
		},
	}, nil, 0)

	team, err := directory.Resolve(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if team == nil || team.Name != "Support" {
		t.Errorf("team = %+v, want Support", team)
	}
}

func TestTeamDirectoryMissingTeamIsNotAnError(t *testing.T) {
	directory := NewTeamDirectory(&mockTeamRepo{}, nil, 0)

	team, err := directory.Resolve(context.Background(), "gone")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if team != nil {
		t.Errorf("team = %+v, want nil for a dangling reference", team)
	}
}

func TestTeamDirectoryPropagatesStoreFailure(t *testing.T) {
	directory := NewTeamDirectory(&mockTeamRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Team, error) {
			return nil, errors.New("connection reset")
		},
	}, nil, 0)

	if _, err := directory.Resolve(context.Background(), "team-1"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
