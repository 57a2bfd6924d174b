// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package solution_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/content/solution"
	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/internal/platform/pagecache"
)

type memoryRepository struct {
	byID   map[string]*solution.Solution
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byID: map[string]*solution.Solution{}}
}

func (m *memoryRepository) ListSolutions(_ context.Context, filter solution.Filter, limit, offset int) ([]*solution.Solution, int, error) {
	var out []*solution.Solution
	for _, s := range m.byID {
		if filter.Published != nil && s.IsPublished != *filter.Published {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		out = append(out, s)
	}
	return out, len(out), nil
}

func (m *memoryRepository) GetSolutionByID(_ context.Context, id string) (*solution.Solution, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return s, nil
}

func (m *memoryRepository) GetSolutionBySlug(_ context.Context, slug string, publishedOnly bool) (*solution.Solution, error) {
	for _, s := range m.byID {
		if s.Slug == slug && (!publishedOnly || s.IsPublished) {
			return s, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryRepository) CreateSolution(_ context.Context, s *solution.Solution) error {
	m.nextID++
	s.ID = string(rune('a' + m.nextID))
	clone := *s
	m.byID[s.ID] = &clone
	return nil
}

func (m *memoryRepository) UpdateSolution(_ context.Context, s *solution.Solution) error {
	if _, ok := m.byID[s.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *s
	m.byID[s.ID] = &clone
	return nil
}

func (m *memoryRepository) DeleteSolution(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) SetPublished(_ context.Context, id string, published bool) (*solution.Solution, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	s.IsPublished = published
	return s, nil
}

func newTestService(repo solution.Repository) *solution.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return solution.NewService(repo, pagecache.Noop{}, logger)
}

/*
TestCreateSolution_CategoryValidation verifies category must be one of the
two known values.
*/
func TestCreateSolution_CategoryValidation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		valid    bool
	}{
		{"industry", solution.CategoryIndustry, true},
		{"use_case", solution.CategoryUseCase, true},
		{"unknown", "vertical", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newMemoryRepository())

			err := service.CreateSolution(context.Background(), &solution.Solution{
				Title:    "Critical Infrastructure",
				Category: tt.category,
			}, "actor-1")

			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			}
		})
	}
}

/*
TestCreateSolution_BlockAlignment verifies content block alignment values
are restricted to left/right.
*/
func TestCreateSolution_BlockAlignment(t *testing.T) {
	service := newTestService(newMemoryRepository())

	err := service.CreateSolution(context.Background(), &solution.Solution{
		Title:    "Maritime Security",
		Category: solution.CategoryIndustry,
		ContentBlocks: []solution.Block{
			{Title: "Overview", Content: "...", Align: "center"},
		},
	}, "actor-1")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestSolution_AffectedPaths verifies the cache paths a solution declares.
*/
func TestSolution_AffectedPaths(t *testing.T) {
	s := &solution.Solution{Slug: "critical-infrastructure"}

	assert.Equal(t, []string{"/", "/solutions", "/solutions/critical-infrastructure"}, s.AffectedPaths())
}

/*
TestGetSolutionBySlug_PublishGate verifies drafts stay invisible to the
public lookup path.
*/
func TestGetSolutionBySlug_PublishGate(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	draft := &solution.Solution{Title: "Border Surveillance", Category: solution.CategoryUseCase}
	require.NoError(t, service.CreateSolution(context.Background(), draft, "actor-1"))

	_, err := service.GetSolutionBySlug(context.Background(), "border-surveillance", true)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	_, err = service.SetPublished(context.Background(), draft.ID, true)
	require.NoError(t, err)

	found, err := service.GetSolutionBySlug(context.Background(), "border-surveillance", true)
	require.NoError(t, err)
	assert.Equal(t, "Border Surveillance", found.Title)
}
