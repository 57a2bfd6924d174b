// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package resource_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/content/resource"
	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/internal/platform/pagecache"
	"github.com/argusintel/argus/pkg/pointer"
)

type memoryRepository struct {
	byID   map[string]*resource.Resource
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byID: map[string]*resource.Resource{}}
}

func (m *memoryRepository) ListResources(_ context.Context, filter resource.Filter, limit, offset int) ([]*resource.Resource, int, error) {
	var out []*resource.Resource
	for _, r := range m.byID {
		if filter.Published != nil && r.IsPublished != *filter.Published {
			continue
		}
		if len(filter.Categories) > 0 && !slices.Contains(filter.Categories, r.Category) {
			continue
		}
		out = append(out, r)
	}
	return out, len(out), nil
}

func (m *memoryRepository) GetResourceByID(_ context.Context, id string) (*resource.Resource, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return r, nil
}

func (m *memoryRepository) GetResourceBySlug(_ context.Context, slug string, publishedOnly bool) (*resource.Resource, error) {
	for _, r := range m.byID {
		if r.Slug == slug && (!publishedOnly || r.IsPublished) {
			return r, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryRepository) CreateResource(_ context.Context, r *resource.Resource) error {
	m.nextID++
	r.ID = string(rune('a' + m.nextID))
	clone := *r
	m.byID[r.ID] = &clone
	return nil
}

func (m *memoryRepository) UpdateResource(_ context.Context, r *resource.Resource) error {
	if _, ok := m.byID[r.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *r
	m.byID[r.ID] = &clone
	return nil
}

func (m *memoryRepository) DeleteResource(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) SetPublished(_ context.Context, id string, published bool) (*resource.Resource, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	r.IsPublished = published
	if published && r.PublishedAt == nil {
		now := time.Now()
		r.PublishedAt = &now
	}
	return r, nil
}

func newTestService(repo resource.Repository) *resource.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return resource.NewService(repo, pagecache.Noop{}, logger)
}

/*
TestGetResourceDetail_RendersMarkdown verifies text blocks are rendered
to HTML while image and file blocks pass through as URLs.
*/
func TestGetResourceDetail_RendersMarkdown(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	input := &resource.Resource{
		Title:       "Threat Landscape 2026",
		Category:    resource.CategoryDocumentation,
		IsPublished: true,
		ContentBlocks: []resource.Block{
			{Type: resource.BlockText, Content: "# Findings\n\nSome **bold** analysis."},
			{Type: resource.BlockImage, Content: "https://cdn.argusintel.io/uploads/chart.png", Caption: "Incident volume"},
		},
	}
	require.NoError(t, service.CreateResource(context.Background(), input, "actor-1"))

	detail, err := service.GetResourceDetail(context.Background(), "threat-landscape-2026", true)
	require.NoError(t, err)
	require.Len(t, detail.Body, 2)

	assert.Equal(t, resource.BlockText, detail.Body[0].Type)
	assert.Contains(t, detail.Body[0].HTML, "<h1")
	assert.Contains(t, detail.Body[0].HTML, "<strong>bold</strong>")

	assert.Equal(t, resource.BlockImage, detail.Body[1].Type)
	assert.Equal(t, "https://cdn.argusintel.io/uploads/chart.png", detail.Body[1].URL)
	assert.Equal(t, "Incident volume", detail.Body[1].Caption)
}

/*
TestGetResourceDetail_ExternalLink verifies a redirect-card resource
exposes its link and renders no body.
*/
func TestGetResourceDetail_ExternalLink(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	input := &resource.Resource{
		Title:        "Partner Portal",
		Category:     resource.CategoryPartner,
		IsPublished:  true,
		ExternalLink: pointer.To("https://partners.example.com"),
		ContentBlocks: []resource.Block{
			{Type: resource.BlockText, Content: "ignored"},
		},
	}
	require.NoError(t, service.CreateResource(context.Background(), input, "actor-1"))

	detail, err := service.GetResourceDetail(context.Background(), "partner-portal", true)
	require.NoError(t, err)

	require.NotNil(t, detail.ExternalLink)
	assert.Equal(t, "https://partners.example.com", *detail.ExternalLink)
	assert.Empty(t, detail.Body)
}

/*
TestSetPublished_StampsFirstPublish verifies PublishedAt is set on the
first publish and survives an unpublish/re-publish cycle.
*/
func TestSetPublished_StampsFirstPublish(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	draft := &resource.Resource{Title: "Grant Report", Category: resource.CategoryGrant}
	require.NoError(t, service.CreateResource(context.Background(), draft, "actor-1"))
	require.Nil(t, draft.PublishedAt)

	published, err := service.SetPublished(context.Background(), draft.ID, true)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublish := *published.PublishedAt

	unpublished, err := service.SetPublished(context.Background(), draft.ID, false)
	require.NoError(t, err)
	require.NotNil(t, unpublished.PublishedAt)
	assert.Equal(t, firstPublish, *unpublished.PublishedAt)
}

/*
TestCreateResource_CategoryValidation verifies only known categories are
accepted.
*/
func TestCreateResource_CategoryValidation(t *testing.T) {
	service := newTestService(newMemoryRepository())

	err := service.CreateResource(context.Background(), &resource.Resource{
		Title:    "Misfiled",
		Category: "press-release",
	}, "actor-1")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
