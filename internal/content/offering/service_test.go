// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package offering_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/content/offering"
	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/internal/platform/pagecache"
	"github.com/argusintel/argus/pkg/pointer"
	"github.com/argusintel/argus/pkg/pricing"
)

// memoryRepository is an in-memory Repository for service-level tests.
type memoryRepository struct {
	byID   map[string]*offering.Offering
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byID: map[string]*offering.Offering{}}
}

func (m *memoryRepository) ListOfferings(_ context.Context, filter offering.Filter, limit, offset int) ([]*offering.Offering, int, error) {
	var out []*offering.Offering
	for _, o := range m.byID {
		if filter.Published != nil && o.IsPublished != *filter.Published {
			continue
		}
		if filter.Category != "" && (o.Category == nil || *o.Category != filter.Category) {
			continue
		}
		out = append(out, o)
	}
	return out, len(out), nil
}

func (m *memoryRepository) GetOfferingByID(_ context.Context, id string) (*offering.Offering, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return o, nil
}

func (m *memoryRepository) GetOfferingBySlug(_ context.Context, slug string, publishedOnly bool) (*offering.Offering, error) {
	for _, o := range m.byID {
		if o.Slug == slug && (!publishedOnly || o.IsPublished) {
			return o, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryRepository) CreateOffering(_ context.Context, o *offering.Offering) error {
	m.nextID++
	o.ID = string(rune('a' + m.nextID))
	clone := *o
	m.byID[o.ID] = &clone
	return nil
}

func (m *memoryRepository) UpdateOffering(_ context.Context, o *offering.Offering) error {
	if _, ok := m.byID[o.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *o
	m.byID[o.ID] = &clone
	return nil
}

func (m *memoryRepository) DeleteOffering(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) SetPublished(_ context.Context, id string, published bool) (*offering.Offering, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	o.IsPublished = published
	return o, nil
}

func newTestService(repo offering.Repository) *offering.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return offering.NewService(repo, pagecache.Noop{}, logger)
}

/*
TestCreateOffering_SlugGeneration verifies the slug is derived from the
title on create and left untouched when the client supplies one.
*/
func TestCreateOffering_SlugGeneration(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		slug     string
		expected string
	}{
		{"generated_from_title", "Cognitive Surveillance!", "", "cognitive-surveillance"},
		{"collapses_whitespace", "  A/B   Testing ", "", "a-b-testing"},
		{"client_slug_kept", "Cognitive Surveillance!", "custom-slug", "custom-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newMemoryRepository())

			input := &offering.Offering{Title: tt.title, Slug: tt.slug}
			require.NoError(t, service.CreateOffering(context.Background(), input, "actor-1"))
			assert.Equal(t, tt.expected, input.Slug)
		})
	}
}

/*
TestCreateOffering_OptionalFieldsOmitted verifies that an offering with no
description or other optional fields is accepted and stored with nils, not
coerced to empty strings.
*/
func TestCreateOffering_OptionalFieldsOmitted(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	input := &offering.Offering{Title: "Threat Feeds"}
	require.NoError(t, service.CreateOffering(context.Background(), input, "actor-1"))

	stored, err := service.GetOffering(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Description)
	assert.Nil(t, stored.Subtitle)
	assert.Nil(t, stored.Category)
}

/*
TestUpdateOffering_SlugStable verifies that editing the title never
regenerates the slug, so published URLs stay stable.
*/
func TestUpdateOffering_SlugStable(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	created := &offering.Offering{Title: "Edge Sensing"}
	require.NoError(t, service.CreateOffering(context.Background(), created, "actor-1"))
	require.Equal(t, "edge-sensing", created.Slug)

	update := &offering.Offering{Title: "Edge Sensing Platform"}
	require.NoError(t, service.UpdateOffering(context.Background(), created.ID, update, "actor-2"))

	assert.Equal(t, "edge-sensing", update.Slug)
	assert.Equal(t, "Edge Sensing Platform", update.Title)
}

/*
TestCreateOffering_TierCap verifies that a fourth pricing tier is rejected
with a validation error.
*/
func TestCreateOffering_TierCap(t *testing.T) {
	service := newTestService(newMemoryRepository())

	tiers := make([]pricing.Tier, 4)
	for i := range tiers {
		tiers[i] = pricing.Tier{Name: "Tier", MonthlyPrice: pointer.To(100.0)}
	}

	err := service.CreateOffering(context.Background(), &offering.Offering{
		Title:        "Perimeter Intelligence",
		PricingTiers: tiers,
	}, "actor-1")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestCreateOffering_PricingNormalized verifies the stored tier triple is
recomputed server-side regardless of what the client submitted.
*/
func TestCreateOffering_PricingNormalized(t *testing.T) {
	service := newTestService(newMemoryRepository())

	input := &offering.Offering{
		Title: "Perimeter Intelligence",
		PricingTiers: []pricing.Tier{
			{
				Name:               "Essential",
				MonthlyPrice:       pointer.To(100.0),
				DiscountPercentage: pointer.To(20.0),
				AnnualPrice:        pointer.To(9999.0), // client-submitted garbage
			},
			{
				Name:          "Enterprise",
				CustomPricing: true,
				MonthlyPrice:  pointer.To(500.0),
			},
		},
	}

	require.NoError(t, service.CreateOffering(context.Background(), input, "actor-1"))

	essential := input.PricingTiers[0]
	require.NotNil(t, essential.AnnualPrice)
	assert.InDelta(t, 960.0, *essential.AnnualPrice, 0.001)

	enterprise := input.PricingTiers[1]
	assert.True(t, enterprise.CustomPricing)
	assert.Nil(t, enterprise.MonthlyPrice)
	assert.Nil(t, enterprise.AnnualPrice)
	assert.Nil(t, enterprise.DiscountPercentage)
}

/*
TestGetOfferingBySlug_PublishGate verifies that unpublished offerings are
invisible to anonymous lookups but visible to the admin surface.
*/
func TestGetOfferingBySlug_PublishGate(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	draft := &offering.Offering{Title: "Dark Web Monitoring", IsPublished: false}
	require.NoError(t, service.CreateOffering(context.Background(), draft, "actor-1"))

	_, err := service.GetOfferingBySlug(context.Background(), "dark-web-monitoring", true)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)

	found, err := service.GetOfferingBySlug(context.Background(), "dark-web-monitoring", false)
	require.NoError(t, err)
	assert.Equal(t, "Dark Web Monitoring", found.Title)
}

/*
TestListOfferings_PublishedFilter verifies the tri-state publish filter:
nil returns everything, true only published rows, false only drafts.
*/
func TestListOfferings_PublishedFilter(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	published := &offering.Offering{Title: "Visible", IsPublished: true, Category: pointer.To("monitoring")}
	hidden := &offering.Offering{Title: "Hidden", IsPublished: false}
	require.NoError(t, service.CreateOffering(context.Background(), published, "a"))
	require.NoError(t, service.CreateOffering(context.Background(), hidden, "a"))

	visible, total, err := service.ListOfferings(context.Background(), offering.Filter{Published: pointer.To(true)}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, visible, 1)
	assert.Equal(t, "Visible", visible[0].Title)

	drafts, total, err := service.ListOfferings(context.Background(), offering.Filter{Published: pointer.To(false)}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Hidden", drafts[0].Title)

	all, total, err := service.ListOfferings(context.Background(), offering.Filter{}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)
}
