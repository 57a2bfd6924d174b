// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package faq_test

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/content/faq"
	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/internal/platform/pagecache"
)

type memoryRepository struct {
	byID   map[string]*faq.FAQ
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byID: map[string]*faq.FAQ{}}
}

func (m *memoryRepository) ListFAQs(_ context.Context, publishedOnly bool) ([]*faq.FAQ, error) {
	var out []*faq.FAQ
	for _, f := range m.byID {
		if publishedOnly && !f.IsPublished {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (m *memoryRepository) GetFAQByID(_ context.Context, id string) (*faq.FAQ, error) {
	f, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return f, nil
}

func (m *memoryRepository) CreateFAQ(_ context.Context, f *faq.FAQ) error {
	m.nextID++
	f.ID = "faq-" + strconv.Itoa(m.nextID)
	clone := *f
	m.byID[f.ID] = &clone
	return nil
}

func (m *memoryRepository) UpdateFAQ(_ context.Context, f *faq.FAQ) error {
	if _, ok := m.byID[f.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *f
	m.byID[f.ID] = &clone
	return nil
}

func (m *memoryRepository) DeleteFAQ(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) Reorder(_ context.Context, orderedIDs []string) error {
	for position, id := range orderedIDs {
		if f, ok := m.byID[id]; ok {
			f.SortOrder = position
		}
	}
	return nil
}

func newTestService(repo faq.Repository) *faq.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return faq.NewService(repo, pagecache.Noop{}, logger)
}

/*
TestCreateFAQ_Validation verifies required fields and the question length
cap.
*/
func TestCreateFAQ_Validation(t *testing.T) {
	longQuestion := make([]byte, 501)
	for i := range longQuestion {
		longQuestion[i] = 'q'
	}

	tests := []struct {
		name     string
		question string
		answer   string
	}{
		{"missing_question", "", "An answer."},
		{"missing_answer", "A question?", ""},
		{"question_too_long", string(longQuestion), "An answer."},
	}

	service := newTestService(newMemoryRepository())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateFAQ(context.Background(), &faq.FAQ{Question: tt.question, Answer: tt.answer})
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestReorder verifies sort orders are rewritten to match the submitted ID
sequence and that an empty sequence is rejected.
*/
func TestReorder(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	first := &faq.FAQ{Question: "What does Argus monitor?", Answer: "Everything you point it at."}
	second := &faq.FAQ{Question: "Is there a free tier?", Answer: "Yes."}
	third := &faq.FAQ{Question: "How is data stored?", Answer: "Encrypted at rest."}
	for _, f := range []*faq.FAQ{first, second, third} {
		require.NoError(t, service.CreateFAQ(context.Background(), f))
	}

	require.NoError(t, service.Reorder(context.Background(), []string{third.ID, first.ID, second.ID}))

	assert.Equal(t, 0, repo.byID[third.ID].SortOrder)
	assert.Equal(t, 1, repo.byID[first.ID].SortOrder)
	assert.Equal(t, 2, repo.byID[second.ID].SortOrder)

	err := service.Reorder(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestListFAQs_PublishedFilter verifies drafts are hidden from the public
listing.
*/
func TestListFAQs_PublishedFilter(t *testing.T) {
	service := newTestService(newMemoryRepository())

	published := &faq.FAQ{Question: "Published?", Answer: "Yes.", IsPublished: true}
	draft := &faq.FAQ{Question: "Draft?", Answer: "Not yet."}
	require.NoError(t, service.CreateFAQ(context.Background(), published))
	require.NoError(t, service.CreateFAQ(context.Background(), draft))

	visible, err := service.ListFAQs(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Published?", visible[0].Question)

	all, err := service.ListFAQs(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
