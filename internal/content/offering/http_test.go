// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package offering_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/content/offering"
)

type listEnvelope struct {
	Data []offering.Offering `json:"data"`
}

func listTitles(t *testing.T, router chi.Router, target string) []string {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	titles := make([]string, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		titles = append(titles, item.Title)
	}
	return titles
}

/*
TestListAll_PublishedParam verifies the admin list treats the published
query parameter as tri-state: absent returns everything, "true" only
published rows, "false" only drafts.
*/
func TestListAll_PublishedParam(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	live := &offering.Offering{Title: "Edge Sensing", IsPublished: true}
	draft := &offering.Offering{Title: "Draft Only", IsPublished: false}
	require.NoError(t, service.CreateOffering(context.Background(), live, "actor-1"))
	require.NoError(t, service.CreateOffering(context.Background(), draft, "actor-1"))

	router := chi.NewRouter()
	offering.NewHandler(service).RegisterAdminRoutes(router)

	assert.ElementsMatch(t, []string{"Edge Sensing", "Draft Only"}, listTitles(t, router, "/"))
	assert.ElementsMatch(t, []string{"Edge Sensing"}, listTitles(t, router, "/?published=true"))
	assert.ElementsMatch(t, []string{"Draft Only"}, listTitles(t, router, "/?published=false"))
}
