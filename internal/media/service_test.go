// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package media_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/media"
	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/constants"
	"github.com/argusintel/argus/internal/platform/dberr"
)

type memoryRepository struct {
	byID map[string]*media.Asset
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byID: map[string]*media.Asset{}}
}

func (m *memoryRepository) ListAssets(_ context.Context, limit, offset int) ([]*media.Asset, int, error) {
	var out []*media.Asset
	for _, a := range m.byID {
		out = append(out, a)
	}
	return out, len(out), nil
}

func (m *memoryRepository) GetAssetByID(_ context.Context, id string) (*media.Asset, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (m *memoryRepository) CreateAsset(_ context.Context, a *media.Asset) error {
	a.ID = "asset-" + a.Filename
	clone := *a
	m.byID[a.ID] = &clone
	return nil
}

func (m *memoryRepository) DeleteAsset(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// fakeStorage records object keys instead of talking to S3.
type fakeStorage struct {
	objects map[string]string // key -> content type
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]string{}}
}

func (f *fakeStorage) Put(_ context.Context, key, contentType string, _ io.Reader) error {
	f.objects[key] = contentType
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

func newTestService(repo media.Repository, storage media.ObjectStorage) *media.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return media.NewService(repo, storage, "https://cdn.argusintel.io", logger)
}

/*
TestUpload_StoresObjectAndRow verifies the happy path: object key layout,
public URL, and metadata persistence.
*/
func TestUpload_StoresObjectAndRow(t *testing.T) {
	storage := newFakeStorage()
	service := newTestService(newMemoryRepository(), storage)

	asset, err := service.Upload(context.Background(), "chart.png", "image/png", 1024, strings.NewReader("bytes"), "actor-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(asset.ObjectKey, constants.UploadKeyPrefix))
	assert.True(t, strings.HasSuffix(asset.ObjectKey, ".png"))
	assert.Equal(t, "https://cdn.argusintel.io/"+asset.ObjectKey, asset.URL)
	assert.Equal(t, int64(1024), asset.SizeBytes)

	require.Len(t, storage.objects, 1)
	assert.Equal(t, "image/png", storage.objects[asset.ObjectKey])
}

/*
TestUpload_RejectsDisallowedTypes verifies the content-type allowlist is
enforced before any byte reaches storage.
*/
func TestUpload_RejectsDisallowedTypes(t *testing.T) {
	storage := newFakeStorage()
	service := newTestService(newMemoryRepository(), storage)

	_, err := service.Upload(context.Background(), "payload.exe", "application/x-msdownload", 10, strings.NewReader("x"), "actor-1")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, storage.objects)
}

/*
TestUpload_RejectsOversizedFiles verifies the byte-size cap.
*/
func TestUpload_RejectsOversizedFiles(t *testing.T) {
	storage := newFakeStorage()
	service := newTestService(newMemoryRepository(), storage)

	_, err := service.Upload(context.Background(), "huge.mp4", "video/mp4", constants.MaxUploadBytes+1, strings.NewReader("x"), "actor-1")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, storage.objects)
}

/*
TestDeleteAsset_RemovesObjectThenRow verifies deletion order: the stored
object goes first, then the metadata row.
*/
func TestDeleteAsset_RemovesObjectThenRow(t *testing.T) {
	repo := newMemoryRepository()
	storage := newFakeStorage()
	service := newTestService(repo, storage)

	asset, err := service.Upload(context.Background(), "doc.pdf", "application/pdf", 2048, strings.NewReader("bytes"), "actor-1")
	require.NoError(t, err)

	require.NoError(t, service.DeleteAsset(context.Background(), asset.ID))

	assert.Contains(t, storage.deleted, asset.ObjectKey)
	_, err = repo.GetAssetByID(context.Background(), asset.ID)
	assert.Error(t, err)
}
