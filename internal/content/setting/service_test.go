// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package setting_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/content/setting"
	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/internal/platform/pagecache"
)

type memoryRepository struct {
	byKey map[string]*setting.Setting
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byKey: map[string]*setting.Setting{}}
}

func (m *memoryRepository) ListSettings(_ context.Context) ([]*setting.Setting, error) {
	var out []*setting.Setting
	for _, s := range m.byKey {
		out = append(out, s)
	}
	return out, nil
}

func (m *memoryRepository) GetSettingByKey(_ context.Context, key string) (*setting.Setting, error) {
	s, ok := m.byKey[key]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return s, nil
}

func (m *memoryRepository) UpsertSetting(_ context.Context, s *setting.Setting) error {
	clone := *s
	m.byKey[s.Key] = &clone
	return nil
}

func newTestService(repo setting.Repository) *setting.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return setting.NewService(repo, pagecache.Noop{}, logger)
}

/*
TestSetSetting_KnownKeysOnly verifies writes are limited to the known
key list.
*/
func TestSetSetting_KnownKeysOnly(t *testing.T) {
	service := newTestService(newMemoryRepository())

	err := service.SetSetting(context.Background(), &setting.Setting{
		Key:   "admin_backdoor",
		Value: "true",
	}, "actor-1")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestSetSetting_LogoURLValidation verifies the logo key must hold a URL
while other keys accept free-form values.
*/
func TestSetSetting_LogoURLValidation(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	err := service.SetSetting(context.Background(), &setting.Setting{
		Key:   setting.KeyLogoURL,
		Value: "not a url",
	}, "actor-1")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	require.NoError(t, service.SetSetting(context.Background(), &setting.Setting{
		Key:   setting.KeyLogoURL,
		Value: "https://cdn.argusintel.io/logo.svg",
	}, "actor-1"))

	require.NoError(t, service.SetSetting(context.Background(), &setting.Setting{
		Key:   setting.KeySiteTagline,
		Value: "Intelligence you can act on",
	}, "actor-1"))

	stored := repo.byKey[setting.KeySiteTagline]
	require.NotNil(t, stored)
	require.NotNil(t, stored.UpdatedBy)
	assert.Equal(t, "actor-1", *stored.UpdatedBy)
}

/*
TestSetSetting_Upsert verifies a second write for the same key replaces
the value.
*/
func TestSetSetting_Upsert(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	require.NoError(t, service.SetSetting(context.Background(), &setting.Setting{
		Key:   setting.KeyContactInfo,
		Value: `{"email":"hello@argusintel.io"}`,
	}, "actor-1"))
	require.NoError(t, service.SetSetting(context.Background(), &setting.Setting{
		Key:   setting.KeyContactInfo,
		Value: `{"email":"sales@argusintel.io"}`,
	}, "actor-2"))

	stored, err := service.GetSetting(context.Background(), setting.KeyContactInfo)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"sales@argusintel.io"}`, stored.Value)
	assert.Equal(t, "actor-2", *stored.UpdatedBy)
}
