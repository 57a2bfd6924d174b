package setting

import (
	"context"
	"log/slog"

	"github.com/argusintel/argus/internal/platform/pagecache"
	"github.com/argusintel/argus/internal/platform/validate"
)

type Service struct {
	repo   Repository
	cache  pagecache.Invalidator
	logger *slog.Logger
}

func NewService(repo Repository, cache pagecache.Invalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

/*
ListSettings returns every site-wide setting.

Parameters:
  - context: context.Context

Returns:
  - []*Setting: All settings ordered by key
  - error: Storage or execution errors
*/
func (service *Service) ListSettings(context context.Context) ([]*Setting, error) {
	return service.repo.ListSettings(context)
}

/*
GetSetting fetches a single setting by its key.

Parameters:
  - context: context.Context
  - key: string (One of the known setting keys)

Returns:
  - *Setting: The hydrated domain entity
  - error: Not-found error if the key has never been set
*/
func (service *Service) GetSetting(context context.Context, key string) (*Setting, error) {
	return service.repo.GetSettingByKey(context, key)
}

/*
SetSetting upserts one setting.

Description: Only keys from the known catalogue are accepted, so a typo
in the admin UI cannot create an orphan row. URL-valued keys are
validated as absolute URLs.

Parameters:
  - context: context.Context
  - setting: *Setting (Key and replacement value)
  - actorID: string (UUID of the authenticated admin)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) SetSetting(context context.Context, setting *Setting, actorID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldKey, setting.Key).OneOf(FieldKey, setting.Key, KnownKeys...)
	validator.Required(FieldValue, setting.Value)
	if setting.Key == KeyLogoURL {
		validator.URL(FieldValue, setting.Value)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	setting.UpdatedBy = &actorID

	if err := service.repo.UpsertSetting(context, setting); err != nil {
		return err
	}

	service.logger.Info("setting_updated", slog.String("key", setting.Key))
	service.cache.Invalidate(context, setting.AffectedPaths()...)
	return nil
}
