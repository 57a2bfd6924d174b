package media

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/constants"
	"github.com/argusintel/argus/internal/platform/validate"
	"github.com/argusintel/argus/pkg/uuid"
)

type Service struct {
	repo    Repository
	storage ObjectStorage
	baseURL string
	logger  *slog.Logger
}

func NewService(repo Repository, storage ObjectStorage, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

func (service *Service) ListAssets(context context.Context, limit, offset int) ([]*Asset, int, error) {
	return service.repo.ListAssets(context, limit, offset)
}

// Upload validates and stores one file: bytes to object storage, metadata
// to Postgres. The object key is derived from a fresh UUID so uploads can
// never collide or overwrite each other.
func (service *Service) Upload(context context.Context, filename, contentType string, size int64, body io.Reader, actorID string) (*Asset, error) {
	if service.storage == nil {
		return nil, apperr.ServiceUnavailable("Media storage is not configured")
	}

	ext, allowed := AllowedContentTypes[contentType]

	validator := &validate.Validator{}
	validator.Required(FieldFile, filename)
	validator.Custom(FieldContentType, !allowed, "unsupported content type")
	validator.Custom(FieldFile, size <= 0 || size > constants.MaxUploadBytes, "file exceeds the upload size limit")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	key := constants.UploadKeyPrefix + uuid.New() + ext

	if err := service.storage.Put(context, key, contentType, body); err != nil {
		return nil, err
	}

	asset := &Asset{
		Filename:    filename,
		ObjectKey:   key,
		URL:         service.baseURL + "/" + key,
		ContentType: contentType,
		SizeBytes:   size,
		UploadedBy:  &actorID,
	}

	if err := service.repo.CreateAsset(context, asset); err != nil {
		// Orphaned object; remove it so storage stays consistent with rows.
		if cleanupErr := service.storage.Delete(context, key); cleanupErr != nil {
			service.logger.Error("upload_cleanup_failed", slog.String("key", key), slog.Any("error", cleanupErr))
		}
		return nil, err
	}

	service.logger.Info("asset_uploaded",
		slog.String("asset_id", asset.ID),
		slog.String("key", key),
		slog.Int64("size_bytes", size))
	return asset, nil
}

// DeleteAsset removes the stored object first, then the metadata row.
func (service *Service) DeleteAsset(context context.Context, id string) error {
	if service.storage == nil {
		return apperr.ServiceUnavailable("Media storage is not configured")
	}

	asset, err := service.repo.GetAssetByID(context, id)
	if err != nil {
		return err
	}

	if err := service.storage.Delete(context, asset.ObjectKey); err != nil {
		return err
	}

	if err := service.repo.DeleteAsset(context, id); err != nil {
		return err
	}

	service.logger.Warn("asset_deleted", slog.String("asset_id", id), slog.String("key", asset.ObjectKey))
	return nil
}
