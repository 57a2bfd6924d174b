package resource

import (
	"context"
	"log/slog"

	"github.com/argusintel/argus/internal/platform/pagecache"
	"github.com/argusintel/argus/internal/platform/validate"
	"github.com/argusintel/argus/pkg/markdown"
	"github.com/argusintel/argus/pkg/slug"
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
ListResources retrieves a paginated and filtered collection of library
entries.

Description: Categories is an OR filter matched at the database level.
The publish filter is tri-state; anonymous handlers pin it to
published-only before calling this.

Parameters:
  - context: context.Context
  - filter: Filter (Category list and publish-state criteria)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Resource: Slice of matching records, newest publication first
  - int: Total count of records matching the filter
  - error: System or repository level errors
*/
func (service *Service) ListResources(context context.Context, filter Filter, limit, offset int) ([]*Resource, int, error) {
	return service.repo.ListResources(context, filter, limit, offset)
}

/*
GetResource fetches a single library entry by its UUID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Resource: The hydrated domain entity
  - error: Not-found error if no match exists
*/
func (service *Service) GetResource(context context.Context, id string) (*Resource, error) {
	return service.repo.GetResourceByID(context, id)
}

/*
GetResourceDetail returns the public detail view of a library entry.

Description: Text blocks are rendered from markdown to HTML on the way
out. A resource with an external link renders no body at all, the
frontend shows a redirect card instead.

Parameters:
  - context: context.Context
  - slugValue: string (SEO slug)
  - publishedOnly: bool (Hide drafts when true)

Returns:
  - *Detail: The entity plus its rendered body blocks
  - error: Not-found or markdown rendering errors
*/
func (service *Service) GetResourceDetail(context context.Context, slugValue string, publishedOnly bool) (*Detail, error) {
	resource, err := service.repo.GetResourceBySlug(context, slugValue, publishedOnly)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Resource: *resource, Body: []RenderedBlock{}}
	if resource.ExternalLink != nil {
		return detail, nil
	}

	for _, block := range resource.ContentBlocks {
		rendered := RenderedBlock{Type: block.Type, Caption: block.Caption}

		switch block.Type {
		case BlockText:
			html, err := markdown.ToHTML(block.Content)
			if err != nil {
				return nil, err
			}
			rendered.HTML = html
		default:
			rendered.URL = block.Content
		}

		detail.Body = append(detail.Body, rendered)
	}

	return detail, nil
}

/*
CreateResource initialises a new library entry.

Description: Validates the metadata and content blocks, generates an
SEO-friendly slug from the title, and stamps the acting editor before
persisting. The entry starts as a draft; PublishedAt is stamped on the
first publish.

Parameters:
  - context: context.Context
  - resource: *Resource (The entity to be persisted)
  - actorID: string (UUID of the authenticated editor)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateResource(context context.Context, resource *Resource, actorID string) error {
	if resource.Slug == "" {
		resource.Slug = slug.From(resource.Title)
	}

	if err := validateResource(resource); err != nil {
		return err
	}

	resource.CreatedBy = &actorID
	resource.UpdatedBy = &actorID

	if err := service.repo.CreateResource(context, resource); err != nil {
		return err
	}

	service.logger.Info("resource_created", slog.String("resource_id", resource.ID), slog.String("slug", resource.Slug))
	service.cache.Invalidate(context, resource.AffectedPaths()...)
	return nil
}

/*
UpdateResource applies a full-row overwrite to an existing entry.

Description: Identity fields (ID, slug) and the original publication
date are carried over from the stored row.

Parameters:
  - context: context.Context
  - id: string (UUID of the record to overwrite)
  - resource: *Resource (Replacement attributes)
  - actorID: string (UUID of the authenticated editor)

Returns:
  - error: Not-found, validation, or persistence errors
*/
func (service *Service) UpdateResource(context context.Context, id string, resource *Resource, actorID string) error {
	existing, err := service.repo.GetResourceByID(context, id)
	if err != nil {
		return err
	}

	resource.ID = existing.ID
	resource.Slug = existing.Slug
	resource.PublishedAt = existing.PublishedAt

	if err := validateResource(resource); err != nil {
		return err
	}

	resource.UpdatedBy = &actorID

	if err := service.repo.UpdateResource(context, resource); err != nil {
		return err
	}

	service.logger.Info("resource_updated", slog.String("resource_id", resource.ID))
	service.cache.Invalidate(context, resource.AffectedPaths()...)
	return nil
}

/*
DeleteResource removes a library entry permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteResource(context context.Context, id string) error {
	existing, err := service.repo.GetResourceByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteResource(context, id); err != nil {
		return err
	}

	service.logger.Warn("resource_deleted", slog.String("resource_id", id), slog.String("slug", existing.Slug))
	service.cache.Invalidate(context, existing.AffectedPaths()...)
	return nil
}

/*
SetPublished flips the publish flag on a library entry.

Description: The first publish stamps PublishedAt; later toggles keep
the original publication date.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - published: bool (Target visibility state)

Returns:
  - *Resource: The updated entity
  - error: Not-found or persistence errors
*/
func (service *Service) SetPublished(context context.Context, id string, published bool) (*Resource, error) {
	resource, err := service.repo.SetPublished(context, id, published)
	if err != nil {
		return nil, err
	}

	service.logger.Info("resource_publish_toggled", slog.String("resource_id", id), slog.Bool("published", published))
	service.cache.Invalidate(context, resource.AffectedPaths()...)
	return resource, nil
}

func validateResource(resource *Resource) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, resource.Title).MaxLen(FieldTitle, resource.Title, 200)
	validator.Required(FieldSlug, resource.Slug).Slug(FieldSlug, resource.Slug)
	validator.Required(FieldCategory, resource.Category).
		OneOf(FieldCategory, resource.Category, Categories...)

	if resource.CoverImageURL != nil {
		validator.URL(FieldCoverImageURL, *resource.CoverImageURL)
	}
	if resource.ExternalLink != nil {
		validator.URL(FieldExternalLink, *resource.ExternalLink)
	}

	for _, block := range resource.ContentBlocks {
		validator.OneOf(FieldBlocks, block.Type, BlockText, BlockImage, BlockFile)
	}

	return validator.Err()
}
