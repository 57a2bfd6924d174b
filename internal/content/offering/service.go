package offering

import (
	"context"
	"log/slog"

	"github.com/argusintel/argus/internal/platform/pagecache"
	"github.com/argusintel/argus/internal/platform/validate"
	"github.com/argusintel/argus/pkg/pricing"
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

// # Lookups

/*
ListOfferings retrieves a paginated and filtered collection of offerings.

Description: Filter criteria are passed directly to the repository layer
for database-level filtering. The publish filter is tri-state; anonymous
handlers pin it to published-only before calling this.

Parameters:
  - context: context.Context
  - filter: Filter (Category and publish-state criteria)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Offering: Slice of matching catalogue records
  - int: Total count of records matching the filter (for pagination metadata)
  - error: System or repository level errors
*/
func (service *Service) ListOfferings(context context.Context, filter Filter, limit, offset int) ([]*Offering, int, error) {
	return service.repo.ListOfferings(context, filter, limit, offset)
}

/*
GetOffering fetches a single offering by its UUID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Offering: The hydrated domain entity
  - error: Not-found error if no match exists
*/
func (service *Service) GetOffering(context context.Context, id string) (*Offering, error) {
	return service.repo.GetOfferingByID(context, id)
}

/*
GetOfferingBySlug resolves an offering by its public URL slug.

Parameters:
  - context: context.Context
  - slugValue: string (SEO slug)
  - publishedOnly: bool (Hide drafts when true)

Returns:
  - *Offering: The hydrated domain entity
  - error: Not-found error if no match exists or the row is an invisible draft
*/
func (service *Service) GetOfferingBySlug(context context.Context, slugValue string, publishedOnly bool) (*Offering, error) {
	return service.repo.GetOfferingBySlug(context, slugValue, publishedOnly)
}

// # Management

/*
CreateOffering initialises a new catalogue record.

Description: Performs business validation on the metadata, generates an
SEO-friendly slug from the title, normalizes the pricing tiers server-side,
and stamps the acting editor before persisting.

Parameters:
  - context: context.Context
  - offering: *Offering (The entity to be persisted)
  - actorID: string (UUID of the authenticated editor)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateOffering(context context.Context, offering *Offering, actorID string) error {
	// Slug is generated once, from the title. Later title edits keep the
	// original slug so published URLs stay stable.
	if offering.Slug == "" {
		offering.Slug = slug.From(offering.Title)
	}

	if err := service.prepare(offering); err != nil {
		return err
	}

	offering.CreatedBy = &actorID
	offering.UpdatedBy = &actorID

	if err := service.repo.CreateOffering(context, offering); err != nil {
		return err
	}

	service.logger.Info("offering_created", slog.String("offering_id", offering.ID), slog.String("slug", offering.Slug))
	service.cache.Invalidate(context, offering.AffectedPaths()...)
	return nil
}

/*
UpdateOffering applies a full-row overwrite to an existing record.

Description: Identity fields (ID, slug) are carried over from the stored
row so published URLs never change. The same validation and pricing
normalization as on create applies.

Parameters:
  - context: context.Context
  - id: string (UUID of the record to overwrite)
  - offering: *Offering (Replacement attributes)
  - actorID: string (UUID of the authenticated editor)

Returns:
  - error: Not-found, validation, or persistence errors
*/
func (service *Service) UpdateOffering(context context.Context, id string, offering *Offering, actorID string) error {
	existing, err := service.repo.GetOfferingByID(context, id)
	if err != nil {
		return err
	}

	// Full-row overwrite, except identity fields.
	offering.ID = existing.ID
	offering.Slug = existing.Slug

	if err := service.prepare(offering); err != nil {
		return err
	}

	offering.UpdatedBy = &actorID

	if err := service.repo.UpdateOffering(context, offering); err != nil {
		return err
	}

	service.logger.Info("offering_updated", slog.String("offering_id", offering.ID))
	service.cache.Invalidate(context, offering.AffectedPaths()...)
	return nil
}

/*
DeleteOffering removes an offering permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteOffering(context context.Context, id string) error {
	existing, err := service.repo.GetOfferingByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteOffering(context, id); err != nil {
		return err
	}

	service.logger.Warn("offering_deleted", slog.String("offering_id", id), slog.String("slug", existing.Slug))
	service.cache.Invalidate(context, existing.AffectedPaths()...)
	return nil
}

/*
SetPublished flips the publish flag on an offering.

Description: Publishing is the only mutation exposed separately from the
full-row update so the admin list view can toggle visibility in place.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - published: bool (Target visibility state)

Returns:
  - *Offering: The updated entity
  - error: Not-found or persistence errors
*/
func (service *Service) SetPublished(context context.Context, id string, published bool) (*Offering, error) {
	offering, err := service.repo.SetPublished(context, id, published)
	if err != nil {
		return nil, err
	}

	service.logger.Info("offering_publish_toggled", slog.String("offering_id", id), slog.Bool("published", published))
	service.cache.Invalidate(context, offering.AffectedPaths()...)
	return offering, nil
}

// prepare validates the offering and normalizes its pricing tiers so the
// stored (monthly, annual, discount) triple is always consistent.
func (service *Service) prepare(offering *Offering) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, offering.Title).MaxLen(FieldTitle, offering.Title, 200)
	validator.Required(FieldSlug, offering.Slug).Slug(FieldSlug, offering.Slug)

	if offering.MediaURL != nil {
		validator.URL(FieldMediaURL, *offering.MediaURL)
	}

	for _, feature := range offering.Features {
		validator.Required(FieldFeatures, feature.Title)
	}

	tiers, err := pricing.NormalizeAll(offering.PricingTiers)
	if err != nil {
		validator.Custom(FieldPricingTiers, true, err.Error())
	} else {
		offering.PricingTiers = tiers
	}

	return validator.Err()
}
