package faq

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
ListFAQs returns every FAQ in display order.

Description: FAQs are a small, fully ordered set, so the list is
unpaginated. The publish gate hides drafts from the public endpoint.

Parameters:
  - context: context.Context
  - publishedOnly: bool (Hide drafts when true)

Returns:
  - []*FAQ: All matching entries ordered by sort position
  - error: Storage or execution errors
*/
func (service *Service) ListFAQs(context context.Context, publishedOnly bool) ([]*FAQ, error) {
	return service.repo.ListFAQs(context, publishedOnly)
}

/*
GetFAQ fetches a single FAQ entry by its UUID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *FAQ: The hydrated domain entity
  - error: Not-found error if no match exists
*/
func (service *Service) GetFAQ(context context.Context, id string) (*FAQ, error) {
	return service.repo.GetFAQByID(context, id)
}

/*
CreateFAQ initialises a new FAQ entry.

Parameters:
  - context: context.Context
  - faq: *FAQ (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateFAQ(context context.Context, faq *FAQ) error {
	if err := validateFAQ(faq); err != nil {
		return err
	}

	if err := service.repo.CreateFAQ(context, faq); err != nil {
		return err
	}

	service.logger.Info("faq_created", slog.String("faq_id", faq.ID))
	service.cache.Invalidate(context, faq.AffectedPaths()...)
	return nil
}

/*
UpdateFAQ overwrites an existing FAQ entry.

Parameters:
  - context: context.Context
  - id: string (UUID of the record to overwrite)
  - faq: *FAQ (Replacement attributes)

Returns:
  - error: Not-found, validation, or persistence errors
*/
func (service *Service) UpdateFAQ(context context.Context, id string, faq *FAQ) error {
	faq.ID = id
	if err := validateFAQ(faq); err != nil {
		return err
	}

	if err := service.repo.UpdateFAQ(context, faq); err != nil {
		return err
	}

	service.logger.Info("faq_updated", slog.String("faq_id", faq.ID))
	service.cache.Invalidate(context, faq.AffectedPaths()...)
	return nil
}

/*
DeleteFAQ removes an FAQ entry permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteFAQ(context context.Context, id string) error {
	if err := service.repo.DeleteFAQ(context, id); err != nil {
		return err
	}

	service.logger.Warn("faq_deleted", slog.String("faq_id", id))
	service.cache.Invalidate(context, (&FAQ{}).AffectedPaths()...)
	return nil
}

/*
Reorder rewrites the sort order of every FAQ to match the given ID
sequence.

Description: The admin UI submits the complete list after a drag
operation; positions are assigned from the slice index in one
transaction.

Parameters:
  - context: context.Context
  - orderedIDs: []string (Every FAQ UUID in target display order)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) Reorder(context context.Context, orderedIDs []string) error {
	validator := &validate.Validator{}
	validator.Custom(FieldOrder, len(orderedIDs) == 0, "must not be empty")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Reorder(context, orderedIDs); err != nil {
		return err
	}

	service.logger.Info("faqs_reordered", slog.Int("count", len(orderedIDs)))
	service.cache.Invalidate(context, (&FAQ{}).AffectedPaths()...)
	return nil
}

func validateFAQ(faq *FAQ) error {
	validator := &validate.Validator{}
	validator.Required(FieldQuestion, faq.Question).MaxLen(FieldQuestion, faq.Question, 500)
	validator.Required(FieldAnswer, faq.Answer)
	return validator.Err()
}
