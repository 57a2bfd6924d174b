package solution

import (
	"context"
	"log/slog"

	"github.com/argusintel/argus/internal/platform/pagecache"
	"github.com/argusintel/argus/internal/platform/validate"
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
ListSolutions retrieves a paginated and filtered collection of solution
pages.

Description: Filter criteria are passed directly to the repository layer.
The publish filter is tri-state; anonymous handlers pin it to
published-only before calling this.

Parameters:
  - context: context.Context
  - filter: Filter (Category and publish-state criteria)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Solution: Slice of matching records
  - int: Total count of records matching the filter
  - error: System or repository level errors
*/
func (service *Service) ListSolutions(context context.Context, filter Filter, limit, offset int) ([]*Solution, int, error) {
	return service.repo.ListSolutions(context, filter, limit, offset)
}

/*
GetSolution fetches a single solution page by its UUID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Solution: The hydrated domain entity
  - error: Not-found error if no match exists
*/
func (service *Service) GetSolution(context context.Context, id string) (*Solution, error) {
	return service.repo.GetSolutionByID(context, id)
}

/*
GetSolutionBySlug resolves a solution page by its public URL slug.

Parameters:
  - context: context.Context
  - slugValue: string (SEO slug)
  - publishedOnly: bool (Hide drafts when true)

Returns:
  - *Solution: The hydrated domain entity
  - error: Not-found error if no match exists or the row is an invisible draft
*/
func (service *Service) GetSolutionBySlug(context context.Context, slugValue string, publishedOnly bool) (*Solution, error) {
	return service.repo.GetSolutionBySlug(context, slugValue, publishedOnly)
}

/*
CreateSolution initialises a new solution page.

Description: Validates the metadata and content blocks, generates an
SEO-friendly slug from the title, and stamps the acting editor before
persisting.

Parameters:
  - context: context.Context
  - solution: *Solution (The entity to be persisted)
  - actorID: string (UUID of the authenticated editor)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateSolution(context context.Context, solution *Solution, actorID string) error {
	if solution.Slug == "" {
		solution.Slug = slug.From(solution.Title)
	}

	if err := validateSolution(solution); err != nil {
		return err
	}

	solution.CreatedBy = &actorID
	solution.UpdatedBy = &actorID

	if err := service.repo.CreateSolution(context, solution); err != nil {
		return err
	}

	service.logger.Info("solution_created", slog.String("solution_id", solution.ID), slog.String("slug", solution.Slug))
	service.cache.Invalidate(context, solution.AffectedPaths()...)
	return nil
}

/*
UpdateSolution applies a full-row overwrite to an existing page.

Description: Identity fields (ID, slug) are carried over from the stored
row so published URLs never change.

Parameters:
  - context: context.Context
  - id: string (UUID of the record to overwrite)
  - solution: *Solution (Replacement attributes)
  - actorID: string (UUID of the authenticated editor)

Returns:
  - error: Not-found, validation, or persistence errors
*/
func (service *Service) UpdateSolution(context context.Context, id string, solution *Solution, actorID string) error {
	existing, err := service.repo.GetSolutionByID(context, id)
	if err != nil {
		return err
	}

	solution.ID = existing.ID
	solution.Slug = existing.Slug

	if err := validateSolution(solution); err != nil {
		return err
	}

	solution.UpdatedBy = &actorID

	if err := service.repo.UpdateSolution(context, solution); err != nil {
		return err
	}

	service.logger.Info("solution_updated", slog.String("solution_id", solution.ID))
	service.cache.Invalidate(context, solution.AffectedPaths()...)
	return nil
}

/*
DeleteSolution removes a solution page permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteSolution(context context.Context, id string) error {
	existing, err := service.repo.GetSolutionByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteSolution(context, id); err != nil {
		return err
	}

	service.logger.Warn("solution_deleted", slog.String("solution_id", id), slog.String("slug", existing.Slug))
	service.cache.Invalidate(context, existing.AffectedPaths()...)
	return nil
}

/*
SetPublished flips the publish flag on a solution page.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - published: bool (Target visibility state)

Returns:
  - *Solution: The updated entity
  - error: Not-found or persistence errors
*/
func (service *Service) SetPublished(context context.Context, id string, published bool) (*Solution, error) {
	solution, err := service.repo.SetPublished(context, id, published)
	if err != nil {
		return nil, err
	}

	service.logger.Info("solution_publish_toggled", slog.String("solution_id", id), slog.Bool("published", published))
	service.cache.Invalidate(context, solution.AffectedPaths()...)
	return solution, nil
}

func validateSolution(solution *Solution) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, solution.Title).MaxLen(FieldTitle, solution.Title, 200)
	validator.Required(FieldSlug, solution.Slug).Slug(FieldSlug, solution.Slug)
	validator.Required(FieldCategory, solution.Category).
		OneOf(FieldCategory, solution.Category, CategoryIndustry, CategoryUseCase)

	if solution.HeroImageURL != nil {
		validator.URL(FieldHeroImageURL, *solution.HeroImageURL)
	}
	if solution.HeroVideoURL != nil {
		validator.URL(FieldHeroVideoURL, *solution.HeroVideoURL)
	}

	for _, block := range solution.ContentBlocks {
		if block.Align != "" {
			validator.OneOf(FieldBlocks, block.Align, "left", "right")
		}
	}

	return validator.Err()
}
