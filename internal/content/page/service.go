package page

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
GetHomeView assembles the homepage building blocks.

Description: The homepage is composed of independently managed sets
(product features, how-it-works steps) joined into one payload so the
frontend renders it with a single request.

Parameters:
  - context: context.Context

Returns:
  - *HomeView: Features and steps in display order
  - error: Storage or execution errors
*/
func (service *Service) GetHomeView(context context.Context) (*HomeView, error) {
	features, err := service.repo.ListProductFeatures(context)
	if err != nil {
		return nil, err
	}
	steps, err := service.repo.ListHowItWorksSteps(context)
	if err != nil {
		return nil, err
	}
	return &HomeView{Features: features, Steps: steps}, nil
}

/*
GetAboutView assembles the about page sections.

Parameters:
  - context: context.Context

Returns:
  - *AboutView: Sections in display order
  - error: Storage or execution errors
*/
func (service *Service) GetAboutView(context context.Context) (*AboutView, error) {
	sections, err := service.repo.ListAboutSections(context)
	if err != nil {
		return nil, err
	}
	return &AboutView{Sections: sections}, nil
}

// ListAboutSections returns the about page sections in display order.
func (service *Service) ListAboutSections(context context.Context) ([]AboutSection, error) {
	return service.repo.ListAboutSections(context)
}

/*
UpsertAboutSection creates or replaces one about page section.

Description: Homepage building blocks are managed as upserts keyed on
the section ID, the admin UI edits them in place rather than through a
create/update split.

Parameters:
  - context: context.Context
  - section: *AboutSection (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) UpsertAboutSection(context context.Context, section *AboutSection) error {
	validator := &validate.Validator{}
	validator.Required(FieldHeading, section.Heading).MaxLen(FieldHeading, section.Heading, 200)
	validator.Required(FieldBody, section.Body)
	if section.ImageURL != nil {
		validator.URL(FieldImageURL, *section.ImageURL)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpsertAboutSection(context, section); err != nil {
		return err
	}

	service.logger.Info("about_section_upserted", slog.String("section_id", section.ID))
	service.cache.Invalidate(context, section.AffectedPaths()...)
	return nil
}

/*
DeleteAboutSection removes one about page section permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteAboutSection(context context.Context, id string) error {
	if err := service.repo.DeleteAboutSection(context, id); err != nil {
		return err
	}

	service.logger.Warn("about_section_deleted", slog.String("section_id", id))
	service.cache.Invalidate(context, (&AboutSection{}).AffectedPaths()...)
	return nil
}

// ListProductFeatures returns the homepage feature grid in display order.
func (service *Service) ListProductFeatures(context context.Context) ([]ProductFeature, error) {
	return service.repo.ListProductFeatures(context)
}

/*
UpsertProductFeature creates or replaces one homepage feature card.

Parameters:
  - context: context.Context
  - feature: *ProductFeature (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) UpsertProductFeature(context context.Context, feature *ProductFeature) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, feature.Title).MaxLen(FieldTitle, feature.Title, 200)
	validator.Required(FieldDescription, feature.Description)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpsertProductFeature(context, feature); err != nil {
		return err
	}

	service.logger.Info("product_feature_upserted", slog.String("feature_id", feature.ID))
	service.cache.Invalidate(context, feature.AffectedPaths()...)
	return nil
}

/*
DeleteProductFeature removes one homepage feature card permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteProductFeature(context context.Context, id string) error {
	if err := service.repo.DeleteProductFeature(context, id); err != nil {
		return err
	}

	service.logger.Warn("product_feature_deleted", slog.String("feature_id", id))
	service.cache.Invalidate(context, (&ProductFeature{}).AffectedPaths()...)
	return nil
}

// ListHowItWorksSteps returns the process walkthrough in step order.
func (service *Service) ListHowItWorksSteps(context context.Context) ([]HowItWorksStep, error) {
	return service.repo.ListHowItWorksSteps(context)
}

/*
UpsertHowItWorksStep creates or replaces one process walkthrough step.

Parameters:
  - context: context.Context
  - step: *HowItWorksStep (The entity to be persisted, with a positive
    step number)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) UpsertHowItWorksStep(context context.Context, step *HowItWorksStep) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, step.Title).MaxLen(FieldTitle, step.Title, 200)
	validator.Custom(FieldStepNumber, step.StepNumber < 1, "must be a positive step number")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpsertHowItWorksStep(context, step); err != nil {
		return err
	}

	service.logger.Info("how_it_works_step_upserted", slog.String("step_id", step.ID))
	service.cache.Invalidate(context, step.AffectedPaths()...)
	return nil
}

/*
DeleteHowItWorksStep removes one walkthrough step permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Not-found or persistence errors
*/
func (service *Service) DeleteHowItWorksStep(context context.Context, id string) error {
	if err := service.repo.DeleteHowItWorksStep(context, id); err != nil {
		return err
	}

	service.logger.Warn("how_it_works_step_deleted", slog.String("step_id", id))
	service.cache.Invalidate(context, (&HowItWorksStep{}).AffectedPaths()...)
	return nil
}
