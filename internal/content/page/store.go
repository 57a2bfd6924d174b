package page

import "context"

type Repository interface {
	ListAboutSections(context context.Context) ([]AboutSection, error)
	UpsertAboutSection(context context.Context, section *AboutSection) error
	DeleteAboutSection(context context.Context, id string) error

	ListProductFeatures(context context.Context) ([]ProductFeature, error)
	UpsertProductFeature(context context.Context, feature *ProductFeature) error
	DeleteProductFeature(context context.Context, id string) error

	ListHowItWorksSteps(context context.Context) ([]HowItWorksStep, error)
	UpsertHowItWorksStep(context context.Context, step *HowItWorksStep) error
	DeleteHowItWorksStep(context context.Context, id string) error
}
