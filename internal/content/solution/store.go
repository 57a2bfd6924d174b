package solution

import "context"

type Repository interface {
	ListSolutions(context context.Context, filter Filter, limit, offset int) ([]*Solution, int, error)
	GetSolutionByID(context context.Context, id string) (*Solution, error)
	GetSolutionBySlug(context context.Context, slug string, publishedOnly bool) (*Solution, error)
	CreateSolution(context context.Context, solution *Solution) error
	UpdateSolution(context context.Context, solution *Solution) error
	DeleteSolution(context context.Context, id string) error
	SetPublished(context context.Context, id string, published bool) (*Solution, error)
}
