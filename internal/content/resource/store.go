package resource

import "context"

type Repository interface {
	ListResources(context context.Context, filter Filter, limit, offset int) ([]*Resource, int, error)
	GetResourceByID(context context.Context, id string) (*Resource, error)
	GetResourceBySlug(context context.Context, slug string, publishedOnly bool) (*Resource, error)
	CreateResource(context context.Context, resource *Resource) error
	UpdateResource(context context.Context, resource *Resource) error
	DeleteResource(context context.Context, id string) error
	SetPublished(context context.Context, id string, published bool) (*Resource, error)
}
