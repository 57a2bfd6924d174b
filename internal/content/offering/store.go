package offering

import "context"

type Repository interface {
	ListOfferings(context context.Context, filter Filter, limit, offset int) ([]*Offering, int, error)
	GetOfferingByID(context context.Context, id string) (*Offering, error)
	GetOfferingBySlug(context context.Context, slug string, publishedOnly bool) (*Offering, error)
	CreateOffering(context context.Context, offering *Offering) error
	UpdateOffering(context context.Context, offering *Offering) error
	DeleteOffering(context context.Context, id string) error
	SetPublished(context context.Context, id string, published bool) (*Offering, error)
}
