package faq

import "context"

type Repository interface {
	ListFAQs(context context.Context, publishedOnly bool) ([]*FAQ, error)
	GetFAQByID(context context.Context, id string) (*FAQ, error)
	CreateFAQ(context context.Context, faq *FAQ) error
	UpdateFAQ(context context.Context, faq *FAQ) error
	DeleteFAQ(context context.Context, id string) error
	Reorder(context context.Context, orderedIDs []string) error
}
