package team

import "context"

type Repository interface {
	ListMembers(context context.Context, publishedOnly bool) ([]*Member, error)
	GetMemberByID(context context.Context, id string) (*Member, error)
	CreateMember(context context.Context, member *Member) error
	UpdateMember(context context.Context, member *Member) error
	DeleteMember(context context.Context, id string) error
}
