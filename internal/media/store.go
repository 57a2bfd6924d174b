package media

import "context"

type Repository interface {
	ListAssets(context context.Context, limit, offset int) ([]*Asset, int, error)
	GetAssetByID(context context.Context, id string) (*Asset, error)
	CreateAsset(context context.Context, asset *Asset) error
	DeleteAsset(context context.Context, id string) error
}
