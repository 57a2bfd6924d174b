package media

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argusintel/argus/internal/platform/database/schema"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/pkg/uuid"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAssets(context context.Context, limit, offset int) ([]*Asset, int, error) {
	t := schema.MediaAsset
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		t.ID, t.Filename, t.ObjectKey, t.URL, t.ContentType, t.SizeBytes, t.UploadedBy, t.CreatedAt,
		t.Table, t.CreatedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_assets")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_assets")
	}
	defer rows.Close()

	var assets []*Asset
	for rows.Next() {
		a := &Asset{}
		if err := rows.Scan(&a.ID, &a.Filename, &a.ObjectKey, &a.URL, &a.ContentType, &a.SizeBytes, &a.UploadedBy, &a.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_asset")
		}
		assets = append(assets, a)
	}

	return assets, total, nil
}

func (repository *PostgresRepository) GetAssetByID(context context.Context, id string) (*Asset, error) {
	t := schema.MediaAsset
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = $1
	`,
		t.ID, t.Filename, t.ObjectKey, t.URL, t.ContentType, t.SizeBytes, t.UploadedBy, t.CreatedAt,
		t.Table, t.ID,
	)

	a := &Asset{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Filename, &a.ObjectKey, &a.URL, &a.ContentType, &a.SizeBytes, &a.UploadedBy, &a.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_asset")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateAsset(context context.Context, a *Asset) error {
	t := schema.MediaAsset
	a.ID = uuid.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.Filename, t.ObjectKey, t.URL, t.ContentType, t.SizeBytes, t.UploadedBy, t.CreatedAt,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Filename, a.ObjectKey, a.URL, a.ContentType, a.SizeBytes, a.UploadedBy,
	).Scan(&a.CreatedAt)
	return dberr.Wrap(err, "create_asset")
}

func (repository *PostgresRepository) DeleteAsset(context context.Context, id string) error {
	t := schema.MediaAsset
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_asset")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
