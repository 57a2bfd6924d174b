package resource

import (
	"context"
	"encoding/json"
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

func (repository *PostgresRepository) ListResources(context context.Context, f Filter, limit, offset int) ([]*Resource, int, error) {
	t := schema.ContentResource
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE 1=1`, columnList(t), t.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Published != nil {
		args = append(args, *f.Published)
		countArgs = append(countArgs, *f.Published)
		clause := fmt.Sprintf(` AND %s = $%d`, t.IsPublished, len(args))
		query += clause
		countQuery += clause
	}

	if len(f.Categories) > 0 {
		args = append(args, f.Categories)
		countArgs = append(countArgs, f.Categories)
		clause := fmt.Sprintf(` AND %s = ANY($%d)`, t.Category, len(args))
		query += clause
		countQuery += clause
	}

	// Newest publications first; drafts sort by creation time.
	query += fmt.Sprintf(` ORDER BY COALESCE(%s, %s) DESC LIMIT $%d OFFSET $%d`,
		t.PublishedAt, t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_resources")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_resources")
	}
	defer rows.Close()

	var resources []*Resource
	for rows.Next() {
		r, err := scanResource(rows.Scan)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_resource")
		}
		resources = append(resources, r)
	}

	return resources, total, nil
}

func (repository *PostgresRepository) GetResourceByID(context context.Context, id string) (*Resource, error) {
	t := schema.ContentResource
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(t), t.Table, t.ID)

	r, err := scanResource(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_resource_by_id")
	}
	return r, nil
}

func (repository *PostgresRepository) GetResourceBySlug(context context.Context, slug string, publishedOnly bool) (*Resource, error) {
	t := schema.ContentResource
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(t), t.Table, t.Slug)
	if publishedOnly {
		query += fmt.Sprintf(` AND %s = TRUE`, t.IsPublished)
	}

	r, err := scanResource(repository.db.QueryRow(context, query, slug).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_resource_by_slug")
	}
	return r, nil
}

func (repository *PostgresRepository) CreateResource(context context.Context, r *Resource) error {
	t := schema.ContentResource
	r.ID = uuid.New()

	blocks, err := marshalBlocks(r)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.Title, t.Category, t.Summary, t.CoverImageURL,
		t.ExternalLink, t.ContentBlocks, t.IsPublished, t.PublishedAt,
		t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		r.ID, r.Slug, r.Title, r.Category, r.Summary, r.CoverImageURL,
		r.ExternalLink, blocks, r.IsPublished, r.CreatedBy, r.UpdatedBy,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	return dberr.Wrap(err, "create_resource")
}

func (repository *PostgresRepository) UpdateResource(context context.Context, r *Resource) error {
	t := schema.ContentResource

	blocks, err := marshalBlocks(r)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Title, t.Category, t.Summary, t.CoverImageURL, t.ExternalLink,
		t.ContentBlocks, t.IsPublished, t.UpdatedBy, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		r.ID, r.Title, r.Category, r.Summary, r.CoverImageURL, r.ExternalLink,
		blocks, r.IsPublished, r.UpdatedBy,
	).Scan(&r.UpdatedAt)
	return dberr.Wrap(err, "update_resource")
}

func (repository *PostgresRepository) DeleteResource(context context.Context, id string) error {
	t := schema.ContentResource
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_resource")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetPublished(context context.Context, id string, published bool) (*Resource, error) {
	t := schema.ContentResource

	// The first publish stamps publishedat; unpublishing keeps it so a
	// re-publish does not reset the publication date.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2,
		    %s = CASE WHEN $2 THEN COALESCE(%s, NOW()) ELSE %s END,
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, t.Table, t.IsPublished, t.PublishedAt, t.PublishedAt, t.PublishedAt,
		t.UpdatedAt, t.ID, columnList(t))

	r, err := scanResource(repository.db.QueryRow(context, query, id, published).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "publish_resource")
	}
	return r, nil
}

func columnList(t schema.ContentResourceTable) string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Category, t.Summary, t.CoverImageURL,
		t.ExternalLink, t.ContentBlocks, t.IsPublished, t.PublishedAt,
		t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
	)
}

func scanResource(scan func(dest ...any) error) (*Resource, error) {
	r := &Resource{}
	var blocks []byte

	err := scan(
		&r.ID, &r.Slug, &r.Title, &r.Category, &r.Summary, &r.CoverImageURL,
		&r.ExternalLink, &blocks, &r.IsPublished, &r.PublishedAt,
		&r.CreatedBy, &r.UpdatedBy, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(blocks, &r.ContentBlocks); err != nil {
		return nil, err
	}
	return r, nil
}

func marshalBlocks(r *Resource) ([]byte, error) {
	if r.ContentBlocks == nil {
		r.ContentBlocks = []Block{}
	}
	return json.Marshal(r.ContentBlocks)
}
