package offering

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argusintel/argus/internal/platform/database/schema"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/pkg/pricing"
	"github.com/argusintel/argus/pkg/uuid"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListOfferings(context context.Context, f Filter, limit, offset int) ([]*Offering, int, error) {
	t := schema.ContentOffering
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

	if f.Category != "" {
		args = append(args, f.Category)
		countArgs = append(countArgs, f.Category)
		clause := fmt.Sprintf(` AND %s = $%d`, t.Category, len(args))
		query += clause
		countQuery += clause
	}

	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d`, t.SortOrder, t.Title, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_offerings")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_offerings")
	}
	defer rows.Close()

	var offerings []*Offering
	for rows.Next() {
		o, err := scanOffering(rows.Scan)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_offering")
		}
		offerings = append(offerings, o)
	}

	return offerings, total, nil
}

func (repository *PostgresRepository) GetOfferingByID(context context.Context, id string) (*Offering, error) {
	t := schema.ContentOffering
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(t), t.Table, t.ID)

	o, err := scanOffering(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_offering_by_id")
	}
	return o, nil
}

func (repository *PostgresRepository) GetOfferingBySlug(context context.Context, slug string, publishedOnly bool) (*Offering, error) {
	t := schema.ContentOffering
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(t), t.Table, t.Slug)
	if publishedOnly {
		query += fmt.Sprintf(` AND %s = TRUE`, t.IsPublished)
	}

	o, err := scanOffering(repository.db.QueryRow(context, query, slug).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_offering_by_slug")
	}
	return o, nil
}

func (repository *PostgresRepository) CreateOffering(context context.Context, o *Offering) error {
	t := schema.ContentOffering
	o.ID = uuid.New()

	features, tiers, err := marshalJSONB(o)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.Title, t.Subtitle, t.Description, t.Category,
		t.Features, t.PricingTiers, t.MediaURL, t.SortOrder, t.IsPublished,
		t.MetaTitle, t.MetaDescription, t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		o.ID, o.Slug, o.Title, o.Subtitle, o.Description, o.Category,
		features, tiers, o.MediaURL, o.SortOrder, o.IsPublished,
		o.MetaTitle, o.MetaDescription, o.CreatedBy, o.UpdatedBy,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	return dberr.Wrap(err, "create_offering")
}

func (repository *PostgresRepository) UpdateOffering(context context.Context, o *Offering) error {
	t := schema.ContentOffering

	features, tiers, err := marshalJSONB(o)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Title, t.Subtitle, t.Description, t.Category, t.Features,
		t.PricingTiers, t.MediaURL, t.SortOrder, t.IsPublished, t.MetaTitle,
		t.MetaDescription, t.UpdatedBy, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		o.ID, o.Title, o.Subtitle, o.Description, o.Category, features, tiers,
		o.MediaURL, o.SortOrder, o.IsPublished, o.MetaTitle, o.MetaDescription, o.UpdatedBy,
	).Scan(&o.UpdatedAt)
	return dberr.Wrap(err, "update_offering")
}

func (repository *PostgresRepository) DeleteOffering(context context.Context, id string) error {
	t := schema.ContentOffering
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_offering")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetPublished(context context.Context, id string, published bool) (*Offering, error) {
	t := schema.ContentOffering
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1
		RETURNING %s
	`, t.Table, t.IsPublished, t.UpdatedAt, t.ID, columnList(t))

	o, err := scanOffering(repository.db.QueryRow(context, query, id, published).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "publish_offering")
	}
	return o, nil
}

// columnList renders the canonical scan order used by scanOffering.
func columnList(t schema.ContentOfferingTable) string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Subtitle, t.Description, t.Category,
		t.Features, t.PricingTiers, t.MediaURL, t.SortOrder, t.IsPublished,
		t.MetaTitle, t.MetaDescription, t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
	)
}

func scanOffering(scan func(dest ...any) error) (*Offering, error) {
	o := &Offering{}
	var features, tiers []byte

	err := scan(
		&o.ID, &o.Slug, &o.Title, &o.Subtitle, &o.Description, &o.Category,
		&features, &tiers, &o.MediaURL, &o.SortOrder, &o.IsPublished,
		&o.MetaTitle, &o.MetaDescription, &o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(features, &o.Features); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tiers, &o.PricingTiers); err != nil {
		return nil, err
	}
	return o, nil
}

func marshalJSONB(o *Offering) (features, tiers []byte, err error) {
	if o.Features == nil {
		o.Features = []Feature{}
	}
	if o.PricingTiers == nil {
		o.PricingTiers = []pricing.Tier{}
	}

	features, err = json.Marshal(o.Features)
	if err != nil {
		return nil, nil, err
	}
	tiers, err = json.Marshal(o.PricingTiers)
	if err != nil {
		return nil, nil, err
	}
	return features, tiers, nil
}
