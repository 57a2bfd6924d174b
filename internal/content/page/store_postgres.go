package page

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

func (repository *PostgresRepository) ListAboutSections(context context.Context) ([]AboutSection, error) {
	t := schema.ContentAboutSection
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.Heading, t.Body, t.ImageURL, t.SortOrder, t.UpdatedAt, t.Table, t.SortOrder)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_about_sections")
	}
	defer rows.Close()

	sections := make([]AboutSection, 0)
	for rows.Next() {
		s := AboutSection{}
		if err := rows.Scan(&s.ID, &s.Heading, &s.Body, &s.ImageURL, &s.SortOrder, &s.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_about_section")
		}
		sections = append(sections, s)
	}

	return sections, nil
}

func (repository *PostgresRepository) UpsertAboutSection(context context.Context, s *AboutSection) error {
	t := schema.ContentAboutSection
	if s.ID == "" {
		s.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		RETURNING %s
	`,
		t.Table, t.ID, t.Heading, t.Body, t.ImageURL, t.SortOrder, t.UpdatedAt,
		t.ID,
		t.Heading, t.Body, t.ImageURL, t.SortOrder, t.UpdatedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.ID, s.Heading, s.Body, s.ImageURL, s.SortOrder).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "upsert_about_section")
}

func (repository *PostgresRepository) DeleteAboutSection(context context.Context, id string) error {
	t := schema.ContentAboutSection
	return repository.deleteByID(context, t.Table, t.ID, id, "delete_about_section")
}

func (repository *PostgresRepository) ListProductFeatures(context context.Context) ([]ProductFeature, error) {
	t := schema.ContentProductFeature
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.Icon, t.Title, t.Description, t.SortOrder, t.UpdatedAt, t.Table, t.SortOrder)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_product_features")
	}
	defer rows.Close()

	features := make([]ProductFeature, 0)
	for rows.Next() {
		f := ProductFeature{}
		if err := rows.Scan(&f.ID, &f.Icon, &f.Title, &f.Description, &f.SortOrder, &f.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_product_feature")
		}
		features = append(features, f)
	}

	return features, nil
}

func (repository *PostgresRepository) UpsertProductFeature(context context.Context, f *ProductFeature) error {
	t := schema.ContentProductFeature
	if f.ID == "" {
		f.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		RETURNING %s
	`,
		t.Table, t.ID, t.Icon, t.Title, t.Description, t.SortOrder, t.UpdatedAt,
		t.ID,
		t.Icon, t.Title, t.Description, t.SortOrder, t.UpdatedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, f.ID, f.Icon, f.Title, f.Description, f.SortOrder).Scan(&f.UpdatedAt)
	return dberr.Wrap(err, "upsert_product_feature")
}

func (repository *PostgresRepository) DeleteProductFeature(context context.Context, id string) error {
	t := schema.ContentProductFeature
	return repository.deleteByID(context, t.Table, t.ID, id, "delete_product_feature")
}

func (repository *PostgresRepository) ListHowItWorksSteps(context context.Context) ([]HowItWorksStep, error) {
	t := schema.ContentHowItWorksStep
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.StepNumber, t.Title, t.Description, t.UpdatedAt, t.Table, t.StepNumber)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_how_it_works_steps")
	}
	defer rows.Close()

	steps := make([]HowItWorksStep, 0)
	for rows.Next() {
		s := HowItWorksStep{}
		if err := rows.Scan(&s.ID, &s.StepNumber, &s.Title, &s.Description, &s.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_how_it_works_step")
		}
		steps = append(steps, s)
	}

	return steps, nil
}

func (repository *PostgresRepository) UpsertHowItWorksStep(context context.Context, s *HowItWorksStep) error {
	t := schema.ContentHowItWorksStep
	if s.ID == "" {
		s.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		RETURNING %s
	`,
		t.Table, t.ID, t.StepNumber, t.Title, t.Description, t.UpdatedAt,
		t.ID,
		t.StepNumber, t.Title, t.Description, t.UpdatedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.ID, s.StepNumber, s.Title, s.Description).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "upsert_how_it_works_step")
}

func (repository *PostgresRepository) DeleteHowItWorksStep(context context.Context, id string) error {
	t := schema.ContentHowItWorksStep
	return repository.deleteByID(context, t.Table, t.ID, id, "delete_how_it_works_step")
}

func (repository *PostgresRepository) deleteByID(context context.Context, table, idColumn, id, action string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, action)
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
