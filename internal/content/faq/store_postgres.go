package faq

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

func (repository *PostgresRepository) ListFAQs(context context.Context, publishedOnly bool) ([]*FAQ, error) {
	t := schema.ContentFAQ
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Question, t.Answer, t.Category, t.SortOrder, t.IsPublished, t.CreatedAt, t.UpdatedAt,
		t.Table)
	if publishedOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, t.IsPublished)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, t.SortOrder, t.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_faqs")
	}
	defer rows.Close()

	faqs := make([]*FAQ, 0)
	for rows.Next() {
		f := &FAQ{}
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder, &f.IsPublished, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_faq")
		}
		faqs = append(faqs, f)
	}

	return faqs, nil
}

func (repository *PostgresRepository) GetFAQByID(context context.Context, id string) (*FAQ, error) {
	t := schema.ContentFAQ
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Question, t.Answer, t.Category, t.SortOrder, t.IsPublished, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID)

	f := &FAQ{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder, &f.IsPublished, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_faq_by_id")
	}
	return f, nil
}

func (repository *PostgresRepository) CreateFAQ(context context.Context, f *FAQ) error {
	t := schema.ContentFAQ
	f.ID = uuid.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Question, t.Answer, t.Category, t.SortOrder, t.IsPublished, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		f.ID, f.Question, f.Answer, f.Category, f.SortOrder, f.IsPublished,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	return dberr.Wrap(err, "create_faq")
}

func (repository *PostgresRepository) UpdateFAQ(context context.Context, f *FAQ) error {
	t := schema.ContentFAQ
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Question, t.Answer, t.Category, t.SortOrder, t.IsPublished, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		f.ID, f.Question, f.Answer, f.Category, f.SortOrder, f.IsPublished,
	).Scan(&f.UpdatedAt)
	return dberr.Wrap(err, "update_faq")
}

func (repository *PostgresRepository) DeleteFAQ(context context.Context, id string) error {
	t := schema.ContentFAQ
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_faq")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Reorder(context context.Context, orderedIDs []string) error {
	t := schema.ContentFAQ

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "reorder_faqs_begin")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.SortOrder, t.UpdatedAt, t.ID)

	for position, id := range orderedIDs {
		if _, err := tx.Exec(context, query, id, position); err != nil {
			return dberr.Wrap(err, "reorder_faqs")
		}
	}

	return dberr.Wrap(tx.Commit(context), "reorder_faqs_commit")
}
