package solution

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

func (repository *PostgresRepository) ListSolutions(context context.Context, f Filter, limit, offset int) ([]*Solution, int, error) {
	t := schema.ContentSolution
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

	query += fmt.Sprintf(` ORDER BY %s ASC LIMIT $%d OFFSET $%d`, t.Title, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_solutions")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_solutions")
	}
	defer rows.Close()

	var solutions []*Solution
	for rows.Next() {
		s, err := scanSolution(rows.Scan)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_solution")
		}
		solutions = append(solutions, s)
	}

	return solutions, total, nil
}

func (repository *PostgresRepository) GetSolutionByID(context context.Context, id string) (*Solution, error) {
	t := schema.ContentSolution
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(t), t.Table, t.ID)

	s, err := scanSolution(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_solution_by_id")
	}
	return s, nil
}

func (repository *PostgresRepository) GetSolutionBySlug(context context.Context, slug string, publishedOnly bool) (*Solution, error) {
	t := schema.ContentSolution
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(t), t.Table, t.Slug)
	if publishedOnly {
		query += fmt.Sprintf(` AND %s = TRUE`, t.IsPublished)
	}

	s, err := scanSolution(repository.db.QueryRow(context, query, slug).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_solution_by_slug")
	}
	return s, nil
}

func (repository *PostgresRepository) CreateSolution(context context.Context, s *Solution) error {
	t := schema.ContentSolution
	s.ID = uuid.New()

	stats, blocks, faqs, err := marshalJSONB(s)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.Title, t.Subtitle, t.Description, t.Category,
		t.HeroImageURL, t.HeroVideoURL, t.Stats, t.ContentBlocks, t.FAQs,
		t.MapEmbedURL, t.IsPublished, t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		s.ID, s.Slug, s.Title, s.Subtitle, s.Description, s.Category,
		s.HeroImageURL, s.HeroVideoURL, stats, blocks, faqs,
		s.MapEmbedURL, s.IsPublished, s.CreatedBy, s.UpdatedBy,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "create_solution")
}

func (repository *PostgresRepository) UpdateSolution(context context.Context, s *Solution) error {
	t := schema.ContentSolution

	stats, blocks, faqs, err := marshalJSONB(s)
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
		t.Table, t.Title, t.Subtitle, t.Description, t.Category, t.HeroImageURL,
		t.HeroVideoURL, t.Stats, t.ContentBlocks, t.FAQs, t.MapEmbedURL,
		t.IsPublished, t.UpdatedBy, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		s.ID, s.Title, s.Subtitle, s.Description, s.Category, s.HeroImageURL,
		s.HeroVideoURL, stats, blocks, faqs, s.MapEmbedURL, s.IsPublished, s.UpdatedBy,
	).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_solution")
}

func (repository *PostgresRepository) DeleteSolution(context context.Context, id string) error {
	t := schema.ContentSolution
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_solution")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetPublished(context context.Context, id string, published bool) (*Solution, error) {
	t := schema.ContentSolution
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1
		RETURNING %s
	`, t.Table, t.IsPublished, t.UpdatedAt, t.ID, columnList(t))

	s, err := scanSolution(repository.db.QueryRow(context, query, id, published).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "publish_solution")
	}
	return s, nil
}

func columnList(t schema.ContentSolutionTable) string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Subtitle, t.Description, t.Category,
		t.HeroImageURL, t.HeroVideoURL, t.Stats, t.ContentBlocks, t.FAQs,
		t.MapEmbedURL, t.IsPublished, t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
	)
}

func scanSolution(scan func(dest ...any) error) (*Solution, error) {
	s := &Solution{}
	var stats, blocks, faqs []byte

	err := scan(
		&s.ID, &s.Slug, &s.Title, &s.Subtitle, &s.Description, &s.Category,
		&s.HeroImageURL, &s.HeroVideoURL, &stats, &blocks, &faqs,
		&s.MapEmbedURL, &s.IsPublished, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(stats, &s.Stats); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(blocks, &s.ContentBlocks); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(faqs, &s.FAQs); err != nil {
		return nil, err
	}
	return s, nil
}

func marshalJSONB(s *Solution) (stats, blocks, faqs []byte, err error) {
	if s.Stats == nil {
		s.Stats = []Stat{}
	}
	if s.ContentBlocks == nil {
		s.ContentBlocks = []Block{}
	}
	if s.FAQs == nil {
		s.FAQs = []FAQItem{}
	}

	stats, err = json.Marshal(s.Stats)
	if err != nil {
		return nil, nil, nil, err
	}
	blocks, err = json.Marshal(s.ContentBlocks)
	if err != nil {
		return nil, nil, nil, err
	}
	faqs, err = json.Marshal(s.FAQs)
	if err != nil {
		return nil, nil, nil, err
	}
	return stats, blocks, faqs, nil
}
