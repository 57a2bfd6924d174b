package setting

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

func (repository *PostgresRepository) ListSettings(context context.Context) ([]*Setting, error) {
	t := schema.SystemSetting
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.Key, t.Value, t.Description, t.UpdatedBy, t.UpdatedAt, t.Table, t.Key)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	settings := make([]*Setting, 0)
	for rows.Next() {
		s := &Setting{}
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		settings = append(settings, s)
	}

	return settings, nil
}

func (repository *PostgresRepository) GetSettingByKey(context context.Context, key string) (*Setting, error) {
	t := schema.SystemSetting
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Key, t.Value, t.Description, t.UpdatedBy, t.UpdatedAt, t.Table, t.Key)

	s := &Setting{}
	err := repository.db.QueryRow(context, query, key).Scan(
		&s.ID, &s.Key, &s.Value, &s.Description, &s.UpdatedBy, &s.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_setting")
	}
	return s, nil
}

func (repository *PostgresRepository) UpsertSetting(context context.Context, s *Setting) error {
	t := schema.SystemSetting
	if s.ID == "" {
		s.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = $3, %s = $4, %s = $5, %s = NOW()
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Key, t.Value, t.Description, t.UpdatedBy, t.UpdatedAt,
		t.Key,
		t.Value, t.Description, t.UpdatedBy, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.ID, s.Key, s.Value, s.Description, s.UpdatedBy).Scan(&s.ID, &s.UpdatedAt)
	return dberr.Wrap(err, "upsert_setting")
}
