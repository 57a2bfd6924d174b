package team

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

func (repository *PostgresRepository) ListMembers(context context.Context, publishedOnly bool) ([]*Member, error) {
	t := schema.ContentTeamMember
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Name, t.RoleTitle, t.Bio, t.PhotoURL, t.SocialLinks,
		t.SortOrder, t.IsPublished, t.CreatedAt, t.UpdatedAt, t.Table)
	if publishedOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, t.IsPublished)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, t.SortOrder, t.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_team_members")
	}
	defer rows.Close()

	members := make([]*Member, 0)
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_team_member")
		}
		members = append(members, m)
	}

	return members, nil
}

func (repository *PostgresRepository) GetMemberByID(context context.Context, id string) (*Member, error) {
	t := schema.ContentTeamMember
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Name, t.RoleTitle, t.Bio, t.PhotoURL, t.SocialLinks,
		t.SortOrder, t.IsPublished, t.CreatedAt, t.UpdatedAt, t.Table, t.ID)

	m, err := scanMember(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_team_member")
	}
	return m, nil
}

func (repository *PostgresRepository) CreateMember(context context.Context, m *Member) error {
	t := schema.ContentTeamMember
	m.ID = uuid.New()

	links, err := marshalLinks(m)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Name, t.RoleTitle, t.Bio, t.PhotoURL, t.SocialLinks,
		t.SortOrder, t.IsPublished, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		m.ID, m.Name, m.RoleTitle, m.Bio, m.PhotoURL, links, m.SortOrder, m.IsPublished,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_team_member")
}

func (repository *PostgresRepository) UpdateMember(context context.Context, m *Member) error {
	t := schema.ContentTeamMember

	links, err := marshalLinks(m)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.RoleTitle, t.Bio, t.PhotoURL, t.SocialLinks,
		t.SortOrder, t.IsPublished, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		m.ID, m.Name, m.RoleTitle, m.Bio, m.PhotoURL, links, m.SortOrder, m.IsPublished,
	).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_team_member")
}

func (repository *PostgresRepository) DeleteMember(context context.Context, id string) error {
	t := schema.ContentTeamMember
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_team_member")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func scanMember(scan func(dest ...any) error) (*Member, error) {
	m := &Member{}
	var links []byte

	err := scan(
		&m.ID, &m.Name, &m.RoleTitle, &m.Bio, &m.PhotoURL, &links,
		&m.SortOrder, &m.IsPublished, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(links, &m.SocialLinks); err != nil {
		return nil, err
	}
	return m, nil
}

func marshalLinks(m *Member) ([]byte, error) {
	if m.SocialLinks == nil {
		m.SocialLinks = map[string]string{}
	}
	return json.Marshal(m.SocialLinks)
}
