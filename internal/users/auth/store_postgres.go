package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argusintel/argus/internal/platform/database/schema"
	"github.com/argusintel/argus/internal/platform/dberr"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func accountColumns(t schema.UsersAccountTable) string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Email, t.PasswordHash, t.DisplayName, t.Role,
		t.IsVerified, t.IsActive, t.CreatedAt, t.UpdatedAt)
}

func scanUser(scan func(dest ...any) error) (*User, error) {
	user := &User{}
	err := scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Role,
		&user.IsVerified, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		accountColumns(t), t.Table, t.ID, t.DeletedAt)

	user, err := scanUser(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1) AND %s IS NULL`,
		accountColumns(t), t.Table, t.Email, t.DeletedAt)

	user, err := scanUser(repository.db.QueryRow(context, query, email).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}
	return user, nil
}

func (repository *PostgresUserRepository) List(context context.Context) ([]*User, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL ORDER BY %s ASC`,
		accountColumns(t), t.Table, t.DeletedAt, t.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, nil
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Email, t.PasswordHash, t.DisplayName, t.Role,
		t.IsVerified, t.IsActive, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Role,
		user.IsVerified, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		t.Table, t.DisplayName, t.Role, t.UpdatedAt,
		t.ID, t.DeletedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, user.ID, user.DisplayName, user.Role).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, id, passwordHash string) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.PasswordHash, t.UpdatedAt, t.ID, t.DeletedAt)

	cmd, err := repository.db.Exec(context, query, id, passwordHash)
	if err != nil {
		return dberr.Wrap(err, "update_user_password")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresUserRepository) MarkVerified(context context.Context, id string) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.IsVerified, t.UpdatedAt, t.ID, t.DeletedAt)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "mark_user_verified")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// SoftDelete deactivates the account while keeping the row so created_by
// references on content stay resolvable.
func (repository *PostgresUserRepository) SoftDelete(context context.Context, id string) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = NOW(), %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.IsActive, t.DeletedAt, t.UpdatedAt, t.ID, t.DeletedAt)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_user")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	t := schema.UsersSession
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt, t.CreatedAt,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		session.ID, session.UserID, session.TokenHash, session.UserAgent, session.IPAddress, session.ExpiresAt,
	).Scan(&session.CreatedAt)
	return dberr.Wrap(err, "create_session")
}

// FindByTokenHash only returns live sessions: revoked or expired rows are
// invisible to callers.
func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	t := schema.UsersSession
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL AND %s > NOW()
	`,
		t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress, t.ExpiresAt, t.RevokedAt, t.CreatedAt,
		t.Table,
		t.TokenHash, t.RevokedAt, t.ExpiresAt,
	)

	session := &Session{}
	err := repository.db.QueryRow(context, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash, &session.UserAgent,
		&session.IPAddress, &session.ExpiresAt, &session.RevokedAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_session_by_token")
	}
	return session, nil
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, id string) error {
	t := schema.UsersSession
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.RevokedAt, t.ID, t.RevokedAt)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "revoke_session")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	t := schema.UsersSession
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.RevokedAt, t.UserID, t.RevokedAt)

	_, err := repository.db.Exec(context, query, userID)
	return dberr.Wrap(err, "revoke_all_sessions")
}

// DeleteExpired prunes dead sessions. Intended for a periodic maintenance
// call, not the request path.
func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) (int64, error) {
	t := schema.UsersSession
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s < NOW() OR %s IS NOT NULL`,
		t.Table, t.ExpiresAt, t.RevokedAt)

	cmd, err := repository.db.Exec(context, query)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_expired_sessions")
	}
	return cmd.RowsAffected(), nil
}
