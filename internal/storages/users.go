package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/practice-sem-2/chat-service/internal/models"
)

var (
	ErrUserNotFound = fmt.Errorf("%w: user with provided id does not exist", models.ErrNotFound)
	ErrLoginTaken   = fmt.Errorf("%w: login is already taken", models.ErrConflict)
)

const (
	UsersLoginKey = "users_login_key"
)

var userColumns = []string{
	"id",
	"login",
	"COALESCE(display_name, login) AS display_name",
	"password_hash",
}

type UsersStorage struct {
	db Scope
}

func NewUsersStorage(db Scope) *UsersStorage {
	return &UsersStorage{
		db: db,
	}
}

func (s *UsersStorage) CreateUser(ctx context.Context, user models.UserCreate) (*models.User, error) {
	query, args, err := sq.Insert("users").
		Columns("login", "display_name", "password_hash").
		Values(user.Login, user.DisplayName, user.PasswordHash).
		Suffix("RETURNING id, login, COALESCE(display_name, login) AS display_name, password_hash").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	created := models.User{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(&created)

	if GetPgxConstraintName(err) == UsersLoginKey {
		return nil, ErrLoginTaken
	} else if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *UsersStorage) getUser(ctx context.Context, where sq.Sqlizer) (*models.User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	user := models.User{}
	err = s.db.GetContext(ctx, &user, query, args...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID returns nil without an error if the user does not exist.
func (s *UsersStorage) GetUserByID(ctx context.Context, userId int64) (*models.User, error) {
	return s.getUser(ctx, sq.Eq{"id": userId})
}

// GetUserByLogin returns nil without an error if the login is unknown.
func (s *UsersStorage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.getUser(ctx, sq.Eq{"login": login})
}

func (s *UsersStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0)
	if err = s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UsersStorage) UpdateProfile(ctx context.Context, userId int64, upd models.ProfileUpdate) (*models.User, error) {
	if upd.DisplayName == nil && upd.PasswordHash == nil {
		user, err := s.GetUserByID(ctx, userId)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return user, nil
	}

	builder := sq.Update("users").
		Where(sq.Eq{"id": userId}).
		Suffix("RETURNING id, login, COALESCE(display_name, login) AS display_name, password_hash").
		PlaceholderFormat(sq.Dollar)

	if upd.DisplayName != nil {
		builder = builder.Set("display_name", *upd.DisplayName)
	}
	if upd.PasswordHash != nil {
		builder = builder.Set("password_hash", *upd.PasswordHash)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	user := models.User{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(&user)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetDisplayNames resolves display names for the given users. Unknown ids
// are absent from the result.
func (s *UsersStorage) GetDisplayNames(ctx context.Context, userIds []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(userIds))
	if len(userIds) == 0 {
		return names, nil
	}

	query, args, err := sq.Select("id AS user_id", "COALESCE(display_name, login) AS display_name").
		From("users").
		Where(sq.Eq{"id": dedupIDs(userIds)}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	var rows []models.ChatMember
	if err = s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		names[row.UserID] = row.DisplayName
	}
	return names, nil
}

func (s *UsersStorage) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, "SELECT count(*) FROM users")
	return count, err
}
