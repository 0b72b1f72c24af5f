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
	ErrMembershipNotFound = fmt.Errorf("%w: user is not a member of the chat", models.ErrNotFound)
)

const (
	ChatMembersChatIdForeignKey = "chat_members_chat_id_fkey"
	ChatMembersUserIdForeignKey = "chat_members_user_id_fkey"
)

type MembersStorage struct {
	db Scope
}

func NewMembersStorage(db Scope) *MembersStorage {
	return &MembersStorage{
		db: db,
	}
}

// AddMember is idempotent: an existing (chat, user) pair is returned as is
// and the second result reports whether a row was actually inserted.
func (s *MembersStorage) AddMember(ctx context.Context, chatId int64, userId int64) (*models.Membership, bool, error) {
	query, args, err := sq.Insert("chat_members").
		Columns("chat_id", "user_id").
		Values(chatId, userId).
		Suffix("ON CONFLICT (chat_id, user_id) DO NOTHING RETURNING chat_id, user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, false, err
	}

	membership := models.Membership{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(&membership)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return &models.Membership{ChatID: chatId, UserID: userId}, false, nil
	case GetPgxConstraintName(err) == ChatMembersUserIdForeignKey:
		return nil, false, ErrUserNotFound
	case GetPgxConstraintName(err) == ChatMembersChatIdForeignKey:
		return nil, false, ErrChatNotFound
	case err != nil:
		return nil, false, err
	}

	return &membership, true, nil
}

func (s *MembersStorage) RemoveMember(ctx context.Context, chatId int64, userId int64) error {
	query, args, err := sq.Delete("chat_members").
		Where(sq.Eq{
			"chat_id": chatId,
			"user_id": userId,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	count, err := res.RowsAffected()

	if err != nil {
		return err
	}

	if count == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

func (s *MembersStorage) IsMember(ctx context.Context, chatId int64, userId int64) (bool, error) {
	query, args, err := sq.Select("count(1)").
		From("chat_members").
		Where(sq.Eq{
			"chat_id": chatId,
			"user_id": userId,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return false, err
	}

	var count int
	if err = s.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *MembersStorage) ListMembers(ctx context.Context, chatId int64) ([]models.ChatMember, error) {
	query, args, err := sq.Select("m.user_id", "COALESCE(u.display_name, u.login) AS display_name").
		From("chat_members m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.chat_id": chatId}).
		OrderBy("m.user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	members := make([]models.ChatMember, 0)
	if err = s.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *MembersStorage) GetMemberIDs(ctx context.Context, chatId int64) ([]int64, error) {
	query, args, err := sq.Select("user_id").
		From("chat_members").
		Where(sq.Eq{"chat_id": chatId}).
		OrderBy("user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0)
	if err = s.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}
