package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/practice-sem-2/chat-service/internal/models"
)

const DefaultPageLimit uint64 = 50

var (
	ErrEmptyMessage = fmt.Errorf("%w: message text can't be empty", models.ErrInvalidArgument)
)

const (
	MessagesTextCheck        = "messages_text_check"
	MessagesChatIdForeignKey = "messages_chat_id_fkey"
	MessagesUserIdForeignKey = "messages_user_id_fkey"
)

// MessagesStorage is the append-only message log. It does not check
// membership of the author.
type MessagesStorage struct {
	db Scope
}

func NewMessagesStorage(db Scope) *MessagesStorage {
	return &MessagesStorage{
		db: db,
	}
}

// AppendMessage stores a message. Appends to one chat are serialized by a
// transaction-scoped advisory lock taken before the id and created_at are
// assigned, so within a chat id order always matches created_at order, even
// when the caller's transaction started long before the insert.
func (s *MessagesStorage) AppendMessage(ctx context.Context, chatId int64, userId int64, text string) (*models.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}

	query, args, err := sq.Insert("messages").
		Prefix("WITH chat_lock AS (SELECT pg_advisory_xact_lock(?::bigint))", chatId).
		Columns("chat_id", "user_id", "text").
		Select(sq.Select().
			Column("?::bigint", chatId).
			Column("?::bigint", userId).
			Column("?::text", text).
			From("chat_lock")).
		Suffix("RETURNING id, chat_id, user_id, text, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	msg := models.Message{}
	err = s.db.QueryRowxContext(ctx, query, args...).StructScan(&msg)

	switch GetPgxConstraintName(err) {
	case MessagesTextCheck:
		return nil, ErrEmptyMessage
	case MessagesChatIdForeignKey:
		return nil, ErrChatNotFound
	case MessagesUserIdForeignKey:
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// PageMessages returns newest messages first, skipping sel.Offset of them.
// A zero limit means DefaultPageLimit.
func (s *MessagesStorage) PageMessages(ctx context.Context, sel models.PageSelect) ([]models.Message, error) {
	limit := sel.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}

	query, args, err := sq.Select("id", "chat_id", "user_id", "text", "created_at").
		From("messages").
		Where(sq.Eq{"chat_id": sel.ChatID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(sel.Offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0)
	if err = s.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, err
	}

	return messages, nil
}
