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
	ErrChatNotFound = fmt.Errorf("%w: chat with provided chat_id does not exist", models.ErrNotFound)
)

type ChatsStorage struct {
	db Scope
}

func NewChatsStorage(db Scope) *ChatsStorage {
	return &ChatsStorage{
		db: db,
	}
}

// CreateChat inserts only the chat row. Callers run it inside Registry.Atomic
// together with the creator's membership.
func (s *ChatsStorage) CreateChat(ctx context.Context, title string, isGroup bool) (*models.Chat, error) {
	query, args, err := sq.Insert("chats").
		Columns("title", "is_group").
		Values(title, isGroup).
		Suffix("RETURNING id, title, is_group").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	chat := models.Chat{}
	if err = s.db.QueryRowxContext(ctx, query, args...).StructScan(&chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetChat returns nil without an error if the chat does not exist.
func (s *ChatsStorage) GetChat(ctx context.Context, chatId int64) (*models.Chat, error) {
	query, args, err := sq.Select("id", "title", "is_group").
		From("chats").
		Where(sq.Eq{"id": chatId}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	chat := models.Chat{}
	err = s.db.GetContext(ctx, &chat, query, args...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	} else {
		return &chat, nil
	}
}

func (s *ChatsStorage) GetUserChats(ctx context.Context, userId int64) ([]models.Chat, error) {
	query, args, err := sq.Select("c.id", "c.title", "c.is_group").
		From("chats c").
		Join("chat_members m ON m.chat_id = c.id").
		Where(sq.Eq{"m.user_id": userId}).
		OrderBy("c.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return nil, err
	}

	chats := make([]models.Chat, 0)
	if err = s.db.SelectContext(ctx, &chats, query, args...); err != nil {
		return nil, err
	}
	return chats, nil
}
