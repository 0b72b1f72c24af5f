package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/practice-sem-2/chat-service/internal/models"
)

type AtomicFunc func(Registry) error

// Registry hands out stores bound to the same scope. Inside Atomic the scope
// is a single transaction, outside it is the connection pool.
type Registry interface {
	Atomic(ctx context.Context, fn AtomicFunc) error
	GetUsersStore() UsersStore
	GetChatsStore() ChatsStore
	GetMembersStore() MembersStore
	GetMessagesStore() MessagesStore
	GetUpdatesStore() UpdatesStore
}

type UsersStore interface {
	CreateUser(ctx context.Context, user models.UserCreate) (*models.User, error)
	GetUserByID(ctx context.Context, userId int64) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userId int64, upd models.ProfileUpdate) (*models.User, error)
	GetDisplayNames(ctx context.Context, userIds []int64) (map[int64]string, error)
	CountUsers(ctx context.Context) (int64, error)
}

type ChatsStore interface {
	CreateChat(ctx context.Context, title string, isGroup bool) (*models.Chat, error)
	GetChat(ctx context.Context, chatId int64) (*models.Chat, error)
	GetUserChats(ctx context.Context, userId int64) ([]models.Chat, error)
}

type MembersStore interface {
	AddMember(ctx context.Context, chatId int64, userId int64) (*models.Membership, bool, error)
	RemoveMember(ctx context.Context, chatId int64, userId int64) error
	IsMember(ctx context.Context, chatId int64, userId int64) (bool, error)
	ListMembers(ctx context.Context, chatId int64) ([]models.ChatMember, error)
	GetMemberIDs(ctx context.Context, chatId int64) ([]int64, error)
}

type MessagesStore interface {
	AppendMessage(ctx context.Context, chatId int64, userId int64, text string) (*models.Message, error)
	PageMessages(ctx context.Context, sel models.PageSelect) ([]models.Message, error)
}

type UpdatesStore interface {
	ChatCreated(chat *models.ChatCreated) error
	MessageSent(msg *models.MessageSent) error
	MemberAdded(member *models.MemberAdded) error
	MemberRemoved(member *models.MemberRemoved) error
}

type DefaultRegistry struct {
	db      *sqlx.DB
	scope   Scope
	updates UpdatesStore
}

type Scope interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func NewRegistry(db *sqlx.DB, updates UpdatesStore) *DefaultRegistry {
	if updates == nil {
		updates = DiscardUpdates{}
	}
	return &DefaultRegistry{
		db:      db,
		scope:   db,
		updates: updates,
	}
}

func (r *DefaultRegistry) Atomic(ctx context.Context, fn AtomicFunc) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("rollback caused by error: \"%w\" failed: %v", err, rbErr)
			}
		} else {
			err = tx.Commit()
		}
	}()

	storage := DefaultRegistry{
		db:      r.db,
		scope:   tx,
		updates: r.updates,
	}
	err = fn(&storage)
	return err
}

func (r *DefaultRegistry) GetUsersStore() UsersStore {
	return NewUsersStorage(r.scope)
}

func (r *DefaultRegistry) GetChatsStore() ChatsStore {
	return NewChatsStorage(r.scope)
}

func (r *DefaultRegistry) GetMembersStore() MembersStore {
	return NewMembersStorage(r.scope)
}

func (r *DefaultRegistry) GetMessagesStore() MessagesStore {
	return NewMessagesStorage(r.scope)
}

func (r *DefaultRegistry) GetUpdatesStore() UpdatesStore {
	return r.updates
}
