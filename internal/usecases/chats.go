package usecases

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/practice-sem-2/chat-service/internal/models"
	storage "github.com/practice-sem-2/chat-service/internal/storages"
)

type MessagesSelect struct {
	ChatID int64
	Limit  int `validate:"min=1,max=500"`
	Offset int `validate:"min=0"`
}

type messageSend struct {
	Text string `validate:"required"`
}

type chatCreate struct {
	Title string `validate:"notblank,max=256"`
}

// ChatsUsecase is the only entry point to chats, memberships and messages.
// Every operation takes the authenticated principal and checks it explicitly.
type ChatsUsecase struct {
	registry storage.Registry
	validate *validator.Validate
	now      func() time.Time
}

func NewChatsUsecase(r storage.Registry, v *validator.Validate) *ChatsUsecase {
	return &ChatsUsecase{
		registry: r,
		validate: v,
		now:      time.Now,
	}
}

// requireMember resolves the chat and checks that userId is a current member.
func requireMember(ctx context.Context, r storage.Registry, chatId int64, userId int64) (*models.Chat, error) {
	chat, err := r.GetChatsStore().GetChat(ctx, chatId)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, storage.ErrChatNotFound
	}

	isMember, err := r.GetMembersStore().IsMember(ctx, chatId, userId)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrUserIsNotAChatMember
	}
	return chat, nil
}

func (u *ChatsUsecase) GetChatsForUser(ctx context.Context, user *models.User, targetUserId int64) ([]models.Chat, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	if user.UserID != targetUserId {
		return nil, ErrForeignChats
	}
	return u.registry.GetChatsStore().GetUserChats(ctx, targetUserId)
}

func (u *ChatsUsecase) GetChat(ctx context.Context, user *models.User, chatId int64) (*models.Chat, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	return requireMember(ctx, u.registry, chatId, user.UserID)
}

// CreateChat creates a group chat whose only member is its creator.
func (u *ChatsUsecase) CreateChat(ctx context.Context, user *models.User, title string) (chat *models.Chat, err error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	if err = validateStruct(u.validate, chatCreate{Title: title}); err != nil {
		return nil, err
	}

	err = u.registry.Atomic(ctx, func(r storage.Registry) error {
		var err error
		chat, err = r.GetChatsStore().CreateChat(ctx, title, true)
		if err != nil {
			return err
		}

		_, _, err = r.GetMembersStore().AddMember(ctx, chat.ChatID, user.UserID)
		if err != nil {
			return err
		}

		return r.GetUpdatesStore().ChatCreated(&models.ChatCreated{
			UpdateMeta: models.UpdateMeta{
				Timestamp: u.now().UTC(),
				Audience:  []int64{user.UserID},
			},
			ChatID:  chat.ChatID,
			Title:   chat.Title,
			IsGroup: chat.IsGroup,
			Creator: user.UserID,
		})
	})

	if err != nil {
		return nil, err
	}
	return chat, nil
}

// GetMessages returns one page of the chat history in chronological order.
// The page itself is selected newest first, so offset 0 is always the most
// recent part of the chat.
func (u *ChatsUsecase) GetMessages(ctx context.Context, user *models.User, sel MessagesSelect) ([]models.MessageView, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	if err := validateStruct(u.validate, sel); err != nil {
		return nil, err
	}

	var views []models.MessageView
	err := u.registry.Atomic(ctx, func(r storage.Registry) error {
		if _, err := requireMember(ctx, r, sel.ChatID, user.UserID); err != nil {
			return err
		}

		page, err := r.GetMessagesStore().PageMessages(ctx, models.PageSelect{
			ChatID: sel.ChatID,
			Limit:  uint64(sel.Limit),
			Offset: uint64(sel.Offset),
		})
		if err != nil {
			return err
		}

		authors := make([]int64, len(page))
		for i, msg := range page {
			authors[i] = msg.UserID
		}
		names, err := r.GetUsersStore().GetDisplayNames(ctx, authors)
		if err != nil {
			return err
		}

		views = make([]models.MessageView, len(page))
		for i, msg := range page {
			views[len(page)-1-i] = models.MessageView{
				Message:           msg,
				AuthorDisplayName: names[msg.UserID],
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return views, nil
}

// PostMessage appends a message authored by the principal. Non-members are
// rejected.
func (u *ChatsUsecase) PostMessage(ctx context.Context, user *models.User, chatId int64, text string) (view *models.MessageView, err error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	if err = validateStruct(u.validate, messageSend{Text: text}); err != nil {
		return nil, err
	}

	err = u.registry.Atomic(ctx, func(r storage.Registry) error {
		if _, err := requireMember(ctx, r, chatId, user.UserID); err != nil {
			return err
		}

		msg, err := r.GetMessagesStore().AppendMessage(ctx, chatId, user.UserID, text)
		if err != nil {
			return err
		}

		audience, err := r.GetMembersStore().GetMemberIDs(ctx, chatId)
		if err != nil {
			return err
		}

		view = &models.MessageView{
			Message:           *msg,
			AuthorDisplayName: user.DisplayName,
		}

		return r.GetUpdatesStore().MessageSent(&models.MessageSent{
			UpdateMeta: models.UpdateMeta{
				Timestamp: msg.CreatedAt.UTC(),
				Audience:  audience,
			},
			MessageID: msg.MessageID,
			ChatID:    msg.ChatID,
			FromUser:  msg.UserID,
			Text:      msg.Text,
		})
	})

	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddMember adds userId to the chat. Adding an existing member succeeds and
// returns the existing membership.
func (u *ChatsUsecase) AddMember(ctx context.Context, user *models.User, chatId int64, userId int64) (membership *models.Membership, err error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	err = u.registry.Atomic(ctx, func(r storage.Registry) error {
		if _, err := requireMember(ctx, r, chatId, user.UserID); err != nil {
			return err
		}

		invitee, err := r.GetUsersStore().GetUserByID(ctx, userId)
		if err != nil {
			return err
		}
		if invitee == nil {
			return storage.ErrUserNotFound
		}

		var created bool
		membership, created, err = r.GetMembersStore().AddMember(ctx, chatId, userId)
		if err != nil || !created {
			return err
		}

		audience, err := r.GetMembersStore().GetMemberIDs(ctx, chatId)
		if err != nil {
			return err
		}

		return r.GetUpdatesStore().MemberAdded(&models.MemberAdded{
			UpdateMeta: models.UpdateMeta{
				Timestamp: u.now().UTC(),
				Audience:  audience,
			},
			ChatID: chatId,
			UserID: userId,
		})
	})

	if err != nil {
		return nil, err
	}
	return membership, nil
}

// RemoveMember removes userId from the chat. Members may remove themselves.
func (u *ChatsUsecase) RemoveMember(ctx context.Context, user *models.User, chatId int64, userId int64) error {
	if user == nil {
		return ErrAuthenticationRequired
	}

	return u.registry.Atomic(ctx, func(r storage.Registry) error {
		if _, err := requireMember(ctx, r, chatId, user.UserID); err != nil {
			return err
		}

		if err := r.GetMembersStore().RemoveMember(ctx, chatId, userId); err != nil {
			return err
		}

		audience, err := r.GetMembersStore().GetMemberIDs(ctx, chatId)
		if err != nil {
			return err
		}

		return r.GetUpdatesStore().MemberRemoved(&models.MemberRemoved{
			UpdateMeta: models.UpdateMeta{
				Timestamp: u.now().UTC(),
				Audience:  append(audience, userId),
			},
			ChatID: chatId,
			UserID: userId,
		})
	})
}

func (u *ChatsUsecase) ListMembers(ctx context.Context, user *models.User, chatId int64) (members []models.ChatMember, err error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	err = u.registry.Atomic(ctx, func(r storage.Registry) error {
		if _, err := requireMember(ctx, r, chatId, user.UserID); err != nil {
			return err
		}
		var err error
		members, err = r.GetMembersStore().ListMembers(ctx, chatId)
		return err
	})

	if err != nil {
		return nil, err
	}
	return members, nil
}
