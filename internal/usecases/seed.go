package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/practice-sem-2/chat-service/internal/auth"
	"github.com/practice-sem-2/chat-service/internal/models"
	storage "github.com/practice-sem-2/chat-service/internal/storages"
	"github.com/sirupsen/logrus"
)

type SeedUser struct {
	Login       string
	Password    string
	DisplayName *string
}

// ParseSeedUsers reads a comma separated list of login:password[:Display Name]
// entries.
func ParseSeedUsers(raw string) ([]SeedUser, error) {
	var users []SeedUser
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: malformed seed user %q", models.ErrInvalidArgument, entry)
		}

		u := SeedUser{Login: parts[0], Password: parts[1]}
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			name := strings.TrimSpace(parts[2])
			u.DisplayName = &name
		}
		users = append(users, u)
	}
	return users, nil
}

// Seed creates the given users and one group chat containing all of them.
// It does nothing when the users table is not empty.
func Seed(ctx context.Context, r storage.Registry, users []SeedUser, chatTitle string, logger *logrus.Logger) error {
	count, err := r.GetUsersStore().CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.WithField("users", count).Info("database already has users, seeding skipped")
		return nil
	}
	if len(users) == 0 {
		return nil
	}

	return r.Atomic(ctx, func(r storage.Registry) error {
		created := make([]*models.User, 0, len(users))
		for _, u := range users {
			hash, err := auth.HashPassword(u.Password)
			if err != nil {
				return err
			}
			user, err := r.GetUsersStore().CreateUser(ctx, models.UserCreate{
				Login:        u.Login,
				DisplayName:  u.DisplayName,
				PasswordHash: hash,
			})
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.Login, err)
			}
			created = append(created, user)
		}

		chat, err := r.GetChatsStore().CreateChat(ctx, chatTitle, true)
		if err != nil {
			return err
		}
		for _, user := range created {
			if _, _, err := r.GetMembersStore().AddMember(ctx, chat.ChatID, user.UserID); err != nil {
				return err
			}
		}

		logger.
			WithField("users", len(created)).
			WithField("chat_id", chat.ChatID).
			Info("seeded database")
		return nil
	})
}
