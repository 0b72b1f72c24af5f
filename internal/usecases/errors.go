package usecases

import (
	"fmt"

	"github.com/practice-sem-2/chat-service/internal/models"
)

var (
	ErrAuthenticationRequired = fmt.Errorf("%w: authentication required", models.ErrUnauthorized)
	ErrInvalidCredentials     = fmt.Errorf("%w: incorrect login or password", models.ErrUnauthorized)
	ErrUserIsNotAChatMember   = fmt.Errorf("%w: user is not a chat member", models.ErrForbidden)
	ErrForeignChats           = fmt.Errorf("%w: users may only list their own chats", models.ErrForbidden)
	ErrForeignProfile         = fmt.Errorf("%w: users may only change their own profile", models.ErrForbidden)
	ErrWrongPassword          = fmt.Errorf("%w: current password does not match", models.ErrUnauthorized)
)
