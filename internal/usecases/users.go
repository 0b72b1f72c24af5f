package usecases

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/practice-sem-2/chat-service/internal/auth"
	"github.com/practice-sem-2/chat-service/internal/models"
	storage "github.com/practice-sem-2/chat-service/internal/storages"
)

type TokenIssuer interface {
	Issue(userId int64) (string, time.Time, error)
	Parse(token string) (*auth.UserClaims, error)
}

type RegisterInput struct {
	Login       string  `validate:"notblank,max=64"`
	Password    string  `validate:"required,max=72"`
	DisplayName *string `validate:"omitempty,notblank,max=128"`
}

type ProfileInput struct {
	DisplayName *string `validate:"omitempty,notblank,max=128"`
	Password    *string `validate:"omitempty,min=1,max=72"`
}

type passwordChange struct {
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,max=72"`
}

type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type UsersUsecase struct {
	registry storage.Registry
	validate *validator.Validate
	tokens   TokenIssuer
}

func NewUsersUsecase(r storage.Registry, v *validator.Validate, t TokenIssuer) *UsersUsecase {
	return &UsersUsecase{
		registry: r,
		validate: v,
		tokens:   t,
	}
}

func (u *UsersUsecase) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return u.registry.GetUsersStore().CreateUser(ctx, models.UserCreate{
		Login:        in.Login,
		DisplayName:  in.DisplayName,
		PasswordHash: hash,
	})
}

// Login verifies credentials and issues a bearer token bound to the user id.
// Unknown logins and wrong passwords produce the same error.
func (u *UsersUsecase) Login(ctx context.Context, login string, password string) (*LoginResult, error) {
	user, err := u.registry.GetUsersStore().GetUserByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := auth.ComparePassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(user.UserID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
func (u *UsersUsecase) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := u.registry.GetUsersStore().GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrInvalidToken
	}
	return user, nil
}

func (u *UsersUsecase) ListUsers(ctx context.Context, user *models.User) ([]models.User, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	return u.registry.GetUsersStore().ListUsers(ctx)
}

func (u *UsersUsecase) GetUser(ctx context.Context, user *models.User, userId int64) (*models.User, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	found, err := u.registry.GetUsersStore().GetUserByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, storage.ErrUserNotFound
	}
	return found, nil
}

func (u *UsersUsecase) UpdateProfile(ctx context.Context, user *models.User, userId int64, in ProfileInput) (*models.User, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	if user.UserID != userId {
		return nil, ErrForeignProfile
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	upd := models.ProfileUpdate{DisplayName: in.DisplayName}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	return u.registry.GetUsersStore().UpdateProfile(ctx, userId, upd)
}

func (u *UsersUsecase) ChangePassword(ctx context.Context, user *models.User, userId int64, oldPassword string, newPassword string) error {
	if user == nil {
		return ErrAuthenticationRequired
	}
	if user.UserID != userId {
		return ErrForeignProfile
	}
	if err := validateStruct(u.validate, passwordChange{OldPassword: oldPassword, NewPassword: newPassword}); err != nil {
		return err
	}

	return u.registry.Atomic(ctx, func(r storage.Registry) error {
		store := r.GetUsersStore()
		current, err := store.GetUserByID(ctx, userId)
		if err != nil {
			return err
		}
		if current == nil {
			return storage.ErrUserNotFound
		}

		ok, err := auth.ComparePassword(current.PasswordHash, oldPassword)
		if err != nil {
			return err
		}
		if !ok {
			return ErrWrongPassword
		}

		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return err
		}
		_, err = store.UpdateProfile(ctx, userId, models.ProfileUpdate{PasswordHash: &hash})
		return err
	})
}
