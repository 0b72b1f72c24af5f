package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/practice-sem-2/chat-service/internal/usecases"
)

type RegisterRequest struct {
	Login       string  `json:"login"`
	Password    string  `json:"password"`
	DisplayName *string `json:"display_name"`
}

// LoginRequest accepts both OAuth2 password form fields and JSON.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Login    string `json:"login"`
	Password string `form:"password" json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	ExpiresAt   int64  `json:"expires_at"`
}

type ProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Password    *string `json:"password"`
}

type PasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ChatRequest struct {
	Title string `json:"title"`
}

type MessageRequest struct {
	Text string `json:"text"`
}

type MemberRequest struct {
	UserID int64 `json:"user_id"`
}

type PageQuery struct {
	Limit  *int `form:"limit"`
	Offset *int `form:"offset"`
}

const (
	defaultLimit  = 50
	defaultOffset = 0
)

func (r LoginRequest) login() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Login
}

func RegisterToInput(r RegisterRequest) usecases.RegisterInput {
	return usecases.RegisterInput{
		Login:       r.Login,
		Password:    r.Password,
		DisplayName: r.DisplayName,
	}
}

func ProfileToInput(r ProfileRequest) usecases.ProfileInput {
	return usecases.ProfileInput{
		DisplayName: r.DisplayName,
		Password:    r.Password,
	}
}

func PageToSelect(chatId int64, q PageQuery) usecases.MessagesSelect {
	sel := usecases.MessagesSelect{ChatID: chatId, Limit: defaultLimit, Offset: defaultOffset}
	if q.Limit != nil {
		sel.Limit = *q.Limit
	}
	if q.Offset != nil {
		sel.Offset = *q.Offset
	}
	return sel
}

func LoginToResponse(res *usecases.LoginResult) TokenResponse {
	return TokenResponse{
		AccessToken: res.Token,
		TokenType:   "bearer",
		UserID:      res.User.UserID,
		ExpiresAt:   res.ExpiresAt.Unix(),
	}
}

// Slices are never nil in responses so that clients always get a JSON array.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
