package models

type Chat struct {
	ChatID  int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	IsGroup bool   `json:"is_group" db:"is_group"`
}

type Membership struct {
	ChatID int64 `json:"chat_id" db:"chat_id"`
	UserID int64 `json:"user_id" db:"user_id"`
}

type ChatMember struct {
	UserID      int64  `json:"user_id" db:"user_id"`
	DisplayName string `json:"display_name" db:"display_name"`
}
