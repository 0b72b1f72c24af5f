package models

import "time"

type Message struct {
	MessageID int64     `json:"id" db:"id"`
	ChatID    int64     `json:"chat_id" db:"chat_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MessageView is a message enriched with its author's display name at read time.
type MessageView struct {
	Message
	AuthorDisplayName string `json:"user_name"`
}

type PageSelect struct {
	ChatID int64
	Limit  uint64
	Offset uint64
}
