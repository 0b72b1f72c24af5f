package models

import "time"

type UpdateMeta struct {
	Timestamp time.Time
	Audience  []int64
}

type ChatCreated struct {
	UpdateMeta
	ChatID  int64
	Title   string
	IsGroup bool
	Creator int64
}

type MessageSent struct {
	UpdateMeta
	MessageID int64
	ChatID    int64
	FromUser  int64
	Text      string
}

type MemberAdded struct {
	UpdateMeta
	ChatID int64
	UserID int64
}

type MemberRemoved struct {
	UpdateMeta
	ChatID int64
	UserID int64
}
