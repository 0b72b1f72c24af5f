package models

type User struct {
	UserID       int64  `json:"id" db:"id"`
	Login        string `json:"login" db:"login"`
	DisplayName  string `json:"display_name" db:"display_name"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type UserCreate struct {
	Login        string
	DisplayName  *string
	PasswordHash string
}

// ProfileUpdate carries optional fields; nil means unchanged.
type ProfileUpdate struct {
	DisplayName  *string
	PasswordHash *string
}
