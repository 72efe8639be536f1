package models

import (
	"time"
)

const (
	RoleCreator  = "creator"
	RoleConsumer = "consumer"
)

// ValidRole reports whether role is one of the closed set of account roles.
func ValidRole(role string) bool {
	return role == RoleCreator || role == RoleConsumer
}

type User struct {
	UserID       string `json:"userId" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

type Image struct {
	ImageID  string `json:"id" db:"image_id"`
	Filename string `json:"filename" db:"filename"`
	Uploader string `json:"uploader" db:"uploader"`
}

type Comment struct {
	CommentID string    `json:"id" db:"comment_id"`
	ImageID   string    `json:"imageId" db:"image_id"`
	Commenter string    `json:"username" db:"commenter"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Identity is the {username, role} pair recovered from a verified token.
type Identity struct {
	Username string
	Role     string
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
