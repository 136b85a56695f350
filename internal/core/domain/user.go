package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrCredentialsRequired = errors.New("username and password are required")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token signature")
var ErrTokenMalformed = errors.New("malformed token")

// User models an authenticated actor in the system. The password hash never
// leaves the process: it is excluded from every JSON response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
