package user

import (
	"context"

	User "friendzone/internal/user/model"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*User.User, error)
	// GetUserIDByEmail resolves the unique email index; returns
	// repository.ErrUserNotFound when no user carries the email.
	GetUserIDByEmail(ctx context.Context, email string) (string, error)
}
