package repository

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	User "friendzone/internal/user/model"
	"friendzone/pkg/kv"
	"friendzone/pkg/logger"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	store  kv.Store
	logger *logger.Logger
}

func NewUserRepository(store kv.Store, logger logger.Logger) *UserRepository {
	return &UserRepository{
		store:  store,
		logger: &logger,
	}
}

// GetUserByID reads the JSON record at user:{id}. The record shape is owned
// by the identity provider; a decode failure means the stored value is not
// one of its users.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*User.User, error) {
	raw, err := r.store.Get(ctx, kv.UserKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrNil) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Get: ")
	}

	user := new(User.User)
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Unmarshal: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserIDByEmail(ctx context.Context, email string) (string, error) {
	id, err := r.store.Get(ctx, kv.UserEmailKey(email))
	if err != nil {
		if errors.Is(err, kv.ErrNil) {
			return "", ErrUserNotFound
		}
		return "", errors.Wrap(err, "userRepo.GetUserIDByEmail.Get: ")
	}
	if id == "" {
		return "", ErrUserNotFound
	}
	return id, nil
}
