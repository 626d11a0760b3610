package friend

import (
	"context"

	User "friendzone/internal/user/model"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type AddFriendCommand struct {
	UserID    string // session user sending the request
	UserEmail string // session user's email, carried on the realtime event
	Email     string // email of the user to add
}

type AcceptFriendCommand struct {
	UserID      string // session user accepting the request
	RequesterID string // user whose pending request is being accepted
}

// Output DTOs
type IncomingRequestDTO struct {
	SenderID    string `json:"senderId"`
	SenderEmail string `json:"senderEmail"`
}

type FriendUsecase interface {
	// AddFriend resolves the email, runs the precondition chain
	// (existence, self-add, duplicate, already-friends), records the
	// incoming request and notifies the target's personal channel.
	AddFriend(ctx context.Context, cmd AddFriendCommand) error

	// AcceptFriend turns a pending incoming request into a symmetric
	// friendship.
	AcceptFriend(ctx context.Context, cmd AcceptFriendCommand) error

	// ListIncomingRequests resolves the session user's pending requests to
	// sender id/email pairs.
	ListIncomingRequests(ctx context.Context, userID string) ([]IncomingRequestDTO, error)

	// ListFriends resolves the session user's friend IDs to full user
	// records.
	ListFriends(ctx context.Context, userID string) ([]User.User, error)
}
