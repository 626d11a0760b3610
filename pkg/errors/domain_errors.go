package errors

var (
	// Domain errors — used in usecase/repository
	ErrUserNotFound     = NotFound("this person does not exist")
	ErrSelfAdd          = FailedPrecondition("you cannot add yourself as a friend")
	ErrAlreadyRequested = AlreadyExists("this user is already added")
	ErrAlreadyFriends   = AlreadyExists("this user is already your friend")
	ErrNoFriendRequest  = FailedPrecondition("no friend request")
	ErrNotFriends       = Unauthorized("you are not friends with this user")
	ErrNotParticipant   = Unauthorized("you are not part of this chat")
	ErrInvalidEmail     = InvalidArg("invalid email address")
	ErrEmptyMessage     = InvalidArg("message text cannot be empty")
	ErrInvalidChatID    = InvalidArg("invalid chat id")
	ErrNoSession        = Unauthorized("unauthorized")
)

func ErrStoreFailed(cause error) error {
	return Wrap(CodeInternal, "store operation failed", cause)
}

func ErrPublishFailed(cause error) error {
	return Wrap(CodeInternal, "realtime publish failed", cause)
}
