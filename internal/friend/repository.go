package friend

import "context"

type FriendRepository interface {
	AreFriends(ctx context.Context, userID, otherID string) (bool, error)
	HasIncomingRequest(ctx context.Context, targetID, requesterID string) (bool, error)

	// AddIncomingRequest records requesterID in targetID's incoming set.
	// Precondition checks belong to the usecase; this is the bare mutation.
	AddIncomingRequest(ctx context.Context, targetID, requesterID string) error

	// AcceptIncomingRequest performs the three mutations of an accept:
	// both mirrored friend-set insertions, then removal of the pending
	// request. Not atomic — a crash mid-way can leave an asymmetric
	// friendship or a stale incoming entry.
	AcceptIncomingRequest(ctx context.Context, acceptorID, requesterID string) error

	FriendIDs(ctx context.Context, userID string) ([]string, error)
	IncomingRequestIDs(ctx context.Context, userID string) ([]string, error)
}
