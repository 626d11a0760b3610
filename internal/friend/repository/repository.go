package repository

import (
	"context"

	"github.com/pkg/errors"

	"friendzone/pkg/kv"
	"friendzone/pkg/logger"
)

type FriendRepository struct {
	store  kv.Store
	logger *logger.Logger
}

func NewFriendRepository(store kv.Store, logger logger.Logger) *FriendRepository {
	return &FriendRepository{
		store:  store,
		logger: &logger,
	}
}

func (r *FriendRepository) AreFriends(ctx context.Context, userID, otherID string) (bool, error) {
	ok, err := r.store.SIsMember(ctx, kv.FriendsKey(userID), otherID)
	if err != nil {
		return false, errors.Wrap(err, "friendRepo.AreFriends.SIsMember: ")
	}
	return ok, nil
}

func (r *FriendRepository) HasIncomingRequest(ctx context.Context, targetID, requesterID string) (bool, error) {
	ok, err := r.store.SIsMember(ctx, kv.IncomingRequestsKey(targetID), requesterID)
	if err != nil {
		return false, errors.Wrap(err, "friendRepo.HasIncomingRequest.SIsMember: ")
	}
	return ok, nil
}

func (r *FriendRepository) AddIncomingRequest(ctx context.Context, targetID, requesterID string) error {
	err := r.store.SAdd(ctx, kv.IncomingRequestsKey(targetID), requesterID)
	if err != nil {
		return errors.Wrap(err, "friendRepo.AddIncomingRequest.SAdd: ")
	}
	return nil
}

// AcceptIncomingRequest writes both halves of the symmetric relation under
// the same key template, then clears the pending entry. Three separate
// round-trips; symmetry holds only after all three succeed.
func (r *FriendRepository) AcceptIncomingRequest(ctx context.Context, acceptorID, requesterID string) error {
	if err := r.store.SAdd(ctx, kv.FriendsKey(acceptorID), requesterID); err != nil {
		return errors.Wrap(err, "friendRepo.AcceptIncomingRequest.SAdd acceptor: ")
	}
	if err := r.store.SAdd(ctx, kv.FriendsKey(requesterID), acceptorID); err != nil {
		return errors.Wrap(err, "friendRepo.AcceptIncomingRequest.SAdd requester: ")
	}
	if err := r.store.SRem(ctx, kv.IncomingRequestsKey(acceptorID), requesterID); err != nil {
		return errors.Wrap(err, "friendRepo.AcceptIncomingRequest.SRem: ")
	}
	return nil
}

func (r *FriendRepository) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.store.SMembers(ctx, kv.FriendsKey(userID))
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.FriendIDs.SMembers: ")
	}
	return ids, nil
}

func (r *FriendRepository) IncomingRequestIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.store.SMembers(ctx, kv.IncomingRequestsKey(userID))
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.IncomingRequestIDs.SMembers: ")
	}
	return ids, nil
}
