package usecase

import (
	"context"
	"regexp"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"friendzone/internal/friend"
	"friendzone/internal/user"
	User "friendzone/internal/user/model"
	userRepo "friendzone/internal/user/repository"
	"friendzone/pkg/errors"
	"friendzone/pkg/logger"
	"friendzone/pkg/realtime"
)

type FriendUsecase struct {
	friends   friend.FriendRepository
	users     user.UserRepository
	publisher realtime.Publisher
	logger    logger.Logger
}

func NewFriendUsecase(
	friends friend.FriendRepository,
	users user.UserRepository,
	publisher realtime.Publisher,
	logger logger.Logger,
) *FriendUsecase {
	return &FriendUsecase{
		friends:   friends,
		users:     users,
		publisher: publisher,
		logger:    logger,
	}
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.ErrInvalidEmail
	}
	return nil
}

func (uc *FriendUsecase) AddFriend(ctx context.Context, cmd friend.AddFriendCommand) error {
	if err := validateEmail(cmd.Email); err != nil {
		return err
	}

	targetID, err := uc.users.GetUserIDByEmail(ctx, cmd.Email)
	if err != nil {
		if pkgerrors.Is(err, userRepo.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("store error resolving email", "err", err)
		return errors.ErrStoreFailed(err)
	}

	if targetID == cmd.UserID {
		return errors.ErrSelfAdd
	}

	alreadyRequested, err := uc.friends.HasIncomingRequest(ctx, targetID, cmd.UserID)
	if err != nil {
		uc.logger.Error("store error checking pending request", "err", err)
		return errors.ErrStoreFailed(err)
	}
	if alreadyRequested {
		return errors.ErrAlreadyRequested
	}

	alreadyFriends, err := uc.friends.AreFriends(ctx, cmd.UserID, targetID)
	if err != nil {
		uc.logger.Error("store error checking friendship", "err", err)
		return errors.ErrStoreFailed(err)
	}
	if alreadyFriends {
		return errors.ErrAlreadyFriends
	}

	if err := uc.friends.AddIncomingRequest(ctx, targetID, cmd.UserID); err != nil {
		uc.logger.Error("store error recording friend request", "err", err)
		return errors.ErrStoreFailed(err)
	}

	err = uc.publisher.Trigger(ctx,
		realtime.RequestsChannel(targetID),
		realtime.EventIncomingFriendRequests,
		friend.IncomingRequestDTO{SenderID: cmd.UserID, SenderEmail: cmd.UserEmail},
	)
	if err != nil {
		// The request is durably recorded; the target just misses the live
		// notification.
		uc.logger.Warn("friend request notification dropped", "target", targetID, "err", err)
	}
	return nil
}

func (uc *FriendUsecase) AcceptFriend(ctx context.Context, cmd friend.AcceptFriendCommand) error {
	alreadyFriends, err := uc.friends.AreFriends(ctx, cmd.UserID, cmd.RequesterID)
	if err != nil {
		uc.logger.Error("store error checking friendship", "err", err)
		return errors.ErrStoreFailed(err)
	}
	if alreadyFriends {
		return errors.ErrAlreadyFriends
	}

	hasRequest, err := uc.friends.HasIncomingRequest(ctx, cmd.UserID, cmd.RequesterID)
	if err != nil {
		uc.logger.Error("store error checking pending request", "err", err)
		return errors.ErrStoreFailed(err)
	}
	if !hasRequest {
		return errors.ErrNoFriendRequest
	}

	if err := uc.friends.AcceptIncomingRequest(ctx, cmd.UserID, cmd.RequesterID); err != nil {
		uc.logger.Error("store error accepting friend request", "err", err)
		return errors.ErrStoreFailed(err)
	}
	return nil
}

func (uc *FriendUsecase) ListIncomingRequests(ctx context.Context, userID string) ([]friend.IncomingRequestDTO, error) {
	senderIDs, err := uc.friends.IncomingRequestIDs(ctx, userID)
	if err != nil {
		uc.logger.Error("store error listing pending requests", "err", err)
		return nil, errors.ErrStoreFailed(err)
	}

	// The sender records are independent reads; resolve them concurrently.
	requests := make([]friend.IncomingRequestDTO, len(senderIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, senderID := range senderIDs {
		i, senderID := i, senderID
		g.Go(func() error {
			sender, err := uc.users.GetUserByID(gctx, senderID)
			if err != nil {
				return err
			}
			requests[i] = friend.IncomingRequestDTO{
				SenderID:    senderID,
				SenderEmail: sender.Email,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Error("store error resolving request senders", "err", err)
		return nil, errors.ErrStoreFailed(err)
	}
	return requests, nil
}

func (uc *FriendUsecase) ListFriends(ctx context.Context, userID string) ([]User.User, error) {
	friendIDs, err := uc.friends.FriendIDs(ctx, userID)
	if err != nil {
		uc.logger.Error("store error listing friends", "err", err)
		return nil, errors.ErrStoreFailed(err)
	}

	var mu sync.Mutex
	friends := make([]User.User, 0, len(friendIDs))
	g, gctx := errgroup.WithContext(ctx)
	for _, friendID := range friendIDs {
		friendID := friendID
		g.Go(func() error {
			record, err := uc.users.GetUserByID(gctx, friendID)
			if err != nil {
				return err
			}
			mu.Lock()
			friends = append(friends, *record)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Error("store error resolving friend records", "err", err)
		return nil, errors.ErrStoreFailed(err)
	}
	return friends, nil
}
