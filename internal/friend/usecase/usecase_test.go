package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendzone/internal/friend"
	friendMocks "friendzone/internal/friend/mocks"
	User "friendzone/internal/user/model"
	userMocks "friendzone/internal/user/mocks"
	userRepo "friendzone/internal/user/repository"
	appErrors "friendzone/pkg/errors"
	"friendzone/pkg/logger"
	"friendzone/pkg/realtime"
	realtimeMocks "friendzone/pkg/realtime/mocks"
)

func newTestUsecase(ctrl *gomock.Controller) (*FriendUsecase, *friendMocks.MockFriendRepository, *userMocks.MockUserRepository, *realtimeMocks.MockPublisher) {
	friends := friendMocks.NewMockFriendRepository(ctrl)
	users := userMocks.NewMockUserRepository(ctrl)
	publisher := realtimeMocks.NewMockPublisher(ctrl)
	uc := NewFriendUsecase(friends, users, publisher, logger.Logger{})
	return uc, friends, users, publisher
}

func TestFriendUsecase_AddFriend(t *testing.T) {
	cmd := friend.AddFriendCommand{
		UserID:    "u1",
		UserEmail: "alice@x.com",
		Email:     "bob@x.com",
	}

	t.Run("happy path - request recorded and published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, friends, users, publisher := newTestUsecase(ctrl)

		users.EXPECT().GetUserIDByEmail(gomock.Any(), "bob@x.com").Return("u2", nil)
		friends.EXPECT().HasIncomingRequest(gomock.Any(), "u2", "u1").Return(false, nil)
		friends.EXPECT().AreFriends(gomock.Any(), "u1", "u2").Return(false, nil)
		friends.EXPECT().AddIncomingRequest(gomock.Any(), "u2", "u1").Return(nil)
		publisher.EXPECT().Trigger(
			gomock.Any(),
			realtime.RequestsChannel("u2"),
			realtime.EventIncomingFriendRequests,
			friend.IncomingRequestDTO{SenderID: "u1", SenderEmail: "alice@x.com"},
		).Return(nil)

		err := uc.AddFriend(context.Background(), cmd)
		require.NoError(t, err)
	})

	t.Run("sad path - malformed email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _ := newTestUsecase(ctrl)

		err := uc.AddFriend(context.Background(), friend.AddFriendCommand{
			UserID: "u1",
			Email:  "not-an-email",
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidEmail)
	})

	t.Run("sad path - target does not exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, users, _ := newTestUsecase(ctrl)

		users.EXPECT().GetUserIDByEmail(gomock.Any(), "bob@x.com").
			Return("", userRepo.ErrUserNotFound)

		err := uc.AddFriend(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})

	t.Run("sad path - self add, no mutation and no publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, users, _ := newTestUsecase(ctrl)

		users.EXPECT().GetUserIDByEmail(gomock.Any(), "alice@x.com").Return("u1", nil)

		err := uc.AddFriend(context.Background(), friend.AddFriendCommand{
			UserID:    "u1",
			UserEmail: "alice@x.com",
			Email:     "alice@x.com",
		})
		assert.ErrorIs(t, err, appErrors.ErrSelfAdd)
	})

	t.Run("sad path - duplicate request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, friends, users, _ := newTestUsecase(ctrl)

		users.EXPECT().GetUserIDByEmail(gomock.Any(), "bob@x.com").Return("u2", nil)
		friends.EXPECT().HasIncomingRequest(gomock.Any(), "u2", "u1").Return(true, nil)

		err := uc.AddFriend(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrAlreadyRequested)
	})

	t.Run("sad path - already friends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, friends, users, _ := newTestUsecase(ctrl)

		users.EXPECT().GetUserIDByEmail(gomock.Any(), "bob@x.com").Return("u2", nil)
		friends.EXPECT().HasIncomingRequest(gomock.Any(), "u2", "u1").Return(false, nil)
		friends.EXPECT().AreFriends(gomock.Any(), "u1", "u2").Return(true, nil)

		err := uc.AddFriend(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrAlreadyFriends)
	})

	t.Run("happy path - dropped notification is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, friends, users, publisher := newTestUsecase(ctrl)

		users.EXPECT().GetUserIDByEmail(gomock.Any(), "bob@x.com").Return("u2", nil)
		friends.EXPECT().HasIncomingRequest(gomock.Any(), "u2", "u1").Return(false, nil)
		friends.EXPECT().AreFriends(gomock.Any(), "u1", "u2").Return(false, nil)
		friends.EXPECT().AddIncomingRequest(gomock.Any(), "u2", "u1").Return(nil)
		publisher.EXPECT().Trigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		err := uc.AddFriend(context.Background(), cmd)
		require.NoError(t, err)
	})
}

func TestFriendUsecase_AcceptFriend(t *testing.T) {
	cmd := friend.AcceptFriendCommand{UserID: "u2", RequesterID: "u1"}

	t.Run("happy path - pending request accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, friends, _, _ := newTestUsecase(ctrl)

		friends.EXPECT().AreFriends(gomock.Any(), "u2", "u1").Return(false, nil)
		friends.EXPECT().HasIncomingRequest(gomock.Any(), "u2", "u1").Return(true, nil)
		friends.EXPECT().AcceptIncomingRequest(gomock.Any(), "u2", "u1").Return(nil)

		err := uc.AcceptFriend(context.Background(), cmd)
		require.NoError(t, err)
	})

	t.Run("sad path - already friends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, friends, _, _ := newTestUsecase(ctrl)

		friends.EXPECT().AreFriends(gomock.Any(), "u2", "u1").Return(true, nil)

		err := uc.AcceptFriend(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrAlreadyFriends)
	})

	t.Run("sad path - no pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, friends, _, _ := newTestUsecase(ctrl)

		friends.EXPECT().AreFriends(gomock.Any(), "u2", "u1").Return(false, nil)
		friends.EXPECT().HasIncomingRequest(gomock.Any(), "u2", "u1").Return(false, nil)

		err := uc.AcceptFriend(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrNoFriendRequest)
	})
}

func TestFriendUsecase_ListIncomingRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, friends, users, _ := newTestUsecase(ctrl)

	friends.EXPECT().IncomingRequestIDs(gomock.Any(), "u2").Return([]string{"u1", "u3"}, nil)
	users.EXPECT().GetUserByID(gomock.Any(), "u1").
		Return(&User.User{ID: "u1", Email: "alice@x.com"}, nil)
	users.EXPECT().GetUserByID(gomock.Any(), "u3").
		Return(&User.User{ID: "u3", Email: "carol@x.com"}, nil)

	requests, err := uc.ListIncomingRequests(context.Background(), "u2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []friend.IncomingRequestDTO{
		{SenderID: "u1", SenderEmail: "alice@x.com"},
		{SenderID: "u3", SenderEmail: "carol@x.com"},
	}, requests)
}

func TestFriendUsecase_ListFriends(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, friends, users, _ := newTestUsecase(ctrl)

	friends.EXPECT().FriendIDs(gomock.Any(), "u1").Return([]string{"u2"}, nil)
	users.EXPECT().GetUserByID(gomock.Any(), "u2").
		Return(&User.User{ID: "u2", Name: "Bob", Email: "bob@x.com"}, nil)

	records, err := uc.ListFriends(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bob", records[0].Name)
}
