package service

import (
	"context"
	"testing"

	"pylearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type friendFixture struct {
	repo         *MockFriendRepository
	profiles     *MockProfileRepository
	notes        *MockNotificationRepository
	achievements *MockAchievementService
	svc          FriendService
}

func newFriendFixture() *friendFixture {
	f := &friendFixture{
		repo:         new(MockFriendRepository),
		profiles:     new(MockProfileRepository),
		notes:        new(MockNotificationRepository),
		achievements: new(MockAchievementService),
	}
	f.svc = NewFriendService(f.repo, f.profiles, f.achievements, NewNotificationService(f.notes, nil))
	return f
}

func TestFriendService_SendRequest(t *testing.T) {
	f := newFriendFixture()
	f.profiles.On("GetProfileByID", mock.Anything, "a").Return(&domain.Profile{ID: "a", DisplayName: "Ada"}, nil)
	f.profiles.On("GetProfileByID", mock.Anything, "b").Return(&domain.Profile{ID: "b", DisplayName: "Bob"}, nil)
	f.repo.On("FindBetween", mock.Anything, "a", "b").Return(nil, nil)
	f.repo.On("CreateFriendship", mock.Anything, mock.MatchedBy(func(fr *domain.Friendship) bool {
		return fr.RequesterID == "a" && fr.AddresseeID == "b" && fr.Status == domain.FriendshipPending && fr.ID != ""
	})).Return(nil)
	f.notes.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == "b" && n.Type == domain.NotificationFriend && n.Message == "Ada wants to be your friend"
	})).Return(nil)

	fr, err := f.svc.SendRequest(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, domain.FriendshipPending, fr.Status)
	f.notes.AssertExpectations(t)
}

func TestFriendService_SendRequest_Errors(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		f := newFriendFixture()
		_, err := f.svc.SendRequest(context.Background(), "a", "a")
		assert.ErrorIs(t, err, domain.NewInvalidInputError(""))
	})
	t.Run("unknown target", func(t *testing.T) {
		f := newFriendFixture()
		f.profiles.On("GetProfileByID", mock.Anything, "a").Return(&domain.Profile{ID: "a"}, nil)
		f.profiles.On("GetProfileByID", mock.Anything, "ghost").Return(nil, nil)
		_, err := f.svc.SendRequest(context.Background(), "a", "ghost")
		assert.ErrorIs(t, err, domain.NewProfileNotFoundError("ghost"))
	})
	t.Run("existing friendship", func(t *testing.T) {
		f := newFriendFixture()
		f.profiles.On("GetProfileByID", mock.Anything, mock.Anything).Return(&domain.Profile{ID: "x"}, nil)
		f.repo.On("FindBetween", mock.Anything, "a", "b").Return(&domain.Friendship{ID: "f1", Status: domain.FriendshipAccepted}, nil)
		_, err := f.svc.SendRequest(context.Background(), "a", "b")
		assert.ErrorIs(t, err, domain.NewConflictError(""))
	})
}

func TestFriendService_Accept(t *testing.T) {
	f := newFriendFixture()
	f.repo.On("GetFriendshipByID", mock.Anything, "f1").
		Return(&domain.Friendship{ID: "f1", RequesterID: "a", AddresseeID: "b", Status: domain.FriendshipPending}, nil)
	f.repo.On("UpdateStatus", mock.Anything, "f1", domain.FriendshipAccepted).Return(nil)
	f.achievements.On("CheckAndUnlock", mock.Anything, "a").Return(nil, nil)
	f.achievements.On("CheckAndUnlock", mock.Anything, "b").Return(nil, nil)

	fr, err := f.svc.Accept(context.Background(), "b", "f1")
	require.NoError(t, err)
	assert.Equal(t, domain.FriendshipAccepted, fr.Status)
	f.achievements.AssertExpectations(t)
}

func TestFriendService_Accept_OnlyAddressee(t *testing.T) {
	f := newFriendFixture()
	f.repo.On("GetFriendshipByID", mock.Anything, "f1").
		Return(&domain.Friendship{ID: "f1", RequesterID: "a", AddresseeID: "b", Status: domain.FriendshipPending}, nil)

	_, err := f.svc.Accept(context.Background(), "a", "f1")
	assert.ErrorIs(t, err, domain.NewForbiddenError(""))
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestFriendService_Remove(t *testing.T) {
	f := newFriendFixture()
	f.repo.On("GetFriendshipByID", mock.Anything, "f1").
		Return(&domain.Friendship{ID: "f1", RequesterID: "a", AddresseeID: "b", Status: domain.FriendshipAccepted}, nil)
	f.repo.On("GetFriendshipByID", mock.Anything, "missing").Return(nil, nil)
	f.repo.On("DeleteFriendship", mock.Anything, "f1").Return(nil)

	assert.ErrorIs(t, f.svc.Remove(context.Background(), "c", "f1"), domain.NewForbiddenError(""))
	require.NoError(t, f.svc.Remove(context.Background(), "a", "f1"))

	err := f.svc.Remove(context.Background(), "a", "missing")
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeFriendshipNotFound, de.Code)
}

func TestFriendService_ListFriends(t *testing.T) {
	f := newFriendFixture()
	f.repo.On("ListFriendships", mock.Anything, "a").Return([]*domain.Friendship{
		{ID: "f1", RequesterID: "a", AddresseeID: "b"},
		{ID: "f2", RequesterID: "c", AddresseeID: "a"},
	}, nil)
	f.profiles.On("GetProfileByID", mock.Anything, "b").Return(&domain.Profile{ID: "b"}, nil)
	f.profiles.On("GetProfileByID", mock.Anything, "c").Return(&domain.Profile{ID: "c"}, nil)

	friends, err := f.svc.ListFriends(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "b", friends[0].Friend.ID)
	assert.Equal(t, "c", friends[1].Friend.ID)
}
