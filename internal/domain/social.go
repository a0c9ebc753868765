package domain

import (
	"context"
	"time"
)

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

type Friendship struct {
	ID          string
	RequesterID string
	AddresseeID string
	Status      string
	CreatedAt   time.Time
}

// Other returns the id of the participant that is not userID.
func (f *Friendship) Other(userID string) string {
	if f.RequesterID == userID {
		return f.AddresseeID
	}
	return f.RequesterID
}

type FriendRepository interface {
	CreateFriendship(ctx context.Context, f *Friendship) error
	GetFriendshipByID(ctx context.Context, id string) (*Friendship, error)
	FindBetween(ctx context.Context, userA, userB string) (*Friendship, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteFriendship(ctx context.Context, id string) error
	ListFriendships(ctx context.Context, userID string) ([]*Friendship, error)
	// CountAccepted counts accepted friendships on either side.
	CountAccepted(ctx context.Context, userID string) (int, error)
}

const (
	NotificationAchievement = "achievement"
	NotificationPromotion   = "league_promotion"
	NotificationFriend      = "friend_request"
	NotificationStreakBonus = "streak_bonus"
	NotificationLeaderboard = "weekly_leaderboard"
)

type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (bool, error)
}

// NotificationPublisher is the realtime channel for notification inserts.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *Notification) error
	// Subscribe delivers notifications for userID until ctx is done.
	Subscribe(ctx context.Context, userID string) (<-chan *Notification, error)
}

// WeeklyEntry is one ranked row of a weekly leaderboard.
type WeeklyEntry struct {
	WeekStart time.Time
	UserID    string
	Username  string
	WeeklyXP  int
	Rank      int
}

type LeaderboardRepository interface {
	SumWeeklyXP(ctx context.Context, from, to time.Time) ([]*WeeklyEntry, error)
	SaveWeekly(ctx context.Context, weekStart time.Time, entries []*WeeklyEntry) error
}
