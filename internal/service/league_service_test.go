package service

import (
	"context"
	"testing"
	"time"

	"pylearn/internal/cache"
	"pylearn/internal/domain"
	"pylearn/internal/league"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeagueService_GetStanding(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewLeagueService(repo, nil, time.Minute)
	repo.On("GetProfileByID", mock.Anything, "u").Return(&domain.Profile{ID: "u", TotalXP: 1200}, nil)
	repo.On("CountRankInLeague", mock.Anything, "u", 1000, 5000).Return(3, 10, nil)

	standing, err := svc.GetStanding(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, domain.LeagueSilver, standing.Band.League)
	assert.Equal(t, 3, standing.Rank)
	assert.Equal(t, 10, standing.Total)
	assert.Equal(t, 80, standing.Percentile)
	assert.Equal(t, 3800, standing.XPToNext)
	require.NotNil(t, standing.NextBand)
	assert.Equal(t, domain.LeagueGold, standing.NextBand.League)
}

func TestLeagueService_GetStanding_TopLeague(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewLeagueService(repo, nil, time.Minute)
	repo.On("GetProfileByID", mock.Anything, "u").Return(&domain.Profile{ID: "u", TotalXP: 20000}, nil)
	repo.On("CountRankInLeague", mock.Anything, "u", 15000, league.Unbounded).Return(1, 1, nil)

	standing, err := svc.GetStanding(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, 100, standing.Percentile)
	assert.Zero(t, standing.XPToNext)
	assert.Nil(t, standing.NextBand)
}

func TestLeagueService_GetLeaderboard(t *testing.T) {
	repo := new(MockProfileRepository)
	c := new(MockCache)
	svc := NewLeagueService(repo, c, time.Minute)

	key := cache.LeaderboardKey("bronze", "10")
	c.On("Get", mock.Anything, key).Return("", domain.ErrCacheMiss)
	c.On("Set", mock.Anything, key, mock.AnythingOfType("string"), time.Minute).Return(nil)
	repo.On("ListTopByXP", mock.Anything, 0, 1000, 10).Return([]*domain.Profile{
		{ID: "a", Username: "ada", TotalXP: 900},
		{ID: "b", Username: "bob", TotalXP: 450},
	}, nil)

	entries, err := svc.GetLeaderboard(context.Background(), domain.LeagueBronze, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 10, entries[0].Level)
	assert.Equal(t, 2, entries[1].Rank)
	c.AssertExpectations(t)
}

func TestLeagueService_GetLeaderboard_UnknownLeague(t *testing.T) {
	svc := NewLeagueService(new(MockProfileRepository), nil, time.Minute)
	_, err := svc.GetLeaderboard(context.Background(), domain.League("diamond"), 10)
	assert.ErrorIs(t, err, domain.NewInvalidInputError(""))
}
