package service

import (
	"context"
	"strconv"
	"time"

	"pylearn/internal/cache"
	"pylearn/internal/domain"
	"pylearn/internal/league"
	"pylearn/internal/util"

	"github.com/samber/lo"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// LeagueStanding is a user's position inside their current league.
type LeagueStanding struct {
	Band       league.Band
	TotalXP    int
	Level      int
	Rank       int
	Total      int
	Percentile int
	XPToNext   int
	NextBand   *league.Band
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	TotalXP     int    `json:"total_xp"`
	Level       int    `json:"level"`
}

type LeagueService interface {
	Bands() []league.Band
	GetStanding(ctx context.Context, userID string) (*LeagueStanding, error)
	GetLeaderboard(ctx context.Context, l domain.League, limit int) ([]LeaderboardEntry, error)
}

type leagueServiceImpl struct {
	profiles domain.ProfileRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewLeagueService(profiles domain.ProfileRepository, c domain.Cache, cacheTTL time.Duration) LeagueService {
	return &leagueServiceImpl{profiles: profiles, cache: c, cacheTTL: cacheTTL}
}

func (s *leagueServiceImpl) Bands() []league.Band {
	return league.Bands()
}

func (s *leagueServiceImpl) GetStanding(ctx context.Context, userID string) (*LeagueStanding, error) {
	profile, err := s.profiles.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load profile", err)
	}
	if profile == nil {
		return nil, domain.NewProfileNotFoundError(userID)
	}

	band := league.ForXP(profile.TotalXP)
	rank, total, err := s.profiles.CountRankInLeague(ctx, userID, band.MinXP, band.MaxXP)
	if err != nil {
		return nil, domain.NewInternalError("failed to rank profile", err)
	}

	standing := &LeagueStanding{
		Band:       band,
		TotalXP:    profile.TotalXP,
		Level:      profile.Level(),
		Rank:       rank,
		Total:      total,
		Percentile: league.Percentile(rank, total),
		XPToNext:   league.XPToNext(profile.TotalXP),
	}
	if next, ok := league.Next(band.League); ok {
		standing.NextBand = &next
	}
	return standing, nil
}

func (s *leagueServiceImpl) GetLeaderboard(ctx context.Context, l domain.League, limit int) ([]LeaderboardEntry, error) {
	band, ok := league.Lookup(l)
	if !ok {
		return nil, domain.NewInvalidInputError("unknown league").WithContext("league", string(l))
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, MaxLeaderboardLimit)

	key := cache.LeaderboardKey(string(l), strconv.Itoa(limit))
	var cached []LeaderboardEntry
	if cache.GetJSON(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	var profiles []*domain.Profile
	err := util.Retry(ctx, nil, func(ctx context.Context) error {
		var err error
		profiles, err = s.profiles.ListTopByXP(ctx, band.MinXP, band.MaxXP, limit)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to load leaderboard", err)
	}

	entries := lo.Map(profiles, func(p *domain.Profile, i int) LeaderboardEntry {
		return LeaderboardEntry{
			Rank:        i + 1,
			UserID:      p.ID,
			Username:    p.Username,
			DisplayName: p.DisplayName,
			AvatarURL:   p.AvatarURL,
			TotalXP:     p.TotalXP,
			Level:       p.Level(),
		}
	})
	cache.SetJSON(ctx, s.cache, key, entries, s.cacheTTL)
	return entries, nil
}
