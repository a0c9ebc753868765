package cache

import "strings"

const (
	GlobalKeyPrefix = "pylearn"
)

// GenerateCacheKey builds "pylearn:<service>:<type>:<id>", appending params joined by "_".
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

func LessonKey(lessonID string) string {
	return GenerateCacheKey("lesson", "detail", lessonID)
}

func LessonCatalogKey() string {
	return GenerateCacheKey("lesson", "catalog", "all")
}

func AchievementCatalogKey() string {
	return GenerateCacheKey("achievement", "catalog", "all")
}

func LeaderboardKey(league string, limit string) string {
	return GenerateCacheKey("league", "leaderboard", league, limit)
}

// NotificationChannel is the pub/sub channel carrying a user's new notifications.
func NotificationChannel(userID string) string {
	return strings.Join([]string{GlobalKeyPrefix, "notifications", userID}, ":")
}
