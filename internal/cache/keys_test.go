package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "lesson",
			objectType:  "detail",
			identifier:  "123",
			expectedKey: "pylearn:lesson:detail:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "lesson",
			objectType:  "detail",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "pylearn:lesson:detail:123",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "league",
			objectType:  "leaderboard",
			identifier:  "gold",
			paramsKey:   []string{"10", "weekly"},
			expectedKey: "pylearn:league:leaderboard:gold:10_weekly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestNamedKeys(t *testing.T) {
	assert.Equal(t, "pylearn:lesson:detail:L1", LessonKey("L1"))
	assert.Equal(t, "pylearn:lesson:catalog:all", LessonCatalogKey())
	assert.Equal(t, "pylearn:achievement:catalog:all", AchievementCatalogKey())
	assert.Equal(t, "pylearn:league:leaderboard:silver:20", LeaderboardKey("silver", "20"))
	assert.Equal(t, "pylearn:notifications:user-1", NotificationChannel("user-1"))
}
