package league

import (
	"testing"

	"pylearn/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestForXP_Partition(t *testing.T) {
	for xp := 0; xp <= 20000; xp += 7 {
		matches := 0
		for _, b := range Bands() {
			if b.Contains(xp) {
				matches++
				assert.Equal(t, b.League, ForXP(xp).League, "xp=%d", xp)
			}
		}
		assert.Equal(t, 1, matches, "xp=%d", xp)

		toNext := XPToNext(xp)
		assert.GreaterOrEqual(t, toNext, 0)
		if ForXP(xp).League == domain.LeaguePlatinum {
			assert.Zero(t, toNext)
		} else {
			assert.Positive(t, toNext)
		}
	}
}

func TestForXP_Boundaries(t *testing.T) {
	tests := []struct {
		xp     int
		league domain.League
		toNext int
	}{
		{0, domain.LeagueBronze, 1000},
		{999, domain.LeagueBronze, 1},
		{1000, domain.LeagueSilver, 4000},
		{4999, domain.LeagueSilver, 1},
		{5000, domain.LeagueGold, 10000},
		{15000, domain.LeaguePlatinum, 0},
		{1 << 30, domain.LeaguePlatinum, 0},
		{-5, domain.LeagueBronze, 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.league, ForXP(tt.xp).League, "xp=%d", tt.xp)
		if tt.xp >= 0 {
			assert.Equal(t, tt.toNext, XPToNext(tt.xp), "xp=%d", tt.xp)
		}
	}
}

func TestNext(t *testing.T) {
	b, ok := Next(domain.LeagueGold)
	assert.True(t, ok)
	assert.Equal(t, domain.LeaguePlatinum, b.League)

	_, ok = Next(domain.LeaguePlatinum)
	assert.False(t, ok)
}

func TestCheckPromotion(t *testing.T) {
	p, ok := CheckPromotion(990, 1010)
	assert.True(t, ok)
	assert.Equal(t, Promotion{From: domain.LeagueBronze, To: domain.LeagueSilver}, p)

	p, ok = CheckPromotion(900, 5200)
	assert.True(t, ok)
	assert.Equal(t, domain.LeagueGold, p.To)

	_, ok = CheckPromotion(100, 200)
	assert.False(t, ok)

	_, ok = CheckPromotion(15000, 20000)
	assert.False(t, ok)
}

func TestPercentile(t *testing.T) {
	assert.Equal(t, 100, Percentile(1, 10))
	assert.Equal(t, 10, Percentile(10, 10))
	assert.Equal(t, 50, Percentile(3, 4))
	assert.Equal(t, 0, Percentile(1, 0))
}
