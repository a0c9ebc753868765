// Package league maps total XP onto league bands.
package league

import (
	"math"

	"pylearn/internal/domain"
)

// Band is a half-open XP range [MinXP, MaxXP). MaxXP < 0 means unbounded.
type Band struct {
	League   domain.League
	Name     string
	MinXP    int
	MaxXP    int
	Benefits []string
}

// Unbounded marks the top band's upper limit.
const Unbounded = -1

var bands = []Band{
	{
		League: domain.LeagueBronze, Name: "Bronze League", MinXP: 0, MaxXP: 1000,
		Benefits: []string{"Access to basic lessons", "Daily challenges"},
	},
	{
		League: domain.LeagueSilver, Name: "Silver League", MinXP: 1000, MaxXP: 5000,
		Benefits: []string{"Access to intermediate lessons", "Weekly leaderboard rewards", "Silver profile badge"},
	},
	{
		League: domain.LeagueGold, Name: "Gold League", MinXP: 5000, MaxXP: 15000,
		Benefits: []string{"Access to advanced lessons", "Bonus XP on hard challenges", "Gold profile badge"},
	},
	{
		League: domain.LeaguePlatinum, Name: "Platinum League", MinXP: 15000, MaxXP: Unbounded,
		Benefits: []string{"Access to all content", "Exclusive platinum challenges", "Platinum profile badge", "Mentor status"},
	},
}

// Bands returns a copy of the league table in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

func (b Band) Contains(xp int) bool {
	return xp >= b.MinXP && (b.MaxXP == Unbounded || xp < b.MaxXP)
}

// ForXP returns the band containing xp. Negative values fall into bronze.
func ForXP(xp int) Band {
	if xp < 0 {
		xp = 0
	}
	for i := len(bands) - 1; i >= 0; i-- {
		if xp >= bands[i].MinXP {
			return bands[i]
		}
	}
	return bands[0]
}

// Lookup returns the band for a league name.
func Lookup(l domain.League) (Band, bool) {
	for _, b := range bands {
		if b.League == l {
			return b, true
		}
	}
	return Band{}, false
}

// Next returns the band above l, or false at the top.
func Next(l domain.League) (Band, bool) {
	for i, b := range bands {
		if b.League == l && i+1 < len(bands) {
			return bands[i+1], true
		}
	}
	return Band{}, false
}

// XPToNext is the XP still needed to reach the next band; 0 at the top.
func XPToNext(xp int) int {
	next, ok := Next(ForXP(xp).League)
	if !ok {
		return 0
	}
	return max(0, next.MinXP-xp)
}

// Promotion describes a league change caused by an XP award.
type Promotion struct {
	From domain.League
	To   domain.League
}

// CheckPromotion reports a promotion only when the league changed and newXP
// clears the minimum of the band above the old league.
func CheckPromotion(oldXP, newXP int) (Promotion, bool) {
	oldBand, newBand := ForXP(oldXP), ForXP(newXP)
	if oldBand.League == newBand.League {
		return Promotion{}, false
	}
	next, ok := Next(oldBand.League)
	if !ok || newXP < next.MinXP {
		return Promotion{}, false
	}
	return Promotion{From: oldBand.League, To: newBand.League}, true
}

// Percentile is round((1 - (rank-1)/total) * 100), or 0 for an empty league.
func Percentile(rank, total int) int {
	if total <= 0 || rank <= 0 {
		return 0
	}
	return int(math.Round((1 - float64(rank-1)/float64(total)) * 100))
}
