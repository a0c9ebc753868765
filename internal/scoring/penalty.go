package scoring

import (
	"fmt"
	"math"
	"time"
)

// Usage is the help a learner consumed while solving a lesson.
type Usage struct {
	HintsUsed int
	Attempts  int
	Elapsed   time.Duration
}

// Policy turns a base XP reward into the XP actually awarded.
type Policy interface {
	Name() string
	Award(baseXP int, u Usage) int
	// PenaltyPercent is the share of the reward withheld for u, in [0, 100].
	PenaltyPercent(u Usage) int
}

var hintPenaltyBands = [...]int{0, 10, 25, 50}

// HintPenaltyPercent returns the percentage withheld for the given number of revealed hints.
func HintPenaltyPercent(hints int) int {
	if hints <= 0 {
		return 0
	}
	if hints >= len(hintPenaltyBands) {
		return hintPenaltyBands[len(hintPenaltyBands)-1]
	}
	return hintPenaltyBands[hints]
}

// ApplyHintPenalty reduces baseXP by the band penalty for hints.
func ApplyHintPenalty(baseXP, hints int) int {
	if baseXP <= 0 {
		return 0
	}
	p := HintPenaltyPercent(hints)
	return int(math.Round(float64(baseXP) * (1 - float64(p)/100)))
}

// BandPolicy is the canonical policy: 0/10/25/50% off for 0/1/2/3+ hints.
type BandPolicy struct{}

func (BandPolicy) Name() string { return "bands" }

func (BandPolicy) Award(baseXP int, u Usage) int {
	return ApplyHintPenalty(baseXP, u.HintsUsed)
}

func (BandPolicy) PenaltyPercent(u Usage) int {
	return HintPenaltyPercent(u.HintsUsed)
}

const (
	linearHintCost    = 5
	linearAttemptCost = 10
	linearSpeedBonus  = 10
	linearFastSolve   = 120 * time.Second
)

// LinearScore starts at 100, takes 5 per hint and 10 per extra attempt, adds 10
// for a solve under two minutes, and clamps to [0, 100].
//
// Deprecated: use HintPenaltyPercent. Kept for installs configured with the linear policy.
func LinearScore(hints, attempts int, elapsed time.Duration) int {
	score := 100 - hints*linearHintCost
	if attempts > 1 {
		score -= (attempts - 1) * linearAttemptCost
	}
	if elapsed < linearFastSolve {
		score += linearSpeedBonus
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// LinearPolicy scales XP by LinearScore.
//
// Deprecated: use BandPolicy.
type LinearPolicy struct{}

func (LinearPolicy) Name() string { return "linear" }

func (LinearPolicy) Award(baseXP int, u Usage) int {
	if baseXP <= 0 {
		return 0
	}
	s := LinearScore(u.HintsUsed, u.Attempts, u.Elapsed)
	return int(math.Round(float64(baseXP) * float64(s) / 100))
}

func (LinearPolicy) PenaltyPercent(u Usage) int {
	return 100 - LinearScore(u.HintsUsed, u.Attempts, u.Elapsed)
}

// PolicyByName resolves a configured policy name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", "bands":
		return BandPolicy{}, nil
	case "linear":
		return LinearPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown penalty policy %q", name)
	}
}
