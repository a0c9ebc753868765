// Package challenge generates the daily challenge set. Every function here is
// deterministic for its inputs.
package challenge

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"pylearn/internal/domain"
)

const (
	// StreakBonusXP is awarded once a streak reaches StreakBonusDays.
	StreakBonusXP   = 100
	StreakBonusDays = 7
)

var xpRewards = map[domain.Difficulty]int{
	domain.DifficultyEasy:   30,
	domain.DifficultyMedium: 50,
	domain.DifficultyHard:   70,
}

var timeEstimates = map[domain.Difficulty]int{
	domain.DifficultyEasy:   5,
	domain.DifficultyMedium: 10,
	domain.DifficultyHard:   15,
}

// Difficulties lists difficulties in the order challenges are returned.
var Difficulties = []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}

type template struct {
	title          string
	description    string
	topic          string
	starterCode    string
	hints          []string
	expectedOutput string
	testCases      []domain.TestCase
}

var templates = map[domain.Difficulty]template{
	domain.DifficultyEasy: {
		title:       "Variable Master",
		description: "Create variables and print your name and age",
		topic:       "variables",
		starterCode: "# Create variables for name and age\n# Then print both\n",
		hints: []string{
			"Use assignment operator (=) to create variables",
			`name = "Your Name" and age = 25`,
			"print(name) and print(age)",
		},
		expectedOutput: "Your Name\n25",
		testCases:      []domain.TestCase{{Expected: "Your Name\n25"}},
	},
	domain.DifficultyMedium: {
		title:       "Calculator Challenge",
		description: "Create a simple calculator that adds two numbers",
		topic:       "functions",
		starterCode: "# Create a function that adds two numbers\n",
		hints: []string{
			"Define a function with def add_numbers(a, b)",
			"Return the sum using return a + b",
			"Test with: result = add_numbers(5, 3)",
		},
		expectedOutput: "8",
		testCases:      []domain.TestCase{{Expected: "8"}},
	},
	domain.DifficultyHard: {
		title:       "Loop Master",
		description: "Use a for loop to print numbers 1-10",
		topic:       "loops",
		starterCode: "# Use a for loop to print numbers 1 through 10\n",
		hints: []string{
			"Use for i in range(1, 11):",
			"Remember range(1, 11) includes 1-10",
			"Print each number inside the loop",
		},
		expectedOutput: "1\n2\n3\n4\n5\n6\n7\n8\n9\n10",
		testCases:      []domain.TestCase{{Expected: "1\n2\n3\n4\n5\n6\n7\n8\n9\n10"}},
	},
}

// XPReward returns the fixed XP for a difficulty.
func XPReward(d domain.Difficulty) int { return xpRewards[d] }

// TimeEstimate returns the estimated minutes for a difficulty.
func TimeEstimate(d domain.Difficulty) int { return timeEstimates[d] }

// ID builds the challenge id for a difficulty and weekday, e.g. "easy_3".
func ID(d domain.Difficulty, day time.Weekday) string {
	return fmt.Sprintf("%s_%d", d, int(day))
}

// ForDay returns the easy, medium and hard challenge for a weekday.
func ForDay(day time.Weekday) []domain.DailyChallenge {
	out := make([]domain.DailyChallenge, 0, len(Difficulties))
	for _, d := range Difficulties {
		out = append(out, build(d, day))
	}
	return out
}

func build(d domain.Difficulty, day time.Weekday) domain.DailyChallenge {
	t := templates[d]
	return domain.DailyChallenge{
		ID:                  ID(d, day),
		Title:               t.title,
		Description:         t.description,
		Difficulty:          d,
		XPReward:            xpRewards[d],
		TimeEstimateMinutes: timeEstimates[d],
		Topic:               t.topic,
		StarterCode:         t.starterCode,
		ExpectedOutput:      t.expectedOutput,
		Hints:               append([]string(nil), t.hints...),
		TestCases:           append([]domain.TestCase(nil), t.testCases...),
		Weekday:             day,
	}
}

// ByID parses an id produced by ID and returns the matching challenge.
func ByID(id string) (domain.DailyChallenge, bool) {
	diff, dayStr, ok := strings.Cut(id, "_")
	if !ok {
		return domain.DailyChallenge{}, false
	}
	d := domain.Difficulty(diff)
	if _, known := templates[d]; !known {
		return domain.DailyChallenge{}, false
	}
	n, err := strconv.Atoi(dayStr)
	if err != nil || n < 0 || n > 6 {
		return domain.DailyChallenge{}, false
	}
	return build(d, time.Weekday(n)), true
}

// WeeklyRotation holds the challenges for the seven days starting at WeekStart.
type WeeklyRotation struct {
	WeekStart  time.Time
	Challenges []domain.DailyChallenge
}

// Rotation returns the week containing day, starting on Monday.
func Rotation(day time.Time) WeeklyRotation {
	y, m, d := day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	monday := midnight.AddDate(0, 0, -offset)

	var challenges []domain.DailyChallenge
	for i := 0; i < 7; i++ {
		challenges = append(challenges, ForDay(monday.AddDate(0, 0, i).Weekday())...)
	}
	return WeeklyRotation{WeekStart: monday, Challenges: challenges}
}

// Generate builds a topic challenge outside the daily rotation.
func Generate(d domain.Difficulty, topic string) (domain.DailyChallenge, error) {
	var title, description, starter string
	lower := strings.ToLower(topic)
	switch d {
	case domain.DifficultyEasy:
		title = topic + " Basics"
		description = fmt.Sprintf("Practice fundamental %s concepts", lower)
		starter = fmt.Sprintf("# %s practice\n", topic)
	case domain.DifficultyMedium:
		title = topic + " Practice"
		description = fmt.Sprintf("Apply %s in a practical scenario", lower)
		starter = fmt.Sprintf("# %s application\n", topic)
	case domain.DifficultyHard:
		title = topic + " Mastery"
		description = fmt.Sprintf("Advanced %s problem solving", lower)
		starter = fmt.Sprintf("# %s challenge\n", topic)
	default:
		return domain.DailyChallenge{}, fmt.Errorf("unknown difficulty %q", d)
	}
	return domain.DailyChallenge{
		ID:                  fmt.Sprintf("%s_%s", d, strings.ReplaceAll(lower, " ", "-")),
		Title:               title,
		Description:         description,
		Difficulty:          d,
		XPReward:            xpRewards[d],
		TimeEstimateMinutes: timeEstimates[d],
		Topic:               lower,
		StarterCode:         starter,
	}, nil
}

// StreakBonus is StreakBonusXP for a streak of at least seven days, else 0.
func StreakBonus(streak int) int {
	if streak >= StreakBonusDays {
		return StreakBonusXP
	}
	return 0
}

// PerformanceScore averages a time score and a hint score.
// Finishing within the estimate earns full time credit; each estimate's worth
// of overrun costs 50 points. Using every hint costs 30 points.
func PerformanceScore(spent, estimated time.Duration, hintsUsed, maxHints int) int {
	timeScore := 100.0
	if estimated > 0 && spent > estimated {
		over := float64(spent-estimated) / float64(estimated)
		timeScore = math.Max(0, 100-over*50)
	}
	hintScore := 100.0
	if maxHints > 0 {
		hintScore = math.Max(0, 100-float64(hintsUsed)/float64(maxHints)*30)
	}
	return int(math.Round((timeScore + hintScore) / 2))
}
