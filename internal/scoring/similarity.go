package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// maxPartialScore caps credit for an arrangement that is close but not correct.
const maxPartialScore = 75

// Similarity is 1 - editDistance/len(longer), with two empty strings fully similar.
func Similarity(a, b string) float64 {
	longer, shorter := a, b
	if utf8.RuneCountInString(b) > utf8.RuneCountInString(a) {
		longer, shorter = b, a
	}
	n := utf8.RuneCountInString(longer)
	if n == 0 {
		return 1
	}
	d := levenshtein.Distance(longer, shorter, nil)
	return float64(n-d) / float64(n)
}

// PartialScore compares answer against every candidate and returns the best
// similarity as a percentage, capped at 75.
func PartialScore(answer string, candidates []string) int {
	best := 0
	for _, c := range candidates {
		s := int(math.Round(Similarity(answer, c) * 100))
		if s > best {
			best = s
		}
	}
	if best > maxPartialScore {
		return maxPartialScore
	}
	return best
}

func joinBlocks(order []string, code map[string]string) string {
	parts := make([]string, 0, len(order))
	for _, id := range order {
		parts = append(parts, code[id])
	}
	return strings.Join(parts, "\n")
}
