package validation

import (
	"strings"

	"github.com/jeeftor/perfscript/internal/perfscript"
)

var knownDirectives = []string{
	perfscript.ProjectDirective,
	perfscript.AssertTimeoutDirective,
}

// closestDirective returns the known directive nearest to word, or "" when
// none is within a third of the word's length.
func closestDirective(word string) string {
	best := ""
	bestDistance := len(word)/3 + 1
	for _, known := range knownDirectives {
		d := editDistance(strings.ToLower(word), strings.ToLower(known))
		if d < bestDistance {
			best, bestDistance = known, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
