package suggest

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Match is one ranked candidate for an unrecognized word.
type Match struct {
	Text  string
	Score float64
}

// Rank scores every candidate against word using Jaro-Winkler similarity
// and returns the top n matches, best first. Candidates that fail to score
// (go-edlib rejects empty input) are skipped rather than propagated, since
// a suggestion list is best-effort and never the cause of a command failure.
func Rank(word string, candidates []string, n int) []Match {
	if word == "" || len(candidates) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c == word {
			continue
		}
		score, err := edlib.StringsSimilarity(word, c, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		matches = append(matches, Match{Text: c, Score: float64(score)})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}
