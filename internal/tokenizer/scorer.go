package tokenizer

import (
	"github.com/standardbeagle/tokcat/internal/matcher"
	"github.com/standardbeagle/tokcat/internal/term"
)

// ScoreFloor is the minimum score an edge may carry before it is clamped to
// -1 and deprioritized. The reference implementation hardcodes 0.01; this
// is kept as a package variable, per the source's own note that the
// constant is tuned and should be exposed as configurable, without
// changing the default behavior.
var ScoreFloor = 0.01

// scoreDiff implements the matchFactor/commonFactor/positionFactor/
// lengthFactor scoring formula over a matcher's DiffResults. It returns
// (0, 0) when diff carries no match at all — signaling "no edge" rather
// than a low-scoring one — and otherwise always returns a positive length,
// even when the score itself is clamped to -1.
func scoreDiff(prefix []term.Hash, isDownstream func(term.Hash) bool, diff matcher.DiffResults) (float64, int) {
	if len(diff.Match) == 0 {
		return 0, 0
	}

	length := diff.RightmostA + 1
	if length <= 0 {
		return 0, 0
	}

	var matchFactor float64
	if length > diff.Cost {
		matchFactor = float64(length-diff.Cost) / float64(length)
	} else {
		matchFactor = 1 / float64(length+diff.Cost)
	}

	commonFactor := float64(len(diff.CommonTerms)) / float64(len(diff.Match))
	positionFactor := float64(maxInt(len(diff.Match)-diff.LeftmostA, 0)) / float64(len(diff.Match))
	lengthFactor := float64(len(diff.Match))

	score := matchFactor * commonFactor * positionFactor * lengthFactor

	downstreamCount := 0
	for h := range diff.CommonTerms {
		if isDownstream(h) {
			downstreamCount++
		}
	}
	if len(diff.CommonTerms) > 0 && len(diff.CommonTerms) == downstreamCount && len(diff.CommonTerms) != len(prefix) {
		score = -1
	}
	if score <= ScoreFloor {
		score = -1
	}

	return score, length
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
