package matcher

import "github.com/standardbeagle/tokcat/internal/term"

// Predicate classifies a fingerprint, e.g. "is this hash downstream of the
// alias under consideration" or "is this hash an opaque token".
type Predicate func(term.Hash) bool

// DiffResults is the alignment statistics produced by a Matcher.
type DiffResults struct {
	Match       []term.Hash
	Cost        int
	LeftmostA   int
	RightmostA  int
	Alignments  int
	CommonTerms map[term.Hash]struct{}
}

// Func is the contract every matcher variant implements: align a query
// fingerprint tail against an alias's fingerprints, refusing to spend edits
// on fingerprints the predicates mark downstream or opaque.
type Func func(query, prefix []term.Hash, isDownstream, isOpaque Predicate) DiffResults

// Name identifies a matcher variant, as selected per-alias or per-domain by
// the catalog.
type Name string

const (
	ExactPrefix Name = "exact-prefix"
	Approximate Name = "approximate"
)

var registry = map[Name]Func{
	ExactPrefix: ExactPrefixMatch,
	Approximate: ApproximateMatch,
}

// Lookup resolves a matcher variant by name.
func Lookup(name Name) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

func commonTermSet(hashes []term.Hash) map[term.Hash]struct{} {
	set := make(map[term.Hash]struct{}, len(hashes))
	for _, h := range hashes {
		set[h] = struct{}{}
	}
	return set
}

// ExactPrefixMatch returns the longest common prefix of query and prefix,
// unchanged, but only when prefix is consumed in full: an alias only wins
// an exact-prefix edge when the whole alias literally prefixes the query
// tail. A partial or absent match reports a zero-value DiffResults so the
// scorer treats it as no edge at all rather than a low-scoring one.
func ExactPrefixMatch(query, prefix []term.Hash, isDownstream, isOpaque Predicate) DiffResults {
	if len(prefix) == 0 || len(prefix) > len(query) {
		return DiffResults{}
	}
	for i, h := range prefix {
		if query[i] != h {
			return DiffResults{}
		}
	}
	match := append([]term.Hash(nil), prefix...)
	return DiffResults{
		Match:       match,
		Cost:        0,
		LeftmostA:   0,
		RightmostA:  len(prefix) - 1,
		Alignments:  len(prefix),
		CommonTerms: commonTermSet(match),
	}
}

// maxSlack bounds how far past the alias's own length the approximate
// matcher will look for insertions, keeping the DP table small and the
// match local to the alias rather than wandering across the whole query.
const maxSlack = 3

const bigCost = 1 << 20

// ApproximateMatch aligns query against prefix with a Levenshtein-style edit
// distance, windowed to len(prefix)+maxSlack fingerprints of the query so
// the match stays local. Substituting one fingerprint for another is
// disallowed when either side is downstream or opaque; those fingerprints
// must align exactly or be skipped via an insert/delete instead.
func ApproximateMatch(query, prefix []term.Hash, isDownstream, isOpaque Predicate) DiffResults {
	if len(prefix) == 0 {
		return DiffResults{}
	}
	windowLen := len(prefix) + maxSlack
	if windowLen > len(query) {
		windowLen = len(query)
	}
	a := query[:windowLen]
	b := prefix

	restricted := func(h term.Hash) bool {
		return isDownstream(h) || isOpaque(h)
	}

	n, m := len(a), len(b)
	// dp[i][j] = min edit cost to align a[:i] with b[:j].
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 0; i <= n; i++ {
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			subCost := 1
			if restricted(a[i-1]) || restricted(b[j-1]) {
				subCost = bigCost
			}
			best := dp[i-1][j-1] + subCost
			if v := dp[i-1][j] + 1; v < best {
				best = v
			}
			if v := dp[i][j-1] + 1; v < best {
				best = v
			}
			dp[i][j] = best
		}
	}

	// The alias must be consumed in full, but the alignment may end anywhere
	// in the window: backtrack from the row with the lowest cost for the whole
	// prefix (the furthest such row on ties), so query fingerprints after the
	// last aligned one are neither charged nor covered.
	end := 0
	for r := 1; r <= n; r++ {
		if dp[r][m] <= dp[end][m] {
			end = r
		}
	}
	i, j := end, m
	var matched []term.Hash
	commonTerms := make(map[term.Hash]struct{})
	alignments := 0
	leftmost, rightmost := -1, -1

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && dp[i][j] == dp[i-1][j-1]:
			matched = append(matched, a[i-1])
			commonTerms[a[i-1]] = struct{}{}
			alignments++
			if rightmost == -1 {
				rightmost = i - 1
			}
			leftmost = i - 1
			i--
			j--
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+1 && !(restricted(a[i-1]) || restricted(b[j-1])):
			matched = append(matched, a[i-1])
			if rightmost == -1 {
				rightmost = i - 1
			}
			leftmost = i - 1
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			if rightmost == -1 {
				rightmost = i - 1
			}
			leftmost = i - 1
			i--
		case j > 0 && dp[i][j] == dp[i][j-1]+1:
			j--
		default:
			// Degenerate cell reached only via a bigCost substitution; treat
			// remaining alias fingerprints as unmatched deletions.
			j--
		}
	}

	if alignments == 0 {
		return DiffResults{}
	}

	// matched was built back-to-front.
	for l, r := 0, len(matched)-1; l < r; l, r = l+1, r-1 {
		matched[l], matched[r] = matched[r], matched[l]
	}

	cost := dp[end][m]
	if cost >= bigCost {
		cost = len(b) // restricted fingerprints made full alignment impossible; fall back to full replace cost.
	}

	return DiffResults{
		Match:       matched,
		Cost:        cost,
		LeftmostA:   leftmost,
		RightmostA:  rightmost,
		Alignments:  alignments,
		CommonTerms: commonTerms,
	}
}
