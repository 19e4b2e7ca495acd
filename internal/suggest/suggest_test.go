package suggest

import "testing"

func TestRankOrdersBySimilarity(t *testing.T) {
	matches := Rank("civc", []string{"civic", "corolla", "accord"}, 2)
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].Text != "civic" {
		t.Errorf("expected \"civic\" to rank first for typo \"civc\", got %q", matches[0].Text)
	}
	if len(matches) > 2 {
		t.Errorf("expected at most 2 matches, got %d", len(matches))
	}
}

func TestRankSkipsExactMatch(t *testing.T) {
	matches := Rank("civic", []string{"civic"}, 5)
	if len(matches) != 0 {
		t.Errorf("expected no suggestions for an exact match, got %v", matches)
	}
}

func TestRankEmptyInputs(t *testing.T) {
	if got := Rank("", []string{"civic"}, 5); got != nil {
		t.Errorf("expected nil for empty word, got %v", got)
	}
	if got := Rank("civic", nil, 5); got != nil {
		t.Errorf("expected nil for no candidates, got %v", got)
	}
}
