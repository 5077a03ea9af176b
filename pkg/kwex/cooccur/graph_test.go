package cooccur

import (
	"testing"

	"github.com/cognicore/kwex/pkg/kwex/segment"
	"github.com/cognicore/kwex/pkg/kwex/stopwords"
)

func phrasesFrom(t *testing.T, text string, stops []string) []segment.Phrase {
	t.Helper()
	seg := segment.NewRuleSegmenter(stopwords.New(stops))
	return seg.Phrases(text)
}

func TestBuildBasic(t *testing.T) {
	phrases := phrasesFrom(t,
		"Fast keyword extraction can be done quickly. Keyword extraction is useful.",
		[]string{"can", "be", "done", "is"})

	g := Build(phrases)

	if g.DistinctWords() != 5 {
		t.Fatalf("Expected 5 distinct words, got %d", g.DistinctWords())
	}

	checks := []struct {
		word   string
		freq   int
		degree int
	}{
		{"fast", 1, 3},
		{"keyword", 2, 5},
		{"extraction", 2, 5},
		{"quickly", 1, 1},
		{"useful", 1, 1},
	}
	for _, c := range checks {
		if got := g.Frequency(c.word); got != c.freq {
			t.Errorf("frequency(%s) = %d, want %d", c.word, got, c.freq)
		}
		if got := g.Degree(c.word); got != c.degree {
			t.Errorf("degree(%s) = %d, want %d", c.word, got, c.degree)
		}
	}
}

func TestDegreeAtLeastFrequency(t *testing.T) {
	phrases := phrasesFrom(t,
		"Linear diophantine equations and strict inequations are considered. "+
			"Upper bounds for components of a minimal set of solutions and "+
			"algorithms of construction of minimal generating sets are given.",
		[]string{"and", "are", "for", "of", "a", "given", "considered"})

	g := Build(phrases)

	for _, word := range g.Words() {
		if g.Degree(word) < g.Frequency(word) {
			t.Errorf("degree(%s)=%d < frequency(%s)=%d",
				word, g.Degree(word), word, g.Frequency(word))
		}
	}
}

func TestDegreeEqualsFrequencyForLoneWords(t *testing.T) {
	phrases := phrasesFrom(t, "alpha. beta. alpha.", nil)

	g := Build(phrases)

	// alpha appears twice, always alone: degree == frequency == 2.
	if g.Degree("alpha") != 2 || g.Frequency("alpha") != 2 {
		t.Errorf("lone word: degree=%d freq=%d, want 2/2",
			g.Degree("alpha"), g.Frequency("alpha"))
	}
}

func TestDegreeExceedsFrequencyInLongPhrases(t *testing.T) {
	phrases := phrasesFrom(t, "minimal generating sets", nil)

	g := Build(phrases)

	for _, word := range []string{"minimal", "generating", "sets"} {
		if g.Degree(word) != 3 || g.Frequency(word) != 1 {
			t.Errorf("%s: degree=%d freq=%d, want 3/1",
				word, g.Degree(word), g.Frequency(word))
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	phrases := phrasesFrom(t,
		"Fast keyword extraction can be done quickly. Keyword extraction is useful.",
		[]string{"can", "be", "done", "is"})

	first := Build(phrases)
	second := Build(phrases)

	if first.DistinctWords() != second.DistinctWords() {
		t.Fatal("Rebuilding changed the word set")
	}
	for _, word := range first.Words() {
		if first.Frequency(word) != second.Frequency(word) {
			t.Errorf("frequency(%s) differs between builds", word)
		}
		if first.Degree(word) != second.Degree(word) {
			t.Errorf("degree(%s) differs between builds", word)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	g := Build(nil)

	if g.DistinctWords() != 0 {
		t.Errorf("Empty candidate sequence should yield empty graph, got %d words", g.DistinctWords())
	}
	if g.Frequency("anything") != 0 || g.Degree("anything") != 0 {
		t.Error("Unknown words should report zero statistics")
	}
}
