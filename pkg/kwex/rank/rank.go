// Package rank scores candidate phrases against the co-occurrence graph and
// prunes them to the strongest third, following Rose et al. (2010) for the
// degree/frequency score and Mihalcea and Tarau (2004) for the cut size.
package rank

import (
	"sort"

	"github.com/cognicore/kwex/pkg/kwex/cooccur"
	"github.com/cognicore/kwex/pkg/kwex/segment"
)

// Candidate pairs a unique phrase with its intra-document score.
type Candidate struct {
	Phrase segment.Phrase
	Score  float64

	// order is the phrase's first-occurrence position in the document,
	// preserved through sorting as the stable tie-break.
	order int
}

// ScoreCandidates computes score(phrase) = sum of degree(w)/frequency(w) over
// the phrase's words. Phrases are deduplicated by normalized form, keeping
// the first occurrence. Phrases longer than maxKeywordSize are excluded from
// the pool; their words still contributed statistics to the graph.
func ScoreCandidates(g *cooccur.Graph, phrases []segment.Phrase, maxKeywordSize int) []Candidate {
	seen := make(map[string]struct{}, len(phrases))
	var candidates []Candidate

	for i, phrase := range phrases {
		norm := phrase.Norm()
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}

		if len(phrase) > maxKeywordSize {
			continue
		}

		score := 0.0
		for _, tok := range phrase {
			freq := g.Frequency(tok.Norm)
			if freq == 0 {
				continue
			}
			score += float64(g.Degree(tok.Norm)) / float64(freq)
		}

		candidates = append(candidates, Candidate{
			Phrase: phrase,
			Score:  score,
			order:  i,
		})
	}

	return candidates
}

// Prune keeps the floor(distinctWords/3) highest-scoring candidates, sorted
// by score descending with first-occurrence order breaking ties. When fewer
// than three distinct words exist the cut would be empty, so all candidates
// are returned instead.
func Prune(candidates []Candidate, distinctWords int) []Candidate {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	n := distinctWords / 3
	if n == 0 {
		return sorted
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
