// Package corpus re-ranks pruned candidates against a corpus of related
// documents, weighting each candidate by term frequency times inverse
// document frequency.
package corpus

import (
	"math"
	"sync"

	"github.com/cognicore/kwex/pkg/kwex/rank"
	"github.com/cognicore/kwex/pkg/kwex/segment"
)

// Comparator computes corpus-aware weights for scored candidates.
type Comparator struct {
	// IncludeTarget counts the target document itself as a corpus document
	// for both total document count and per-phrase document frequency.
	IncludeTarget bool

	// Parallelism bounds how many corpus documents are processed
	// concurrently. Values below 2 select the sequential path. Parallel and
	// sequential runs produce identical results.
	Parallelism int
}

// Weighted pairs a candidate with its final weight.
type Weighted struct {
	rank.Candidate
	Weight float64
}

// Weigh computes weight = tf * log(totalDocs/df) per candidate.
//
// Term frequency is the sliding-window count of the candidate's normalized
// word sequence over the target's token stream. Document frequency counts
// corpus documents whose token stream contains the sequence; it is a raw
// text containment check, not a candidate check, and is floored at 1. With
// an empty corpus the discriminative factor is neutral and the weight
// degenerates to the term frequency alone.
func (c *Comparator) Weigh(candidates []rank.Candidate, targetTokens []segment.Token, corpusDocs []string) []Weighted {
	targetStream := normStream(targetTokens)

	sequences := make([][]string, len(candidates))
	for i, cand := range candidates {
		words := make([]string, len(cand.Phrase))
		for j, tok := range cand.Phrase {
			words[j] = tok.Norm
		}
		sequences[i] = words
	}

	freqs := c.documentFrequencies(sequences, corpusDocs)
	totalDocs := len(corpusDocs)
	if c.IncludeTarget {
		totalDocs++
	}

	out := make([]Weighted, len(candidates))
	for i, cand := range candidates {
		tf := float64(countSequence(targetStream, sequences[i]))

		if len(corpusDocs) == 0 {
			out[i] = Weighted{Candidate: cand, Weight: tf}
			continue
		}

		df := freqs[i]
		if c.IncludeTarget && containsSequence(targetStream, sequences[i]) {
			df++
		}
		if df < 1 {
			df = 1
		}

		out[i] = Weighted{
			Candidate: cand,
			Weight:    tf * math.Log(float64(totalDocs)/float64(df)),
		}
	}

	return out
}

// documentFrequencies counts, per sequence, the corpus documents containing
// it. The parallel path stores per-document containment vectors indexed by
// document and sums them after the workers join, so the counts are
// independent of execution order.
func (c *Comparator) documentFrequencies(sequences [][]string, corpusDocs []string) []int {
	counts := make([]int, len(sequences))

	if c.Parallelism > 1 && len(corpusDocs) > 1 {
		vectors := make([][]bool, len(corpusDocs))
		jobs := make(chan int)

		workers := c.Parallelism
		if workers > len(corpusDocs) {
			workers = len(corpusDocs)
		}

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for idx := range jobs {
					vectors[idx] = containmentVector(sequences, corpusDocs[idx])
				}
			}()
		}
		for idx := range corpusDocs {
			jobs <- idx
		}
		close(jobs)
		wg.Wait()

		for _, vec := range vectors {
			for i, contained := range vec {
				if contained {
					counts[i]++
				}
			}
		}
		return counts
	}

	for _, doc := range corpusDocs {
		for i, contained := range containmentVector(sequences, doc) {
			if contained {
				counts[i]++
			}
		}
	}
	return counts
}

// containmentVector tokenizes one document and checks every sequence
// against its token stream.
func containmentVector(sequences [][]string, doc string) []bool {
	stream := normStream(segment.Words(doc))
	vec := make([]bool, len(sequences))
	for i, words := range sequences {
		vec[i] = containsSequence(stream, words)
	}
	return vec
}

func normStream(tokens []segment.Token) []string {
	stream := make([]string, len(tokens))
	for i, tok := range tokens {
		stream[i] = tok.Norm
	}
	return stream
}

// containsSequence reports whether words occurs as a contiguous run in
// stream.
func containsSequence(stream, words []string) bool {
	if len(words) == 0 {
		return false
	}
outer:
	for i := 0; i+len(words) <= len(stream); i++ {
		for j, w := range words {
			if stream[i+j] != w {
				continue outer
			}
		}
		return true
	}
	return false
}

// countSequence counts contiguous occurrences of words in stream, including
// overlapping ones.
func countSequence(stream, words []string) int {
	if len(words) == 0 {
		return 0
	}
	count := 0
outer:
	for i := 0; i+len(words) <= len(stream); i++ {
		for j, w := range words {
			if stream[i+j] != w {
				continue outer
			}
		}
		count++
	}
	return count
}
