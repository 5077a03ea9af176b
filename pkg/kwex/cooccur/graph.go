// Package cooccur builds the word co-occurrence graph underlying the RAKE
// candidate score. Two words co-occur when they belong to the same candidate
// phrase.
package cooccur

import (
	"sort"

	"github.com/cognicore/kwex/pkg/kwex/segment"
)

// Graph maps each normalized word to its frequency and degree across one
// document's candidate phrases. The degree counts the word itself plus every
// companion word per phrase, so degree(w) >= frequency(w) always, with
// equality exactly when w only ever appears in length-1 phrases.
type Graph struct {
	freq   map[string]int
	degree map[string]int
}

// Build aggregates statistics from the full candidate sequence of one
// document. Each phrase of length L adds 1 to the frequency and L to the
// degree of every word it contains. The graph is immutable after Build.
func Build(phrases []segment.Phrase) *Graph {
	g := &Graph{
		freq:   make(map[string]int),
		degree: make(map[string]int),
	}

	for _, phrase := range phrases {
		length := len(phrase)
		for _, tok := range phrase {
			g.freq[tok.Norm]++
			g.degree[tok.Norm] += length
		}
	}

	return g
}

// Frequency returns the occurrence count of word across all candidate
// phrases, or 0 for unknown words.
func (g *Graph) Frequency(word string) int {
	return g.freq[word]
}

// Degree returns the co-occurrence breadth of word, or 0 for unknown words.
func (g *Graph) Degree(word string) int {
	return g.degree[word]
}

// DistinctWords returns the number of unique words in the graph.
func (g *Graph) DistinctWords() int {
	return len(g.freq)
}

// Words returns all distinct words in sorted order.
func (g *Graph) Words() []string {
	out := make([]string, 0, len(g.freq))
	for w := range g.freq {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
