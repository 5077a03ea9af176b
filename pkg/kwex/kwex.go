// Package kwex extracts representative keywords from a target document
// relative to a small corpus of related documents.
//
// The pipeline combines an intra-document statistical score with an
// inter-document discriminative score:
//
//  1. segment the target into stopword-delimited candidate phrases
//  2. build a word co-occurrence graph from the candidates
//  3. score candidates by summed degree/frequency and prune to the top third
//  4. re-rank the survivors by TF-IDF against the corpus documents
//
// Every extraction derives all state fresh from its inputs; nothing persists
// between calls. The pipeline performs no I/O.
//
// Sources:
//   - Rose, Stuart, et al. "Automatic keyword extraction from individual
//     documents." Text Mining (2010): 1-20.
//   - Mihalcea, Rada, and Paul Tarau. "TextRank: Bringing order into texts."
//     Association for Computational Linguistics, 2004.
package kwex

import (
	"fmt"
	"sort"

	"github.com/cognicore/kwex/pkg/kwex/cooccur"
	"github.com/cognicore/kwex/pkg/kwex/corpus"
	"github.com/cognicore/kwex/pkg/kwex/internalerr"
	"github.com/cognicore/kwex/pkg/kwex/rank"
	"github.com/cognicore/kwex/pkg/kwex/segment"
	"github.com/cognicore/kwex/pkg/kwex/stopwords"
)

// Keyword is one ranked extraction result. Text is the keyword's surface
// form as it first appeared in the target document.
type Keyword struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Options configures an Extractor.
type Options struct {
	// Stopwords delimit candidate phrases. When empty, DefaultStopwords is
	// used. Ignored when Segmenter is set.
	Stopwords []string

	// MaxKeywordSize caps the number of words per returned keyword. Longer
	// phrases still contribute co-occurrence statistics. Must be >= 1.
	MaxKeywordSize int

	// IncludeTarget counts the target document as part of the corpus when
	// computing document frequencies.
	IncludeTarget bool

	// Parallelism bounds concurrent corpus-document processing during
	// re-ranking; values below 2 run sequentially. Results do not depend on
	// this setting.
	Parallelism int

	// Segmenter overrides the default rule-based segmenter.
	Segmenter segment.Segmenter
}

// Extractor runs the keyword extraction pipeline.
type Extractor struct {
	seg        segment.Segmenter
	comparator corpus.Comparator
	maxSize    int
}

// New creates an extractor, failing fast on invalid configuration.
func New(opts Options) (*Extractor, error) {
	if opts.MaxKeywordSize < 1 {
		return nil, fmt.Errorf("%w: max keyword size must be >= 1, got %d",
			internalerr.ErrInvalidConfig, opts.MaxKeywordSize)
	}

	seg := opts.Segmenter
	if seg == nil {
		words := opts.Stopwords
		if len(words) == 0 {
			words = DefaultStopwords()
		}
		seg = segment.NewRuleSegmenter(stopwords.New(words))
	}

	return &Extractor{
		seg: seg,
		comparator: corpus.Comparator{
			IncludeTarget: opts.IncludeTarget,
			Parallelism:   opts.Parallelism,
		},
		maxSize: opts.MaxKeywordSize,
	}, nil
}

// Extract returns up to limit keywords for target, ordered by descending
// weight. Equal weights fall back to the intra-document score, then to
// first-occurrence order in the target, so output is deterministic for
// identical inputs.
//
// An empty or whitespace-only target yields an empty list; an empty corpus
// degrades the weight to plain term frequency. Neither is an error. A limit
// exceeding the number of candidates returns all of them.
func (e *Extractor) Extract(target string, corpusDocs []string, limit int) ([]Keyword, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be >= 1, got %d",
			internalerr.ErrInvalidConfig, limit)
	}

	phrases := e.seg.Phrases(target)
	if len(phrases) == 0 {
		return []Keyword{}, nil
	}

	graph := cooccur.Build(phrases)
	candidates := rank.ScoreCandidates(graph, phrases, e.maxSize)
	pruned := rank.Prune(candidates, graph.DistinctWords())

	weighted := e.comparator.Weigh(pruned, segment.Words(target), corpusDocs)

	// The input is already ordered score-then-occurrence, so a stable sort
	// on (weight, score) leaves full ties in first-occurrence order.
	sort.SliceStable(weighted, func(i, j int) bool {
		if weighted[i].Weight != weighted[j].Weight {
			return weighted[i].Weight > weighted[j].Weight
		}
		return weighted[i].Score > weighted[j].Score
	})

	if len(weighted) > limit {
		weighted = weighted[:limit]
	}

	keywords := make([]Keyword, len(weighted))
	for i, w := range weighted {
		keywords[i] = Keyword{Text: w.Phrase.Surface(), Score: w.Weight}
	}
	return keywords, nil
}

// Extract runs a single extraction with the default stopword set. It is the
// convenience form of the pipeline's one operation.
func Extract(target string, corpusDocs []string, maxKeywordSize, limit int) ([]Keyword, error) {
	e, err := New(Options{MaxKeywordSize: maxKeywordSize})
	if err != nil {
		return nil, err
	}
	return e.Extract(target, corpusDocs, limit)
}
