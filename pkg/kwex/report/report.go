// Package report records the outcome of extraction runs for persistence and
// later inspection.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/kwex/pkg/kwex"
)

// Report is the saved result of one extraction run. IDs are ULIDs, so
// lexicographic order is creation order.
type Report struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Target    string         `json:"target"`
	Keywords  []kwex.Keyword `json:"keywords"`
}

// Builder mints reports with monotonic ULID identifiers
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build creates a report for one extraction run. Target is a caller-chosen
// label for the target document, typically its path.
func (b *Builder) Build(target string, keywords []kwex.Keyword) Report {
	return Report{
		ID:        ulid.MustNew(ulid.Now(), b.entropy).String(),
		CreatedAt: time.Now().UTC(),
		Target:    target,
		Keywords:  keywords,
	}
}
