// Package store persists corpus documents and extraction reports. The
// extraction pipeline itself never touches a store; this layer exists for
// the CLIs, which index a corpus once and run many extractions against it.
package store

import (
	"context"

	"github.com/cognicore/kwex/pkg/kwex/report"
)

// Store is the persistence interface for corpus documents and reports
type Store interface {
	Close() error

	// Corpus documents
	UpsertDoc(ctx context.Context, d Doc) error
	GetDoc(ctx context.Context, id int64) (Doc, bool, error)
	GetDocByName(ctx context.Context, name string) (Doc, bool, error)
	ListDocs(ctx context.Context) ([]Doc, error)
	CountDocs(ctx context.Context) (int64, error)

	// Extraction reports
	SaveReport(ctx context.Context, r report.Report) error
	GetReport(ctx context.Context, id string) (report.Report, bool, error)
	ListReports(ctx context.Context, limit int) ([]report.Report, error)
}

// Doc is a stored corpus document, keyed by its source name (typically the
// file path or identifier it was loaded from).
type Doc struct {
	ID   int64
	Name string
	Body string
}
