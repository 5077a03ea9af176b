package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/kwex/pkg/kwex/report"
	"github.com/cognicore/kwex/pkg/kwex/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu        sync.RWMutex
	nextID    int64
	docs      map[int64]store.Doc
	nameIndex map[string]int64
	reports   map[string]report.Report
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		nextID:    1,
		docs:      make(map[int64]store.Doc),
		nameIndex: make(map[string]int64),
		reports:   make(map[string]report.Report),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertDoc inserts or updates a document, keyed by name.
func (s *Store) UpsertDoc(ctx context.Context, d store.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Name == "" {
		return nil
	}

	var id int64
	if existingID, ok := s.nameIndex[d.Name]; ok {
		id = existingID
	} else {
		id = s.nextID
		s.nextID++
		s.nameIndex[d.Name] = id
	}

	d.ID = id
	s.docs[id] = d
	return nil
}

// GetDoc returns a document by ID.
func (s *Store) GetDoc(ctx context.Context, id int64) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	return doc, ok, nil
}

// GetDocByName returns a document by its source name.
func (s *Store) GetDocByName(ctx context.Context, name string) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.nameIndex[name]; ok {
		doc, exists := s.docs[id]
		return doc, exists, nil
	}
	return store.Doc{}, false, nil
}

// ListDocs returns all documents ordered by ID.
func (s *Store) ListDocs(ctx context.Context) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]store.Doc, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// CountDocs returns the number of stored documents.
func (s *Store) CountDocs(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.docs)), nil
}

// SaveReport stores an extraction report by ID.
func (s *Store) SaveReport(ctx context.Context, r report.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports[r.ID] = r
	return nil
}

// GetReport returns a report by ID.
func (s *Store) GetReport(ctx context.Context, id string) (report.Report, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	return r, ok, nil
}

// ListReports returns up to limit reports, newest first. ULIDs sort
// lexicographically by creation time.
func (s *Store) ListReports(ctx context.Context, limit int) ([]report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]report.Report, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ID > reports[j].ID
	})
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}
