package memstore

import (
	"context"
	"testing"

	"github.com/cognicore/kwex/pkg/kwex"
	"github.com/cognicore/kwex/pkg/kwex/report"
	"github.com/cognicore/kwex/pkg/kwex/store"
)

func TestUpsertAndGetDoc(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.UpsertDoc(ctx, store.Doc{Name: "a.txt", Body: "first body"}); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}

	doc, found, err := s.GetDocByName(ctx, "a.txt")
	if err != nil || !found {
		t.Fatalf("GetDocByName: found=%v err=%v", found, err)
	}
	if doc.Body != "first body" {
		t.Errorf("Unexpected body: %q", doc.Body)
	}

	// Upsert with the same name keeps the ID and replaces the body.
	if err := s.UpsertDoc(ctx, store.Doc{Name: "a.txt", Body: "second body"}); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}
	updated, found, err := s.GetDoc(ctx, doc.ID)
	if err != nil || !found {
		t.Fatalf("GetDoc: found=%v err=%v", found, err)
	}
	if updated.Body != "second body" {
		t.Errorf("Expected replaced body, got %q", updated.Body)
	}

	count, err := s.CountDocs(ctx)
	if err != nil {
		t.Fatalf("CountDocs: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 document, got %d", count)
	}
}

func TestListDocsOrdered(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		if err := s.UpsertDoc(ctx, store.Doc{Name: name, Body: name}); err != nil {
			t.Fatalf("UpsertDoc: %v", err)
		}
	}

	docs, err := s.ListDocs(ctx)
	if err != nil {
		t.Fatalf("ListDocs: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("Expected 3 docs, got %d", len(docs))
	}
	// Insertion order, not name order.
	if docs[0].Name != "c.txt" || docs[2].Name != "b.txt" {
		t.Errorf("Unexpected order: %v", docs)
	}
}

func TestUpsertDocEmptyNameIgnored(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.UpsertDoc(ctx, store.Doc{Body: "nameless"}); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}
	count, _ := s.CountDocs(ctx)
	if count != 0 {
		t.Errorf("Nameless doc should be ignored, got %d docs", count)
	}
}

func TestReportsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	builder := report.New()

	first := builder.Build("one.txt", []kwex.Keyword{{Text: "alpha", Score: 1}})
	second := builder.Build("two.txt", nil)

	for _, r := range []report.Report{first, second} {
		if err := s.SaveReport(ctx, r); err != nil {
			t.Fatalf("SaveReport: %v", err)
		}
	}

	got, found, err := s.GetReport(ctx, first.ID)
	if err != nil || !found {
		t.Fatalf("GetReport: found=%v err=%v", found, err)
	}
	if got.Target != "one.txt" || len(got.Keywords) != 1 {
		t.Errorf("Unexpected report: %+v", got)
	}

	reports, err := s.ListReports(ctx, 10)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}
	// Newest first.
	if reports[0].ID != second.ID {
		t.Errorf("Expected newest report first, got %s", reports[0].ID)
	}

	limited, err := s.ListReports(ctx, 1)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected limit to apply, got %d", len(limited))
	}
}

func TestGetReportMissing(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, found, err := s.GetReport(ctx, "nope")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if found {
		t.Error("Missing report should not be found")
	}
}
