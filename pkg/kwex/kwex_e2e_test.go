package kwex_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/kwex/pkg/kwex"
	"github.com/cognicore/kwex/pkg/kwex/config"
	"github.com/cognicore/kwex/pkg/kwex/report"
	"github.com/cognicore/kwex/pkg/kwex/store/memstore"
)

// TestEndToEnd exercises the complete workflow:
// 1. Configuration loading
// 2. Keyword extraction against a corpus
// 3. Report building
// 4. Report persistence
func TestEndToEnd(t *testing.T) {
	ctx := context.Background()

	// === Phase 1: Configuration ===

	dir := t.TempDir()
	stoplistPath := filepath.Join(dir, "stoplist.yaml")
	err := os.WriteFile(stoplistPath, []byte(
		"terms: [the, a, an, and, of, in, is, are, for, with, from, by, to, over]\n",
	), 0o644)
	if err != nil {
		t.Fatalf("write stoplist: %v", err)
	}

	loader := config.Loader{
		StoplistPath:   stoplistPath,
		MaxKeywordSize: 3,
		Limit:          5,
	}
	components, err := loader.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	// === Phase 2: Extraction ===

	target := "Compatibility of systems of linear constraints over the set of natural numbers. " +
		"Criteria of compatibility of a system of linear Diophantine equations are given. " +
		"Upper bounds for minimal solutions of linear constraints are established."

	corpus := []string{
		"Natural numbers and the set of integers are studied in number theory.",
		"Systems of equations appear in a wide range of problems.",
		"Upper bounds for runtime are a standard tool in algorithm analysis.",
	}

	keywords, err := components.Extractor.Extract(target, corpus, components.Settings.Limit)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(keywords) == 0 {
		t.Fatal("Expected keywords from a substantive target")
	}
	if len(keywords) > components.Settings.Limit {
		t.Fatalf("Got %d keywords, limit is %d", len(keywords), components.Settings.Limit)
	}
	for i := 1; i < len(keywords); i++ {
		if keywords[i].Score > keywords[i-1].Score {
			t.Errorf("Keywords not in descending score order: %v", keywords)
		}
	}

	// "linear constraints" recurs in the target but appears in no corpus
	// document, so it should survive pruning and re-ranking.
	found := false
	for _, kw := range keywords {
		if kw.Text == "linear constraints" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected 'linear constraints' among keywords, got %v", keywords)
	}

	// === Phase 3: Report building and persistence ===

	rep := report.New().Build("paper.txt", keywords)
	st := memstore.New()
	defer st.Close()

	if err := st.SaveReport(ctx, rep); err != nil {
		t.Fatalf("save report: %v", err)
	}

	stored, ok, err := st.GetReport(ctx, rep.ID)
	if err != nil || !ok {
		t.Fatalf("get report: ok=%v err=%v", ok, err)
	}
	if len(stored.Keywords) != len(keywords) {
		t.Errorf("Stored report lost keywords: %d vs %d", len(stored.Keywords), len(keywords))
	}
}

// TestEndToEndEmptyTargetNonEmptyCorpus verifies the degenerate-input
// contract at the facade level.
func TestEndToEndEmptyTargetNonEmptyCorpus(t *testing.T) {
	extractor, err := kwex.New(kwex.Options{MaxKeywordSize: 3})
	if err != nil {
		t.Fatalf("new extractor: %v", err)
	}

	keywords, err := extractor.Extract("", []string{"some corpus document"}, 10)
	if err != nil {
		t.Fatalf("empty target must not error, got %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("Expected empty keyword list, got %v", keywords)
	}
}
