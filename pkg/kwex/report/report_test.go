package report

import (
	"testing"

	"github.com/cognicore/kwex/pkg/kwex"
)

func TestBuildFields(t *testing.T) {
	builder := New()

	keywords := []kwex.Keyword{
		{Text: "linear constraints", Score: 2.1},
		{Text: "natural numbers", Score: 1.4},
	}
	rep := builder.Build("docs/paper.txt", keywords)

	if rep.ID == "" {
		t.Error("Report should have an ID")
	}
	if rep.Target != "docs/paper.txt" {
		t.Errorf("Unexpected target: %q", rep.Target)
	}
	if rep.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if len(rep.Keywords) != 2 {
		t.Errorf("Expected 2 keywords, got %d", len(rep.Keywords))
	}
}

func TestBuildIDsUniqueAndOrdered(t *testing.T) {
	builder := New()

	var prev string
	for i := 0; i < 100; i++ {
		rep := builder.Build("target", nil)
		if rep.ID == prev {
			t.Fatal("Consecutive reports share an ID")
		}
		if rep.ID < prev {
			t.Fatalf("ULIDs should be monotonically increasing: %s after %s", rep.ID, prev)
		}
		prev = rep.ID
	}
}
