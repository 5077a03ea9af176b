package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/kwex/internal/textload"
	"github.com/cognicore/kwex/pkg/kwex"
	"github.com/cognicore/kwex/pkg/kwex/config"
	"github.com/cognicore/kwex/pkg/kwex/report"
	"github.com/cognicore/kwex/pkg/kwex/store"
	"github.com/cognicore/kwex/pkg/kwex/store/sqlite"
)

type output struct {
	Target     string         `json:"target"`
	CorpusDocs int            `json:"corpus_docs"`
	ReportID   string         `json:"report_id,omitempty"`
	Keywords   []kwex.Keyword `json:"keywords"`
}

func main() {
	var (
		targetPath  = flag.String("target", "", "Path to the target document (required)")
		corpusDir   = flag.String("corpus-dir", "", "Directory of corpus documents (*.txt, *.html)")
		corpusJSONL = flag.String("corpus-jsonl", "", "JSONL file of corpus documents")
		dbPath      = flag.String("db", "", "SQLite corpus database (see kwex-index)")
		stoplistCfg = flag.String("stoplist", "", "Stoplist YAML file (default: built-in English list)")
		settingsCfg = flag.String("settings", "", "Extraction settings YAML file")
		maxSize     = flag.Int("max-size", 0, "Override: maximum words per keyword")
		limit       = flag.Int("limit", 0, "Override: number of keywords to return")
		includeTgt  = flag.Bool("include-target", false, "Count the target as a corpus document")
		parallel    = flag.Int("parallel", 0, "Corpus workers during re-ranking (<2 = sequential)")
		save        = flag.Bool("save", false, "Persist the extraction report (requires --db)")
	)
	flag.Parse()

	if *targetPath == "" {
		log.Fatal("--target required")
	}
	if *save && *dbPath == "" {
		log.Fatal("--save requires --db")
	}

	ctx := context.Background()

	loader := config.Loader{
		StoplistPath:   *stoplistCfg,
		SettingsPath:   *settingsCfg,
		MaxKeywordSize: *maxSize,
		Limit:          *limit,
		IncludeTarget:  *includeTgt,
		Parallelism:    *parallel,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	target, err := textload.FromFile(*targetPath)
	if err != nil {
		log.Fatalf("load target: %v", err)
	}

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer st.Close()
	}

	corpus, err := loadCorpus(ctx, *corpusDir, *corpusJSONL, st)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	keywords, err := components.Extractor.Extract(target, corpus, components.Settings.Limit)
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	out := output{
		Target:     *targetPath,
		CorpusDocs: len(corpus),
		Keywords:   keywords,
	}

	if *save {
		rep := report.New().Build(*targetPath, keywords)
		if err := st.SaveReport(ctx, rep); err != nil {
			log.Fatalf("save report: %v", err)
		}
		out.ReportID = rep.ID
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}

// loadCorpus gathers corpus document bodies from whichever sources were
// given; sources combine when more than one is set.
func loadCorpus(ctx context.Context, dir, jsonl string, st store.Store) ([]string, error) {
	var bodies []string

	if dir != "" {
		docs, err := textload.FromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			bodies = append(bodies, doc.Body)
		}
	}

	if jsonl != "" {
		docs, err := textload.FromJSONL(jsonl)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			bodies = append(bodies, doc.Body)
		}
	}

	if st != nil {
		docs, err := st.ListDocs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list stored docs: %w", err)
		}
		for _, doc := range docs {
			bodies = append(bodies, doc.Body)
		}
	}

	return bodies, nil
}
