package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/kwex/internal/textload"
	"github.com/cognicore/kwex/pkg/kwex/store"
	"github.com/cognicore/kwex/pkg/kwex/store/sqlite"
)

func main() {
	var (
		dir    = flag.String("dir", "", "Directory of documents to index (*.txt, *.html)")
		jsonl  = flag.String("jsonl", "", "JSONL file of documents to index")
		dbPath = flag.String("db", "", "SQLite database path (required)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *dir == "" && *jsonl == "" {
		log.Fatal("--dir or --jsonl required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	var docs []textload.Document
	if *dir != "" {
		loaded, err := textload.FromDir(*dir)
		if err != nil {
			log.Fatalf("load dir: %v", err)
		}
		docs = append(docs, loaded...)
	}
	if *jsonl != "" {
		loaded, err := textload.FromJSONL(*jsonl)
		if err != nil {
			log.Fatalf("load jsonl: %v", err)
		}
		docs = append(docs, loaded...)
	}

	for _, doc := range docs {
		if err := st.UpsertDoc(ctx, store.Doc{Name: doc.Name, Body: doc.Body}); err != nil {
			log.Fatalf("index %s: %v", doc.Name, err)
		}
	}

	total, err := st.CountDocs(ctx)
	if err != nil {
		log.Fatalf("count docs: %v", err)
	}
	log.Printf("indexed %d documents (%d total in store)", len(docs), total)
}
