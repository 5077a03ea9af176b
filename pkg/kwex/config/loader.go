package config

import (
	"fmt"

	"github.com/cognicore/kwex/pkg/kwex"
)

// Loader loads configuration files and constructs a ready extractor.
// The override fields, when nonzero (or true), take precedence over the
// settings file; this is how CLI flags layer on top of configuration.
type Loader struct {
	StoplistPath string
	SettingsPath string

	MaxKeywordSize int
	Limit          int
	IncludeTarget  bool
	Parallelism    int
}

// Components holds the loaded configuration
type Components struct {
	Extractor *kwex.Extractor
	Settings  Extraction
}

// Load reads the configuration files, applies overrides and returns an
// initialized extractor together with the effective settings.
func (l *Loader) Load() (*Components, error) {
	settings := DefaultExtraction()

	if l.SettingsPath != "" {
		loaded, err := LoadExtraction(l.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		settings = *loaded
	}

	if l.MaxKeywordSize != 0 {
		settings.MaxKeywordSize = l.MaxKeywordSize
	}
	if l.Limit != 0 {
		settings.Limit = l.Limit
	}
	if l.IncludeTarget {
		settings.IncludeTarget = true
	}
	if l.Parallelism != 0 {
		settings.Parallelism = l.Parallelism
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	var terms []string
	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		terms = stoplist.Terms
	}

	extractor, err := kwex.New(kwex.Options{
		Stopwords:      terms,
		MaxKeywordSize: settings.MaxKeywordSize,
		IncludeTarget:  settings.IncludeTarget,
		Parallelism:    settings.Parallelism,
	})
	if err != nil {
		return nil, err
	}

	return &Components{
		Extractor: extractor,
		Settings:  settings,
	}, nil
}
