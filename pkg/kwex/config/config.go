package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/kwex/pkg/kwex/internalerr"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// Extraction holds the pipeline settings loaded from YAML.
type Extraction struct {
	MaxKeywordSize int  `yaml:"max_keyword_size"`
	Limit          int  `yaml:"limit"`
	IncludeTarget  bool `yaml:"include_target"`
	Parallelism    int  `yaml:"parallelism"`
}

// DefaultExtraction returns the settings used when no file is provided.
func DefaultExtraction() Extraction {
	return Extraction{
		MaxKeywordSize: 3,
		Limit:          10,
	}
}

// Validate checks the settings, wrapping internalerr.ErrInvalidConfig so
// callers can match with errors.Is.
func (e *Extraction) Validate() error {
	if e.MaxKeywordSize < 1 {
		return fmt.Errorf("%w: max_keyword_size must be >= 1, got %d",
			internalerr.ErrInvalidConfig, e.MaxKeywordSize)
	}
	if e.Limit < 1 {
		return fmt.Errorf("%w: limit must be >= 1, got %d",
			internalerr.ErrInvalidConfig, e.Limit)
	}
	if e.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism must be >= 0, got %d",
			internalerr.ErrInvalidConfig, e.Parallelism)
	}
	return nil
}

// LoadExtraction loads and validates extraction settings from a YAML file.
// Fields absent from the file keep their defaults.
func LoadExtraction(path string) (*Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := DefaultExtraction()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}
