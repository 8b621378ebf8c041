package sslmcp

import "context"

// SourceType classifies where a document came from. The value is persisted
// as index metadata and drives search filtering.
type SourceType string

// SourceType values. The strings are part of the index metadata contract
// and must remain stable across ingestion runs.
const (
	SourceWebsite    SourceType = "website_page"
	SourceRules      SourceType = "rules"
	SourceRepository SourceType = "repository"
)

// Valid returns true if t is a known source type.
func (t SourceType) Valid() bool {
	switch t {
	case SourceWebsite, SourceRules, SourceRepository:
		return true
	}
	return false
}

// ParseSourceType converts a string into a SourceType.
// Returns EINVALID for unknown values.
func ParseSourceType(s string) (SourceType, error) {
	t := SourceType(s)
	if !t.Valid() {
		return "", Errorf(EINVALID, "unknown source type %q", s)
	}
	return t, nil
}

// Document represents a single crawled page before chunking. Documents are
// immutable once handed to the ingestion pipeline.
type Document struct {
	Text        string     `json:"text"`
	SourceURL   string     `json:"sourceUrl"`
	Type        SourceType `json:"type"`
	Reliability float64    `json:"reliability,omitempty"`

	// ContentHash is a hex-encoded xxHash of Text, recorded at load time
	// and used as the document identifier in full-text dumps.
	ContentHash string `json:"contentHash,omitempty"`

	// TokenCount is the token length of Text, measured at load time.
	TokenCount int `json:"tokenCount,omitempty"`
}

// Validate returns an error if the document cannot be ingested.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if !d.Type.Valid() {
		return Errorf(EINVALID, "document source type required")
	}
	return nil
}

// Loader retrieves documents for a list of URLs. Implementations hide
// fetching, recursive link discovery, content extraction, and token
// counting. The returned slice preserves the order of the input URLs;
// pages discovered recursively follow their seed URL.
type Loader interface {
	LoadAll(ctx context.Context, urls []string) ([]*Document, error)
}
