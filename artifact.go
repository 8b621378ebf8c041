package sslmcp

// ArtifactWriter persists the flat-file artifacts exposed as MCP
// resources: the processed URL list and the per-source full-text dumps.
type ArtifactWriter interface {
	// WriteURLList writes one URL per line.
	WriteURLList(path string, urls []string) error

	// WriteFullText writes documents in the full-text dump format
	// (see FormatDocuments).
	WriteFullText(path string, docs []*Document) error
}
