package sslmcp

import (
	"fmt"
	"strings"
)

// documentSeparator delimits documents in full-text dumps.
var documentSeparator = strings.Repeat("=", 80)

// FormatDocuments renders documents into the flat full-text dump format
// consumed by the MCP resources: each document gets a numbered header block
// with its source URL, content hash, and type, followed by the raw content
// and a separator line.
func FormatDocuments(docs []*Document) string {
	var sb strings.Builder
	for i, doc := range docs {
		source := doc.SourceURL
		if source == "" {
			source = "Unknown URL"
		}
		id := doc.ContentHash
		if id == "" {
			id = "Unknown ID"
		}
		typ := string(doc.Type)
		if typ == "" {
			typ = "Unknown Type"
		}

		fmt.Fprintf(&sb, "\nDOCUMENT %d\n", i+1)
		fmt.Fprintf(&sb, "SOURCE: %s\n", source)
		fmt.Fprintf(&sb, "ID: %s\n", id)
		fmt.Fprintf(&sb, "TYPE: %s\n", typ)
		sb.WriteString("CONTENT:\n")
		sb.WriteString(doc.Text)
		sb.WriteString("\n\n" + documentSeparator + "\n\n")
	}
	return sb.String()
}
