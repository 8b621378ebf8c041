package sslmcp

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Text is the main content as plain text with boilerplate
	// (scripts, styles, comments) removed and whitespace collapsed.
	Text string

	// Links are absolute URLs found in the page body, used for
	// depth-limited recursive loading.
	Links []string
}

// Extractor extracts main content and links from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The baseURL resolves relative links.
	Extract(html, baseURL string) (*ExtractResult, error)
}
