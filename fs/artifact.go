// Package fs persists the flat-file artifacts of an ingestion run: the
// processed URL list and the per-source full-text dumps.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/smallsizeleague/sslmcp"
)

var _ sslmcp.ArtifactWriter = (*ArtifactStore)(nil)

// ArtifactStore reads and writes run artifacts on the local filesystem.
// Writes are atomic: content goes to a temporary file in the target
// directory and is renamed into place, so readers never observe a
// half-written artifact.
type ArtifactStore struct{}

// NewArtifactStore creates an ArtifactStore.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// WriteURLList writes one URL per line with a trailing newline.
func (s *ArtifactStore) WriteURLList(path string, urls []string) error {
	var sb strings.Builder
	for _, u := range urls {
		sb.WriteString(u)
		sb.WriteByte('\n')
	}
	return s.writeAtomic(path, []byte(sb.String()))
}

// WriteFullText writes documents in the full-text dump format.
func (s *ArtifactStore) WriteFullText(path string, docs []*sslmcp.Document) error {
	return s.writeAtomic(path, []byte(sslmcp.FormatDocuments(docs)))
}

// ReadURLList reads a URL list artifact, one URL per line. Blank lines
// are skipped. A missing file is ENOTFOUND.
func (s *ArtifactStore) ReadURLList(path string) ([]string, error) {
	data, err := s.Read(path)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls, nil
}

// Read returns an artifact's raw bytes. A missing file is ENOTFOUND.
func (s *ArtifactStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sslmcp.Errorf(sslmcp.ENOTFOUND, "artifact %s not found", path)
		}
		return nil, sslmcp.Errorf(sslmcp.EINTERNAL, "reading artifact %s: %v", path, err)
	}
	return data, nil
}

func (s *ArtifactStore) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return sslmcp.Errorf(sslmcp.EINTERNAL, "creating artifact directory %s: %v", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return sslmcp.Errorf(sslmcp.EINTERNAL, "creating temp artifact: %v", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return sslmcp.Errorf(sslmcp.EINTERNAL, "writing artifact %s: %v", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return sslmcp.Errorf(sslmcp.EINTERNAL, "closing artifact %s: %v", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return sslmcp.Errorf(sslmcp.EINTERNAL, "replacing artifact %s: %v", path, err)
	}
	return nil
}
