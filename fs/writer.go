// Package fs provides file-based export of history entries.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/resumer"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a page URL to a relative path without extension,
// rooted at the host.
// Example: https://example.com/docs/api/users → example.com/docs/api/users
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", resumer.Errorf(resumer.EINVALID, "invalid URL %q", rawURL)
	}

	host := u.Host
	if host == "" {
		host = "local"
	}

	path := strings.TrimPrefix(u.Path, "/")
	if path == "" || strings.HasSuffix(path, "/") {
		path += "index"
	}

	return filepath.Join(host, filepath.FromSlash(path)), nil
}

// EntryPath returns the relative file path of entry. Entries for the same
// page are kept side by side, distinguished by kind and ID.
func EntryPath(entry *resumer.HistoryEntry) (string, error) {
	base, err := URLToPath(entry.URL)
	if err != nil {
		return "", err
	}
	id := entry.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return base + "." + string(entry.Kind) + "-" + id + ".md", nil
}

type frontmatter struct {
	Kind     string `yaml:"kind"`
	Source   string `yaml:"source"`
	Title    string `yaml:"title,omitempty"`
	Question string `yaml:"question,omitempty"`
	Created  string `yaml:"created"`
	Hash     string `yaml:"hash,omitempty"`
}

// FormatEntry formats an entry as markdown with YAML frontmatter.
func FormatEntry(entry *resumer.HistoryEntry) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Kind:     string(entry.Kind),
		Source:   entry.URL,
		Title:    entry.Title,
		Question: entry.Question,
		Created:  entry.CreatedAt.UTC().Format(time.RFC3339),
		Hash:     entry.ContentHash,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	if entry.Kind == resumer.KindQuestion {
		b.WriteString("## ")
		b.WriteString(entry.Question)
		b.WriteString("\n\n")
	}
	b.WriteString(entry.Content)
	b.WriteString("\n")
	return b.String(), nil
}

// Ensure Writer implements resumer.EntryWriter at compile time.
var _ resumer.EntryWriter = (*Writer)(nil)

// Writer writes history entries as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteEntry writes an entry to disk as a markdown file.
func (w *Writer) WriteEntry(ctx context.Context, entry *resumer.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	relPath, err := EntryPath(entry)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatEntry(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
