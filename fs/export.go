package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/resumer"
)

// ExportDirName is the subdirectory an Export owns inside its base
// directory. Nothing outside it is ever written or removed.
const ExportDirName = "resumer-export"

// Ensure Export implements resumer.EntryWriter at compile time.
var _ resumer.EntryWriter = (*Export)(nil)

// Export writes entries into a staging directory that replaces the
// previous export on Commit, so an interrupted export leaves the previous
// one intact.
type Export struct {
	baseDir string
	writer  *Writer
	staged  bool
}

// NewExport creates an Export inside baseDir. Entries are staged in
// baseDir/resumer-export.tmp and moved to baseDir/resumer-export on Commit.
func NewExport(baseDir string) *Export {
	e := &Export{baseDir: filepath.Clean(baseDir)}
	e.writer = NewWriter(e.tempDir())
	return e
}

// Dir returns the directory the entries are published to.
func (e *Export) Dir() string {
	return filepath.Join(e.baseDir, ExportDirName)
}

func (e *Export) tempDir() string {
	return filepath.Join(e.baseDir, ExportDirName+".tmp")
}

// stage clears leftovers of an earlier interrupted export.
func (e *Export) stage() error {
	if e.staged {
		return nil
	}
	if err := os.RemoveAll(e.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	e.staged = true
	return nil
}

// WriteEntry stages entry.
func (e *Export) WriteEntry(ctx context.Context, entry *resumer.HistoryEntry) error {
	if err := e.stage(); err != nil {
		return err
	}
	return e.writer.WriteEntry(ctx, entry)
}

// Commit replaces the previous export with the staged entries.
func (e *Export) Commit() error {
	if err := e.stage(); err != nil {
		return err
	}
	if err := os.RemoveAll(e.Dir()); err != nil {
		return err
	}
	if err := os.Rename(e.tempDir(), e.Dir()); err != nil {
		return err
	}
	e.staged = false
	return nil
}

// Abort discards the staged entries.
func (e *Export) Abort() error {
	e.staged = false
	return os.RemoveAll(e.tempDir())
}
