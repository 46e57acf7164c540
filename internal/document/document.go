// Package document describes the documents shown in the editor's panes.
package document

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrEmptyPath = errors.New("empty path")

// Document is an SVG document known to the editor. Its contents are never
// read.
type Document struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// Path is empty for documents that have never been saved.
	Path string `json:"path,omitempty"`
}

// New constructs the nth untitled document.
func New(n int) *Document {
	return &Document{
		ID:   uuid.New(),
		Name: fmt.Sprintf("Untitled-%d", n),
	}
}

// Open constructs a document for the file at path, named after the file.
func Open(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("opening document: %w", ErrEmptyPath)
	}
	path = filepath.Clean(path)
	return &Document{
		ID:   uuid.New(),
		Name: filepath.Base(path),
		Path: path,
	}, nil
}

func (d *Document) Saved() bool {
	return d.Path != ""
}

func (d *Document) String() string {
	return d.Name
}

func (d *Document) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", d.ID.String()),
		slog.String("name", d.Name),
		slog.String("path", d.Path),
	)
}
