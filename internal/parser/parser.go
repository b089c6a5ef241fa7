package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrSourceUnavailable is returned when the document cannot be read.
var ErrSourceUnavailable = errors.New("source unavailable")

// SupportedExtensions lists the file extensions treated as Markdown.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// FileSource reads the document from a path on every Load, so edits made
// while browsing are picked up by a reload.
type FileSource struct {
	Path string
	Log  *slog.Logger
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string, log *slog.Logger) *FileSource {
	if log == nil {
		log = slog.Default()
	}
	return &FileSource{Path: path, Log: log}
}

// Load returns the full document text.
func (f *FileSource) Load() (string, error) {
	if !IsSupportedExtension(f.Path) {
		f.Log.Warn("unexpected document extension", "path", f.Path)
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, f.Path, err)
	}

	if !utf8.Valid(data) {
		f.Log.Warn("document is not valid UTF-8, replacing invalid bytes", "path", f.Path)
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
	}

	f.Log.Debug("document loaded", "path", f.Path, "bytes", len(data))
	return string(data), nil
}

// Describe returns the absolute path for display, falling back to Path.
func (f *FileSource) Describe() string {
	if abs, err := filepath.Abs(f.Path); err == nil {
		return abs
	}
	return f.Path
}
