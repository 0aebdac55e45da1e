package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// FileInfo describes a saved download.
type FileInfo struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

// Store persists downloaded payslips and reports.
type Store interface {
	Save(ctx context.Context, path string, r io.Reader, contentType string) (*FileInfo, error)
	URL(path string) string
}

// SanitizeFilename strips directories and spaces from a server-provided name.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return "download"
	}
	return strings.ReplaceAll(name, " ", "_")
}
