// Package files uploads documents to the backend's generic file store.
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

const formField = "file"

var ErrFileNameRequired = errors.New("file name is required")

type UploadResult struct {
	FileURL  string `json:"fileUrl" validate:"required"`
	FileName string `json:"fileName,omitempty"`
	Message  string `json:"message,omitempty"`
}

type Service struct {
	Client *httpclient.Client
}

func NewService(client *httpclient.Client) *Service {
	return &Service{Client: client}
}

// Upload sends r as multipart field "file" and returns the stored file URL.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (UploadResult, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return UploadResult{}, ErrFileNameRequired
	}
	var out UploadResult
	if err := s.Client.Upload(ctx, "/file-upload", formField, name, r, &out); err != nil {
		return UploadResult{}, fmt.Errorf("upload %s: %w", name, err)
	}
	return out, nil
}
