package httpclient

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

var knownExtensions = map[string]string{
	"application/pdf": ".pdf",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"application/vnd.ms-excel": ".xls",
	"text/csv":                 ".csv",
	"application/zip":          ".zip",
}

// Download is a binary response. Headers stay available so the caller can
// name the file it saves.
type Download struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (d *Download) ContentType() string {
	raw := d.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return raw
	}
	return mediaType
}

// Filename prefers the Content-Disposition filename. Otherwise it appends an
// extension matching the content type to fallback.
func (d *Download) Filename(fallback string) string {
	if cd := d.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return filepath.Base(strings.ReplaceAll(name, "\\", "/"))
			}
		}
	}
	ext := Extension(d.ContentType())
	if ext == "" || strings.HasSuffix(strings.ToLower(fallback), ext) {
		return fallback
	}
	return fallback + ext
}

func Extension(contentType string) string {
	if ext, ok := knownExtensions[contentType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
