package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeS3 keeps path-style objects in memory and answers PutObject and
// HeadObject.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.Method {
	case http.MethodPut:
		if r.URL.Path == "/denied/payslips/x.pdf" {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `<Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
			return
		}
		data, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = string(data)
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		data, ok := f.objects[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Content-Type", f.types[r.URL.Path])
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeS3Store(t *testing.T, bucket, publicURL string) (*S3Store, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string]string{}, types: map[string]string{}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	store, err := NewS3Store(context.Background(), S3Options{
		Bucket:    bucket,
		Region:    "auto",
		Endpoint:  server.URL,
		AccessKey: "test-key",
		SecretKey: "test-secret",
		PublicURL: publicURL,
	})
	if err != nil {
		t.Fatalf("new s3 store: %v", err)
	}
	return store, fake
}

func TestS3StoreSave(t *testing.T) {
	store, fake := newFakeS3Store(t, "hrm", "https://files.example.com/")

	info, err := store.Save(context.Background(), "/payslips/emp-1/2024-12.pdf", strings.NewReader("%PDF-1.4 body"), "application/pdf")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	fake.mu.Lock()
	stored, ok := fake.objects["/hrm/payslips/emp-1/2024-12.pdf"]
	contentType := fake.types["/hrm/payslips/emp-1/2024-12.pdf"]
	fake.mu.Unlock()
	if !ok || !strings.Contains(stored, "%PDF-1.4 body") {
		t.Fatalf("object not stored under bucket path: %v", fake.objects)
	}
	if contentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", contentType)
	}

	if info.Path != "payslips/emp-1/2024-12.pdf" || info.FileName != "2024-12.pdf" || info.FileType != "application/pdf" {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.FileSize != int64(len(stored)) {
		t.Fatalf("expected size %d, got %d", len(stored), info.FileSize)
	}
	if info.URL != "https://files.example.com/payslips/emp-1/2024-12.pdf" {
		t.Fatalf("unexpected url %q", info.URL)
	}
}

func TestS3StoreSaveRejected(t *testing.T) {
	store, _ := newFakeS3Store(t, "denied", "")

	_, err := store.Save(context.Background(), "payslips/x.pdf", strings.NewReader("x"), "application/pdf")
	if err == nil || !strings.Contains(err.Error(), "s3 put object") {
		t.Fatalf("expected put object error, got %v", err)
	}
}

func TestS3StoreURL(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		want      string
	}{
		{name: "bucket scheme", want: "s3://hrm/reports/a.xlsx"},
		{name: "public base", publicURL: "https://cdn.example.com/", want: "https://cdn.example.com/reports/a.xlsx"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			store := &S3Store{bucket: "hrm", publicURL: strings.TrimRight(tc.publicURL, "/")}
			if got := store.URL("/reports/a.xlsx"); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
