package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hrmportal/internal/platform/crypto"
)

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore("")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); store.Set("abc") }()
		go func() { defer wg.Done(); _, _ = store.Token(context.Background()) }()
	}
	wg.Wait()

	token, _ := store.Token(context.Background())
	if token != "abc" {
		t.Fatalf("expected abc, got %q", token)
	}
	store.Clear()
	if token, _ := store.Token(context.Background()); token != "" {
		t.Fatalf("expected cleared token, got %q", token)
	}
}

func TestFileStoreSealsToken(t *testing.T) {
	sealer, err := crypto.New("file store passphrase")
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path, sealer)

	if token, err := store.Token(context.Background()); err != nil || token != "" {
		t.Fatalf("expected empty token before save, got %q, %v", token, err)
	}
	if err := store.Save("secret-token"); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "secret-token") {
		t.Fatal("token stored in clear text")
	}
	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	token, err := store.Token(context.Background())
	if err != nil || token != "secret-token" {
		t.Fatalf("expected round trip, got %q, %v", token, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear should be a no-op: %v", err)
	}
}

func TestContextToken(t *testing.T) {
	var src Context
	if token, _ := src.Token(context.Background()); token != "" {
		t.Fatalf("expected no token, got %q", token)
	}
	ctx := WithToken(context.Background(), "abc")
	if token, _ := src.Token(ctx); token != "abc" {
		t.Fatalf("expected abc, got %q", token)
	}
}

func TestInspect(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":             "u1",
		"email":          "hr@example.com",
		"role":           "HR",
		"organizationId": "org-1",
		"exp":            exp.Unix(),
	})
	signed, err := token.SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := Inspect(signed)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "HR" || claims.OrganizationID != "org-1" || claims.Email != "hr@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Fatalf("expected exp %v, got %v", exp, claims.ExpiresAt)
	}
	if claims.Expired(time.Now()) {
		t.Fatal("token should not be expired yet")
	}
	if !claims.Expired(exp.Add(time.Minute)) {
		t.Fatal("token should be expired after exp")
	}
}

func TestInspectRejectsOpaqueTokens(t *testing.T) {
	if _, err := Inspect("opaque-session-id"); err == nil {
		t.Fatal("expected error for non-JWT token")
	}
}
