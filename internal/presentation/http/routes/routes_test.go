package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/container"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/filestore"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/security"
	"github.com/asikrahman/swe-portfolio-server/internal/presentation/http/middleware"
	"github.com/asikrahman/swe-portfolio-server/pkg/config"
)

const (
	testAdminEmail    = "admin@portfolio.com"
	testAdminPassword = "correct-horse"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mediaDir := config.MediaDir
	config.MediaDir = t.TempDir()
	t.Cleanup(func() { config.MediaDir = mediaDir })

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
		DefaultLevel:    slog.LevelError,
	})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	store, err := filestore.NewStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	hash, err := security.HashPassword(testAdminPassword, 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	now := time.Now().UTC()
	admin := &user.AdminUser{
		ID:           security.GenerateULID(),
		Email:        testAdminEmail,
		PasswordHash: hash,
		Name:         "Admin",
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.Users().Store(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	c := container.NewContainer(store, nil, logger, performance.NewTracker(logger))
	srv := httptest.NewServer(SetupRoutes(c))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, url, err, raw)
		}
	}
	return resp, decoded
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned %d: %+v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}
	return token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", "", nil)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected health response: %d %+v", resp.StatusCode, body)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/admin/skills", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body["error"] != "Authentication required" {
		t.Fatalf("unexpected error body: %+v", body)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/admin/skills", "garbage-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", resp.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d %+v", resp.StatusCode, body)
	}

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("login must set the session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Fatal("session cookie must be httpOnly")
	}

	data := body["data"].(map[string]any)
	account := data["user"].(map[string]any)
	if account["email"] != testAdminEmail || account["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", account)
	}
}

func TestMe(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/auth/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me returned %d: %+v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["email"] != testAdminEmail {
		t.Fatalf("unexpected identity: %+v", data)
	}
}

func TestSkillLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	// Invalid level is rejected before anything is stored.
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/admin/skills", token, map[string]any{
		"name": "Go", "category": "Backend", "level": "Wizard",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid level, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/admin/skills", token, map[string]any{
		"name": "Go", "category": "Backend", "level": "Expert",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create returned %d: %+v", resp.StatusCode, body)
	}
	created := body["data"].(map[string]any)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("created skill has no id")
	}

	// Public listing sees the new record without auth.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/skills", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public list returned %d", resp.StatusCode)
	}
	list := body["data"].([]any)
	if len(list) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(list))
	}

	// Partial update leaves the other fields alone.
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/api/admin/skills/"+id, token, map[string]any{
		"level": "Advanced",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update returned %d: %+v", resp.StatusCode, body)
	}
	updated := body["data"].(map[string]any)
	if updated["level"] != "Advanced" || updated["name"] != "Go" {
		t.Fatalf("unexpected updated skill: %+v", updated)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/admin/skills/"+id, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete returned %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/admin/skills/"+id, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", resp.StatusCode)
	}
}

func TestDraftBlogsHiddenPublicly(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/admin/blogs", token, map[string]any{
		"title":    "Work In Progress",
		"excerpt":  "soon",
		"content":  "draft body",
		"author":   "Admin",
		"category": "go",
		"status":   "draft",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create draft returned %d: %+v", resp.StatusCode, body)
	}
	created := body["data"].(map[string]any)
	slug, _ := created["slug"].(string)
	if slug != "work-in-progress" {
		t.Fatalf("slug not derived from title: %q", slug)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/blogs", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public list returned %d", resp.StatusCode)
	}
	if list := body["data"].([]any); len(list) != 0 {
		t.Fatalf("draft leaked into the public list: %+v", list)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/blogs/"+slug, "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("draft slug must 404 publicly, got %d", resp.StatusCode)
	}

	// The admin listing still shows it.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/admin/blogs", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin list returned %d", resp.StatusCode)
	}
	if list := body["data"].([]any); len(list) != 1 {
		t.Fatalf("expected draft in admin list, got %+v", list)
	}

	// Duplicate slugs are rejected with a 400.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/admin/blogs", token, map[string]any{
		"title":    "Work In Progress",
		"excerpt":  "again",
		"content":  "body",
		"author":   "Admin",
		"category": "go",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate slug: expected 400, got %d", resp.StatusCode)
	}
}

func TestContactSubmission(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/contact", "", map[string]any{
		"name": "Visitor", "email": "bad-address", "message": "hi",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid email: expected 400, got %d", resp.StatusCode)
	}

	// No mailer is configured; submission still succeeds.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/contact", "", map[string]any{
		"name": "Visitor", "email": "visitor@example.com", "message": "Love the site",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("contact returned %d: %+v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/admin/messages", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("messages returned %d", resp.StatusCode)
	}
	list := body["data"].([]any)
	if len(list) != 1 {
		t.Fatalf("expected 1 message, got %d", len(list))
	}
	msg := list[0].(map[string]any)
	if msg["status"] != "unread" {
		t.Fatalf("new message must be unread: %+v", msg)
	}

	// Mark read, then delete.
	id := msg["id"].(string)
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/admin/messages/"+id, token, map[string]any{"status": "read"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mark read returned %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/admin/messages/"+id, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete returned %d", resp.StatusCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/admin/stats", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("stats without auth: expected 401, got %d", resp.StatusCode)
	}

	token := login(t, srv)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/admin/stats", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats returned %d: %+v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	// The login itself is a tracked operation.
	if total, _ := data["totalOperations"].(float64); total < 1 {
		t.Fatalf("expected at least one tracked operation: %+v", data)
	}
	if _, ok := data["uptime"].(string); !ok {
		t.Fatalf("stats missing uptime: %+v", data)
	}
}

func TestUploadRemoval(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	// Paths outside the media root are rejected.
	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/admin/upload", token, map[string]any{
		"url": "/etc/passwd",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-media path, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/admin/upload", token, map[string]any{
		"url": "",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty url, got %d", resp.StatusCode)
	}

	docsDir := filepath.Join(config.MediaDir, "documents")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	target := filepath.Join(docsDir, "resume.pdf")
	if err := os.WriteFile(target, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/admin/upload", token, map[string]any{
		"url": "/media/documents/resume.pdf",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete returned %d", resp.StatusCode)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("file still on disk after removal: %v", err)
	}
}

func TestUnknownFieldsRejected(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/admin/skills", token, map[string]any{
		"name": "Go", "category": "Backend", "level": "Expert", "bogus": true,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", resp.StatusCode)
	}
}
