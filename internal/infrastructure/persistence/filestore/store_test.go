package filestore

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
		DefaultLevel:    slog.LevelError,
	})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	store, err := NewStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return store
}

func TestSkillCRUD(t *testing.T) {
	store := newTestStore(t)
	repo := store.Skills()
	ctx := context.Background()

	first := &content.Skill{ID: "01A", Name: "Go", Category: "Backend", Level: "Advanced"}
	second := &content.Skill{ID: "01B", Name: "React", Category: "Frontend", Level: "Expert"}
	for _, skill := range []*content.Skill{first, second} {
		if err := repo.Store(ctx, skill); err != nil {
			t.Fatalf("store %s: %v", skill.Name, err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Go" || all[1].Name != "React" {
		t.Fatalf("expected insertion order [Go React], got %+v", all)
	}

	first.Level = "Expert"
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.FindByID(ctx, "01A")
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got.Level != "Expert" {
		t.Fatalf("update not persisted: %+v", got)
	}
	// The other record is untouched.
	other, _ := repo.FindByID(ctx, "01B")
	if other.Name != "React" || other.Level != "Expert" {
		t.Fatalf("unrelated record changed: %+v", other)
	}

	if err := repo.Delete(ctx, "01A"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, "01A"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "01A"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("second delete must fail with ErrNotFound, got %v", err)
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Skills().Update(ctx, &content.Skill{ID: "missing", Name: "x", Category: "Other", Level: "Beginner"})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogSlugUniqueness(t *testing.T) {
	store := newTestStore(t)
	repo := store.Blogs()
	ctx := context.Background()

	post := func(id, slug string) *content.BlogPost {
		return &content.BlogPost{ID: id, Title: "t", Slug: slug, Excerpt: "e", Content: "c", Author: "a", Category: "go", Status: content.BlogStatusPublished}
	}

	if err := repo.Store(ctx, post("01A", "hello-world")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := repo.Store(ctx, post("01B", "hello-world")); !errors.Is(err, repositories.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
	if err := repo.Store(ctx, post("01B", "second")); err != nil {
		t.Fatalf("store second: %v", err)
	}

	// Updating onto a taken slug fails; keeping your own slug is fine.
	second, _ := repo.FindByID(ctx, "01B")
	second.Slug = "hello-world"
	if err := repo.Update(ctx, second); !errors.Is(err, repositories.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug on update, got %v", err)
	}
	second.Slug = "second"
	second.Title = "renamed"
	if err := repo.Update(ctx, second); err != nil {
		t.Fatalf("update keeping own slug: %v", err)
	}

	found, err := repo.FindBySlug(ctx, "second")
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if found.Title != "renamed" {
		t.Fatalf("unexpected post: %+v", found)
	}

	// A missing id is reported as such even when the requested slug is
	// taken by another post.
	missing := post("nope", "hello-world")
	if err := repo.Update(ctx, missing); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestProfileSingleton(t *testing.T) {
	store := newTestStore(t)
	repo := store.Profile()
	ctx := context.Background()

	if _, err := repo.Get(ctx); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	profile := &content.Profile{ID: "01A", Name: "Asikur", Designation: "Engineer", Email: "a@b.dev"}
	if err := repo.Store(ctx, profile); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := repo.Store(ctx, profile); err == nil {
		t.Fatal("second store must fail for singleton")
	}

	profile.Location = "Dhaka"
	if err := repo.Update(ctx, profile); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Location != "Dhaka" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUserEmailLookup(t *testing.T) {
	store := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil || count != 0 {
		t.Fatalf("expected empty user collection, got %d (%v)", count, err)
	}

	now := time.Now().UTC()
	admin := &user.AdminUser{ID: "01A", Email: "Admin@Portfolio.com", PasswordHash: "hash", Name: "Admin", Role: "admin", CreatedAt: now, UpdatedAt: now}
	if err := repo.Store(ctx, admin); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "ADMIN@portfolio.COM")
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if got.Email != "admin@portfolio.com" {
		t.Fatalf("email not stored lowercased: %q", got.Email)
	}

	dup := &user.AdminUser{ID: "01B", Email: "admin@portfolio.com"}
	if err := repo.Store(ctx, dup); err == nil {
		t.Fatal("duplicate email must be rejected")
	}

	count, _ = repo.Count(ctx)
	if count != 1 {
		t.Fatalf("expected 1 account, got %d", count)
	}
}
