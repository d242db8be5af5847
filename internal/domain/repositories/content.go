// Package repositories defines the repository interfaces for content entities.
// These repositories abstract the data persistence details, ensuring the core
// application is clean and decoupled from the storage backend.
package repositories

import (
	"context"
	"errors"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
)

// ErrNotFound is returned when the requested identifier or slug does not
// exist in the target collection. Update and delete surface it rather than
// succeeding silently.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateSlug is returned when a blog post would collide with an
// existing slug. Slugs are the external lookup key and must stay unique.
var ErrDuplicateSlug = errors.New("slug already exists")

// ProfileRepository manages the singleton profile record.
type ProfileRepository interface {
	Get(ctx context.Context) (*content.Profile, error)
	Store(ctx context.Context, profile *content.Profile) error
	Update(ctx context.Context, profile *content.Profile) error
}

type EducationRepository interface {
	FindAll(ctx context.Context) ([]*content.EducationEntry, error)
	FindByID(ctx context.Context, id string) (*content.EducationEntry, error)
	Store(ctx context.Context, entry *content.EducationEntry) error
	Update(ctx context.Context, entry *content.EducationEntry) error
	Delete(ctx context.Context, id string) error
}

type ExperienceRepository interface {
	FindAll(ctx context.Context) ([]*content.ExperienceEntry, error)
	FindByID(ctx context.Context, id string) (*content.ExperienceEntry, error)
	Store(ctx context.Context, entry *content.ExperienceEntry) error
	Update(ctx context.Context, entry *content.ExperienceEntry) error
	Delete(ctx context.Context, id string) error
}

type SkillRepository interface {
	FindAll(ctx context.Context) ([]*content.Skill, error)
	FindByID(ctx context.Context, id string) (*content.Skill, error)
	Store(ctx context.Context, skill *content.Skill) error
	Update(ctx context.Context, skill *content.Skill) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	FindAll(ctx context.Context) ([]*content.Project, error)
	FindByID(ctx context.Context, id string) (*content.Project, error)
	Store(ctx context.Context, project *content.Project) error
	Update(ctx context.Context, project *content.Project) error
	Delete(ctx context.Context, id string) error
}

type BlogRepository interface {
	FindAll(ctx context.Context) ([]*content.BlogPost, error)
	FindByID(ctx context.Context, id string) (*content.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error)
	Store(ctx context.Context, post *content.BlogPost) error
	Update(ctx context.Context, post *content.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	FindAll(ctx context.Context) ([]*content.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*content.ContactMessage, error)
	Store(ctx context.Context, msg *content.ContactMessage) error
	Update(ctx context.Context, msg *content.ContactMessage) error
	Delete(ctx context.Context, id string) error
}
