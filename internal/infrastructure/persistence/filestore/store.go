// Package filestore implements the content and user repositories on top of
// JSON files, one file per collection under the configured data directory.
package filestore

import (
	"fmt"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

// Store owns every file-backed collection and hands out the per-kind
// repositories built on them.
type Store struct {
	profile    *jsonstore.Collection[*content.Profile]
	education  *jsonstore.Collection[*content.EducationEntry]
	experience *jsonstore.Collection[*content.ExperienceEntry]
	skills     *jsonstore.Collection[*content.Skill]
	projects   *jsonstore.Collection[*content.Project]
	blogs      *jsonstore.Collection[*content.BlogPost]
	messages   *jsonstore.Collection[*content.ContactMessage]
	users      *jsonstore.Collection[*user.AdminUser]

	logger *logging.ChanneledLogger
}

// NewStore opens (or lazily creates) every collection file under dataDir.
func NewStore(dataDir string, logger *logging.ChanneledLogger) (*Store, error) {
	s := &Store{logger: logger}

	var err error
	if s.profile, err = jsonstore.NewCollection[*content.Profile](dataDir, "profile"); err != nil {
		return nil, fmt.Errorf("failed to open profile collection: %w", err)
	}
	if s.education, err = jsonstore.NewCollection[*content.EducationEntry](dataDir, "education"); err != nil {
		return nil, fmt.Errorf("failed to open education collection: %w", err)
	}
	if s.experience, err = jsonstore.NewCollection[*content.ExperienceEntry](dataDir, "experience"); err != nil {
		return nil, fmt.Errorf("failed to open experience collection: %w", err)
	}
	if s.skills, err = jsonstore.NewCollection[*content.Skill](dataDir, "skills"); err != nil {
		return nil, fmt.Errorf("failed to open skills collection: %w", err)
	}
	if s.projects, err = jsonstore.NewCollection[*content.Project](dataDir, "projects"); err != nil {
		return nil, fmt.Errorf("failed to open projects collection: %w", err)
	}
	if s.blogs, err = jsonstore.NewCollection[*content.BlogPost](dataDir, "blogs"); err != nil {
		return nil, fmt.Errorf("failed to open blogs collection: %w", err)
	}
	if s.messages, err = jsonstore.NewCollection[*content.ContactMessage](dataDir, "messages"); err != nil {
		return nil, fmt.Errorf("failed to open messages collection: %w", err)
	}
	if s.users, err = jsonstore.NewCollection[*user.AdminUser](dataDir, "users"); err != nil {
		return nil, fmt.Errorf("failed to open users collection: %w", err)
	}

	return s, nil
}

// Profile returns the profile repository.
func (s *Store) Profile() repositories.ProfileRepository {
	return &ProfileRepository{coll: s.profile, logger: s.logger}
}

// Education returns the education repository.
func (s *Store) Education() repositories.EducationRepository {
	return &EducationRepository{coll: s.education, logger: s.logger}
}

// Experience returns the experience repository.
func (s *Store) Experience() repositories.ExperienceRepository {
	return &ExperienceRepository{coll: s.experience, logger: s.logger}
}

// Skills returns the skill repository.
func (s *Store) Skills() repositories.SkillRepository {
	return &SkillRepository{coll: s.skills, logger: s.logger}
}

// Projects returns the project repository.
func (s *Store) Projects() repositories.ProjectRepository {
	return &ProjectRepository{coll: s.projects, logger: s.logger}
}

// Blogs returns the blog repository.
func (s *Store) Blogs() repositories.BlogRepository {
	return &BlogRepository{coll: s.blogs, logger: s.logger}
}

// Messages returns the contact message repository.
func (s *Store) Messages() repositories.MessageRepository {
	return &MessageRepository{coll: s.messages, logger: s.logger}
}

// Users returns the admin account repository.
func (s *Store) Users() user.Repository {
	return &UserRepository{coll: s.users, logger: s.logger}
}

// findByID scans a collection for the record whose ID matches.
func findByID[T any](coll *jsonstore.Collection[*T], id string, getID func(*T) string) (*T, error) {
	records, err := coll.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if getID(rec) == id {
			return rec, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// appendRecord adds a record to the end of a collection, preserving
// insertion order for listing.
func appendRecord[T any](coll *jsonstore.Collection[*T], rec *T) error {
	return coll.Mutate(func(records []*T) ([]*T, error) {
		return append(records, rec), nil
	})
}

// replaceRecord swaps the stored record with a matching ID for rec.
func replaceRecord[T any](coll *jsonstore.Collection[*T], rec *T, getID func(*T) string) error {
	return coll.Mutate(func(records []*T) ([]*T, error) {
		for i, existing := range records {
			if getID(existing) == getID(rec) {
				records[i] = rec
				return records, nil
			}
		}
		return nil, repositories.ErrNotFound
	})
}

// removeRecord deletes the record with a matching ID.
func removeRecord[T any](coll *jsonstore.Collection[*T], id string, getID func(*T) string) error {
	return coll.Mutate(func(records []*T) ([]*T, error) {
		for i, existing := range records {
			if getID(existing) == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, repositories.ErrNotFound
	})
}
