// Package persistence defines the backend-neutral store contract satisfied
// by both the file-backed and the MongoDB implementations.
package persistence

import (
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
)

// Store bundles every repository a backend provides. The container picks an
// implementation at startup based on configuration; nothing above this layer
// knows which backend is live.
type Store interface {
	Profile() repositories.ProfileRepository
	Education() repositories.EducationRepository
	Experience() repositories.ExperienceRepository
	Skills() repositories.SkillRepository
	Projects() repositories.ProjectRepository
	Blogs() repositories.BlogRepository
	Messages() repositories.MessageRepository
	Users() user.Repository
}
