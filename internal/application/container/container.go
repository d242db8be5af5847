// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/caching"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/email"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/media"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence"
	"github.com/asikrahman/swe-portfolio-server/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services (stateless singletons)
	AuthService       *services.AuthService
	ProfileService    *services.ProfileService
	EducationService  *services.EducationService
	ExperienceService *services.ExperienceService
	SkillService      *services.SkillService
	ProjectService    *services.ProjectService
	BlogService       *services.BlogService
	ContactService    *services.ContactService
	UploadService     *services.UploadService

	// Infrastructure dependencies
	Store        persistence.Store
	ContentCache *caching.ContentCache
	Logger       *logging.ChanneledLogger
	PerfTracker  *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer(store persistence.Store, mailer email.Service, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *Container {
	contentCache := caching.NewContentCache(config.ContentCacheTTL)
	processor := media.NewImageProcessor(config.MediaDir)
	maxUploadBytes := config.MaxUploadMB << 20

	return &Container{
		AuthService:       services.NewAuthService(store.Users(), logger, perfTracker, config.JWTSecret, config.AuthTokenTTL, config.BcryptCost),
		ProfileService:    services.NewProfileService(store.Profile(), contentCache, logger, perfTracker),
		EducationService:  services.NewEducationService(store.Education(), contentCache, logger, perfTracker),
		ExperienceService: services.NewExperienceService(store.Experience(), contentCache, logger, perfTracker),
		SkillService:      services.NewSkillService(store.Skills(), contentCache, logger, perfTracker),
		ProjectService:    services.NewProjectService(store.Projects(), contentCache, logger, perfTracker),
		BlogService:       services.NewBlogService(store.Blogs(), contentCache, logger, perfTracker),
		ContactService:    services.NewContactService(store.Messages(), mailer, logger, perfTracker),
		UploadService:     services.NewUploadService(processor, logger, perfTracker, maxUploadBytes),

		Store:        store,
		ContentCache: contentCache,
		Logger:       logger,
		PerfTracker:  perfTracker,
	}
}
