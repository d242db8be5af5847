// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/container"
	"github.com/asikrahman/swe-portfolio-server/internal/presentation/http/handlers"
	"github.com/asikrahman/swe-portfolio-server/internal/presentation/http/middleware"
	"github.com/asikrahman/swe-portfolio-server/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Processed uploads are served straight from disk.
	r.Static("/media", config.MediaDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	profileHandlers := handlers.NewProfileHandlers(container.ProfileService, container.Logger)
	educationHandlers := handlers.NewEducationHandlers(container.EducationService, container.Logger)
	experienceHandlers := handlers.NewExperienceHandlers(container.ExperienceService, container.Logger)
	skillHandlers := handlers.NewSkillHandlers(container.SkillService, container.Logger)
	projectHandlers := handlers.NewProjectHandlers(container.ProjectService, container.Logger)
	blogHandlers := handlers.NewBlogHandlers(container.BlogService, container.Logger)
	contactHandlers := handlers.NewContactHandlers(container.ContactService, container.Logger)
	uploadHandlers := handlers.NewUploadHandlers(container.UploadService, container.Logger)
	statsHandlers := handlers.NewStatsHandlers(container.PerfTracker)

	requireAuth := middleware.AuthMiddleware(container.AuthService, container.Logger)

	// Authentication routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandlers.PostLogin)
		auth.GET("/me", requireAuth, authHandlers.GetMe)
		auth.POST("/logout", authHandlers.PostLogout)
	}

	// Public content routes
	api := r.Group("/api")
	{
		api.GET("/profile", profileHandlers.GetProfile)
		api.GET("/education", educationHandlers.GetEducation)
		api.GET("/experience", experienceHandlers.GetExperience)
		api.GET("/skills", skillHandlers.GetSkills)
		api.GET("/projects", projectHandlers.GetProjects)
		api.GET("/projects/:id", projectHandlers.GetProjectByID)
		api.GET("/blogs", blogHandlers.GetBlogs)
		api.GET("/blogs/:slug", blogHandlers.GetBlogBySlug)
		api.POST("/contact", contactHandlers.PostContact)
	}

	// Admin routes, all guarded
	admin := r.Group("/api/admin")
	admin.Use(requireAuth)
	{
		admin.PUT("/profile", profileHandlers.PutProfile)

		admin.GET("/education", educationHandlers.GetEducation)
		admin.POST("/education", educationHandlers.PostEducation)
		admin.GET("/education/:id", educationHandlers.GetEducationByID)
		admin.PUT("/education/:id", educationHandlers.PutEducation)
		admin.DELETE("/education/:id", educationHandlers.DeleteEducation)

		admin.GET("/experience", experienceHandlers.GetExperience)
		admin.POST("/experience", experienceHandlers.PostExperience)
		admin.GET("/experience/:id", experienceHandlers.GetExperienceByID)
		admin.PUT("/experience/:id", experienceHandlers.PutExperience)
		admin.DELETE("/experience/:id", experienceHandlers.DeleteExperience)

		admin.GET("/skills", skillHandlers.GetSkills)
		admin.POST("/skills", skillHandlers.PostSkill)
		admin.GET("/skills/:id", skillHandlers.GetSkillByID)
		admin.PUT("/skills/:id", skillHandlers.PutSkill)
		admin.DELETE("/skills/:id", skillHandlers.DeleteSkill)

		admin.GET("/projects", projectHandlers.GetProjects)
		admin.POST("/projects", projectHandlers.PostProject)
		admin.GET("/projects/:id", projectHandlers.GetProjectByID)
		admin.PUT("/projects/:id", projectHandlers.PutProject)
		admin.DELETE("/projects/:id", projectHandlers.DeleteProject)

		admin.GET("/blogs", blogHandlers.GetAllBlogs)
		admin.POST("/blogs", blogHandlers.PostBlog)
		admin.GET("/blogs/:id", blogHandlers.GetBlogByID)
		admin.PUT("/blogs/:id", blogHandlers.PutBlog)
		admin.DELETE("/blogs/:id", blogHandlers.DeleteBlog)

		admin.GET("/messages", contactHandlers.GetMessages)
		admin.PUT("/messages/:id", contactHandlers.PutMessage)
		admin.DELETE("/messages/:id", contactHandlers.DeleteMessage)

		admin.POST("/upload", uploadHandlers.PostUpload)
		admin.DELETE("/upload", uploadHandlers.DeleteUpload)

		admin.GET("/stats", statsHandlers.GetStats)
	}

	return r
}
