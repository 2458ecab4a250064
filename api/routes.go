package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public and admin route groups. Reads stay open;
// every mutation except the contact form sits behind the session token check,
// as does reading stored contact messages.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/api/login", handlers.authHandler.login())
		r.Post("/api/contact", handlers.contactHandler.createMessage())

		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/api/ecas", handlers.ecaHandler.getAllEcas())
		r.Get("/api/ecas/{ecaID}", handlers.ecaHandler.getEca())

		r.Get("/api/skill-categories", handlers.skillHandler.getAllCategories())
		r.Get("/api/skills", handlers.skillHandler.getAllSkills())
		r.Get("/api/additional-skills", handlers.skillHandler.getAllAdditionalSkills())

		r.Get("/api/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/api/blogs/{blogID}", handlers.blogHandler.getBlog())

		r.Get("/api/experiences", handlers.experienceHandler.getAllExperiences())
		r.Get("/api/about", handlers.aboutHandler.getAbout())
		r.Get("/api/resume", handlers.resumeHandler.getResume())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/api/update-password", handlers.authHandler.updatePassword())
		r.Get("/api/contact", handlers.contactHandler.listMessages())

		r.Post("/api/projects", handlers.projectHandler.createProject())
		r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/api/ecas", handlers.ecaHandler.createEca())
		r.Put("/api/ecas/{ecaID}", handlers.ecaHandler.updateEca())
		r.Delete("/api/ecas/{ecaID}", handlers.ecaHandler.deleteEca())

		r.Post("/api/skill-categories", handlers.skillHandler.createCategory())
		r.Put("/api/skill-categories/{categoryID}", handlers.skillHandler.updateCategory())
		r.Delete("/api/skill-categories/{categoryID}", handlers.skillHandler.deleteCategory())

		r.Post("/api/skills", handlers.skillHandler.createSkill())
		r.Put("/api/skills/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/api/skills/{skillID}", handlers.skillHandler.deleteSkill())

		r.Post("/api/additional-skills", handlers.skillHandler.createAdditionalSkill())
		r.Delete("/api/additional-skills/{skillID}", handlers.skillHandler.deleteAdditionalSkill())

		r.Post("/api/blogs", handlers.blogHandler.createBlog())
		r.Put("/api/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/api/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		r.Post("/api/experiences", handlers.experienceHandler.createExperience())
		r.Put("/api/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
		r.Delete("/api/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

		r.Post("/api/about", handlers.aboutHandler.upsertAbout())
	})
}
