package api

import (
	"time"

	"github.com/saadtahsin/portfolio-backend/database"
	"github.com/saadtahsin/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier services.Notifier, secret *adminSecret, signingKey []byte, tokenTTL time.Duration) *routeHandlers {
	return &routeHandlers{
		authHandler:       newAuthHandler(secret, signingKey, tokenTTL),
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		ecaHandler:        newEcaHandler(database.EcaRepo()),
		skillHandler:      newSkillHandler(database.SkillCategoryRepo(), database.SkillRepo(), database.AdditionalSkillRepo()),
		blogHandler:       newBlogHandler(database.BlogRepo()),
		experienceHandler: newExperienceHandler(database.ExperienceRepo()),
		aboutHandler:      newAboutHandler(database.AboutInfoRepo()),
		contactHandler:    newContactHandler(database.ContactMessageRepo(), notifier),
		resumeHandler:     newResumeHandler(services.DefaultProfile),
	}
}
