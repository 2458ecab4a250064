package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler       authHandler
	projectHandler    projectHandler
	ecaHandler        ecaHandler
	skillHandler      skillHandler
	blogHandler       blogHandler
	experienceHandler experienceHandler
	aboutHandler      aboutHandler
	contactHandler    contactHandler
	resumeHandler     resumeHandler
}
