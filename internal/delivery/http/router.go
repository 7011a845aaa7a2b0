package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventregistry/internal/delivery/http/controllers"
	"eventregistry/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	userController *controllers.UserController,
	registrationController *controllers.RegistrationController,
	invitationController *controllers.InvitationController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PUT /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Users
	mux.HandleFunc("POST /users", userController.CreateUser)
	mux.HandleFunc("GET /users/{userID}", userController.GetUser)
	mux.HandleFunc("PUT /users/{userID}", userController.UpdateUser)
	mux.HandleFunc("DELETE /users/{userID}", userController.DeleteUser)

	// Registrations
	mux.HandleFunc("POST /events/register", registrationController.Register)
	mux.HandleFunc("GET /events/{eventID}/registered_users", registrationController.ListUsersForEvent)
	mux.HandleFunc("GET /users/{userID}/registered_events", registrationController.ListEventsForUser)

	// Invitations
	mux.HandleFunc("POST /send_invitations", invitationController.SendInvitations)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
