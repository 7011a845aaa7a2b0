package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterRequest is the request body for POST /events/register.
type RegisterRequest struct {
	UserID  int64 `json:"user_id"`
	EventID int64 `json:"event_id"`
}

// Validate implements helpers.Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if r.UserID < 1 {
		errs = append(errs, "user_id is required")
	}
	if r.EventID < 1 {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// RegistrationSuccessResponse is the success response envelope for POST /events/register (201).
type RegistrationSuccessResponse struct {
	Data  *domain.EventRegistration `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// Register godoc
// @Summary Register a user for an event
// @Description Creates an event registration. The user check runs before the event check; a duplicate (user, event) pair yields a conflict.
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "User and event ids"
// @Success 201 {object} controllers.RegistrationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), req.UserID, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// RegisteredUsersSuccessResponse is the success response envelope for GET /events/{eventID}/registered_users (200).
type RegisteredUsersSuccessResponse struct {
	Data  []*domain.User    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListUsersForEvent godoc
// @Summary List users registered for an event
// @Description Returns the users joined through registrations for the event. An event with no registrations yields an empty list.
// @Tags registrations
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.RegisteredUsersSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registered_users [get]
func (c *RegistrationController) ListUsersForEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	users, err := c.Service.UsersForEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// RegisteredEventsSuccessResponse is the success response envelope for GET /users/{userID}/registered_events (200).
type RegisteredEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsForUser godoc
// @Summary List events a user is registered for
// @Tags registrations
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} controllers.RegisteredEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/registered_events [get]
func (c *RegistrationController) ListEventsForUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "userID")
	if !ok {
		return
	}
	events, err := c.Service.EventsForUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
