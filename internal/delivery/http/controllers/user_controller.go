package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// UserRequest is the request body for POST /users and PUT /users/{userID}.
// All four fields are replaced together on update.
type UserRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// Validate implements helpers.Validator.
func (u UserRequest) Validate() []string {
	var errs []string
	if u.FirstName == "" {
		errs = append(errs, "firstname is required")
	}
	if u.LastName == "" {
		errs = append(errs, "lastname is required")
	}
	email := strings.TrimSpace(u.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if u.Address == "" {
		errs = append(errs, "address is required")
	}
	return errs
}

// UserSuccessResponse is the success response envelope for user endpoints.
type UserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateUser godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User data"
// @Success 201 {object} controllers.UserSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := domain.NewUser(req.FirstName, req.LastName, strings.TrimSpace(req.Email), req.Address)
	if err := c.Service.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} controllers.UserSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "userID")
	if !ok {
		return
	}
	user, err := c.Service.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user by id
// @Description Replaces all four user fields.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param user body UserRequest true "User data"
// @Success 200 {object} controllers.UserSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID} [put]
func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "userID")
	if !ok {
		return
	}
	var req UserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := domain.NewUser(req.FirstName, req.LastName, strings.TrimSpace(req.Email), req.Address)
	user.ID = id
	updated, err := c.Service.UpdateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateUser) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary Delete a user by id
// @Description Deletes the user; their registrations are removed with them.
// @Tags users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "userID")
	if !ok {
		return
	}
	if err := c.Service.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteConfirmation{Message: "User deleted successfully"})
}
