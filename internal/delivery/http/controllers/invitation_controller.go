package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.EmailService
}

func NewInvitationController(logger *slog.Logger, svc domain.EmailService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendInvitationsRequest is the request body for POST /send_invitations.
type SendInvitationsRequest struct {
	Emails    []string `json:"emails"`
	EventName string   `json:"event_name"`
}

// Validate implements helpers.Validator.
func (s SendInvitationsRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.EventName) == "" {
		errs = append(errs, "event_name is required")
	}
	if len(s.Emails) == 0 {
		errs = append(errs, "emails must not be empty")
	}
	for i, e := range s.Emails {
		if !emailRegexp.MatchString(strings.TrimSpace(e)) {
			errs = append(errs, fmt.Sprintf("emails[%d] is not a valid email address", i))
		}
	}
	return errs
}

// SendInvitationsSuccessResponse is the success response envelope for POST /send_invitations (200).
type SendInvitationsSuccessResponse struct {
	Data  []*domain.InvitationResult `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// SendInvitations godoc
// @Summary Send invitation emails for an event
// @Description Sends one invitation per address and reports a per-address outcome. A failed address does not abort the rest; 502 is returned only when every send failed.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitations body SendInvitationsRequest true "Addresses and event name"
// @Success 200 {object} controllers.SendInvitationsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: relay_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /send_invitations [post]
func (c *InvitationController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	var req SendInvitationsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	results, err := c.Service.SendInvitations(r.Context(), req.EventName, req.Emails)
	if err != nil {
		if errors.Is(err, domain.ErrRelayUnavailable) {
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeRelayError, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, results)
}
