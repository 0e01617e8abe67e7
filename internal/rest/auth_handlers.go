package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/cms/internal/auth"
	"github.com/daniilsolovey/cms/internal/metrics"
)

// Login handles POST /api/v1/login
// @Summary Obtain admin token
// @Description Checks username and password and issues a JWT for the admin API
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.TokenResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	err := h.auth.Authenticate(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.log.Warn("login failed", "username", req.Username)
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login incorrect"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	token, err := h.auth.IssueToken(req.Username)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "token generation failed")
	}

	h.log.Info("login succeeded", "username", req.Username)
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Contact handles POST /api/v1/contact
// @Summary Send contact message
// @Description Validates the message and mails it to the site owner with the visitor as Reply-To
// @Tags contact
// @Accept json
// @Produce json
// @Param request body rest.ContactRequest true "Message"
// @Success 200 {object} rest.StatusResponse
// @Failure 422 {object} rest.ErrorsResponse
// @Failure 400,502 {object} map[string]string
// @Router /api/v1/contact [post]
func (h *Handler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	msg := req.ToModel()
	if errs := msg.Validate(); len(errs) > 0 {
		metrics.RecordContactMessage(metrics.StatusInvalid)
		return c.JSON(http.StatusUnprocessableEntity, ErrorsResponse{Errors: errs})
	}

	if err := h.mailer.Send(c.Request().Context(), msg); err != nil {
		metrics.RecordContactMessage(metrics.StatusFailure)
		return h.handleError(c, err, http.StatusBadGateway, "message could not be sent")
	}

	metrics.RecordContactMessage(metrics.StatusSuccess)
	return c.JSON(http.StatusOK, StatusResponse{Status: "sent"})
}
