package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/cms/internal/cms"
	"github.com/daniilsolovey/cms/internal/mailer"
)

// Authenticator checks admin credentials and guards the admin routes.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
	IssueToken(username string) (string, error)
	Middleware() echo.MiddlewareFunc
}

type UploadsConfig struct {
	Dir     string
	MaxSize int64
}

type Handler struct {
	cms     cms.IManager
	auth    Authenticator
	mailer  mailer.Sender
	uploads UploadsConfig
	log     *slog.Logger
}

func NewHandler(manager cms.IManager, auth Authenticator, sender mailer.Sender,
	uploads UploadsConfig, log *slog.Logger) *Handler {
	return &Handler{
		cms:     manager,
		auth:    auth,
		mailer:  sender,
		uploads: uploads,
		log:     log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

func (h *Handler) notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
}

// articleID parses the :id path parameter. Ids are positive and fit the
// integer column of the store.
func articleID(c echo.Context) (int, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}

	return int(id), nil
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} rest.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
