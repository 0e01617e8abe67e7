package rest

import (
	"github.com/labstack/echo/v4"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/daniilsolovey/cms/internal/metrics"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	articlesPath    = "/articles"
	articleByIDPath = "/articles/:id"
	categoriesPath  = "/categories"
	loginPath       = "/login"
	contactPath     = "/contact"

	adminPrefix      = "/admin"
	adminPublishPath = "/articles/:id/publish"
	adminImagePath   = "/articles/:id/image"

	// Service paths
	healthPath    = "/health"
	metricsPath   = "/metrics"
	swaggerPath   = "/swagger/*"
	uploadsPrefix = "/uploads"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	h.registerServiceRoutes(e)

	api := e.Group(apiV1Prefix)
	h.registerPublicRoutes(api)
	h.registerAdminRoutes(api.Group(adminPrefix, h.auth.Middleware()))
}

func (h *Handler) registerServiceRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(metrics.Handler()))
	e.GET(swaggerPath, echo.WrapHandler(httpSwagger.Handler()))
	e.Static(uploadsPrefix, h.uploads.Dir)
}

func (h *Handler) registerPublicRoutes(g *echo.Group) {
	g.GET(articlesPath, h.Articles)
	g.GET(articleByIDPath, h.ArticleByID)
	g.GET(categoriesPath, h.Categories)
	g.POST(loginPath, h.Login)
	g.POST(contactPath, h.Contact)
}

func (h *Handler) registerAdminRoutes(g *echo.Group) {
	g.GET(articlesPath, h.AdminArticles)
	g.POST(articlesPath, h.CreateArticle)
	g.GET(articleByIDPath, h.AdminArticleByID)
	g.PUT(articleByIDPath, h.UpdateArticle)
	g.DELETE(articleByIDPath, h.DeleteArticle)
	g.POST(adminPublishPath, h.PublishArticle)
	g.POST(adminImagePath, h.UploadImage, h.uploadLimit()...)
	g.DELETE(adminImagePath, h.DeleteImage)
}
