package rest

import (
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/cms/internal/cms"
)

// Articles handles GET /api/v1/articles
// @Summary List published articles
// @Description Returns a page of published articles with their category names, oldest first
// @Tags articles
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.ArticlesPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/articles [get]
func (h *Handler) Articles(c echo.Context) error {
	return h.articlesPage(c, true)
}

func (h *Handler) articlesPage(c echo.Context, publishedOnly bool) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := urlstruct.Unmarshal(ctx, c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	total, err := h.cms.Total(ctx, publishedOnly)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	paginator := cms.NewPaginator(req.Page, req.PerPage, total)

	list, err := h.cms.Page(ctx, paginator.Limit, paginator.Offset, publishedOnly)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, ArticlesPage{
		Articles:  Map(list, NewListedArticle),
		Paginator: NewPaginator(paginator, total),
	})
}

// ArticleByID handles GET /api/v1/articles/:id
// @Summary Get published article by ID
// @Description Returns a published article with its category names. Drafts are not found.
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.ListedArticle
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/articles/{id} [get]
func (h *Handler) ArticleByID(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.cms.Listed(c.Request().Context(), id, true)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if article == nil {
		return h.notFound(c)
	}

	return c.JSON(http.StatusOK, NewListedArticle(*article))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.cms.AllCategories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}
