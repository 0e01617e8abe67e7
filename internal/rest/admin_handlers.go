package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/cms/internal/cms"
	"github.com/daniilsolovey/cms/internal/metrics"
)

// AdminArticles handles GET /api/v1/admin/articles
// @Summary List all articles
// @Description Returns a page of articles including drafts, drafts last
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.ArticlesPage
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/admin/articles [get]
func (h *Handler) AdminArticles(c echo.Context) error {
	return h.articlesPage(c, false)
}

// AdminArticleByID handles GET /api/v1/admin/articles/:id
// @Summary Get article for editing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} rest.ArticleForm
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [get]
func (h *Handler) AdminArticleByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.cms.ByID(ctx, id, cms.ProjectionFull)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if article == nil {
		return h.notFound(c)
	}

	categoryIDs, err := h.cms.CategoryIDs(ctx, id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, ArticleForm{
		Article:     NewArticle(*article),
		CategoryIDs: categoryIDs,
	})
}

// CreateArticle handles POST /api/v1/admin/articles
// @Summary Create article
// @Description Creates an article, optionally linking it to categories. An empty publishedAt creates a draft.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.ArticleRequest true "Article"
// @Success 201 {object} rest.Article
// @Failure 422 {object} rest.ErrorsResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/admin/articles [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	ctx := c.Request().Context()

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article := req.ToModel(0)

	var err error
	if req.CategoryIDs != nil {
		err = h.cms.CreateWithCategories(ctx, article, req.CategoryIDs)
	} else {
		err = h.cms.Create(ctx, article)
	}

	if errors.Is(err, cms.ErrInvalidArticle) {
		metrics.RecordArticleMutation(metrics.OpCreate, metrics.StatusInvalid)
		return c.JSON(http.StatusUnprocessableEntity, ErrorsResponse{Errors: article.Errors})
	} else if err != nil {
		metrics.RecordArticleMutation(metrics.OpCreate, metrics.StatusFailure)
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	metrics.RecordArticleMutation(metrics.OpCreate, metrics.StatusSuccess)
	return c.JSON(http.StatusCreated, NewArticle(*article))
}

// UpdateArticle handles PUT /api/v1/admin/articles/:id
// @Summary Update article
// @Description Updates title, content and publication date. Categories are replaced when categoryIds is present.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body rest.ArticleRequest true "Article"
// @Success 200 {object} rest.Article
// @Failure 422 {object} rest.ErrorsResponse
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [put]
func (h *Handler) UpdateArticle(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	existing, err := h.cms.ByID(ctx, id, cms.ProjectionFull)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if existing == nil {
		return h.notFound(c)
	}

	article := req.ToModel(id)
	article.ImageFile = existing.ImageFile

	if req.CategoryIDs != nil {
		err = h.cms.UpdateWithCategories(ctx, article, req.CategoryIDs)
	} else {
		err = h.cms.Update(ctx, article)
	}

	if errors.Is(err, cms.ErrInvalidArticle) {
		metrics.RecordArticleMutation(metrics.OpUpdate, metrics.StatusInvalid)
		return c.JSON(http.StatusUnprocessableEntity, ErrorsResponse{Errors: article.Errors})
	} else if err != nil {
		metrics.RecordArticleMutation(metrics.OpUpdate, metrics.StatusFailure)
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	metrics.RecordArticleMutation(metrics.OpUpdate, metrics.StatusSuccess)
	return c.JSON(http.StatusOK, NewArticle(*article))
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id
// @Summary Delete article
// @Description Deletes the article, its category links and its image file
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.cms.ByID(ctx, id, cms.ProjectionFull)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if article == nil {
		return h.notFound(c)
	}

	if err := h.cms.Delete(ctx, id); err != nil {
		metrics.RecordArticleMutation(metrics.OpDelete, metrics.StatusFailure)
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	if article.ImageFile != nil {
		h.removeImage(*article.ImageFile)
	}

	metrics.RecordArticleMutation(metrics.OpDelete, metrics.StatusSuccess)
	return c.NoContent(http.StatusNoContent)
}

// PublishArticle handles POST /api/v1/admin/articles/:id/publish
// @Summary Publish article
// @Description Sets the publication date to the current UTC time, overwriting any previous date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} rest.PublishResponse
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id}/publish [post]
func (h *Handler) PublishArticle(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.cms.ByID(ctx, id, cms.ProjectionID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if article == nil {
		return h.notFound(c)
	}

	publishedAt, err := h.cms.Publish(ctx, id)
	if errors.Is(err, cms.ErrArticleNotFound) {
		metrics.RecordArticleMutation(metrics.OpPublish, metrics.StatusFailure)
		return h.notFound(c)
	} else if err != nil {
		metrics.RecordArticleMutation(metrics.OpPublish, metrics.StatusFailure)
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	metrics.RecordArticleMutation(metrics.OpPublish, metrics.StatusSuccess)
	return c.JSON(http.StatusOK, PublishResponse{PublishedAt: publishedAt})
}
