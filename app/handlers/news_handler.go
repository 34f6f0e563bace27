package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// NewsHandler serves the news resource
type NewsHandler struct {
	*ContentHandler[models.News]
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(flow businessflow.ContentFlow[models.News], cache services.ListCache) *NewsHandler {
	return &NewsHandler{
		ContentHandler: NewContentHandler(flow, cache, "news", buildNewsQuery,
			func(n *models.News) any { return businessflow.ToNewsDTO(*n, true) },
			func(n *models.News) any { return businessflow.ToNewsDTO(*n, false) },
		),
	}
}

func buildNewsQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListNewsRequest
	_ = c.Bind().Query(&req)

	q := repository.ListQuery{
		Page:          req.Page,
		Limit:         req.Limit,
		Search:        req.Search,
		SearchColumns: []string{"title", "summary", "content"},
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		SortColumns: map[string]string{
			"title":     "title",
			"category":  "category",
			"createdAt": "created_at",
		},
		DefaultOrder: "is_featured DESC, created_at DESC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "category", req.Category)
	return q
}

// Create adds a news article
// @Summary Create news
// @Tags News
// @Accept json
// @Produce json
// @Param request body dto.CreateNewsRequest true "News data"
// @Success 201 {object} dto.APIResponse{data=dto.NewsDTO}
// @Failure 400 {object} dto.APIResponse
// @Router /api/admin/news [post]
func (h *NewsHandler) Create(c fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidNewsCategory(req.Category) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown category", "INVALID_ENUM_VALUE", nil)
	}

	article := models.News{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Category: req.Category,
		Images:   businessflow.ToMediaList(req.Images),
	}
	article.IsPublished = req.IsPublished
	article.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/news"), &article, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToNewsDTO(article, true))
}

// Update modifies a news article; removed images are deleted best effort
// @Summary Update news
// @Tags News
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param request body dto.UpdateNewsRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.NewsDTO}
// @Failure 404 {object} dto.APIResponse
// @Router /api/admin/news/{id} [put]
func (h *NewsHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateNewsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.Category != nil && !models.IsValidNewsCategory(*req.Category) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown category", "INVALID_ENUM_VALUE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/news/:id")
	article, ferr := h.flow.Get(ctx, id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}

	oldImages := article.Images
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Summary != nil {
		article.Summary = *req.Summary
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Images != nil {
		article.Images = businessflow.ToMediaList(*req.Images)
	}
	if req.IsPublished != nil {
		article.IsPublished = req.IsPublished
	}
	if req.IsFeatured != nil {
		article.IsFeatured = req.IsFeatured
	}

	removed := businessflow.RemovedAttachments(oldImages, article.Images)
	if err := h.flow.Update(ctx, article, h.adminID(c), removed); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToNewsDTO(*article, true))
}
