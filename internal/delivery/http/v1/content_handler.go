package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
)

type ContentHandler struct {
	contentUC   domain.ContentUsecase
	analyticsUC domain.AnalyticsUsecase
}

func NewContentHandler(r *gin.RouterGroup, contentUC domain.ContentUsecase, analyticsUC domain.AnalyticsUsecase) {
	handler := &ContentHandler{contentUC: contentUC, analyticsUC: analyticsUC}

	content := r.Group("/content")
	{
		content.GET("", handler.List)
		content.GET("/summary", handler.Summary)
		content.POST("", handler.Create)
		content.GET("/:id", handler.Get)
		content.PATCH("/:id", handler.Update)
		content.DELETE("/:id", handler.Delete)
		content.PUT("/:id/favorite", handler.Favorite)
		content.GET("/:id/download", handler.Download)
		content.GET("/:id/analytics", handler.ListAnalytics)
		content.POST("/:id/analytics", handler.RecordAnalytics)
	}
}

// List godoc
// @Summary      List content
// @Description  List the user's content library, filtered by search text, pillar and tone
// @Tags         content
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive substring over title and body"
// @Param        pillar  query     string  false  "Pillar filter ('All Pillars' or empty disables)"
// @Param        tone    query     string  false  "Tone filter ('All Tones' or empty disables)"
// @Success      200     {object}  response.Response{data=[]domain.ContentItem}
// @Failure      401     {object}  response.Response
// @Router       /content [get]
// @Security     BearerAuth
func (h *ContentHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	items, err := h.contentUC.List(requestContext(c), userID,
		c.Query("search"), c.Query("pillar"), c.Query("tone"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Content retrieved", items)
}

// Summary godoc
// @Summary      Content summary
// @Description  Aggregate counts for the dashboard header
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ContentSummary}
// @Failure      401  {object}  response.Response
// @Router       /content/summary [get]
// @Security     BearerAuth
func (h *ContentHandler) Summary(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	summary, err := h.contentUC.Summary(requestContext(c), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Content summary", summary)
}

// Get godoc
// @Summary      Get content item
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  response.Response{data=domain.ContentItem}
// @Failure      404  {object}  response.Response
// @Router       /content/{id} [get]
// @Security     BearerAuth
func (h *ContentHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	item, err := h.contentUC.Get(requestContext(c), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Content retrieved", item)
}

// Create godoc
// @Summary      Create content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ContentCreateRequest  true  "Content fields"
// @Success      201      {object}  response.Response{data=domain.ContentItem}
// @Failure      400      {object}  response.Response
// @Router       /content [post]
// @Security     BearerAuth
func (h *ContentHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.ContentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	item, err := h.contentUC.Create(requestContext(c), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Content created", item)
}

// Update godoc
// @Summary      Update content
// @Description  Partial update; only fields present in the body change
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Content ID"
// @Param        request  body      domain.ContentUpdateRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=domain.ContentItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /content/{id} [patch]
// @Security     BearerAuth
func (h *ContentHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.ContentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	item, err := h.contentUC.Update(requestContext(c), userID, c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Content updated", item)
}

// Delete godoc
// @Summary      Delete content
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /content/{id} [delete]
// @Security     BearerAuth
func (h *ContentHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.contentUC.Delete(requestContext(c), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Content deleted", nil)
}

type FavoriteRequest struct {
	Favorited bool `json:"favorited"`
}

// Favorite godoc
// @Summary      Set favorite flag
// @Description  Mark or unmark a content item as favorite. The flag is only persisted server-side; clients should update their view after a successful response.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "Content ID"
// @Param        request  body      FavoriteRequest  true  "Desired flag"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /content/{id}/favorite [put]
// @Security     BearerAuth
func (h *ContentHandler) Favorite(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	if err := h.contentUC.ToggleFavorite(requestContext(c), userID, c.Param("id"), req.Favorited); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite updated", gin.H{"favorited": req.Favorited})
}

// Download godoc
// @Summary      Download content as text
// @Description  Export a content item as a plain-text attachment named after its title
// @Tags         content
// @Produce      text/plain
// @Param        id   path      string  true  "Content ID"
// @Success      200  {string}  string  "text file"
// @Failure      404  {object}  response.Response
// @Router       /content/{id}/download [get]
// @Security     BearerAuth
func (h *ContentHandler) Download(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	filename, body, err := h.contentUC.Export(requestContext(c), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

// ListAnalytics godoc
// @Summary      List analytics for a content item
// @Tags         analytics
// @Produce      json
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  response.Response{data=[]domain.AnalyticsRecord}
// @Failure      404  {object}  response.Response
// @Router       /content/{id}/analytics [get]
// @Security     BearerAuth
func (h *ContentHandler) ListAnalytics(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	records, err := h.analyticsUC.List(requestContext(c), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analytics retrieved", records)
}

// RecordAnalytics godoc
// @Summary      Record an analytics snapshot
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Content ID"
// @Param        request  body      domain.AnalyticsSubmitRequest  true  "Per-platform metrics"
// @Success      201      {object}  response.Response{data=domain.AnalyticsRecord}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /content/{id}/analytics [post]
// @Security     BearerAuth
func (h *ContentHandler) RecordAnalytics(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.AnalyticsSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	record, err := h.analyticsUC.Record(requestContext(c), userID, c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Analytics recorded", record)
}

// parseIndex converts a path segment into a slide index; any integer is
// accepted because the deck normalizes cyclically.
func parseIndex(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.BadRequest("Invalid slide index: " + raw)
	}
	return idx, nil
}
