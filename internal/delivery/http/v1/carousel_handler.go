package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type CarouselHandler struct {
	carouselUC domain.CarouselUsecase
}

func NewCarouselHandler(r *gin.RouterGroup, carouselUC domain.CarouselUsecase) {
	handler := &CarouselHandler{carouselUC: carouselUC}

	// Slides hang off the content resource; only carousel-typed items have any
	r.GET("/content/:id/slides", handler.GetSlides)
	r.GET("/content/:id/slides/:index", handler.GetSlide)
}

// GetSlides godoc
// @Summary      List carousel slides
// @Description  Return all slides of a carousel content item, in slide order
// @Tags         carousel
// @Produce      json
// @Param        id   path      string  true  "Content ID"
// @Success      200  {object}  response.Response{data=[]domain.CarouselSlide}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /content/{id}/slides [get]
// @Security     BearerAuth
func (h *CarouselHandler) GetSlides(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	slides, err := h.carouselUC.GetSlides(requestContext(c), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Slides retrieved", slides)
}

// GetSlide godoc
// @Summary      Get one slide by index
// @Description  Return the slide at the given index with wrap-around: index -1 is the last slide, index len is the first. The payload carries next/prev indices for navigation.
// @Tags         carousel
// @Produce      json
// @Param        id     path      string  true  "Content ID"
// @Param        index  path      int     true  "Slide index (any integer, normalized cyclically)"
// @Success      200    {object}  response.Response{data=domain.SlideView}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /content/{id}/slides/{index} [get]
// @Security     BearerAuth
func (h *CarouselHandler) GetSlide(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	idx, err := parseIndex(c, "index")
	if err != nil {
		c.Error(err)
		return
	}

	view, err := h.carouselUC.GetSlide(requestContext(c), userID, c.Param("id"), idx)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Slide retrieved", view)
}
