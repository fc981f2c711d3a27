package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type TemplateHandler struct {
	templateUC domain.TemplateUsecase
}

func NewTemplateHandler(r *gin.RouterGroup, templateUC domain.TemplateUsecase) {
	handler := &TemplateHandler{templateUC: templateUC}

	r.GET("/templates", handler.List)
}

// List godoc
// @Summary      List content templates
// @Description  List active content templates, optionally narrowed by type, tone or pillar
// @Tags         templates
// @Produce      json
// @Param        type    query     string  false  "Content type filter (post, carousel, thread)"
// @Param        tone    query     string  false  "Tone filter"
// @Param        pillar  query     string  false  "Pillar filter"
// @Success      200     {object}  response.Response{data=[]domain.ContentTemplate}
// @Failure      400     {object}  response.Response
// @Router       /templates [get]
// @Security     BearerAuth
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateUC.List(requestContext(c), domain.TemplateFilter{
		Type:   c.Query("type"),
		Tone:   c.Query("tone"),
		Pillar: c.Query("pillar"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Templates retrieved", templates)
}
