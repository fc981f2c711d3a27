package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type OnboardingHandler struct {
	onboardingUC domain.OnboardingUsecase
}

func NewOnboardingHandler(r *gin.RouterGroup, onboardingUC domain.OnboardingUsecase) {
	handler := &OnboardingHandler{onboardingUC: onboardingUC}

	onboarding := r.Group("/onboarding")
	{
		onboarding.GET("/status", handler.GetStatus)
		onboarding.POST("/step", handler.CheckStep)
		onboarding.POST("/complete", handler.Complete)
	}
}

// GetStatus godoc
// @Summary      Get onboarding status
// @Description  Check if the current user has completed the onboarding wizard
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.OnboardingStatus}
// @Failure      401  {object}  response.Response
// @Router       /onboarding/status [get]
// @Security     BearerAuth
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	status, err := h.onboardingUC.GetStatus(requestContext(c), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding status retrieved", status)
}

type StepRequest struct {
	Step int               `json:"step"`
	Form domain.WizardForm `json:"form"`
}

// CheckStep godoc
// @Summary      Validate one wizard step
// @Description  Run server-side validation for a single onboarding step and report where to go next
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      StepRequest  true  "Step index and form values"
// @Success      200      {object}  response.Response{data=domain.StepResult}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /onboarding/step [post]
// @Security     BearerAuth
func (h *OnboardingHandler) CheckStep(c *gin.Context) {
	var req StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	result := h.onboardingUC.CheckStep(req.Step, req.Form)
	response.Success(c, http.StatusOK, "Step checked", result)
}

// Complete godoc
// @Summary      Complete onboarding wizard
// @Description  Submit all onboarding wizard data and mark onboarding as complete
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      domain.OnboardingSubmitRequest  true  "Onboarding data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /onboarding/complete [post]
// @Security     BearerAuth
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	var req domain.OnboardingSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	if err := h.onboardingUC.Complete(requestContext(c), userID, email, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding completed successfully", nil)
}
