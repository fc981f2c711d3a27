package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
	"github.com/Koushik2208/contentgen-pro/pkg/storage"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	avatars   *storage.AvatarStore
}

func NewProfileHandler(r *gin.RouterGroup, uploadLimited *gin.RouterGroup, profileUC domain.ProfileUsecase, avatars *storage.AvatarStore) {
	handler := &ProfileHandler{profileUC: profileUC, avatars: avatars}

	profile := r.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.PUT("/preferences", handler.UpdatePreferences)
	}

	// Avatar upload sits behind the stricter upload rate limit
	uploadLimited.POST("/profile/avatar", handler.UploadAvatar)
}

// Get godoc
// @Summary      Get profile
// @Description  Return the user's profile together with their content preferences
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, prefs, err := h.profileUC.GetProfile(requestContext(c), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", gin.H{
		"profile":     profile,
		"preferences": prefs,
	})
}

// Update godoc
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProfileUpdateRequest  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.UserProfile}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	profile, err := h.profileUC.UpdateProfile(requestContext(c), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// UpdatePreferences godoc
// @Summary      Update content preferences
// @Description  Replace the user's content preferences (profession, goals, tone, pillars, notifications)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      domain.PreferencesUpdateRequest  true  "Preference fields"
// @Success      200      {object}  response.Response{data=domain.UserPreferences}
// @Failure      400      {object}  response.Response
// @Router       /profile/preferences [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.PreferencesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	prefs, err := h.profileUC.UpdatePreferences(requestContext(c), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Preferences updated", prefs)
}

// UploadAvatar godoc
// @Summary      Upload avatar image
// @Description  Accepts a multipart "avatar" file (jpeg/png/gif/webp, max 2 MiB). The image header is sniffed server-side; the client's filename and content type are not trusted.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar  formData  file  true  "Avatar image"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      503     {object}  response.Response
// @Router       /profile/avatar [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if !h.avatars.IsConfigured() {
		c.Error(apperror.New(http.StatusServiceUnavailable, "Avatar storage is not configured", nil))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.BadRequest("Missing avatar file: " + err.Error()))
		return
	}
	if fileHeader.Size > storage.MaxAvatarBytes {
		c.Error(apperror.BadRequest("Avatar must be 2MB or smaller"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	// +1 so an oversized body is detected rather than silently truncated
	data, err := io.ReadAll(io.LimitReader(file, storage.MaxAvatarBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if len(data) > storage.MaxAvatarBytes {
		c.Error(apperror.BadRequest("Avatar must be 2MB or smaller"))
		return
	}

	avatarURL, err := h.avatars.Upload(c.Request.Context(), userID, data)
	if err != nil {
		c.Error(apperror.BadRequest("Avatar upload failed: " + err.Error()))
		return
	}

	if err := h.profileUC.UpdateAvatar(requestContext(c), userID, avatarURL); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Avatar updated", gin.H{"avatar_url": avatarURL})
}
