package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/config"
	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
	"github.com/Koushik2208/contentgen-pro/pkg/logger"
)

// AuthHandler delegates credential handling to Supabase GoTrue. This service
// never sees password hashes; it proxies the auth calls, classifies the
// provider's error strings into a stable taxonomy, and syncs the resulting
// user into the local database.
type AuthHandler struct {
	authUC       domain.AuthUsecase
	onboardingUC domain.OnboardingUsecase
	config       *config.Config
	client       *http.Client
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, onboardingUC domain.OnboardingUsecase, paramsConfig *config.Config) {
	handler := &AuthHandler{
		authUC:       authUC,
		onboardingUC: onboardingUC,
		config:       paramsConfig,
		client:       &http.Client{Timeout: 10 * time.Second},
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/reset-password", handler.ResetPassword)
		// Note: Email verification is handled directly by Supabase via email link
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// supabaseRequest builds an authenticated JSON request against the GoTrue API,
// forwarding client IP and user agent so the provider's own abuse detection
// still sees the real caller.
func (h *AuthHandler) supabaseRequest(c *gin.Context, method, endpoint string, body interface{}) (*http.Request, error) {
	jsonBody, _ := json.Marshal(body)
	httpReq, err := http.NewRequestWithContext(c.Request.Context(), method, h.config.SupabaseUrl+endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", h.config.SupabaseKey)
	httpReq.Header.Set("X-Forwarded-For", c.ClientIP())
	httpReq.Header.Set("User-Agent", c.Request.UserAgent())
	return httpReq, nil
}

// gotrueMessage extracts the human-readable error string from a GoTrue error
// body, which varies between "msg" and "error_description" by endpoint.
func gotrueMessage(body map[string]interface{}) string {
	if m, ok := body["msg"].(string); ok {
		return m
	}
	if m, ok := body["error_description"].(string); ok {
		return m
	}
	return ""
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with email and password via Supabase
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reqBody := map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
		// Pass redirect URL in options (this is Supabase's documented format)
		"options": map[string]interface{}{
			"emailRedirectTo": h.config.FrontendURL + "/auth/callback",
		},
	}

	httpReq, err := h.supabaseRequest(c, "POST", "/auth/v1/signup", reqBody)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Log.Error("supabase signup request failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Registration service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		msg := gotrueMessage(errResp)
		logger.Log.Warn("supabase signup rejected", "status", resp.StatusCode, "msg", msg)

		// "User already registered" must surface as a conflict so the client
		// can steer the user to sign-in instead of retrying the form.
		if strings.Contains(strings.ToLower(msg), "already registered") {
			c.Error(apperror.Conflict("An account with this email already exists. Please sign in instead."))
			return
		}
		if msg == "" {
			msg = "Registration failed"
		}
		c.Error(apperror.BadRequest(msg))
		return
	}

	var supabaseUser struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&supabaseUser); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse response", err))
		return
	}

	// User will be synced to the local DB on first login (after email
	// verification), so an unverified signup leaves no local row behind.
	msg := "Registration successful. Please check your email to confirm."
	var data interface{} = nil

	if supabaseUser.AccessToken != "" {
		// Auto-verified case (e.g. auto-confirm enabled); sync now
		user := &domain.User{
			ID:    supabaseUser.ID,
			Email: req.Email,
		}
		if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
			c.Error(err)
			return
		}
		msg = "Registration successful"
		data = gin.H{
			"token": supabaseUser.AccessToken,
			"user":  user,
		}
	}

	response.Success(c, http.StatusCreated, msg, data)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password via Supabase
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// For password login: POST /token?grant_type=password
	// Ref: https://supabase.com/docs/reference/api/auth-token
	reqBody := map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
	}

	httpReq, err := h.supabaseRequest(c, "POST", "/auth/v1/token?grant_type=password", reqBody)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Log.Error("supabase login request failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Login service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		msg := gotrueMessage(errResp)
		logger.Log.Warn("supabase login rejected", "status", resp.StatusCode, "msg", msg)

		// Keep credentials failures generic; only the "verify your email"
		// case is worth surfacing verbatim because the fix is different.
		out := "Invalid email or password"
		if msg == "Email not confirmed" {
			out = "Please confirm your email address before signing in"
		}
		c.Error(apperror.Unauthorized(out))
		return
	}

	var session struct {
		User        domain.User `json:"user"`
		AccessToken string      `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse login response", err))
		return
	}

	// Sync the authenticated user into the local users table
	user := &domain.User{
		ID:    session.User.ID,
		Email: session.User.Email,
	}
	if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	actualUser, err := h.authUC.GetCurrentUser(c.Request.Context(), user.ID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": session.AccessToken,
		"user":  actualUser,
	})
}

// Logout godoc
// @Summary      User Logout
// @Description  Revoke the Supabase session and drop server-side state for the current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	// Revoke the refresh token at GoTrue. Best effort: the client discards its
	// session either way, so a revocation failure is logged, not surfaced.
	if token := bearerToken(c); token != "" {
		h.revokeSession(c, token)
	}

	// The cached onboarding answer must go too, so a different account signing
	// in from the same session starts from a clean slate.
	h.onboardingUC.InvalidateStatus(userID)

	response.Success(c, http.StatusOK, "Logged out", nil)
}

// revokeSession proxies GoTrue /logout with the caller's access token.
func (h *AuthHandler) revokeSession(c *gin.Context, token string) {
	httpReq, err := h.supabaseRequest(c, "POST", "/auth/v1/logout", struct{}{})
	if err != nil {
		logger.Log.Warn("supabase logout request build failed", "error", err)
		return
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Log.Warn("supabase logout request failed", "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		logger.Log.Warn("supabase logout rejected", "status", resp.StatusCode)
	}
}

// bearerToken returns the raw access token the auth middleware accepted,
// from the Authorization header or the auth_token cookie.
func bearerToken(c *gin.Context) string {
	if authz := c.GetHeader("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// Me godoc
// @Summary      Current User
// @Description  Return the authenticated user and their onboarding status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	status, err := h.onboardingUC.GetStatus(requestContext(c), userID)
	if err == nil && status != nil {
		user.OnboardingCompleted = &status.Completed
	}

	response.Success(c, http.StatusOK, "User details", user)
}

// ForgotPasswordRequest for requesting password reset email
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary      Request Password Reset
// @Description  Send password reset email to user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ForgotPasswordRequest  true  "Email address"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	// SECURITY: Track start time for constant-time response (timing attack mitigation)
	start := time.Now()

	// Target response time - should match the slowest path (valid email + Supabase call)
	const targetDuration = 2 * time.Second

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// SECURITY: Always return the same response whether email exists or not.
	// This prevents email enumeration attacks.
	successMessage := "If an account with that email exists, a password reset link has been sent."

	exists, err := h.authUC.CheckEmailExists(c.Request.Context(), req.Email)
	if err != nil || !exists {
		if err != nil {
			logger.Log.Warn("forgot-password lookup failed", "error", err)
		}
		h.simulateDelay(start, targetDuration)
		response.Success(c, http.StatusOK, successMessage, nil)
		return
	}

	// Supabase GoTrue /recover requires redirect_to as a QUERY PARAMETER
	u, _ := url.Parse(h.config.SupabaseUrl + "/auth/v1/recover")
	q := u.Query()
	q.Set("redirect_to", h.config.FrontendURL+"/auth/update-password")
	u.RawQuery = q.Encode()

	httpReq, err := h.supabaseRequest(c, "POST", strings.TrimPrefix(u.String(), h.config.SupabaseUrl), map[string]interface{}{
		"email": req.Email,
	})
	if err != nil {
		logger.Log.Warn("forgot-password request build failed", "error", err)
		h.simulateDelay(start, targetDuration)
		response.Success(c, http.StatusOK, successMessage, nil)
		return
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Log.Warn("supabase recover request failed", "error", err)
		h.simulateDelay(start, targetDuration)
		response.Success(c, http.StatusOK, successMessage, nil)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		// Log internally; never reveal backend state to the caller
		logger.Log.Warn("supabase recover rejected", "status", resp.StatusCode, "msg", gotrueMessage(errResp))
	}

	// SECURITY: Apply delay on every path so ALL responses take the same time
	h.simulateDelay(start, targetDuration)
	response.Success(c, http.StatusOK, successMessage, nil)
}

// simulateDelay ensures the response takes at least targetDuration from start time.
// This prevents timing attacks by making response times constant regardless of code path.
func (h *AuthHandler) simulateDelay(start time.Time, targetDuration time.Duration) {
	elapsed := time.Since(start)
	if elapsed < targetDuration {
		time.Sleep(targetDuration - elapsed)
	}
}

// ResetPasswordRequest for setting new password
type ResetPasswordRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ResetPassword godoc
// @Summary      Reset Password
// @Description  Set new password using reset token from email link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ResetPasswordRequest  true  "Reset password details"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Supabase user update endpoint - requires the access token from the reset link
	httpReq, err := h.supabaseRequest(c, "PUT", "/auth/v1/user", map[string]interface{}{
		"password": req.NewPassword,
	})
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.AccessToken)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Log.Error("supabase password update failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Password update service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		msg := gotrueMessage(errResp)
		if msg == "" {
			msg = fmt.Sprintf("Password reset failed (status %d)", resp.StatusCode)
		}
		c.Error(apperror.BadRequest(msg))
		return
	}

	response.Success(c, http.StatusOK, "Password has been reset successfully. You can now login with your new password.", nil)
}
