package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Koushik2208/contentgen-pro/config"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/logger"
)

type fakeOnboardingUC struct {
	invalidated []string
}

func (f *fakeOnboardingUC) GetStatus(ctx context.Context, userID string) (*domain.OnboardingStatus, error) {
	return &domain.OnboardingStatus{}, nil
}

func (f *fakeOnboardingUC) CheckStep(step int, form domain.WizardForm) domain.StepResult {
	return domain.StepResult{}
}

func (f *fakeOnboardingUC) Complete(ctx context.Context, userID, email string, req *domain.OnboardingSubmitRequest) error {
	return nil
}

func (f *fakeOnboardingUC) InvalidateStatus(userID string) {
	f.invalidated = append(f.invalidated, userID)
}

func logoutContext(t *testing.T, userID, token string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	c.Set(string(domain.KeyUserID), userID)
	return c, w
}

func TestLogoutRevokesSupabaseSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	var mu sync.Mutex
	var path, authz, apikey string
	gotrue := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		path = r.URL.Path
		authz = r.Header.Get("Authorization")
		apikey = r.Header.Get("apikey")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer gotrue.Close()

	onboarding := &fakeOnboardingUC{}
	handler := &AuthHandler{
		onboardingUC: onboarding,
		config:       &config.Config{SupabaseUrl: gotrue.URL, SupabaseKey: "anon-key"},
		client:       &http.Client{Timeout: time.Second},
	}

	c, w := logoutContext(t, "user1", "access-token-123")
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mu.Lock()
	assert.Equal(t, "/auth/v1/logout", path, "GoTrue revocation endpoint must be called")
	assert.Equal(t, "Bearer access-token-123", authz, "the caller's token is what gets revoked")
	assert.Equal(t, "anon-key", apikey)
	mu.Unlock()
	assert.Equal(t, []string{"user1"}, onboarding.invalidated, "status cache dropped after revocation")
}

func TestLogoutSurvivesRevocationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	onboarding := &fakeOnboardingUC{}
	handler := &AuthHandler{
		onboardingUC: onboarding,
		// Port 0 is never listening, so the revocation call fails fast.
		config: &config.Config{SupabaseUrl: "http://127.0.0.1:0", SupabaseKey: "anon-key"},
		client: &http.Client{Timeout: 200 * time.Millisecond},
	}

	c, w := logoutContext(t, "user1", "token")
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code, "logout is best effort, the client signs out regardless")
	assert.Equal(t, []string{"user1"}, onboarding.invalidated)
}
