package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/internal/usecase"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
	"github.com/Koushik2208/contentgen-pro/pkg/validation"
)

// newValidator mirrors the wiring in main: the custom enum validators must be
// registered before any tagged request struct is validated.
func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	return m.Called(ctx, userID, avatarURL).Error(0)
}

type MockPrefsRepo struct {
	mock.Mock
}

func (m *MockPrefsRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreferences), args.Error(1)
}

func (m *MockPrefsRepo) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrefsRepo) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	return m.Called(ctx, prefs).Error(0)
}

type MockContentRepo struct {
	mock.Mock
}

func (m *MockContentRepo) ListByUserID(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContentItem), args.Error(1)
}

func (m *MockContentRepo) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentRepo) Create(ctx context.Context, item *domain.ContentItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockContentRepo) Update(ctx context.Context, item *domain.ContentItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockContentRepo) SetFavorited(ctx context.Context, id string, favorited bool) error {
	return m.Called(ctx, id, favorited).Error(0)
}

func (m *MockContentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentRepo) Summary(ctx context.Context, userID string) (*domain.ContentSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentSummary), args.Error(1)
}

func userCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func newOnboardingUC(profileRepo *MockProfileRepo, prefsRepo *MockPrefsRepo) (domain.OnboardingUsecase, *usecase.StatusChecker) {
	checker := usecase.NewStatusChecker(prefsRepo, time.Second, nil)
	uc := usecase.NewOnboardingUsecase(profileRepo, prefsRepo, checker, newValidator())
	return uc, checker
}

func TestOnboardingIDOR(t *testing.T) {
	uc, _ := newOnboardingUC(new(MockProfileRepo), new(MockPrefsRepo))

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		_, err := uc.GetStatus(userCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "own onboarding status")
	})

	t.Run("Should fail safely when Context UserID is nil", func(t *testing.T) {
		_, err := uc.GetStatus(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestOnboardingCheckStep(t *testing.T) {
	uc, _ := newOnboardingUC(new(MockProfileRepo), new(MockPrefsRepo))

	t.Run("Should reject a step index outside the wizard", func(t *testing.T) {
		result := uc.CheckStep(7, domain.WizardForm{})
		assert.False(t, result.Valid)
		assert.Contains(t, result.FieldErrors, "step")
	})

	t.Run("Should keep the client on an invalid step", func(t *testing.T) {
		result := uc.CheckStep(domain.StepName, domain.WizardForm{})
		assert.False(t, result.Valid)
		assert.Equal(t, domain.StepName, result.NextStep)
		assert.Contains(t, result.FieldErrors, "name")
	})

	t.Run("Should advance past a valid step", func(t *testing.T) {
		result := uc.CheckStep(domain.StepName, domain.WizardForm{Name: "Maya"})
		assert.True(t, result.Valid)
		assert.Equal(t, domain.StepProfession, result.NextStep)
		assert.False(t, result.Submit)
	})

	t.Run("Should signal submit from the final step", func(t *testing.T) {
		result := uc.CheckStep(domain.StepGoals, domain.WizardForm{
			Goals: []string{"reach"},
			Tone:  "casual",
		})
		assert.True(t, result.Valid)
		assert.True(t, result.Submit)
	})
}

func validSubmit() *domain.OnboardingSubmitRequest {
	return &domain.OnboardingSubmitRequest{
		Name:       "Maya",
		Profession: "Business Coach",
		Goals:      []string{"reach", "clients"},
		Tone:       "professional",
		Industry:   "Coaching",
	}
}

func TestOnboardingComplete(t *testing.T) {
	t.Run("Should persist profile and preferences", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		prefsRepo := new(MockPrefsRepo)
		uc, _ := newOnboardingUC(profileRepo, prefsRepo)

		profileRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.UserProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.UserProfile)
			assert.Equal(t, "user1", p.ID)
			assert.Equal(t, "maya@example.com", p.Email)
		})
		prefsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.UserPreferences")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.UserPreferences)
			assert.Equal(t, "user1", p.UserID)
			assert.Equal(t, []string{"reach", "clients"}, p.ContentGoals)
		})

		err := uc.Complete(userCtx("user1"), "user1", "maya@example.com", validSubmit())
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
		prefsRepo.AssertExpectations(t)
	})

	t.Run("Should reject an invalid form before any write", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		prefsRepo := new(MockPrefsRepo)
		uc, _ := newOnboardingUC(profileRepo, prefsRepo)

		req := validSubmit()
		req.Profession = "Astronaut" // not in the option list

		err := uc.Complete(userCtx("user1"), "user1", "maya@example.com", req)
		assert.Error(t, err)
		profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		prefsRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should surface a preferences write failure", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		prefsRepo := new(MockPrefsRepo)
		uc, _ := newOnboardingUC(profileRepo, prefsRepo)

		profileRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		prefsRepo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		err := uc.Complete(userCtx("user1"), "user1", "maya@example.com", validSubmit())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to save preferences")
	})

	t.Run("Should flip the cached onboarding status", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		prefsRepo := new(MockPrefsRepo)
		uc, checker := newOnboardingUC(profileRepo, prefsRepo)

		prefsRepo.On("Exists", mock.Anything, "user1").Return(false, nil).Once()
		assert.False(t, checker.Check(context.Background(), "user1"))

		profileRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		prefsRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		assert.NoError(t, uc.Complete(userCtx("user1"), "user1", "maya@example.com", validSubmit()))

		prefsRepo.On("Exists", mock.Anything, "user1").Return(true, nil).Once()
		assert.True(t, checker.Check(context.Background(), "user1"))
	})
}

func TestContentOwnership(t *testing.T) {
	validate := newValidator()

	t.Run("Should hide another user's item behind a 404", func(t *testing.T) {
		repo := new(MockContentRepo)
		uc := usecase.NewContentUsecase(repo, validate)

		repo.On("GetByID", mock.Anything, "item1").Return(&domain.ContentItem{ID: "item1", UserID: "other"}, nil)

		_, err := uc.Get(userCtx("user1"), "user1", "item1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Content not found")
	})

	t.Run("Should fail when Context UserID does not match", func(t *testing.T) {
		repo := new(MockContentRepo)
		uc := usecase.NewContentUsecase(repo, validate)

		_, err := uc.List(userCtx("user1"), "user2", "", "", "")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "ListByUserID", mock.Anything, mock.Anything)
	})
}

func TestContentFavorite(t *testing.T) {
	validate := newValidator()

	t.Run("Should persist the flag for an owned item", func(t *testing.T) {
		repo := new(MockContentRepo)
		uc := usecase.NewContentUsecase(repo, validate)

		repo.On("GetByID", mock.Anything, "item1").Return(&domain.ContentItem{ID: "item1", UserID: "user1"}, nil)
		repo.On("SetFavorited", mock.Anything, "item1", true).Return(nil)

		assert.NoError(t, uc.ToggleFavorite(userCtx("user1"), "user1", "item1", true))
		repo.AssertExpectations(t)
	})

	t.Run("Should surface a write failure without side effects", func(t *testing.T) {
		repo := new(MockContentRepo)
		uc := usecase.NewContentUsecase(repo, validate)

		repo.On("GetByID", mock.Anything, "item1").Return(&domain.ContentItem{ID: "item1", UserID: "user1"}, nil)
		repo.On("SetFavorited", mock.Anything, "item1", true).Return(errors.New("timeout"))

		err := uc.ToggleFavorite(userCtx("user1"), "user1", "item1", true)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to update favorite")
	})
}

func TestContentListFiltering(t *testing.T) {
	repo := new(MockContentRepo)
	uc := usecase.NewContentUsecase(repo, newValidator())

	repo.On("ListByUserID", mock.Anything, "user1").Return([]domain.ContentItem{
		{ID: "1", Title: "Leadership Lessons", Tone: "Professional", Pillar: "Thought Leadership"},
		{ID: "2", Title: "My Story", Tone: "Storytelling", Pillar: "Personal Story"},
	}, nil)

	items, err := uc.List(userCtx("user1"), "user1", "", "", "Storytelling")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestCarouselSlideView(t *testing.T) {
	t.Run("Should normalize an out-of-range index", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		uc := usecase.NewCarouselUsecase(stubCarouselRepo{n: 3}, contentRepo)

		contentRepo.On("GetByID", mock.Anything, "item1").Return(
			&domain.ContentItem{ID: "item1", UserID: "user1", Type: domain.TypeCarousel}, nil)

		view, err := uc.GetSlide(userCtx("user1"), "user1", "item1", -1)
		assert.NoError(t, err)
		assert.Equal(t, 2, view.Index, "index -1 wraps to the last slide")
		assert.Equal(t, 0, view.NextIndex)
		assert.Equal(t, 1, view.PrevIndex)
		assert.Equal(t, 3, view.Total)
	})

	t.Run("Should reject a non-carousel item", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		uc := usecase.NewCarouselUsecase(stubCarouselRepo{n: 0}, contentRepo)

		contentRepo.On("GetByID", mock.Anything, "item1").Return(
			&domain.ContentItem{ID: "item1", UserID: "user1", Type: domain.TypePost}, nil)

		_, err := uc.GetSlides(userCtx("user1"), "user1", "item1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a carousel")
	})
}

func TestOwnershipLookupFailures(t *testing.T) {
	t.Run("Should surface a carousel content lookup failure as a server error", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		uc := usecase.NewCarouselUsecase(stubCarouselRepo{n: 3}, contentRepo)

		contentRepo.On("GetByID", mock.Anything, "item1").Return(nil, errors.New("connection refused"))

		_, err := uc.GetSlides(userCtx("user1"), "user1", "item1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code, "a repo outage is not a 404")
	})

	t.Run("Should keep 404 for a missing carousel item", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		uc := usecase.NewCarouselUsecase(stubCarouselRepo{n: 3}, contentRepo)

		contentRepo.On("GetByID", mock.Anything, "gone").Return(nil, domain.ErrNotFound)

		_, err := uc.GetSlides(userCtx("user1"), "user1", "gone")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should surface an analytics ownership lookup failure as a server error", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		uc := usecase.NewAnalyticsUsecase(nil, contentRepo, newValidator())

		contentRepo.On("GetByID", mock.Anything, "item1").Return(nil, errors.New("connection refused"))

		_, err := uc.List(userCtx("user1"), "user1", "item1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}

func TestEnumValidation(t *testing.T) {
	t.Run("Should reject an unknown content type on create", func(t *testing.T) {
		repo := new(MockContentRepo)
		uc := usecase.NewContentUsecase(repo, newValidator())

		_, err := uc.Create(userCtx("user1"), "user1", &domain.ContentCreateRequest{
			Type:      "meme",
			Title:     "Title",
			Body:      "Body",
			Tone:      "Professional",
			Pillar:    "Personal Story",
			Platforms: []string{"LinkedIn"},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "post, carousel or thread")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown platform on analytics submit", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		uc := usecase.NewAnalyticsUsecase(nil, contentRepo, newValidator())

		contentRepo.On("GetByID", mock.Anything, "item1").Return(
			&domain.ContentItem{ID: "item1", UserID: "user1"}, nil)

		_, err := uc.Record(userCtx("user1"), "user1", "item1", &domain.AnalyticsSubmitRequest{
			Platform: "MySpace",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a supported platform")
	})

	t.Run("Should reject an unknown tone in preferences", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		prefsRepo := new(MockPrefsRepo)
		checker := usecase.NewStatusChecker(prefsRepo, time.Second, nil)
		uc := usecase.NewProfileUsecase(profileRepo, prefsRepo, checker, newValidator())

		_, err := uc.UpdatePreferences(userCtx("user1"), "user1", &domain.PreferencesUpdateRequest{
			Profession:    "Business Coach",
			ContentGoals:  []string{"reach"},
			PreferredTone: "sarcastic",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a recognized tone")
		prefsRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should require the custom text for the Other profession", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		prefsRepo := new(MockPrefsRepo)
		checker := usecase.NewStatusChecker(prefsRepo, time.Second, nil)
		uc := usecase.NewProfileUsecase(profileRepo, prefsRepo, checker, newValidator())

		_, err := uc.UpdatePreferences(userCtx("user1"), "user1", &domain.PreferencesUpdateRequest{
			Profession:    domain.ProfessionOther,
			ContentGoals:  []string{"reach"},
			PreferredTone: "casual",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "specify your profession")
	})
}

type stubCarouselRepo struct{ n int }

func (s stubCarouselRepo) ListByContentID(ctx context.Context, contentID string) ([]domain.CarouselSlide, error) {
	slides := make([]domain.CarouselSlide, s.n)
	for i := range slides {
		slides[i] = domain.CarouselSlide{ContentID: contentID, SlideNumber: i + 1}
	}
	return slides, nil
}
