package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
)

type contentUsecase struct {
	repo     domain.ContentRepository
	validate *validator.Validate
}

func NewContentUsecase(repo domain.ContentRepository, validate *validator.Validate) domain.ContentUsecase {
	return &contentUsecase{repo: repo, validate: validate}
}

func requireCtxUser(ctx context.Context, userID string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only access your own content")
	}
	return nil
}

// getOwned fetches an item and hides other users' rows behind a 404 so ids
// cannot be probed.
func (u *contentUsecase) getOwned(ctx context.Context, userID, id string) (*domain.ContentItem, error) {
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Content not found")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load content: "+err.Error(), err)
	}
	if item.UserID != userID {
		return nil, apperror.NotFound("Content not found")
	}
	return item, nil
}

// List returns the user's content newest-first with the dashboard filters
// applied. Filtering happens in memory over the already-scoped list; the
// three predicates are independent so their order does not matter.
func (u *contentUsecase) List(ctx context.Context, userID, search, pillar, tone string) ([]domain.ContentItem, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, err
	}

	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load content: "+err.Error(), err)
	}
	return domain.FilterContent(items, search, pillar, tone), nil
}

func (u *contentUsecase) Get(ctx context.Context, userID, id string) (*domain.ContentItem, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.getOwned(ctx, userID, id)
}

func (u *contentUsecase) Create(ctx context.Context, userID string, req *domain.ContentCreateRequest) (*domain.ContentItem, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, err
	}
	// Enum fields are covered by the registered custom validators.
	if err := u.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	item := &domain.ContentItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      req.Type,
		Title:     req.Title,
		Body:      req.Body,
		Tone:      req.Tone,
		Pillar:    req.Pillar,
		Platforms: req.Platforms,
	}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to create content: "+err.Error(), err)
	}
	return item, nil
}

func (u *contentUsecase) Update(ctx context.Context, userID, id string, req *domain.ContentUpdateRequest) (*domain.ContentItem, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, err
	}
	item, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Body != nil {
		item.Body = *req.Body
	}
	if req.Tone != nil {
		if !domain.ContentTone(*req.Tone).IsValid() {
			return nil, apperror.BadRequest("Unknown tone: " + *req.Tone)
		}
		item.Tone = *req.Tone
	}
	if req.Pillar != nil {
		if !domain.ContentPillar(*req.Pillar).IsValid() {
			return nil, apperror.BadRequest("Unknown pillar: " + *req.Pillar)
		}
		item.Pillar = *req.Pillar
	}
	if req.Platforms != nil {
		for _, p := range req.Platforms {
			if !domain.SocialPlatform(p).IsValid() {
				return nil, apperror.BadRequest("Unknown platform: " + p)
			}
		}
		item.Platforms = req.Platforms
	}

	if err := u.repo.Update(ctx, item); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to update content: "+err.Error(), err)
	}
	return item, nil
}

// ToggleFavorite persists the flag and nothing else; the caller's list is
// only updated after the backend acknowledges, so a failure needs no
// rollback anywhere.
func (u *contentUsecase) ToggleFavorite(ctx context.Context, userID, id string, favorited bool) error {
	if err := requireCtxUser(ctx, userID); err != nil {
		return err
	}
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := u.repo.SetFavorited(ctx, id, favorited); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to update favorite: "+err.Error(), err)
	}
	return nil
}

func (u *contentUsecase) Delete(ctx context.Context, userID, id string) error {
	if err := requireCtxUser(ctx, userID); err != nil {
		return err
	}
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to delete content: "+err.Error(), err)
	}
	return nil
}

// Export renders an item as a downloadable text file. The filename comes
// from the title via the filesystem-safe sanitizer.
func (u *contentUsecase) Export(ctx context.Context, userID, id string) (string, []byte, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return "", nil, err
	}
	item, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return "", nil, err
	}

	body := []byte(item.Title + "\n\n" + item.Body)
	return domain.ExportFilename(item.Title), body, nil
}

func (u *contentUsecase) Summary(ctx context.Context, userID string) (*domain.ContentSummary, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, err
	}
	summary, err := u.repo.Summary(ctx, userID)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load summary: "+err.Error(), err)
	}
	return summary, nil
}
