package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
)

type analyticsUsecase struct {
	repo     domain.AnalyticsRepository
	content  domain.ContentRepository
	validate *validator.Validate
}

func NewAnalyticsUsecase(repo domain.AnalyticsRepository, content domain.ContentRepository, validate *validator.Validate) domain.AnalyticsUsecase {
	return &analyticsUsecase{repo: repo, content: content, validate: validate}
}

// ownsContent hides other users' content ids behind a 404.
func (u *analyticsUsecase) ownsContent(ctx context.Context, userID, contentID string) error {
	if err := requireCtxUser(ctx, userID); err != nil {
		return err
	}
	item, err := u.content.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Content not found")
		}
		return apperror.New(http.StatusInternalServerError, "Failed to load content: "+err.Error(), err)
	}
	if item.UserID != userID {
		return apperror.NotFound("Content not found")
	}
	return nil
}

func (u *analyticsUsecase) List(ctx context.Context, userID, contentID string) ([]domain.AnalyticsRecord, error) {
	if err := u.ownsContent(ctx, userID, contentID); err != nil {
		return nil, err
	}
	records, err := u.repo.ListByContentID(ctx, contentID)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load analytics: "+err.Error(), err)
	}
	return records, nil
}

func (u *analyticsUsecase) Record(ctx context.Context, userID, contentID string, req *domain.AnalyticsSubmitRequest) (*domain.AnalyticsRecord, error) {
	if err := u.ownsContent(ctx, userID, contentID); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	record := &domain.AnalyticsRecord{
		ContentID:      contentID,
		Platform:       req.Platform,
		Views:          req.Views,
		Likes:          req.Likes,
		Comments:       req.Comments,
		Shares:         req.Shares,
		Clicks:         req.Clicks,
		EngagementRate: req.EngagementRate,
	}
	if err := u.repo.Insert(ctx, record); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to record analytics: "+err.Error(), err)
	}
	return record, nil
}
