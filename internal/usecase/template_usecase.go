package usecase

import (
	"context"
	"net/http"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
)

type templateUsecase struct {
	repo domain.TemplateRepository
}

func NewTemplateUsecase(repo domain.TemplateRepository) domain.TemplateUsecase {
	return &templateUsecase{repo: repo}
}

func (u *templateUsecase) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.ContentTemplate, error) {
	if filter.Type != "" && !domain.ContentType(filter.Type).IsValid() {
		return nil, apperror.BadRequest("Unknown content type: " + filter.Type)
	}
	templates, err := u.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load templates: "+err.Error(), err)
	}
	return templates, nil
}
