package usecase

import (
	"strings"

	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
	"github.com/Koushik2208/contentgen-pro/pkg/validation"
)

// validationError turns validator output into one user-facing 400.
func validationError(err error) *apperror.AppError {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}
