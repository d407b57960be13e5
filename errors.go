package queryi18n

import (
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-query-i18n/languages"
)

const planValidationCode = "PLAN_REQUEST_VALIDATION_FAILED"

// ErrLanguageNotFound re-exports the languages sentinel so callers can match
// resolution failures without importing the languages package.
var ErrLanguageNotFound = languages.ErrLanguageNotFound

// LanguageNotFoundError re-exports the typed resolution failure.
type LanguageNotFoundError = languages.NotFoundError

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "plan request validation failed").
		WithTextCode(planValidationCode)
}
