package languages

import (
	"errors"
	"fmt"
)

var (
	// ErrLanguageNotFound indicates a language lookup matched nothing.
	ErrLanguageNotFound = errors.New("languages: language not found")
	// ErrNoDefaultLanguage indicates no language is flagged as the default.
	ErrNoDefaultLanguage = errors.New("languages: no default language configured")
	// ErrRefRequired indicates a lookup was attempted with an empty ref.
	ErrRefRequired = errors.New("languages: language ref is required")
)

// NotFoundError describes a failed lookup and unwraps to ErrLanguageNotFound.
type NotFoundError struct {
	Ref Ref
}

func (e *NotFoundError) Error() string {
	if e.Ref.IsZero() {
		return "languages: language not found"
	}
	return fmt.Sprintf("languages: language %s not found", e.Ref)
}

func (e *NotFoundError) Unwrap() error {
	return ErrLanguageNotFound
}
