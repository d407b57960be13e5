package languages

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepository resolves languages from an in-memory list. Useful for
// tests and embedders without a database.
type MemoryRepository struct {
	mu        sync.RWMutex
	languages []Language
}

// NewMemoryRepository constructs a repository seeded with the given languages.
func NewMemoryRepository(langs ...Language) *MemoryRepository {
	repo := &MemoryRepository{}
	repo.languages = append(repo.languages, langs...)
	return repo
}

// Add appends a language to the repository.
func (r *MemoryRepository) Add(lang Language) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.languages = append(r.languages, lang)
}

// FindByRef resolves a language by numeric id or locale code.
func (r *MemoryRepository) FindByRef(_ context.Context, ref Ref) (*Language, error) {
	if ref.IsZero() {
		return nil, ErrRefRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.languages {
		lang := r.languages[i]
		if ref.ID != 0 {
			if lang.ID == ref.ID {
				copied := lang
				return &copied, nil
			}
			continue
		}
		if strings.EqualFold(strings.TrimSpace(lang.Locale), strings.TrimSpace(ref.Locale)) {
			copied := lang
			return &copied, nil
		}
	}
	return nil, &NotFoundError{Ref: ref}
}

// Default returns the language flagged as the system default.
func (r *MemoryRepository) Default(context.Context) (*Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.languages {
		if r.languages[i].ByDefault {
			copied := r.languages[i]
			return &copied, nil
		}
	}
	return nil, ErrNoDefaultLanguage
}
