package languages

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepository_FindByRef(t *testing.T) {
	repo := NewMemoryRepository(
		Language{ID: 1, Title: "English", Locale: "en_US", Active: true, ByDefault: true},
		Language{ID: 2, Title: "Français", Locale: "fr_FR", Active: true},
	)
	ctx := context.Background()

	byID, err := repo.FindByRef(ctx, ByID(2))
	if err != nil {
		t.Fatalf("FindByRef(id) error = %v", err)
	}
	if byID.Locale != "fr_FR" {
		t.Fatalf("FindByRef(id) locale = %q, want fr_FR", byID.Locale)
	}

	byLocale, err := repo.FindByRef(ctx, ByLocale("en_US"))
	if err != nil {
		t.Fatalf("FindByRef(locale) error = %v", err)
	}
	if byLocale.ID != 1 {
		t.Fatalf("FindByRef(locale) id = %d, want 1", byLocale.ID)
	}

	// Locale matching is case-insensitive.
	if _, err := repo.FindByRef(ctx, ByLocale("EN_us")); err != nil {
		t.Fatalf("FindByRef(mixed case) error = %v", err)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository(Language{ID: 1, Locale: "en_US"})

	_, err := repo.FindByRef(context.Background(), ByLocale("xx_XX"))
	if !errors.Is(err, ErrLanguageNotFound) {
		t.Fatalf("expected ErrLanguageNotFound, got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if notFound.Ref.Locale != "xx_XX" {
		t.Fatalf("error ref = %s", notFound.Ref)
	}

	if _, err := repo.FindByRef(context.Background(), Ref{}); !errors.Is(err, ErrRefRequired) {
		t.Fatalf("expected ErrRefRequired, got %v", err)
	}
}

func TestMemoryRepository_Default(t *testing.T) {
	repo := NewMemoryRepository(Language{ID: 1, Locale: "en_US"})

	if _, err := repo.Default(context.Background()); !errors.Is(err, ErrNoDefaultLanguage) {
		t.Fatalf("expected ErrNoDefaultLanguage, got %v", err)
	}

	repo.Add(Language{ID: 2, Locale: "fr_FR", ByDefault: true})
	def, err := repo.Default(context.Background())
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if def.Locale != "fr_FR" {
		t.Fatalf("Default() locale = %q, want fr_FR", def.Locale)
	}
}
