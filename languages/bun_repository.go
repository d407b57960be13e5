package languages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// BunRepository resolves languages from a Bun-backed database.
type BunRepository struct {
	db *bun.DB
}

// NewBunRepository constructs a Bun-backed language repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// FindByRef resolves a language by numeric id or locale code.
func (r *BunRepository) FindByRef(ctx context.Context, ref Ref) (*Language, error) {
	if r.db == nil {
		return nil, errors.New("languages: bun repository requires a database")
	}
	if ref.IsZero() {
		return nil, ErrRefRequired
	}

	var model Language
	query := r.db.NewSelect().Model(&model)
	if ref.ID != 0 {
		query = query.Where("?TableAlias.id = ?", ref.ID)
	} else {
		query = query.Where("?TableAlias.locale = ?", ref.Locale)
	}
	if err := query.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Ref: ref}
		}
		return nil, fmt.Errorf("languages: lookup %s: %w", ref, err)
	}
	return &model, nil
}

// Default returns the language flagged as the system default.
func (r *BunRepository) Default(ctx context.Context) (*Language, error) {
	if r.db == nil {
		return nil, errors.New("languages: bun repository requires a database")
	}

	var model Language
	err := r.db.NewSelect().
		Model(&model).
		Where("?TableAlias.by_default = ?", true).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDefaultLanguage
		}
		return nil, fmt.Errorf("languages: default lookup: %w", err)
	}
	return &model, nil
}
