package languages

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestBunRepository_FindByRef(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunRepository(db)
	ctx := context.Background()

	byID, err := repo.FindByRef(ctx, ByID(42))
	if err != nil {
		t.Fatalf("FindByRef(id) error = %v", err)
	}
	if byID.Locale != "en_US" {
		t.Fatalf("FindByRef(id) locale = %q, want en_US", byID.Locale)
	}

	byLocale, err := repo.FindByRef(ctx, ByLocale("fr_FR"))
	if err != nil {
		t.Fatalf("FindByRef(locale) error = %v", err)
	}
	if byLocale.ID != 2 {
		t.Fatalf("FindByRef(locale) id = %d, want 2", byLocale.ID)
	}

	if _, err := repo.FindByRef(ctx, ByLocale("xx_XX")); !errors.Is(err, ErrLanguageNotFound) {
		t.Fatalf("expected ErrLanguageNotFound, got %v", err)
	}
	if _, err := repo.FindByRef(ctx, Ref{}); !errors.Is(err, ErrRefRequired) {
		t.Fatalf("expected ErrRefRequired, got %v", err)
	}
}

func TestBunRepository_Default(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunRepository(db)

	def, err := repo.Default(context.Background())
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if def.ID != 42 || def.Locale != "en_US" {
		t.Fatalf("Default() = %d/%q, want 42/en_US", def.ID, def.Locale)
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.NewCreateTable().Model((*Language)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}

	seed := []Language{
		{ID: 42, Title: "English", Locale: "en_US", Active: true, ByDefault: true},
		{ID: 2, Title: "Français", Locale: "fr_FR", Active: true},
	}
	if _, err := db.NewInsert().Model(&seed).Exec(ctx); err != nil {
		t.Fatalf("seed languages: %v", err)
	}
	return db
}
