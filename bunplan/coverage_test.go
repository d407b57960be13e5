package bunplan_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/goliatone/go-query-i18n/bunplan"
)

func TestMissingLocales(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	missing, err := bunplan.MissingLocales(ctx, db, "products", 1, []string{"en_US", "fr_FR"})
	if err != nil {
		t.Fatalf("MissingLocales() error = %v", err)
	}
	if missing != nil {
		t.Fatalf("product 1 missing = %v, want none", missing)
	}

	missing, err = bunplan.MissingLocales(ctx, db, "products", 2, []string{"en_US", "fr_FR", "de_DE"})
	if err != nil {
		t.Fatalf("MissingLocales() error = %v", err)
	}
	if want := []string{"fr_FR", "de_DE"}; !reflect.DeepEqual(missing, want) {
		t.Fatalf("product 2 missing = %v, want %v", missing, want)
	}
}

func TestMissingLocales_NormalizesInput(t *testing.T) {
	db := newTestDB(t)

	missing, err := bunplan.MissingLocales(context.Background(), db, "products", 3, []string{" fr_FR ", "fr_fr", "", "en_US"})
	if err != nil {
		t.Fatalf("MissingLocales() error = %v", err)
	}
	if want := []string{"fr_FR", "en_US"}; !reflect.DeepEqual(missing, want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}

	missing, err = bunplan.MissingLocales(context.Background(), db, "products", 3, nil)
	if err != nil {
		t.Fatalf("MissingLocales() error = %v", err)
	}
	if missing != nil {
		t.Fatalf("missing = %v, want nil for no required locales", missing)
	}
}
