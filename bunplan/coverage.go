package bunplan

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// MissingLocales reports which of the required locales have no translation
// row for the given entity in the `<foreignPrefix>_i18n` table. Required
// locales are trimmed and de-duplicated; the result preserves their order.
func MissingLocales(ctx context.Context, db bun.IDB, foreignPrefix string, entityID int64, required []string) ([]string, error) {
	locales := normalizeLocales(required)
	if len(locales) == 0 {
		return nil, nil
	}

	var present []string
	err := db.NewSelect().
		Table(foreignPrefix+"_i18n").
		Column("locale").
		Where("id = ?", entityID).
		Scan(ctx, &present)
	if err != nil {
		return nil, fmt.Errorf("bunplan: translation coverage for %s_i18n: %w", foreignPrefix, err)
	}

	translated := make(map[string]struct{}, len(present))
	for _, locale := range present {
		translated[strings.ToLower(strings.TrimSpace(locale))] = struct{}{}
	}

	missing := make([]string, 0)
	for _, locale := range locales {
		if _, ok := translated[strings.ToLower(locale)]; !ok {
			missing = append(missing, locale)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}
	return missing, nil
}

func normalizeLocales(required []string) []string {
	if len(required) == 0 {
		return nil
	}
	locales := make([]string, 0, len(required))
	seen := map[string]struct{}{}
	for _, locale := range required {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		locales = append(locales, trimmed)
	}
	return locales
}
