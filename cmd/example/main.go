// Command example seeds an in-memory SQLite database with languages,
// translation settings, and a translated products table, then plans and runs
// a localized frontend query.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	queryi18n "github.com/goliatone/go-query-i18n"
	"github.com/goliatone/go-query-i18n/bunplan"
	"github.com/goliatone/go-query-i18n/gologger"
	"github.com/goliatone/go-query-i18n/languages"
	"github.com/goliatone/go-query-i18n/settings"
)

type config struct {
	DSN      string `env:"QUERYI18N_DSN" envDefault:"file:example?mode=memory&cache=shared&_fk=1"`
	Locale   string `env:"QUERYI18N_LOCALE" envDefault:"fr_FR"`
	LogLevel string `env:"QUERYI18N_LOG_LEVEL" envDefault:"debug"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	provider, err := gologger.NewProvider(gologger.Config{Level: cfg.LogLevel, Format: "console"})
	if err != nil {
		return err
	}
	logger := provider.GetLogger("example")

	ctx := context.Background()
	db, err := openDB(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	policyRepo := settings.NewBunRepository(db)
	if _, err := policyRepo.Upsert(ctx, settings.Settings{FallbackPolicy: settings.FallbackDefaultLanguage}); err != nil {
		return fmt.Errorf("store settings: %w", err)
	}

	planner := queryi18n.NewPlanner(
		languages.NewBunRepository(db),
		queryi18n.PolicyFromRepository(policyRepo),
		queryi18n.WithLogger(provider.GetLogger("queryi18n")),
	)

	plan := bunplan.New(db.NewSelect().Table("products").Column("products.id", "products.ref"), "products")
	locale, err := planner.ResolveAndPlan(ctx, queryi18n.PlanRequest{
		Context:       queryi18n.Frontend,
		AmbientLocale: cfg.Locale,
		Columns:       []string{"title", "description"},
	}, plan)
	if err != nil {
		return fmt.Errorf("plan query: %w", err)
	}
	logger.Info("planned localized query", "locale", locale)

	var rows []map[string]interface{}
	if err := plan.Unwrap().OrderExpr("products.id ASC").Scan(ctx, &rows); err != nil {
		return fmt.Errorf("run query: %w", err)
	}

	for _, row := range rows {
		fmt.Printf("ref=%v translated=%v title=%v\n", row["ref"], row["is_translated"], row["i18n_title"])
	}

	missing, err := bunplan.MissingLocales(ctx, db, "products", 2, []string{"en_US", "fr_FR"})
	if err != nil {
		return fmt.Errorf("coverage: %w", err)
	}
	logger.Info("translation coverage", "product", 2, "missing", missing)
	return nil
}

func openDB(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	if _, err := db.NewCreateTable().Model((*languages.Language)(nil)).IfNotExists().Exec(ctx); err != nil {
		return nil, fmt.Errorf("create languages table: %w", err)
	}
	seedLangs := []languages.Language{
		{ID: 1, Title: "English", Locale: "en_US", Active: true, ByDefault: true},
		{ID: 2, Title: "Français", Locale: "fr_FR", Active: true},
	}
	if _, err := db.NewInsert().Model(&seedLangs).Exec(ctx); err != nil {
		return nil, fmt.Errorf("seed languages: %w", err)
	}

	statements := []string{
		`CREATE TABLE i18n_settings (id INTEGER PRIMARY KEY, fallback_policy TEXT, updated_at TIMESTAMP)`,
		`CREATE TABLE products (id INTEGER PRIMARY KEY AUTOINCREMENT, ref TEXT NOT NULL)`,
		`CREATE TABLE products_i18n (
			id INTEGER NOT NULL,
			locale TEXT NOT NULL,
			title TEXT,
			description TEXT,
			PRIMARY KEY (id, locale)
		)`,
		`INSERT INTO products (id, ref) VALUES (1, 'alpha'), (2, 'beta')`,
		`INSERT INTO products_i18n (id, locale, title, description) VALUES
			(1, 'en_US', 'Alpha', 'Alpha description'),
			(1, 'fr_FR', 'Alpha FR', 'Description Alpha'),
			(2, 'en_US', 'Beta', 'Beta description')`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("seed schema: %w", err)
		}
	}
	return db, nil
}
