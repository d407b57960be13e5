// Package queryi18n plans localized SQL query fragments: given a requested
// locale and a set of translatable columns it attaches joins against a
// `<prefix>_i18n` translation table and registers fallback-aware derived
// columns, including a translation-presence flag.
//
// The planner mutates a QueryPlan collaborator and stays independent of any
// concrete query builder; the bunplan package adapts uptrace/bun select
// queries, and the languages and settings packages supply the language lookup
// and fallback-policy configuration the planner consumes.
package queryi18n

import "github.com/goliatone/go-query-i18n/languages"

// Language exports the language record resolved during planning.
type Language = languages.Language

// LanguageRef exports the id-or-locale language reference.
type LanguageRef = languages.Ref

// ByLanguageID references a language by its numeric id.
func ByLanguageID(id int64) languages.Ref {
	return languages.ByID(id)
}

// ByLocale references a language by its locale code.
func ByLocale(code string) languages.Ref {
	return languages.ByLocale(code)
}
