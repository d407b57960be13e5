package queryi18n

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-query-i18n/languages"
	"github.com/goliatone/go-query-i18n/settings"
)

// Context selects the planning strategy: backend tooling always sees the
// requested locale's values (possibly null), the frontend may filter or fall
// back to the default language.
type Context int

const (
	// Backend plans a single LEFT join with direct column values.
	Backend Context = iota
	// Frontend plans requested + default locale joins with fallback columns.
	Frontend
)

var (
	// ErrQueryPlanRequired indicates ResolveAndPlan was called without a plan.
	ErrQueryPlanRequired = errors.New("queryi18n: query plan is required")
	// ErrLanguageResolverRequired indicates a lookup was needed but no resolver is configured.
	ErrLanguageResolverRequired = errors.New("queryi18n: language resolver is required")
	// ErrPolicySourceRequired indicates frontend planning lacks a fallback policy source.
	ErrPolicySourceRequired = errors.New("queryi18n: fallback policy source is required")
)

// LanguageResolver resolves explicit language references and the configured
// default language.
type LanguageResolver interface {
	FindByRef(ctx context.Context, ref languages.Ref) (*languages.Language, error)
	Default(ctx context.Context) (*languages.Language, error)
}

// PolicySource supplies the fallback policy applied to frontend planning. The
// planner reads it once per call.
type PolicySource interface {
	FallbackPolicy(ctx context.Context) (settings.FallbackPolicy, error)
}

// PolicyFromRepository adapts a settings repository into a PolicySource.
// Missing settings resolve to the strict policy.
func PolicyFromRepository(repo settings.Repository) PolicySource {
	return repoPolicySource{repo: repo}
}

type repoPolicySource struct {
	repo settings.Repository
}

func (s repoPolicySource) FallbackPolicy(ctx context.Context) (settings.FallbackPolicy, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.FallbackStrict, nil
		}
		return "", err
	}
	return stored.FallbackPolicy.Normalize(), nil
}

// PlanRequest describes one localized planning call.
type PlanRequest struct {
	// Context selects backend or frontend planning.
	Context Context
	// Language optionally pins the requested language by id or locale code.
	// When zero, AmbientLocale is used as-is.
	Language languages.Ref
	// AmbientLocale is the locale code rendered when no explicit language is
	// requested.
	AmbientLocale string
	// Columns lists the translatable column names. Empty means no-op.
	Columns []string
	// TablePrefix is the translation table prefix. Blank defaults to the
	// plan's base table, in which case output names carry no prefix.
	TablePrefix string
	// LocalKey is the join column on the local table. Blank defaults to "id".
	LocalKey string
	// LocalTable overrides the local side of the join. Blank defaults to the
	// plan's base table.
	LocalTable string
	// ForceReturn keeps untranslated rows in frontend results.
	ForceReturn bool
}

// Validate checks the request shape before any plan mutation happens.
func (r PlanRequest) Validate() error {
	errs := validation.Errors{}
	if r.Language.IsZero() && strings.TrimSpace(r.AmbientLocale) == "" {
		errs["ambient_locale"] = validation.NewError(
			"queryi18n.plan.ambient_locale_required",
			"ambient locale is required when no explicit language is requested")
	}
	for _, column := range r.Columns {
		if strings.TrimSpace(column) == "" {
			errs["columns"] = validation.NewError(
				"queryi18n.plan.blank_column",
				"translatable column names must not be blank")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Planner resolves the effective locale for a query and appends the
// translation joins, derived columns, and filters it requires.
type Planner struct {
	languages LanguageResolver
	policies  PolicySource
	logger    Logger
}

// PlannerOption customizes planner construction.
type PlannerOption func(*Planner)

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger Logger) PlannerOption {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlanner builds a planner. The resolver may be nil when callers only plan
// with ambient locales in backend context; the policy source may be nil when
// callers never plan frontend queries.
func NewPlanner(resolver LanguageResolver, policies PolicySource, opts ...PlannerOption) *Planner {
	p := &Planner{
		languages: resolver,
		policies:  policies,
		logger:    NoOpLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ResolveAndPlan resolves the requested language and mutates the plan with
// the joins, derived columns, and filters needed to render it. It returns the
// locale code the query will produce so callers know what was rendered.
//
// Resolution failures happen before any mutation. Failures from the policy or
// default-language lookups abandon planning and may leave the plan partially
// mutated; callers should discard it.
//
// Each call appends: planning twice on the same plan duplicates joins.
func (p *Planner) ResolveAndPlan(ctx context.Context, req PlanRequest, plan QueryPlan) (string, error) {
	if plan == nil {
		return "", ErrQueryPlanRequired
	}
	if err := req.Validate(); err != nil {
		return "", wrapValidationError(err)
	}

	locale := strings.TrimSpace(req.AmbientLocale)
	if !req.Language.IsZero() {
		if p.languages == nil {
			return "", ErrLanguageResolverRequired
		}
		lang, err := p.languages.FindByRef(ctx, req.Language)
		if err != nil {
			return "", err
		}
		locale = lang.Locale
	}

	if len(req.Columns) == 0 {
		return locale, nil
	}

	layout := newJoinLayout(req, plan.BaseTable())
	switch req.Context {
	case Frontend:
		if err := p.planFrontend(ctx, layout, locale, req, plan); err != nil {
			return "", err
		}
	default:
		p.planBackend(layout, locale, req.Columns, plan)
	}
	return locale, nil
}

// joinLayout carries the naming derived from one request: translation table,
// join aliases, and output-column prefixing.
type joinLayout struct {
	i18nTable  string
	localTable string
	localKey   string
	reqAlias   string
	defAlias   string
	outPrefix  string
}

func newJoinLayout(req PlanRequest, baseTable string) joinLayout {
	outPrefix := ""
	foreign := strings.TrimSpace(req.TablePrefix)
	if foreign == "" {
		foreign = baseTable
	} else {
		outPrefix = foreign + "_"
	}

	localTable := strings.TrimSpace(req.LocalTable)
	if localTable == "" {
		localTable = baseTable
	}
	localKey := strings.TrimSpace(req.LocalKey)
	if localKey == "" {
		localKey = "id"
	}

	return joinLayout{
		i18nTable:  foreign + "_i18n",
		localTable: localTable,
		localKey:   localKey,
		reqAlias:   outPrefix + "requested_locale_i18n",
		defAlias:   outPrefix + "default_locale_i18n",
		outPrefix:  outPrefix,
	}
}

// localeJoin builds a join against the translation table filtered to one
// locale: local.<key> = alias.id AND alias.locale = <locale>.
func (l joinLayout) localeJoin(alias string, joinType JoinType, locale string) Join {
	return Join{
		Table: l.i18nTable,
		Alias: alias,
		Type:  joinType,
		On: []Cond{
			ColumnsEqual{
				Left:  Ident{Table: l.localTable, Column: l.localKey},
				Right: Ident{Table: alias, Column: "id"},
			},
			EqualsValue{
				Column: Ident{Table: alias, Column: "locale"},
				Value:  locale,
			},
		},
	}
}

func (l joinLayout) aliasID(alias string) Ident {
	return Ident{Table: alias, Column: "id"}
}

func (l joinLayout) translatedFlag() DerivedColumn {
	return DerivedColumn{
		Expr: NotNull{Column: l.aliasID(l.reqAlias)},
		As:   l.outPrefix + "is_translated",
	}
}

func (l joinLayout) outName(column string) string {
	return l.outPrefix + "i18n_" + column
}

func (p *Planner) planBackend(layout joinLayout, locale string, columns []string, plan QueryPlan) {
	plan.AddJoin(layout.localeJoin(layout.reqAlias, LeftJoin, locale))
	plan.AddColumn(layout.translatedFlag())
	for _, column := range columns {
		plan.AddColumn(DerivedColumn{
			Expr: ColumnRef{Column: Ident{Table: layout.reqAlias, Column: column}},
			As:   layout.outName(column),
		})
	}
	p.logger.Debug("planned backend translation join",
		"locale", locale,
		"table", layout.i18nTable,
		"columns", len(columns))
}

func (p *Planner) planFrontend(ctx context.Context, layout joinLayout, locale string, req PlanRequest, plan QueryPlan) error {
	if p.policies == nil {
		return ErrPolicySourceRequired
	}
	policy, err := p.policies.FallbackPolicy(ctx)
	if err != nil {
		return err
	}
	policy = policy.Normalize()

	// Resolve the fallback locale before mutating the plan so lookup
	// failures leave it untouched. Under the strict policy the default join
	// degenerates to the requested locale.
	defaultLocale := locale
	if policy == settings.FallbackDefaultLanguage {
		if p.languages == nil {
			return ErrLanguageResolverRequired
		}
		def, err := p.languages.Default(ctx)
		if err != nil {
			return err
		}
		defaultLocale = def.Locale
	}

	requestedType := LeftJoin
	if policy == settings.FallbackStrict && !req.ForceReturn {
		requestedType = InnerJoin
	}

	plan.AddJoin(layout.localeJoin(layout.reqAlias, requestedType, locale))
	plan.AddColumn(layout.translatedFlag())
	plan.AddJoin(layout.localeJoin(layout.defAlias, LeftJoin, defaultLocale))

	if policy == settings.FallbackStrict {
		for _, column := range req.Columns {
			plan.AddColumn(DerivedColumn{
				Expr: ColumnRef{Column: Ident{Table: layout.reqAlias, Column: column}},
				As:   layout.outName(column),
			})
		}
	} else {
		if !req.ForceReturn {
			plan.AddFilter(Or{Conds: []Cond{
				NotNull{Column: layout.aliasID(layout.reqAlias)},
				NotNull{Column: layout.aliasID(layout.defAlias)},
			}})
		}
		for _, column := range req.Columns {
			plan.AddColumn(DerivedColumn{
				Expr: CaseWhen{
					When: NotNull{Column: layout.aliasID(layout.reqAlias)},
					Then: ColumnRef{Column: Ident{Table: layout.reqAlias, Column: column}},
					Else: ColumnRef{Column: Ident{Table: layout.defAlias, Column: column}},
				},
				As: layout.outName(column),
			})
		}
	}

	p.logger.Debug("planned frontend translation joins",
		"locale", locale,
		"default_locale", defaultLocale,
		"policy", string(policy),
		"force_return", req.ForceReturn,
		"columns", len(req.Columns))
	return nil
}
