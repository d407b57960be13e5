package languages

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// Language is a renderable language with its locale code.
type Language struct {
	bun.BaseModel `bun:"table:languages,alias:lang"`

	ID        int64     `bun:"id,pk,autoincrement"              json:"id"`
	Title     string    `bun:"title,notnull"                    json:"title"`
	Locale    string    `bun:"locale,notnull"                   json:"locale"`
	Active    bool      `bun:"active,notnull,default:true"      json:"active"`
	ByDefault bool      `bun:"by_default,notnull,default:false" json:"by_default"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Ref identifies a language by numeric id or locale code. The zero value
// means "no explicit language".
type Ref struct {
	ID     int64
	Locale string
}

// ByID references a language by numeric id.
func ByID(id int64) Ref {
	return Ref{ID: id}
}

// ByLocale references a language by locale code.
func ByLocale(code string) Ref {
	return Ref{Locale: strings.TrimSpace(code)}
}

// IsZero reports whether the ref carries no identifier.
func (r Ref) IsZero() bool {
	return r.ID == 0 && strings.TrimSpace(r.Locale) == ""
}

// String renders the ref for error messages.
func (r Ref) String() string {
	if r.ID != 0 {
		return "id=" + strconv.FormatInt(r.ID, 10)
	}
	if code := strings.TrimSpace(r.Locale); code != "" {
		return "locale=" + code
	}
	return "<none>"
}

// Repository resolves language records.
type Repository interface {
	// FindByRef returns the language matching the ref, or a *NotFoundError.
	FindByRef(ctx context.Context, ref Ref) (*Language, error)
	// Default returns the language flagged as the system default.
	Default(ctx context.Context) (*Language, error)
}
