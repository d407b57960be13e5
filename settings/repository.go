package settings

import (
	"context"
	"errors"
	"strings"
)

// ErrSettingsNotFound indicates that translation settings have not been configured yet.
var ErrSettingsNotFound = errors.New("settings: settings not found")

// FallbackPolicy controls what frontend queries render when the requested
// locale has no translation.
type FallbackPolicy string

const (
	// FallbackStrict renders the requested locale only; untranslated rows are
	// filtered out unless the caller forces their return.
	FallbackStrict FallbackPolicy = "strict"
	// FallbackDefaultLanguage substitutes the default language's text when
	// the requested locale has none.
	FallbackDefaultLanguage FallbackPolicy = "default_language"
)

// Normalize maps unknown or blank values to the strict policy.
func (p FallbackPolicy) Normalize() FallbackPolicy {
	switch FallbackPolicy(strings.ToLower(strings.TrimSpace(string(p)))) {
	case FallbackDefaultLanguage:
		return FallbackDefaultLanguage
	default:
		return FallbackStrict
	}
}

// Settings capture runtime translation rendering configuration.
type Settings struct {
	FallbackPolicy FallbackPolicy
}

// Repository persists translation settings and emits change notifications.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
	Delete(ctx context.Context) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}

// ChangeType enumerates settings change events.
type ChangeType string

const (
	// ChangeCreated indicates settings were first persisted.
	ChangeCreated ChangeType = "created"
	// ChangeUpdated indicates settings were updated.
	ChangeUpdated ChangeType = "updated"
	// ChangeDeleted indicates settings were cleared.
	ChangeDeleted ChangeType = "deleted"
)

// ChangeEvent reports settings mutations to interested subscribers.
type ChangeEvent struct {
	Type     ChangeType
	Settings Settings
}

func newChangeEvent(changeType ChangeType, settings Settings) ChangeEvent {
	return ChangeEvent{
		Type:     changeType,
		Settings: settings,
	}
}
