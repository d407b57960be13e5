package settings

import (
	"context"
	"testing"
)

func TestState_FallbackPolicy(t *testing.T) {
	state := NewState(Settings{FallbackPolicy: FallbackDefaultLanguage})

	policy, err := state.FallbackPolicy(context.Background())
	if err != nil {
		t.Fatalf("FallbackPolicy() error = %v", err)
	}
	if policy != FallbackDefaultLanguage {
		t.Fatalf("policy = %q, want default_language", policy)
	}

	state.SetFallbackPolicy("bogus")
	policy, _ = state.FallbackPolicy(context.Background())
	if policy != FallbackStrict {
		t.Fatalf("policy = %q, want strict after unknown value", policy)
	}
}

func TestState_Apply(t *testing.T) {
	state := NewState(Settings{})

	state.Apply(newChangeEvent(ChangeUpdated, Settings{FallbackPolicy: FallbackDefaultLanguage}))
	if policy, _ := state.FallbackPolicy(context.Background()); policy != FallbackDefaultLanguage {
		t.Fatalf("policy = %q after update event", policy)
	}

	state.Apply(newChangeEvent(ChangeDeleted, Settings{}))
	if policy, _ := state.FallbackPolicy(context.Background()); policy != FallbackStrict {
		t.Fatalf("policy = %q after delete event, want strict", policy)
	}
}

func TestFallbackPolicy_Normalize(t *testing.T) {
	cases := map[FallbackPolicy]FallbackPolicy{
		"":                      FallbackStrict,
		"strict":                FallbackStrict,
		"Default_Language":      FallbackDefaultLanguage,
		FallbackDefaultLanguage: FallbackDefaultLanguage,
		"unknown":               FallbackStrict,
	}
	for input, want := range cases {
		if got := input.Normalize(); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}
