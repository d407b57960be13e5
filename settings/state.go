package settings

import (
	"context"
	"sync/atomic"
)

// State provides a concurrency-safe view of the fallback policy. It
// implements the planner's policy-source contract, so long-running hosts can
// seed it once and keep it fresh from a repository subscription.
type State struct {
	policy atomic.Value
}

// NewState constructs a state seeded with settings.
func NewState(settings Settings) *State {
	st := &State{}
	st.policy.Store(settings.FallbackPolicy.Normalize())
	return st
}

// FallbackPolicy returns the current policy.
func (s *State) FallbackPolicy(context.Context) (FallbackPolicy, error) {
	if s == nil {
		return FallbackStrict, nil
	}
	if policy, ok := s.policy.Load().(FallbackPolicy); ok {
		return policy, nil
	}
	return FallbackStrict, nil
}

// SetFallbackPolicy updates the policy.
func (s *State) SetFallbackPolicy(policy FallbackPolicy) {
	if s == nil {
		return
	}
	s.policy.Store(policy.Normalize())
}

// Apply folds a change event into the state. Deletions revert to strict.
func (s *State) Apply(evt ChangeEvent) {
	if s == nil {
		return
	}
	if evt.Type == ChangeDeleted {
		s.policy.Store(FallbackStrict)
		return
	}
	s.policy.Store(evt.Settings.FallbackPolicy.Normalize())
}

// Watch applies repository change events to the state until the context is
// cancelled. It blocks; run it on its own goroutine.
func Watch(ctx context.Context, repo Repository, state *State) error {
	if repo == nil || state == nil {
		return nil
	}
	events, err := repo.Subscribe(ctx)
	if err != nil {
		return err
	}
	for evt := range events {
		state.Apply(evt)
	}
	return nil
}
