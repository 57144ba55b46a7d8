package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/nomadmatch/internal/match"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

func TestFlow_Lifecycle(t *testing.T) {
	f := match.NewFlow()
	assert.Equal(t, match.StateIdle, f.State())

	req := f.Start(match.Request{Query: "q", Session: match.Session{Tier: preference.TierPremium}})
	assert.Equal(t, match.StateLoading, f.State())
	assert.Equal(t, preference.TierPremium, req.Session.Tier)

	applied := f.Complete(match.Result{Seq: req.Seq, Source: match.SourceRemote})
	assert.True(t, applied)
	assert.Equal(t, match.StateSuccess, f.State())

	f.Reset()
	assert.Equal(t, match.StateIdle, f.State())
	assert.Equal(t, match.Result{}, f.Result())
}

func TestFlow_FallbackState(t *testing.T) {
	f := match.NewFlow()
	req := f.Start(match.Request{})

	assert.True(t, f.Complete(match.Result{Seq: req.Seq, Source: match.SourceFallback}))
	assert.Equal(t, match.StateFallback, f.State())
}

func TestFlow_StaleResultIsDiscarded(t *testing.T) {
	f := match.NewFlow()

	first := f.Start(match.Request{Query: "first"})
	second := f.Start(match.Request{Query: "second"})
	assert.Greater(t, second.Seq, first.Seq)

	assert.True(t, f.Complete(match.Result{Seq: second.Seq, Query: "second", Source: match.SourceRemote}))
	assert.False(t, f.Complete(match.Result{Seq: first.Seq, Query: "first", Source: match.SourceFallback}))

	assert.Equal(t, "second", f.Result().Query)
	assert.Equal(t, match.StateSuccess, f.State())
}

func TestFlow_StaleResultBeforeLatest(t *testing.T) {
	f := match.NewFlow()

	first := f.Start(match.Request{})
	second := f.Start(match.Request{})

	assert.False(t, f.Complete(match.Result{Seq: first.Seq}))
	assert.Equal(t, match.StateLoading, f.State())

	assert.True(t, f.Complete(match.Result{Seq: second.Seq, Source: match.SourceRemote}))
}

func TestFlow_ResetDiscardsInFlight(t *testing.T) {
	f := match.NewFlow()
	req := f.Start(match.Request{})

	f.Reset()

	assert.False(t, f.Complete(match.Result{Seq: req.Seq}))
	assert.Equal(t, match.StateIdle, f.State())
}

func TestFlow_CompleteTwice(t *testing.T) {
	f := match.NewFlow()
	req := f.Start(match.Request{})

	assert.True(t, f.Complete(match.Result{Seq: req.Seq, Source: match.SourceRemote}))
	assert.False(t, f.Complete(match.Result{Seq: req.Seq, Source: match.SourceFallback}))
	assert.Equal(t, match.StateSuccess, f.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", match.StateIdle.String())
	assert.Equal(t, "loading", match.StateLoading.String())
	assert.Equal(t, "success", match.StateSuccess.String())
	assert.Equal(t, "fallback", match.StateFallback.String())
	assert.Equal(t, "unknown", match.State(42).String())
}
