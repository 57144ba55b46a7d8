package match_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/nomadmatch/internal/catalog"
	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/match"
	"github.com/MrJamesThe3rd/nomadmatch/internal/matcher"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
	"github.com/MrJamesThe3rd/nomadmatch/internal/ranking"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultRanker(t *testing.T) *ranking.Ranker {
	t.Helper()

	candidates, err := catalog.Default()
	require.NoError(t, err)

	return ranking.NewRanker(candidates, ranking.DefaultRules())
}

func scored(name string, pct int) city.Scored {
	return city.FromPercent(city.City{Name: name}, pct)
}

func TestDispatcher_RemoteSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := match.NewMockRemote(ctrl)
	fallback := match.NewMockFallback(ctrl)

	rec := preference.Record{Visa: preference.VisaYes, Vibes: []preference.Vibe{}}
	remoteResults := []city.Scored{scored("Porto", 40), scored("Lisbon", 90), scored("Gdansk", 75)}

	remote.EXPECT().
		Query(gomock.Any(), matcher.QueryRequest{
			Query:       "q",
			NumResults:  match.DefaultNumResults,
			Preferences: rec,
			Tier:        preference.TierPremium,
		}).
		Return(remoteResults, nil)

	d := match.NewDispatcher(remote, fallback, 0, discardLogger())
	got := d.Dispatch(context.Background(), "q", rec, preference.TierPremium)

	assert.Equal(t, match.SourceRemote, got.Source)
	assert.NoError(t, got.Failure)
	assert.Equal(t, remoteResults, got.Results)
}

func TestDispatcher_RemoteEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := match.NewMockRemote(ctrl)
	remote.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, nil)

	d := match.NewDispatcher(remote, match.NewMockFallback(ctrl), 15, discardLogger())
	got := d.Dispatch(context.Background(), "q", preference.Record{}, preference.TierFree)

	assert.Equal(t, match.SourceRemote, got.Source)
	assert.NotNil(t, got.Results)
	assert.Empty(t, got.Results)
}

func TestDispatcher_FallsBackOnFailure(t *testing.T) {
	type testCase struct {
		name     string
		err      error
		wantKind matcher.Kind
	}

	tests := []testCase{
		{
			name:     "Service",
			err:      &matcher.Error{Kind: matcher.KindService, Op: "query", StatusCode: 503},
			wantKind: matcher.KindService,
		},
		{
			name:     "Transport",
			err:      &matcher.Error{Kind: matcher.KindTransport, Op: "query", Cause: errors.New("connection refused")},
			wantKind: matcher.KindTransport,
		},
		{
			name:     "Decode",
			err:      &matcher.Error{Kind: matcher.KindDecode, Op: "query", Cause: errors.New("unexpected EOF")},
			wantKind: matcher.KindDecode,
		},
		{
			name:     "Untagged",
			err:      context.Canceled,
			wantKind: "",
		},
	}

	ranker := defaultRanker(t)
	_, rec := preference.NewEncoder(preference.DefaultTables()).Encode(preference.Input{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			remote := match.NewMockRemote(ctrl)
			remote.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)

			d := match.NewDispatcher(remote, ranker, 15, discardLogger())
			got := d.Dispatch(context.Background(), "q", rec, preference.TierFree)

			assert.Equal(t, match.SourceFallback, got.Source)
			assert.Equal(t, ranker.Rank(rec), got.Results)
			assert.ErrorIs(t, got.Failure, tt.err)
			assert.Equal(t, tt.wantKind, matcher.KindOf(got.Failure))
		})
	}
}

func TestDispatcher_UsesMockFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := preference.Record{Budget: preference.BudgetModerate}
	want := []city.Scored{scored("Lisbon", 97)}

	remote := match.NewMockRemote(ctrl)
	remote.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, &matcher.Error{Kind: matcher.KindService})

	fallback := match.NewMockFallback(ctrl)
	fallback.EXPECT().Rank(rec).Return(want)

	got := match.NewDispatcher(remote, fallback, 15, discardLogger()).
		Dispatch(context.Background(), "q", rec, preference.TierFree)

	assert.Equal(t, want, got.Results)
}
