package match

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/matcher"
	"github.com/MrJamesThe3rd/nomadmatch/internal/observability"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

// DefaultNumResults is how many candidates the remote matcher is asked for.
const DefaultNumResults = 15

// Source tells where a result list came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Outcome is the result of one dispatch. Failure is informational only: when set, Results
// already hold the fallback ranking.
type Outcome struct {
	Results []city.Scored
	Source  Source
	Failure error
}

// Dispatcher sends a match request to the remote service once and falls back to the local
// ranking on any failure.
type Dispatcher struct {
	remote     Remote
	fallback   Fallback
	numResults int
	logger     *slog.Logger
}

func NewDispatcher(remote Remote, fallback Fallback, numResults int, logger *slog.Logger) *Dispatcher {
	if numResults <= 0 {
		numResults = DefaultNumResults
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		remote:     remote,
		fallback:   fallback,
		numResults: numResults,
		logger:     logger,
	}
}

// Dispatch never returns an error: a failed remote call yields the fallback ranking.
func (d *Dispatcher) Dispatch(ctx context.Context, query string, rec preference.Record, tier preference.Tier) Outcome {
	ctx, span := otel.Tracer("Dispatcher").Start(ctx, "Dispatch", trace.WithAttributes(
		attribute.String("tier", string(tier)),
	))
	defer span.End()

	m := observability.Get()
	start := time.Now()

	results, err := d.remote.Query(ctx, matcher.QueryRequest{
		Query:       query,
		NumResults:  d.numResults,
		Preferences: rec,
		Tier:        tier,
	})

	m.DispatchDurationSeconds.Record(ctx, time.Since(start).Seconds())

	if err == nil {
		if results == nil {
			results = []city.Scored{}
		}

		span.SetStatus(codes.Ok, "remote match succeeded")

		return Outcome{Results: results, Source: SourceRemote}
	}

	kind := matcher.KindOf(err)

	d.logger.WarnContext(ctx, "remote match failed, using local ranking",
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, "remote match failed")
	m.FallbackTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))

	return Outcome{
		Results: d.fallback.Rank(rec),
		Source:  SourceFallback,
		Failure: err,
	}
}
