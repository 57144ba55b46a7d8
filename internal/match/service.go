package match

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/observability"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

// Request is a match request frozen at submission time.
type Request struct {
	Seq     uint64
	Query   string
	Record  preference.Record
	Session Session
}

// Result is what a presenter renders. Empty is set, and Message filled, when there are no cards.
type Result struct {
	Seq     uint64 `json:"-"`
	Query   string `json:"query"`
	Source  Source `json:"source"`
	Cards   []Card `json:"cards"`
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
}

type Service struct {
	encoder    *preference.Encoder
	dispatcher *Dispatcher
	exclusions Exclusions
	logger     *slog.Logger
}

// NewService wires the match flow. exclusions may be nil when no preference store is configured.
func NewService(encoder *preference.Encoder, dispatcher *Dispatcher, exclusions Exclusions, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		encoder:    encoder,
		dispatcher: dispatcher,
		exclusions: exclusions,
		logger:     logger,
	}
}

// Prepare encodes the form values into a request bound to sess.
func (s *Service) Prepare(in preference.Input, sess Session) Request {
	query, rec := s.encoder.Encode(in)

	return Request{
		Query:   query,
		Record:  rec,
		Session: sess,
	}
}

// Match is Prepare followed by Run.
func (s *Service) Match(ctx context.Context, in preference.Input, sess Session) Result {
	return s.Run(ctx, s.Prepare(in, sess))
}

// Run dispatches req and shapes the outcome for the session's tier. It always yields a result.
func (s *Service) Run(ctx context.Context, req Request) Result {
	out := s.dispatcher.Dispatch(ctx, req.Query, req.Record, req.Session.Tier)

	results := out.Results
	if out.Source == SourceRemote {
		results = s.excludeDisliked(ctx, results, req.Session)
	}

	res := Result{
		Seq:    req.Seq,
		Query:  req.Query,
		Source: out.Source,
		Cards:  Present(results, req.Session.Tier),
	}

	m := observability.Get()
	m.MatchRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(out.Source))))

	if len(res.Cards) == 0 {
		res.Empty = true
		res.Message = NoMatchesMessage

		m.EmptyResultsTotal.Add(ctx, 1)
	}

	return res
}

// excludeDisliked drops cities the user disliked. It only applies to identified premium users;
// a failing store leaves the results untouched.
func (s *Service) excludeDisliked(ctx context.Context, results []city.Scored, sess Session) []city.Scored {
	if s.exclusions == nil || sess.Tier != preference.TierPremium || !sess.Identified() {
		return results
	}

	disliked, err := s.exclusions.Disliked(ctx, sess.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load disliked cities", slog.Any("error", err))
		return results
	}

	if len(disliked) == 0 {
		return results
	}

	return slices.DeleteFunc(slices.Clone(results), func(sc city.Scored) bool {
		return slices.ContainsFunc(disliked, func(name string) bool {
			return strings.EqualFold(name, sc.City.Name)
		})
	})
}
