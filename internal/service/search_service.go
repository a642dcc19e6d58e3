package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tourvista/tourism-backend/internal/common"
	"github.com/tourvista/tourism-backend/internal/domain"
	pkglogger "github.com/tourvista/tourism-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// DefaultSourceTimeout bounds one source query
const DefaultSourceTimeout = 2 * time.Second

// SearchOptions tunes the federated search
type SearchOptions struct {
	// SourceTimeout applies to every source individually.
	SourceTimeout time.Duration
	// MaxResults caps the merged list; 0 means unlimited.
	MaxResults int
}

// SearchService fans a query out to every SearchSource, merges the
// contributions and ranks them. A failing source only degrades the result.
type SearchService struct {
	sources    []SearchSource
	timeout    time.Duration
	maxResults int
}

// NewSearchService creates a new SearchService. Sources are collected in
// the given order, which is also the tie-break order for equal ranks.
func NewSearchService(sources []SearchSource, opts SearchOptions) *SearchService {
	timeout := opts.SourceTimeout
	if timeout <= 0 {
		timeout = DefaultSourceTimeout
	}
	maxResults := opts.MaxResults
	if maxResults < 0 {
		maxResults = 0
	}
	return &SearchService{
		sources:    sources,
		timeout:    timeout,
		maxResults: maxResults,
	}
}

// Search runs term against all sources concurrently and returns the
// ranked union. It fails only when the request context is done or when
// no source could contribute.
func (s *SearchService) Search(ctx context.Context, term domain.SearchTerm) (*domain.RankedResultSet, error) {
	if len(s.sources) == 0 {
		searchRequestsTotal.WithLabelValues("error").Inc()
		return nil, common.ErrNoSources
	}

	outcomes := make([]domain.SourceOutcome, len(s.sources))

	var g errgroup.Group
	for i, src := range s.sources {
		i, src := i, src
		g.Go(func() error {
			outcomes[i] = s.runSource(ctx, src, term)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		searchRequestsTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	var (
		combined []domain.SearchResult
		failures []error
	)
	for _, o := range outcomes {
		if o.Degraded() {
			failures = append(failures, o.Err)
			continue
		}
		combined = append(combined, o.Results...)
	}

	if len(failures) == len(outcomes) {
		searchRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %w", common.ErrAllSourcesFailed, errors.Join(failures...))
	}

	ranked := RankResults(term, combined)
	if s.maxResults > 0 && len(ranked) > s.maxResults {
		ranked = ranked[:s.maxResults]
	}

	if len(failures) > 0 {
		searchRequestsTotal.WithLabelValues("degraded").Inc()
	} else {
		searchRequestsTotal.WithLabelValues("ok").Inc()
	}
	searchResultsReturned.Observe(float64(len(ranked)))

	return &domain.RankedResultSet{
		Results:  ranked,
		Outcomes: outcomes,
	}, nil
}

type sourceReply struct {
	results []domain.SearchResult
	err     error
}

// runSource executes one source under its own timeout. A source that
// ignores cancellation is abandoned when the timeout fires; its goroutine
// finishes in the background and the reply is discarded.
func (s *SearchService) runSource(ctx context.Context, src SearchSource, term domain.SearchTerm) domain.SourceOutcome {
	sctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	replies := make(chan sourceReply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				replies <- sourceReply{err: fmt.Errorf("%s: %w: panic: %v", src.Kind(), common.ErrSourceUnavailable, r)}
			}
		}()
		results, err := src.Search(sctx, term)
		replies <- sourceReply{results: results, err: err}
	}()

	outcome := domain.SourceOutcome{Kind: src.Kind()}

	select {
	case reply := <-replies:
		switch {
		case reply.err == nil:
			outcome.Status = domain.SourceStatusOK
			outcome.Results = reply.results
		case errors.Is(sctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
			outcome.Status = domain.SourceStatusTimedOut
			outcome.Err = fmt.Errorf("%s: %w: %w", src.Kind(), common.ErrSourceTimeout, reply.err)
		case errors.Is(reply.err, common.ErrSourceUnavailable):
			outcome.Status = domain.SourceStatusFailed
			outcome.Err = reply.err
		default:
			outcome.Status = domain.SourceStatusFailed
			outcome.Err = fmt.Errorf("%s: %w: %w", src.Kind(), common.ErrSourceUnavailable, reply.err)
		}
	case <-sctx.Done():
		if ctx.Err() != nil {
			outcome.Status = domain.SourceStatusFailed
			outcome.Err = fmt.Errorf("%s: %w", src.Kind(), ctx.Err())
		} else {
			outcome.Status = domain.SourceStatusTimedOut
			outcome.Err = fmt.Errorf("%s: %w after %s", src.Kind(), common.ErrSourceTimeout, s.timeout)
		}
	}
	outcome.Duration = time.Since(start)

	searchSourceDuration.WithLabelValues(string(outcome.Kind), string(outcome.Status)).Observe(outcome.Duration.Seconds())
	if outcome.Degraded() {
		searchSourceDegradedTotal.WithLabelValues(string(outcome.Kind), string(outcome.Status)).Inc()
		pkglogger.GetLogger().Warn().
			Err(outcome.Err).
			Str("source", string(outcome.Kind)).
			Str("status", string(outcome.Status)).
			Dur("duration", outcome.Duration).
			Msg("search source degraded")
	}

	return outcome
}
