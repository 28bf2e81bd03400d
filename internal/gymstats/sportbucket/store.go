package sportbucket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/telemetry/metrics"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=sportbucket_test

type bucketRepo interface {
	Insert(ctx context.Context, entry Entry) (*Entry, error)
	// Modify applies fn to the stored entry and saves the result atomically.
	Modify(ctx context.Context, sp sport.Sport, exerciseName string, fn func(Entry) Entry) (*Entry, error)
	ListBySport(ctx context.Context, sp sport.Sport) ([]Entry, error)
}

type userChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type statsCache interface {
	Get(ctx context.Context, sp sport.Sport) (*Stats, error)
	Set(ctx context.Context, stats *Stats) error
	Invalidate(ctx context.Context, sp sport.Sport) error
}

type UsageParams struct {
	Sport        sport.Sport
	ExerciseName string
	Category     sport.Placement
	// Placement defaults to Category when empty
	Placement sport.Placement
	UserID    string
}

type PerformanceParams struct {
	Sport            sport.Sport
	ExerciseName     string
	Success          bool
	PerformanceScore float64
}

// Store keeps the per (sport, exercise) aggregates up to date.
type Store struct {
	repo           bucketRepo
	users          userChecker
	cache          statsCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewStore(repo bucketRepo, users userChecker, cache statsCache, metricsManager *metrics.Manager) *Store {
	return &Store{
		repo:           repo,
		users:          users,
		cache:          cache,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// RecordUsage counts one use of an exercise within a sport, creating the entry on first use.
func (s *Store) RecordUsage(ctx context.Context, params UsageParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sportbucket.usage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	placement := params.Placement
	if placement == "" {
		placement = params.Category
	}
	if !params.Sport.IsValid() {
		return apperr.Validation("unknown sport [%s]", params.Sport)
	}
	if !placement.IsValid() {
		return apperr.Validation("unknown placement [%s]", placement)
	}
	name := sport.NormalizeExerciseName(params.ExerciseName)
	if name == "" {
		return apperr.Validation("exercise name empty")
	}
	span.SetAttributes(
		attribute.String("sport", params.Sport.String()),
		attribute.String("exercise", name),
	)

	_, err = s.repo.Modify(ctx, params.Sport, name, func(e Entry) Entry {
		return e.WithUsage(placement, s.now())
	})
	if err == nil {
		s.updated(ctx, params.Sport, "usage")
		return nil
	}
	if !errors.Is(err, ErrEntryNotFound) {
		return fmt.Errorf("update sport bucket entry: %w", err)
	}

	exists, err := s.users.Exists(ctx, params.UserID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return fmt.Errorf("user [%s]: %w", params.UserID, apperr.ErrNotFound)
	}

	_, err = s.repo.Insert(ctx, NewEntry(params.Sport, name, placement, params.UserID, s.now()))
	if errors.Is(err, ErrEntryExists) {
		// lost the race against a concurrent first use, count this one on top of it
		log.Debugf("sport bucket entry [%s/%s] created concurrently, updating instead", params.Sport, name)
		_, err = s.repo.Modify(ctx, params.Sport, name, func(e Entry) Entry {
			return e.WithUsage(placement, s.now())
		})
	}
	if err != nil {
		return fmt.Errorf("create sport bucket entry: %w", err)
	}

	s.updated(ctx, params.Sport, "usage")
	return nil
}

// RecordPerformance folds a performance report into an existing entry.
// Reports for exercises that were never recorded as used are ignored.
func (s *Store) RecordPerformance(ctx context.Context, params PerformanceParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sportbucket.performance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !params.Sport.IsValid() {
		return apperr.Validation("unknown sport [%s]", params.Sport)
	}
	if params.PerformanceScore < 0 || params.PerformanceScore > 100 {
		return apperr.Validation("performance score [%.2f] out of range [0, 100]", params.PerformanceScore)
	}
	name := sport.NormalizeExerciseName(params.ExerciseName)
	span.SetAttributes(
		attribute.String("sport", params.Sport.String()),
		attribute.String("exercise", name),
	)

	_, err = s.repo.Modify(ctx, params.Sport, name, func(e Entry) Entry {
		return e.WithPerformance(params.Success, params.PerformanceScore, s.now())
	})
	if errors.Is(err, ErrEntryNotFound) {
		log.Debugf("performance report for unused exercise [%s/%s], ignoring", params.Sport, name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("update sport bucket performance: %w", err)
	}

	s.updated(ctx, params.Sport, "performance")
	return nil
}

// Query returns the entries of a sport matching filters, best weighted score first.
func (s *Store) Query(ctx context.Context, sp sport.Sport, filters QueryFilters) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sportbucket.query")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("sport", sp.String()))

	entries, err := s.repo.ListBySport(ctx, sp)
	if err != nil {
		return nil, fmt.Errorf("list sport bucket: %w", err)
	}
	return FilterAndRank(entries, filters), nil
}

func (s *Store) Stats(ctx context.Context, sp sport.Sport) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sportbucket.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("sport", sp.String()))

	cached, err := s.cache.Get(ctx, sp)
	if err != nil {
		// cache is best effort, fall through to the db
		log.Errorf("get cached sport bucket stats [%s]: %s", sp, err)
	} else if cached != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	entries, err := s.repo.ListBySport(ctx, sp)
	if err != nil {
		return nil, fmt.Errorf("list sport bucket: %w", err)
	}

	stats := ComputeStats(sp, entries)
	if err := s.cache.Set(ctx, stats); err != nil {
		log.Errorf("cache sport bucket stats [%s]: %s", sp, err)
	}
	return stats, nil
}

// updated drops the cached stats of sp, they are stale after any write
func (s *Store) updated(ctx context.Context, sp sport.Sport, kind string) {
	if err := s.cache.Invalidate(ctx, sp); err != nil {
		log.Errorf("invalidate sport bucket stats [%s]: %s", sp, err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterBucketUpdates.WithLabelValues(kind).Inc()
	}
}
