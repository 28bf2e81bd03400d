package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/gymstats/sportbucket"
	"github.com/rebld/rebldserver/internal/telemetry/metrics"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/validation"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=performance_test

type logRepo interface {
	Insert(ctx context.Context, l Log) error
	History(ctx context.Context, params HistoryParams) ([]Log, error)
}

type bucketRecorder interface {
	RecordPerformance(ctx context.Context, params sportbucket.PerformanceParams) error
}

type History struct {
	Performances []Log   `json:"performances"`
	Summary      Summary `json:"summary"`
}

type Service struct {
	repo           logRepo
	buckets        bucketRecorder
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo logRepo, buckets bucketRecorder, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		buckets:        buckets,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Record appends a performance log. Completed or skipped attempts made in a sport context
// are also folded into that sport's bucket entry for the exercise.
func (s *Service) Record(ctx context.Context, l Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	l.ExerciseName = sport.NormalizeExerciseName(l.ExerciseName)
	if err := validation.Struct(l); err != nil {
		return nil, err
	}

	l.ID = uuid.New()
	l.Timestamp = s.now().UTC()
	span.SetAttributes(
		attribute.String("exercise", l.ExerciseName),
		attribute.String("outcome", string(l.PrimaryOutcome())),
	)

	if err := s.repo.Insert(ctx, l); err != nil {
		return nil, fmt.Errorf("insert performance log: %w", err)
	}
	s.metricsManager.CounterPerformanceLogs.Inc()

	outcome := l.PrimaryOutcome()
	if l.SportContext == nil || (outcome != OutcomeCompleted && outcome != OutcomeSkipped) {
		return &l, nil
	}

	if err := s.buckets.RecordPerformance(ctx, sportbucket.PerformanceParams{
		Sport:            *l.SportContext,
		ExerciseName:     l.ExerciseName,
		Success:          l.Succeeded(),
		PerformanceScore: Score(l),
	}); err != nil {
		return nil, fmt.Errorf("log [%s] saved, update sport bucket: %w", l.ID, err)
	}

	return &l, nil
}

func (s *Service) History(ctx context.Context, params HistoryParams) (_ *History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params.ExerciseName = sport.NormalizeExerciseName(params.ExerciseName)
	if params.UserID == "" || params.ExerciseName == "" {
		return nil, apperr.Validation("user and exercise required")
	}
	if params.Limit < 0 {
		return nil, apperr.Validation("limit [%d] negative", params.Limit)
	}

	logs, err := s.repo.History(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("performance history: %w", err)
	}
	if logs == nil {
		logs = []Log{}
	}
	log.Tracef("performance history [%s/%s]: %d logs", params.UserID, params.ExerciseName, len(logs))

	return &History{
		Performances: logs,
		Summary:      Summarize(logs),
	}, nil
}
