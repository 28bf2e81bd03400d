package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/exercisecache"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/ratelimit"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=ai_test

type explainer interface {
	Explain(ctx context.Context, exerciseName string) (*Explanation, error)
}

type exerciseStore interface {
	Get(ctx context.Context, exerciseName string) (*exercisecache.Exercise, error)
	Upsert(ctx context.Context, exercise exercisecache.Exercise) (*exercisecache.Exercise, error)
}

type rateLimiter interface {
	Check(userID string, action ratelimit.Action) error
}

type ExplainResult struct {
	ExerciseName string `json:"exercise_name"`
	Explanation
	Cached bool `json:"cached"`
}

type Service struct {
	explainer explainer
	exercises exerciseStore
	limiter   rateLimiter
}

func NewService(explainer explainer, exercises exerciseStore, limiter rateLimiter) *Service {
	return &Service{
		explainer: explainer,
		exercises: exercises,
		limiter:   limiter,
	}
}

// Explain serves the stored explanation of an exercise. Only cache misses reach the llm,
// and only those count against the user's explain_exercise limit.
func (s *Service) Explain(ctx context.Context, userID, exerciseName string) (_ *ExplainResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ai.explain")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := sport.NormalizeExerciseName(exerciseName)
	if name == "" {
		return nil, apperr.Validation("exercise name empty")
	}
	span.SetAttributes(attribute.String("exercise", name))

	cached, err := s.exercises.Get(ctx, name)
	if err == nil && cached.Explanation != "" {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return &ExplainResult{
			ExerciseName: name,
			Explanation: Explanation{
				Explanation:   cached.Explanation,
				MusclesWorked: nonNil(cached.MusclesWorked),
				FormCue:       cached.FormCue,
				CommonMistake: cached.CommonMistake,
			},
			Cached: true,
		}, nil
	}
	if err != nil && !errors.Is(err, exercisecache.ErrExerciseNotFound) {
		return nil, fmt.Errorf("get cached exercise: %w", err)
	}

	explanation, err := ratelimit.Guard(ctx, s.limiter, userID, ratelimit.ActionExplainExercise, func(ctx context.Context) (*Explanation, error) {
		return s.explainer.Explain(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	exercise := exercisecache.Exercise{ExerciseName: name}
	if cached != nil {
		exercise = *cached
	}
	exercise.Explanation = explanation.Explanation
	exercise.MusclesWorked = explanation.MusclesWorked
	exercise.FormCue = explanation.FormCue
	exercise.CommonMistake = explanation.CommonMistake
	if _, err := s.exercises.Upsert(ctx, exercise); err != nil {
		// the caller still gets the explanation, the next request will ask the llm again
		log.Errorf("cache explanation [%s]: %s", name, err)
	}

	return &ExplainResult{
		ExerciseName: name,
		Explanation:  *explanation,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
