package exercisecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `
	id, exercise_name, explanation, muscles_worked, form_cue, common_mistake, primary_category,
	injury_contraindications, therapeutic_benefits, sport_ratings, hit_count, generated_at, last_accessed`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the exercise and counts the lookup as a cache hit.
func (r *Repo) Get(ctx context.Context, exerciseName string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisecache.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	exercise, err := scanExercise(r.db.QueryRow(
		ctx,
		`UPDATE exercise_cache SET hit_count = hit_count + 1, last_accessed = $2
			WHERE exercise_name = $1
			RETURNING `+exerciseColumns+`;`,
		exerciseName, time.Now(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// List returns all cached exercises, only the ones with the given primary category if set.
func (r *Repo) List(ctx context.Context, category *sport.Placement) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisecache.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	categoryParam := ""
	if category != nil {
		categoryParam = category.String()
		span.SetAttributes(attribute.String("category", categoryParam))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise_cache
			WHERE ($1::text = '' OR primary_category = $1)
			ORDER BY exercise_name;`,
		categoryParam,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2exercises: %w", err)
	}
	return exercises, nil
}

// Upsert stores an exercise by name, keeping the hit count of an already cached one.
func (r *Repo) Upsert(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisecache.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise.ExerciseName))

	musclesJson, err := json.Marshal(nonNil(exercise.MusclesWorked))
	if err != nil {
		return nil, fmt.Errorf("marshal muscles worked: %w", err)
	}
	contraindicationsJson, err := json.Marshal(nonNil(exercise.Contraindications))
	if err != nil {
		return nil, fmt.Errorf("marshal contraindications: %w", err)
	}
	benefitsJson, err := json.Marshal(nonNil(exercise.TherapeuticBenefits))
	if err != nil {
		return nil, fmt.Errorf("marshal therapeutic benefits: %w", err)
	}
	ratingsJson, err := json.Marshal(ratingsOrEmpty(exercise.SportRatings))
	if err != nil {
		return nil, fmt.Errorf("marshal sport ratings: %w", err)
	}

	var category *string
	if exercise.PrimaryCategory != nil {
		c := exercise.PrimaryCategory.String()
		category = &c
	}

	now := time.Now()
	if exercise.GeneratedAt.IsZero() {
		exercise.GeneratedAt = now
	}

	return scanExercise(r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_cache
				(exercise_name, explanation, muscles_worked, form_cue, common_mistake, primary_category,
				injury_contraindications, therapeutic_benefits, sport_ratings, hit_count, generated_at, last_accessed)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10, $11)
			ON CONFLICT (exercise_name) DO UPDATE SET
				explanation = EXCLUDED.explanation,
				muscles_worked = EXCLUDED.muscles_worked,
				form_cue = EXCLUDED.form_cue,
				common_mistake = EXCLUDED.common_mistake,
				primary_category = EXCLUDED.primary_category,
				injury_contraindications = EXCLUDED.injury_contraindications,
				therapeutic_benefits = EXCLUDED.therapeutic_benefits,
				sport_ratings = EXCLUDED.sport_ratings,
				generated_at = EXCLUDED.generated_at,
				last_accessed = EXCLUDED.last_accessed
			RETURNING `+exerciseColumns+`;`,
		exercise.ExerciseName, exercise.Explanation, musclesJson, exercise.FormCue, exercise.CommonMistake, category,
		contraindicationsJson, benefitsJson, ratingsJson, exercise.GeneratedAt, now,
	))
}

func (r *Repo) UpdateInjuryData(
	ctx context.Context,
	exerciseName string,
	contraindications []Contraindication,
	benefits []TherapeuticBenefit,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisecache.update.injurydata")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	contraindicationsJson, err := json.Marshal(nonNil(contraindications))
	if err != nil {
		return fmt.Errorf("marshal contraindications: %w", err)
	}
	benefitsJson, err := json.Marshal(nonNil(benefits))
	if err != nil {
		return fmt.Errorf("marshal therapeutic benefits: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_cache SET injury_contraindications = $1, therapeutic_benefits = $2, last_accessed = $3
			WHERE exercise_name = $4;`,
		contraindicationsJson, benefitsJson, time.Now(), exerciseName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) UpdateSportRatings(ctx context.Context, exerciseName string, ratings SportRatings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisecache.update.sportratings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	ratingsJson, err := json.Marshal(ratingsOrEmpty(ratings))
	if err != nil {
		return fmt.Errorf("marshal sport ratings: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_cache SET sport_ratings = $1, last_accessed = $2 WHERE exercise_name = $3;`,
		ratingsJson, time.Now(), exerciseName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, *exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var (
		exercise              Exercise
		category              *string
		musclesJson           []byte
		contraindicationsJson []byte
		benefitsJson          []byte
		ratingsJson           []byte
	)
	if err := row.Scan(
		&exercise.ID,
		&exercise.ExerciseName,
		&exercise.Explanation,
		&musclesJson,
		&exercise.FormCue,
		&exercise.CommonMistake,
		&category,
		&contraindicationsJson,
		&benefitsJson,
		&ratingsJson,
		&exercise.HitCount,
		&exercise.GeneratedAt,
		&exercise.LastAccessed,
	); err != nil {
		return nil, err
	}

	if category != nil {
		placement := sport.Placement(*category)
		exercise.PrimaryCategory = &placement
	}
	if err := unmarshalIfSet(musclesJson, &exercise.MusclesWorked); err != nil {
		return nil, fmt.Errorf("unmarshal muscles worked: %w", err)
	}
	if err := unmarshalIfSet(contraindicationsJson, &exercise.Contraindications); err != nil {
		return nil, fmt.Errorf("unmarshal contraindications: %w", err)
	}
	if err := unmarshalIfSet(benefitsJson, &exercise.TherapeuticBenefits); err != nil {
		return nil, fmt.Errorf("unmarshal therapeutic benefits: %w", err)
	}
	if err := unmarshalIfSet(ratingsJson, &exercise.SportRatings); err != nil {
		return nil, fmt.Errorf("unmarshal sport ratings: %w", err)
	}

	return &exercise, nil
}

func unmarshalIfSet(data []byte, target any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func ratingsOrEmpty(ratings SportRatings) SportRatings {
	if ratings == nil {
		return SportRatings{}
	}
	return ratings
}
