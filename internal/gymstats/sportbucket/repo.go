package sportbucket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const entryColumns = `
	id, sport, exercise_name, usage_count, success_rate, avg_performance_score,
	typical_sets, typical_reps, typical_duration_s, typical_weight_ratio,
	warmup_count, main_count, cooldown_count, confidence_score, created_by_user, last_updated`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sportbucket.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO sport_bucket
				(sport, exercise_name, usage_count, success_rate, avg_performance_score,
				typical_sets, typical_reps, typical_duration_s, typical_weight_ratio,
				warmup_count, main_count, cooldown_count, confidence_score, created_by_user, last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id;`,
		string(entry.Sport), entry.ExerciseName, entry.UsageCount, entry.SuccessRate, entry.AvgPerformanceScore,
		entry.TypicalSets, entry.TypicalReps, entry.TypicalDurationS, entry.TypicalWeightRatio,
		entry.PlacementStats.WarmupCount, entry.PlacementStats.MainCount, entry.PlacementStats.CooldownCount,
		entry.ConfidenceScore, entry.CreatedByUser, entry.LastUpdated,
	).Scan(&entry.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEntryExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("sportbucket.id", entry.ID))
	return &entry, nil
}

// Modify locks the (sport, exercise) row for the duration of the transaction,
// so concurrent updates of the same aggregate are applied one after another.
func (r *Repo) Modify(ctx context.Context, sp sport.Sport, exerciseName string, fn func(Entry) Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sportbucket.modify")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("sport", sp.String()),
		attribute.String("exercise", exerciseName),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	current, err := scanEntry(tx.QueryRow(
		ctx,
		`SELECT `+entryColumns+` FROM sport_bucket WHERE sport = $1 AND exercise_name = $2 FOR UPDATE;`,
		string(sp), exerciseName,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	updated := fn(*current)
	updated.ID = current.ID

	_, err = tx.Exec(
		ctx,
		`UPDATE sport_bucket SET
				usage_count = $1, success_rate = $2, avg_performance_score = $3,
				typical_sets = $4, typical_reps = $5, typical_duration_s = $6, typical_weight_ratio = $7,
				warmup_count = $8, main_count = $9, cooldown_count = $10,
				confidence_score = $11, last_updated = $12
			WHERE id = $13;`,
		updated.UsageCount, updated.SuccessRate, updated.AvgPerformanceScore,
		updated.TypicalSets, updated.TypicalReps, updated.TypicalDurationS, updated.TypicalWeightRatio,
		updated.PlacementStats.WarmupCount, updated.PlacementStats.MainCount, updated.PlacementStats.CooldownCount,
		updated.ConfidenceScore, updated.LastUpdated, updated.ID,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *Repo) ListBySport(ctx context.Context, sp sport.Sport) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sportbucket.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("sport", sp.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+entryColumns+` FROM sport_bucket WHERE sport = $1 ORDER BY id;`,
		string(sp),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2Entries(rows)
}

func rows2Entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var (
		entry Entry
		sp    string
	)
	if err := row.Scan(
		&entry.ID,
		&sp,
		&entry.ExerciseName,
		&entry.UsageCount,
		&entry.SuccessRate,
		&entry.AvgPerformanceScore,
		&entry.TypicalSets,
		&entry.TypicalReps,
		&entry.TypicalDurationS,
		&entry.TypicalWeightRatio,
		&entry.PlacementStats.WarmupCount,
		&entry.PlacementStats.MainCount,
		&entry.PlacementStats.CooldownCount,
		&entry.ConfidenceScore,
		&entry.CreatedByUser,
		&entry.LastUpdated,
	); err != nil {
		return nil, err
	}
	entry.Sport = sport.Sport(sp)
	return &entry, nil
}
