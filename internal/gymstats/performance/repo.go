package performance

import (
	"context"
	"fmt"

	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const logColumns = `
	id, user_id, exercise_name, sport_context, session_id, completed, skipped, substituted,
	substitute_reason, actual_sets, actual_reps, actual_weight, actual_duration_s, rpe, form_quality,
	pain_experienced, pain_location, was_pr, notes, created_at`

type HistoryParams struct {
	UserID       string
	ExerciseName string
	Sport        *sport.Sport
	// Limit of 0 returns the whole history
	Limit int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, l Log) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("performance.id", l.ID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise_performance (`+logColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`,
		l.ID, l.UserID, l.ExerciseName, sportOrNil(l.SportContext), l.SessionID,
		l.Completed, l.Skipped, l.Substituted, l.SubstituteReason,
		l.ActualSets, l.ActualReps, l.ActualWeight, l.ActualDurationS,
		l.RPE, l.FormQuality, l.PainExperienced, l.PainLocation,
		l.WasPR, l.Notes, l.Timestamp,
	)
	return err
}

// History returns the user's logs of one exercise, newest first.
func (r *Repo) History(ctx context.Context, params HistoryParams) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", params.UserID),
		attribute.String("exercise", params.ExerciseName),
	)

	sportFilter := ""
	if params.Sport != nil {
		sportFilter = params.Sport.String()
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+logColumns+` FROM exercise_performance
			WHERE user_id = $1 AND exercise_name = $2
				AND ($3::text = '' OR sport_context = $3)
			ORDER BY created_at DESC
			LIMIT NULLIF($4::int, 0);`,
		params.UserID, params.ExerciseName, sportFilter, params.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2logs(rows)
}

func rows2logs(rows pgx.Rows) ([]Log, error) {
	var logs []Log
	for rows.Next() {
		var (
			l            Log
			sportContext *string
		)
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.ExerciseName,
			&sportContext,
			&l.SessionID,
			&l.Completed,
			&l.Skipped,
			&l.Substituted,
			&l.SubstituteReason,
			&l.ActualSets,
			&l.ActualReps,
			&l.ActualWeight,
			&l.ActualDurationS,
			&l.RPE,
			&l.FormQuality,
			&l.PainExperienced,
			&l.PainLocation,
			&l.WasPR,
			&l.Notes,
			&l.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if sportContext != nil {
			sp := sport.Sport(*sportContext)
			l.SportContext = &sp
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

func sportOrNil(sp *sport.Sport) *string {
	if sp == nil {
		return nil
	}
	s := sp.String()
	return &s
}
