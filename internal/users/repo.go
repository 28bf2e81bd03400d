package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Ensure creates the user row on first sight, existing rows are left untouched.
func (r *Repo) Ensure(ctx context.Context, userID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.ensure")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	if _, err = r.db.Exec(
		ctx,
		`INSERT INTO rebld_user (user_id, created_at) VALUES ($1, now()) ON CONFLICT (user_id) DO NOTHING;`,
		userID,
	); err != nil {
		return nil, err
	}

	return r.Get(ctx, userID)
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	user, err := scanUser(r.db.QueryRow(
		ctx,
		`SELECT id, user_id, user_code, training_preferences, injury_profile, created_at
			FROM rebld_user WHERE user_id = $1;`,
		userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *Repo) Exists(ctx context.Context, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM rebld_user WHERE user_id = $1);`,
		userID,
	).Scan(&exists)
	return exists, err
}

func (r *Repo) UpdateInjuryProfile(ctx context.Context, userID string, profile InjuryProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.injury_profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profileJson, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal injury profile: %w", err)
	}

	return r.updateJSONColumn(ctx, `UPDATE rebld_user SET injury_profile = $1 WHERE user_id = $2;`, profileJson, userID)
}

func (r *Repo) UpdateTrainingPreferences(ctx context.Context, userID string, prefs TrainingPreferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.training_preferences.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prefsJson, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal training preferences: %w", err)
	}

	return r.updateJSONColumn(ctx, `UPDATE rebld_user SET training_preferences = $1 WHERE user_id = $2;`, prefsJson, userID)
}

func (r *Repo) updateJSONColumn(ctx context.Context, query string, value []byte, userID string) error {
	tag, err := r.db.Exec(ctx, query, value, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) UserCodeTaken(ctx context.Context, code string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.code.taken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var taken bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM rebld_user WHERE user_code = $1);`,
		code,
	).Scan(&taken)
	return taken, err
}

// SetUserCodeIfEmpty writes the code only while the user has none, reporting whether it did.
func (r *Repo) SetUserCodeIfEmpty(ctx context.Context, userID, code string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.code.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE rebld_user SET user_code = $1 WHERE user_id = $2 AND user_code IS NULL;`,
		code, userID,
	)
	if err != nil {
		// unique index on user_code, someone else grabbed this one
		if pkg.IsUniqueViolationError(err) {
			return false, nil
		}
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var (
		user       User
		prefsJson  []byte
		injuryJson []byte
	)
	if err := row.Scan(
		&user.ID,
		&user.UserID,
		&user.UserCode,
		&prefsJson,
		&injuryJson,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(prefsJson) > 0 {
		user.TrainingPreferences = &TrainingPreferences{}
		if err := json.Unmarshal(prefsJson, user.TrainingPreferences); err != nil {
			return nil, fmt.Errorf("unmarshal training preferences: %w", err)
		}
	}
	if len(injuryJson) > 0 {
		user.InjuryProfile = &InjuryProfile{}
		if err := json.Unmarshal(injuryJson, user.InjuryProfile); err != nil {
			return nil, fmt.Errorf("unmarshal injury profile: %w", err)
		}
	}

	return &user, nil
}
