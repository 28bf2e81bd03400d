package users

import (
	"context"
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/uniqueassign"
	"github.com/rebld/rebldserver/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

const (
	UserCodePrefix      = "REBLD-"
	userCodeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	userCodeLength      = 8
	userCodeMaxAttempts = 20
)

type userRepo interface {
	Ensure(ctx context.Context, userID string) (*User, error)
	Get(ctx context.Context, userID string) (*User, error)
	Exists(ctx context.Context, userID string) (bool, error)
	UpdateInjuryProfile(ctx context.Context, userID string, profile InjuryProfile) error
	UpdateTrainingPreferences(ctx context.Context, userID string, prefs TrainingPreferences) error
	UserCodeTaken(ctx context.Context, code string) (bool, error)
	SetUserCodeIfEmpty(ctx context.Context, userID, code string) (bool, error)
}

type Service struct {
	repo userRepo
	now  func() time.Time
}

func NewService(repo userRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Ensure(ctx context.Context, userID string) (*User, error) {
	return s.repo.Ensure(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	return s.repo.Exists(ctx, userID)
}

func (s *Service) UpdateInjuryProfile(ctx context.Context, userID string, profile InjuryProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.injury_profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("injuries.current", len(profile.CurrentInjuries)))

	profile.LastUpdated = s.now().UTC()
	if profile.CurrentInjuries == nil {
		profile.CurrentInjuries = []Injury{}
	}
	if profile.InjuryHistory == nil {
		profile.InjuryHistory = []PastInjury{}
	}

	return s.repo.UpdateInjuryProfile(ctx, userID, profile)
}

func (s *Service) UpdateTrainingPreferences(ctx context.Context, userID string, prefs TrainingPreferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.training_preferences.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prefs.LastUpdated = s.now().UTC()
	return s.repo.UpdateTrainingPreferences(ctx, userID, prefs)
}

// EnsureUserCode returns the user's sharing code, assigning a fresh unique one if the user has none yet.
func (s *Service) EnsureUserCode(ctx context.Context, userID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.code.ensure")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	code, err := uniqueassign.Assign(ctx, uniqueassign.Assigner[string]{
		Current: func(ctx context.Context) (string, bool, error) {
			user, err := s.repo.Get(ctx, userID)
			if err != nil {
				return "", false, err
			}
			if user.UserCode == nil || *user.UserCode == "" {
				return "", false, nil
			}
			return *user.UserCode, true, nil
		},
		Generate: GenerateUserCode,
		Taken: func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.UserCodeTaken(ctx, candidate)
		},
		Commit: func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SetUserCodeIfEmpty(ctx, userID, candidate)
		},
		MaxAttempts: userCodeMaxAttempts,
	})
	if err != nil {
		return "", fmt.Errorf("ensure user code: %w", err)
	}

	log.Debugf("user [%s] has code [%s]", userID, code)
	return code, nil
}

// GenerateUserCode makes a candidate code like REBLD-7QK2M9XA.
func GenerateUserCode() (string, error) {
	suffix, err := pkg.RandomStringFromAlphabet(userCodeLength, userCodeAlphabet)
	if err != nil {
		return "", err
	}
	return UserCodePrefix + suffix, nil
}
