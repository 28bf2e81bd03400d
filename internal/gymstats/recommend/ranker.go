package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/exercisecache"
	"github.com/rebld/rebldserver/internal/gymstats/safety"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=ranker_mocks_test.go -package=recommend_test

// ratings sit on a 0-10 scale, unrated exercises land in the middle
const neutralRating = 5.0

type userGetter interface {
	Get(ctx context.Context, userID string) (*users.User, error)
}

type candidateLister interface {
	List(ctx context.Context, category *sport.Placement) ([]exercisecache.Exercise, error)
}

type Request struct {
	UserID   string
	Category *sport.Placement
	Sport    *sport.Sport
}

type Ranker struct {
	users      userGetter
	candidates candidateLister
}

func NewRanker(userStore userGetter, candidates candidateLister) *Ranker {
	return &Ranker{
		users:      userStore,
		candidates: candidates,
	}
}

// Recommend returns the exercises of the requested category that are safe for the user's
// current injuries. When a sport is requested and the user trains for a specific sport,
// the best rated exercises for that sport come first.
func (r *Ranker) Recommend(ctx context.Context, req Request) (_ []safety.Assessed, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.recommend.rank")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.UserID == "" {
		return nil, apperr.Validation("user required")
	}

	user, err := r.users.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user [%s]: %w", req.UserID, err)
	}

	exercises, err := r.candidates.List(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("list candidate exercises: %w", err)
	}

	injuryTypes := user.InjuryProfile.CurrentInjuryTypes()
	ranked := safety.Filter(injuryTypes, exercises)
	span.SetAttributes(
		attribute.Int("candidates", len(exercises)),
		attribute.Int("safe", len(ranked)),
		attribute.Int("injuries", len(injuryTypes)),
	)
	log.Tracef("recommend [%s]: %d of %d candidates safe", req.UserID, len(ranked), len(exercises))

	if ratedSport, ok := ratingSport(req, user); ok {
		span.SetAttributes(attribute.String("sport.rating", ratedSport.String()))
		sortByRating(ranked, ratedSport)
	}

	return ranked, nil
}

func ratingSport(req Request, user *users.User) (sport.Sport, bool) {
	if req.Sport == nil || user.TrainingPreferences == nil || user.TrainingPreferences.SportSpecific == nil {
		return "", false
	}
	sp, err := sport.Parse(*user.TrainingPreferences.SportSpecific)
	if err != nil {
		return "", false
	}
	return sp, true
}

func sortByRating(exercises []safety.Assessed, sp sport.Sport) {
	rating := func(ex safety.Assessed) float64 {
		if r, ok := ex.SportRatings.Rating(sp); ok {
			return r
		}
		return neutralRating
	}
	sort.SliceStable(exercises, func(i, j int) bool {
		return rating(exercises[i]) > rating(exercises[j])
	})
}

// Therapeutic ranks all known exercises by how much they help with the given conditions.
func (r *Ranker) Therapeutic(ctx context.Context, conditions []string, minLevel exercisecache.BenefitLevel) (_ []exercisecache.TherapeuticMatch, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.recommend.therapeutic")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(conditions) == 0 {
		return nil, apperr.Validation("at least one condition required")
	}
	if minLevel != "" && minLevel.Value() == 0 {
		return nil, apperr.Validation("unknown benefit level [%s]", minLevel)
	}

	exercises, err := r.candidates.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	return exercisecache.Therapeutic(exercises, conditions, minLevel), nil
}
