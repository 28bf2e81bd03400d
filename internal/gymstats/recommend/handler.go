package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/exercisecache"
	"github.com/rebld/rebldserver/internal/gymstats/safety"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/identity"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recommend_test

type recommender interface {
	Recommend(ctx context.Context, req Request) ([]safety.Assessed, error)
	Therapeutic(ctx context.Context, conditions []string, minLevel exercisecache.BenefitLevel) ([]exercisecache.TherapeuticMatch, error)
}

type Handler struct {
	recommender recommender
}

func NewHandler(recommender recommender) *Handler {
	return &Handler{
		recommender: recommender,
	}
}

// HandleRecommendations serves GET /recommendations?category=&sport= for the calling user.
func (handler *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recommend.list")
	defer span.End()

	userID, err := identity.RequireUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	req := Request{UserID: userID}
	query := r.URL.Query()
	if categoryStr := query.Get("category"); categoryStr != "" {
		category, err := sport.ParsePlacement(categoryStr)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Category = &category
	}
	if sportStr := query.Get("sport"); sportStr != "" {
		sp, err := sport.Parse(sportStr)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Sport = &sp
	}

	recommendations, err := handler.recommender.Recommend(ctx, req)
	if err != nil {
		log.Errorf("failed to get recommendations [%s]: %s", userID, err)
		http.Error(w, "error, failed to get recommendations", apperr.HTTPStatus(err))
		return
	}

	recommendationsJson, err := json.Marshal(recommendations)
	if err != nil {
		log.Errorf("failed to marshal recommendations: %s", err)
		http.Error(w, "failed to marshal recommendations", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, recommendationsJson)
}

// HandleTherapeutic serves GET /exercises/therapeutic?conditions=knee_pain,lower_back&min_level=
func (handler *Handler) HandleTherapeutic(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recommend.therapeutic")
	defer span.End()

	query := r.URL.Query()
	var conditions []string
	for _, c := range strings.Split(query.Get("conditions"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			conditions = append(conditions, c)
		}
	}
	if len(conditions) == 0 {
		http.Error(w, "parameter <conditions> missing", http.StatusBadRequest)
		return
	}

	minLevel := exercisecache.BenefitLevel(strings.ToLower(query.Get("min_level")))
	matches, err := handler.recommender.Therapeutic(ctx, conditions, minLevel)
	if err != nil {
		log.Errorf("failed to get therapeutic exercises %v: %s", conditions, err)
		http.Error(w, "error, failed to get therapeutic exercises", apperr.HTTPStatus(err))
		return
	}

	matchesJson, err := json.Marshal(matches)
	if err != nil {
		log.Errorf("failed to marshal therapeutic exercises: %s", err)
		http.Error(w, "failed to marshal therapeutic exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, matchesJson)
}
