package sportbucket

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/identity"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/validation"
	"github.com/rebld/rebldserver/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sportbucket_test

type bucketStore interface {
	RecordUsage(ctx context.Context, params UsageParams) error
	RecordPerformance(ctx context.Context, params PerformanceParams) error
	Query(ctx context.Context, sp sport.Sport, filters QueryFilters) ([]Entry, error)
	Stats(ctx context.Context, sp sport.Sport) (*Stats, error)
}

type UsageRequest struct {
	Sport        string `json:"sport" validate:"required,sport"`
	ExerciseName string `json:"exercise_name" validate:"required,max=200"`
	Category     string `json:"category" validate:"required,placement"`
	Placement    string `json:"placement" validate:"omitempty,placement"`
}

type PerformanceRequest struct {
	Sport            string  `json:"sport" validate:"required,sport"`
	ExerciseName     string  `json:"exercise_name" validate:"required,max=200"`
	Success          bool    `json:"success"`
	PerformanceScore float64 `json:"performance_score" validate:"min=0,max=100"`
}

type QueryResponse struct {
	Sport   sport.Sport `json:"sport"`
	Entries []Entry     `json:"entries"`
}

type Handler struct {
	store bucketStore
}

func NewHandler(store bucketStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) HandleRecordUsage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sportbucket.usage")
	defer span.End()

	userID, err := identity.RequireUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("record usage, unmarshal json params: %s", err)
		http.Error(w, "record usage failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.RecordUsage(ctx, UsageParams{
		Sport:        sport.Sport(req.Sport),
		ExerciseName: req.ExerciseName,
		Category:     sport.Placement(req.Category),
		Placement:    sport.Placement(req.Placement),
		UserID:       userID,
	}); err != nil {
		log.Errorf("failed to record usage [%s] [%s]: %s", req.Sport, req.ExerciseName, err)
		http.Error(w, "error, failed to record usage", apperr.HTTPStatus(err))
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "recorded", http.StatusCreated)
}

func (handler *Handler) HandleRecordPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sportbucket.performance")
	defer span.End()

	if _, err := identity.RequireUserID(ctx); err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req PerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("record performance, unmarshal json params: %s", err)
		http.Error(w, "record performance failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.RecordPerformance(ctx, PerformanceParams{
		Sport:            sport.Sport(req.Sport),
		ExerciseName:     req.ExerciseName,
		Success:          req.Success,
		PerformanceScore: req.PerformanceScore,
	}); err != nil {
		log.Errorf("failed to record performance [%s] [%s]: %s", req.Sport, req.ExerciseName, err)
		http.Error(w, "error, failed to record performance", apperr.HTTPStatus(err))
		return
	}

	pkg.WriteTextResponseOK(w, "recorded")
}

// HandleQuery serves GET /buckets/{sport}?min_score=&min_usage=&category=
func (handler *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sportbucket.query")
	defer span.End()

	sp, err := sport.Parse(mux.Vars(r)["sport"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filters, err := parseQueryFilters(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := handler.store.Query(ctx, sp, filters)
	if err != nil {
		log.Errorf("failed to query sport bucket [%s]: %s", sp, err)
		http.Error(w, "error, failed to query sport bucket", apperr.HTTPStatus(err))
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	respJson, err := json.Marshal(QueryResponse{
		Sport:   sp,
		Entries: entries,
	})
	if err != nil {
		log.Errorf("failed to marshal sport bucket entries: %s", err)
		http.Error(w, "failed to marshal sport bucket entries", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, respJson)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sportbucket.stats")
	defer span.End()

	sp, err := sport.Parse(mux.Vars(r)["sport"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := handler.store.Stats(ctx, sp)
	if err != nil {
		log.Errorf("failed to get sport bucket stats [%s]: %s", sp, err)
		http.Error(w, "error, failed to get sport bucket stats", apperr.HTTPStatus(err))
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal sport bucket stats: %s", err)
		http.Error(w, "failed to marshal sport bucket stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, statsJson)
}

func parseQueryFilters(r *http.Request) (QueryFilters, error) {
	var filters QueryFilters
	query := r.URL.Query()

	if minScoreStr := query.Get("min_score"); minScoreStr != "" {
		minScore, err := strconv.ParseFloat(minScoreStr, 64)
		if err != nil {
			return filters, apperr.Validation("parameter <min_score> NaN")
		}
		filters.MinScore = &minScore
	}

	if minUsageStr := query.Get("min_usage"); minUsageStr != "" {
		minUsage, err := strconv.Atoi(minUsageStr)
		if err != nil {
			return filters, apperr.Validation("parameter <min_usage> NaN")
		}
		filters.MinUsageCount = &minUsage
	}

	if categoryStr := query.Get("category"); categoryStr != "" {
		category, err := sport.ParsePlacement(categoryStr)
		if err != nil {
			return filters, err
		}
		filters.Category = &category
	}

	return filters, nil
}
