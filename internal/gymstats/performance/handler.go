package performance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/identity"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=performance_test

type logService interface {
	Record(ctx context.Context, l Log) (*Log, error)
	History(ctx context.Context, params HistoryParams) (*History, error)
}

type Handler struct {
	service logService
}

func NewHandler(service logService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.record")
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

	var req Log
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("record performance log, unmarshal json params: %s", err)
		http.Error(w, "record performance log failed", http.StatusBadRequest)
		return
	}
	// logs are always written for the caller
	req.UserID = userID

	saved, err := handler.service.Record(ctx, req)
	if err != nil {
		log.Errorf("failed to record performance log [%s] [%s]: %s", userID, req.ExerciseName, err)
		http.Error(w, "error, failed to record performance log", apperr.HTTPStatus(err))
		return
	}

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("failed to marshal performance log: %s", err)
		http.Error(w, "failed to marshal performance log", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusCreated)
}

// HandleHistory serves GET /performance/history?exercise=&sport=&limit=
func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.history")
	defer span.End()

	userID, err := identity.RequireUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	params := HistoryParams{
		UserID:       userID,
		ExerciseName: query.Get("exercise"),
	}
	if params.ExerciseName == "" {
		http.Error(w, "parameter <exercise> missing", http.StatusBadRequest)
		return
	}

	if sportStr := query.Get("sport"); sportStr != "" {
		sp, err := sport.Parse(sportStr)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		params.Sport = &sp
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "parameter <limit> invalid", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	history, err := handler.service.History(ctx, params)
	if err != nil {
		log.Errorf("failed to get performance history [%s] [%s]: %s", userID, params.ExerciseName, err)
		http.Error(w, "error, failed to get performance history", apperr.HTTPStatus(err))
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("failed to marshal performance history: %s", err)
		http.Error(w, "failed to marshal performance history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, historyJson)
}
