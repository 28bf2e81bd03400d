package ai

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/identity"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/validation"
	"github.com/rebld/rebldserver/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=ai_test

type explainService interface {
	Explain(ctx context.Context, userID, exerciseName string) (*ExplainResult, error)
}

type ExplainRequest struct {
	ExerciseName string `json:"exercise_name" validate:"required,max=200"`
}

type Handler struct {
	service explainService
}

func NewHandler(service explainService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ai.explain")
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

	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("explain exercise, unmarshal json params: %s", err)
		http.Error(w, "explain exercise failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Explain(ctx, userID, req.ExerciseName)
	if err != nil {
		var rlErr *apperr.RateLimitError
		if errors.As(err, &rlErr) {
			// the message tells the user when to come back
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rlErr.RetryAfter.Seconds()))))
			http.Error(w, rlErr.Error(), http.StatusTooManyRequests)
			return
		}
		log.Errorf("failed to explain exercise [%s]: %s", req.ExerciseName, err)
		http.Error(w, "error, failed to explain exercise", apperr.HTTPStatus(err))
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal exercise explanation: %s", err)
		http.Error(w, "failed to marshal exercise explanation", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, resultJson)
}
