package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/identity"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/validation"
	"github.com/rebld/rebldserver/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type userService interface {
	Ensure(ctx context.Context, userID string) (*User, error)
	Get(ctx context.Context, userID string) (*User, error)
	UpdateInjuryProfile(ctx context.Context, userID string, profile InjuryProfile) error
	UpdateTrainingPreferences(ctx context.Context, userID string, prefs TrainingPreferences) error
	EnsureUserCode(ctx context.Context, userID string) (string, error)
}

type InjuryProfileRequest struct {
	CurrentInjuries      []Injury     `json:"current_injuries" validate:"max=50,dive"`
	InjuryHistory        []PastInjury `json:"injury_history" validate:"max=100,dive"`
	MovementRestrictions []string     `json:"movement_restrictions" validate:"max=50,dive,max=200"`
	PainTriggers         []string     `json:"pain_triggers" validate:"max=50,dive,max=200"`
}

type UserCodeResponse struct {
	UserCode string `json:"user_code"`
}

type Handler struct {
	service userService
}

func NewHandler(service userService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleEnsure registers the calling user on first login and returns the stored profile.
func (handler *Handler) HandleEnsure(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.ensure")
	defer span.End()

	userID, err := identity.RequireUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := handler.service.Ensure(ctx, userID)
	if err != nil {
		log.Errorf("failed to ensure user [%s]: %s", userID, err)
		http.Error(w, "error, failed to register user", apperr.HTTPStatus(err))
		return
	}

	handler.writeUser(w, user)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	userID, err := identity.RequireUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := handler.service.Get(ctx, userID)
	if err != nil {
		log.Errorf("failed to get user [%s]: %s", userID, err)
		http.Error(w, "error, failed to get user", apperr.HTTPStatus(err))
		return
	}

	handler.writeUser(w, user)
}

func (handler *Handler) HandleUpdateInjuryProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.injury_profile")
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

	var req InjuryProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update injury profile, unmarshal json params: %s", err)
		http.Error(w, "update injury profile failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateInjuryProfile(ctx, userID, InjuryProfile{
		CurrentInjuries:      req.CurrentInjuries,
		InjuryHistory:        req.InjuryHistory,
		MovementRestrictions: req.MovementRestrictions,
		PainTriggers:         req.PainTriggers,
	}); err != nil {
		log.Errorf("failed to update injury profile [%s]: %s", userID, err)
		http.Error(w, "error, failed to update injury profile", apperr.HTTPStatus(err))
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleUpdateTrainingPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.training_preferences")
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

	var req TrainingPreferences
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update training preferences, unmarshal json params: %s", err)
		http.Error(w, "update training preferences failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateTrainingPreferences(ctx, userID, req); err != nil {
		log.Errorf("failed to update training preferences [%s]: %s", userID, err)
		http.Error(w, "error, failed to update training preferences", apperr.HTTPStatus(err))
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleEnsureUserCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.code")
	defer span.End()

	userID, err := identity.RequireUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	code, err := handler.service.EnsureUserCode(ctx, userID)
	if err != nil {
		log.Errorf("failed to ensure user code [%s]: %s", userID, err)
		http.Error(w, "error, failed to get user code", apperr.HTTPStatus(err))
		return
	}

	codeJson, err := json.Marshal(UserCodeResponse{UserCode: code})
	if err != nil {
		log.Errorf("failed to marshal user code: %s", err)
		http.Error(w, "failed to marshal user code", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, codeJson)
}

func (handler *Handler) writeUser(w http.ResponseWriter, user *User) {
	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal user: %s", err)
		http.Error(w, "failed to marshal user", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, userJson)
}
