package exercisecache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
	"github.com/rebld/rebldserver/internal/telemetry/tracing"
	"github.com/rebld/rebldserver/internal/validation"
	"github.com/rebld/rebldserver/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercisecache_test

type exerciseStore interface {
	Get(ctx context.Context, exerciseName string) (*Exercise, error)
	Upsert(ctx context.Context, exercise Exercise) (*Exercise, error)
	UpdateInjuryData(ctx context.Context, exerciseName string, contraindications []Contraindication, benefits []TherapeuticBenefit) error
	UpdateSportRatings(ctx context.Context, exerciseName string, ratings SportRatings) error
}

type InjuryDataRequest struct {
	Contraindications   []Contraindication   `json:"injury_contraindications" validate:"dive"`
	TherapeuticBenefits []TherapeuticBenefit `json:"therapeutic_benefits" validate:"dive"`
}

// SportRatingsRequest maps sport names to a 0-10 rating, null clears the rating.
type SportRatingsRequest map[string]*float64

type UpsertRequest struct {
	ExerciseName    string   `json:"exercise_name" validate:"required,max=200"`
	Explanation     string   `json:"explanation" validate:"required"`
	MusclesWorked   []string `json:"muscles_worked"`
	FormCue         *string  `json:"form_cue"`
	CommonMistake   *string  `json:"common_mistake"`
	PrimaryCategory string   `json:"primary_category" validate:"omitempty,placement"`
}

// Handler serves the exercise metadata used by the admin and import tooling.
type Handler struct {
	store exerciseStore
}

func NewHandler(store exerciseStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisecache.get")
	defer span.End()

	name := sport.NormalizeExerciseName(mux.Vars(r)["name"])
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	exercise, err := handler.store.Get(ctx, name)
	if err != nil {
		log.Errorf("failed to get exercise [%s]: %s", name, err)
		http.Error(w, "error, failed to get exercise", apperr.HTTPStatus(err))
		return
	}

	exJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "failed to marshal exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, exJson)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisecache.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert exercise, unmarshal json params: %s", err)
		http.Error(w, "upsert exercise failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise := Exercise{
		ExerciseName:  sport.NormalizeExerciseName(req.ExerciseName),
		Explanation:   req.Explanation,
		MusclesWorked: req.MusclesWorked,
		FormCue:       req.FormCue,
		CommonMistake: req.CommonMistake,
	}
	if req.PrimaryCategory != "" {
		category := sport.Placement(req.PrimaryCategory)
		exercise.PrimaryCategory = &category
	}

	stored, err := handler.store.Upsert(ctx, exercise)
	if err != nil {
		log.Errorf("failed to upsert exercise [%s]: %s", exercise.ExerciseName, err)
		http.Error(w, "error, failed to upsert exercise", apperr.HTTPStatus(err))
		return
	}

	exJson, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "failed to marshal exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateInjuryData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisecache.update.injurydata")
	defer span.End()

	name := sport.NormalizeExerciseName(mux.Vars(r)["name"])
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req InjuryDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update injury data, unmarshal json params: %s", err)
		http.Error(w, "update injury data failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.UpdateInjuryData(ctx, name, req.Contraindications, req.TherapeuticBenefits); err != nil {
		log.Errorf("failed to update injury data [%s]: %s", name, err)
		http.Error(w, fmt.Sprintf("error, failed to update injury data of [%s]", name), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleUpdateSportRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisecache.update.sportratings")
	defer span.End()

	name := sport.NormalizeExerciseName(mux.Vars(r)["name"])
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SportRatingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update sport ratings, unmarshal json params: %s", err)
		http.Error(w, "update sport ratings failed", http.StatusBadRequest)
		return
	}

	ratings, err := req.toRatings()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.UpdateSportRatings(ctx, name, ratings); err != nil {
		log.Errorf("failed to update sport ratings [%s]: %s", name, err)
		http.Error(w, fmt.Sprintf("error, failed to update sport ratings of [%s]", name), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (req SportRatingsRequest) toRatings() (SportRatings, error) {
	ratings := SportRatings{}
	for name, rating := range req {
		sp, err := sport.Parse(name)
		if err != nil {
			return nil, err
		}
		if rating == nil {
			continue
		}
		if *rating < 0 || *rating > 10 {
			return nil, apperr.Validation("rating of [%s] out of range [0, 10]", sp)
		}
		ratings[sp] = *rating
	}
	return ratings, nil
}
