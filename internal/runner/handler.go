package runner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/runner/countdown"
	"github.com/2beens/fitplanner/internal/sessions"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

type runRegistry interface {
	Open(ctx context.Context, userID, sessionID uuid.UUID) (*Run, error)
	Get(userID, runID uuid.UUID) (*Run, error)
	Close(userID, runID uuid.UUID) error
}

const (
	noticeSaveFailed = "Erro ao finalizar treino"
	noticeSaved      = "Treino concluído!"
)

type OpenRequest struct {
	SessionID uuid.UUID `json:"sessionId"`
}

type WeightRequest struct {
	Weight string `json:"weight"`
}

type SaveResponse struct {
	*SaveResult
	Title string `json:"title"`
}

type Handler struct {
	registry runRegistry
}

func NewHandler(registry runRegistry) *Handler {
	return &Handler{
		registry: registry,
	}
}

func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.open")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("open run: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == uuid.Nil {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	run, err := h.registry.Open(ctx, userID, req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("open run for session %s: %s", req.SessionID, err)
		http.Error(w, "failed to open run", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, run.View(), http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.get")
	defer span.End()

	run, ok := h.run(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, run.View(), http.StatusOK)
}

func (h *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.completeset")
	defer span.End()

	run, index, ok := h.runExercise(w, r)
	if !ok {
		return
	}

	t, err := run.CompleteSet(index)
	if err != nil {
		writeRunError(w, err)
		return
	}
	pkg.WriteJSON(w, t, http.StatusOK)
}

func (h *Handler) HandleResetExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.resetexercise")
	defer span.End()

	run, index, ok := h.runExercise(w, r)
	if !ok {
		return
	}

	t, err := run.Reset(index)
	if err != nil {
		writeRunError(w, err)
		return
	}
	pkg.WriteJSON(w, t, http.StatusOK)
}

func (h *Handler) HandleSetWeight(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.setweight")
	defer span.End()

	run, index, ok := h.runExercise(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req WeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set weight: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := run.SetWeight(index, req.Weight)
	if err != nil {
		writeRunError(w, err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

// HandleRest applies the {action} (start, pause or reset) to the active
// rest countdown.
func (h *Handler) HandleRest(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.rest")
	defer span.End()

	run, ok := h.run(w, r)
	if !ok {
		return
	}

	var action func() (countdown.Snapshot, error)
	switch mux.Vars(r)["action"] {
	case "start":
		action = run.StartRest
	case "pause":
		action = run.PauseRest
	case "reset":
		action = run.ResetRest
	default:
		http.Error(w, "unknown rest action", http.StatusBadRequest)
		return
	}

	snap, err := action()
	if err != nil {
		writeRunError(w, err)
		return
	}
	pkg.WriteJSON(w, snap, http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.save")
	defer span.End()

	run, ok := h.run(w, r)
	if !ok {
		return
	}

	res, err := run.Save(ctx)
	if err != nil {
		switch {
		case errors.Is(err, ErrNothingCompleted):
			pkg.WriteErrorNotice(w, http.StatusConflict, noticeSaveFailed, NothingCompletedText)
		case errors.Is(err, sessions.ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		case errors.Is(err, ErrRunClosed):
			http.Error(w, "run not found", http.StatusNotFound)
		default:
			log.Errorf("save run %s: %s", run.ID(), err)
			pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeSaveFailed, "failed to save session")
		}
		return
	}

	pkg.WriteJSON(w, SaveResponse{SaveResult: res, Title: noticeSaved}, http.StatusOK)
}

func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.runner.close")
	defer span.End()

	userID, runID, ok := runIDs(w, r)
	if !ok {
		return
	}

	if err := h.registry.Close(userID, runID); err != nil {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (*Run, bool) {
	userID, runID, ok := runIDs(w, r)
	if !ok {
		return nil, false
	}

	run, err := h.registry.Get(userID, runID)
	if err != nil {
		http.Error(w, "run not found", http.StatusNotFound)
		return nil, false
	}
	return run, true
}

func (h *Handler) runExercise(w http.ResponseWriter, r *http.Request) (*Run, int, bool) {
	run, ok := h.run(w, r)
	if !ok {
		return nil, 0, false
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "invalid exercise index", http.StatusBadRequest)
		return nil, 0, false
	}
	return run, index, true
}

func runIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	runID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, runID, true
}

func writeRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrExerciseIndex):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNoActiveRest):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrRunClosed):
		http.Error(w, "run not found", http.StatusNotFound)
	default:
		log.Errorf("runner: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
