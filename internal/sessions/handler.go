package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/aiplan"
	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type weekService interface {
	LoadCurrentWeek(ctx context.Context, userID uuid.UUID) (*Week, error)
	GenerateForDayCount(ctx context.Context, userID uuid.UUID, days int) (*Week, error)
	GenerateWithAI(ctx context.Context, userID uuid.UUID) (*Week, error)
	Regenerate(ctx context.Context, userID uuid.UUID) (*Week, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	TodaySession(ctx context.Context, userID uuid.UUID) (*Session, error)
	LastCompleted(ctx context.Context, userID uuid.UUID) (*Session, error)
}

const (
	noticeGenerateFailed = "Erro ao gerar treinos"
	noticeLoadFailed     = "Erro ao carregar treinos"
)

type GenerateRequest struct {
	DayCount int `json:"dayCount"`
}

type Handler struct {
	service weekService
}

func NewHandler(service weekService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleCurrentWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.currentweek")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	week, err := h.service.LoadCurrentWeek(ctx, userID)
	if err != nil {
		log.Errorf("load current week for %s: %s", userID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeLoadFailed, "failed to load sessions")
		return
	}

	pkg.WriteJSON(w, week, http.StatusOK)
}

// HandleGenerate creates the week from the static catalog. The body is
// optional; without a day count the profile's training days are used.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid content type", http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Errorf("generate week, unmarshal json params: %s", err)
			pkg.WriteErrorNotice(w, http.StatusBadRequest, noticeGenerateFailed, "invalid request body")
			return
		}
	}

	week, err := h.service.GenerateForDayCount(ctx, userID, req.DayCount)
	h.writeWeek(w, userID, week, err)
}

func (h *Handler) HandleGenerateAI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.generateai")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	week, err := h.service.GenerateWithAI(ctx, userID)
	h.writeWeek(w, userID, week, err)
}

func (h *Handler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.regenerate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	week, err := h.service.Regenerate(ctx, userID)
	h.writeWeek(w, userID, week, err)
}

func (h *Handler) writeWeek(w http.ResponseWriter, userID uuid.UUID, week *Week, err error) {
	if err != nil {
		log.Errorf("generate week for %s: %s", userID, err)
		switch {
		case errors.Is(err, ErrNoProfile):
			pkg.WriteErrorNotice(w, http.StatusConflict, noticeGenerateFailed, "Complete seu perfil antes de gerar treinos com IA")
		case errors.Is(err, ErrPlanRequest):
			pkg.WriteErrorNotice(w, http.StatusBadGateway, noticeGenerateFailed, aiplan.UserMessage(err))
		default:
			pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeGenerateFailed, "failed to generate sessions")
		}
		return
	}

	status := http.StatusOK
	if week.Created {
		status = http.StatusCreated
	}
	pkg.WriteJSON(w, week, status)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	session, err := h.service.GetSession(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get session %s: %s", sessionID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeLoadFailed, "failed to get session")
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

// HandleToday responds with the session dated today, or 204.
func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.today")
	defer span.End()

	h.writeOptional(ctx, w, h.service.TodaySession)
}

// HandleLastCompleted responds with the most recently completed session,
// or 204.
func (h *Handler) HandleLastCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.lastcompleted")
	defer span.End()

	h.writeOptional(ctx, w, h.service.LastCompleted)
}

func (h *Handler) writeOptional(
	ctx context.Context,
	w http.ResponseWriter,
	get func(context.Context, uuid.UUID) (*Session, error),
) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := get(ctx, userID)
	if err != nil {
		log.Errorf("get session for %s: %s", userID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeLoadFailed, "failed to get session")
		return
	}
	if session == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}
