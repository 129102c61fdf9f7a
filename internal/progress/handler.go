package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/sessions"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressStore interface {
	Add(ctx context.Context, e Entry) (*Entry, error)
	ListBySession(ctx context.Context, userID, sessionID uuid.UUID) ([]Entry, error)
	AddMeasurement(ctx context.Context, measurement Measurement) (*Measurement, error)
	ListMeasurements(ctx context.Context, userID uuid.UUID, limit int) ([]Measurement, error)
	Dashboard(ctx context.Context, userID uuid.UUID, weekStart, today time.Time) (*Dashboard, error)
}

const (
	noticeSaved             = "Progresso salvo!"
	noticeSavedDesc         = "Seus dados foram registrados com sucesso."
	noticeSaveFailed        = "Erro ao salvar"
	noticeMeasurementsSaved = "Medidas salvas!"
	noticeWeightSaved       = "Peso registrado!"
)

type AddResponse struct {
	Entry  *Entry     `json:"entry"`
	Notice pkg.Notice `json:"notice"`
}

type MeasurementResponse struct {
	Measurement *Measurement `json:"measurement"`
	Notice      pkg.Notice   `json:"notice"`
}

type NewHandlerParams struct {
	Store    progressStore
	Metrics  *metrics.Manager
	Location *time.Location
	Now      func() time.Time
}

type Handler struct {
	store    progressStore
	metrics  *metrics.Manager
	location *time.Location
	now      func() time.Time
}

func NewHandler(params NewHandlerParams) *Handler {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		store:    params.Store,
		metrics:  params.Metrics,
		location: loc,
		now:      now,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.add")
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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("progress, unmarshal json params: %s", err)
		http.Error(w, "invalid progress data", http.StatusBadRequest)
		return
	}

	entry, err := req.ToEntry(userID)
	if err != nil {
		pkg.WriteErrorNotice(w, http.StatusBadRequest, noticeSaveFailed, err.Error())
		return
	}

	added, err := h.store.Add(ctx, *entry)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			pkg.WriteErrorNotice(w, http.StatusNotFound, noticeSaveFailed, err.Error())
			return
		}
		log.Errorf("add progress for %s: %s", userID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeSaveFailed, "failed to save progress")
		return
	}

	if h.metrics != nil {
		h.metrics.CounterProgressLogs.Inc()
	}

	pkg.WriteJSON(w, AddResponse{
		Entry: added,
		Notice: pkg.Notice{
			Title:       noticeSaved,
			Description: noticeSavedDesc,
			Variant:     pkg.NoticeSuccess,
		},
	}, http.StatusCreated)
}

func (h *Handler) HandleListBySession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.listbysession")
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

	entries, err := h.store.ListBySession(ctx, userID, sessionID)
	if err != nil {
		log.Errorf("list progress of session %s: %s", sessionID, err)
		http.Error(w, "failed to list progress", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.dashboard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	today := h.now().In(h.location)
	d, err := h.store.Dashboard(ctx, userID, sessions.WeekStart(today, h.location), today)
	if err != nil {
		log.Errorf("dashboard for %s: %s", userID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, "Erro ao carregar progresso", "failed to load dashboard")
		return
	}

	pkg.WriteJSON(w, d, http.StatusOK)
}

// HandleAddMeasurement stores a body check-in with any of the circumferences
// and optionally the body weight.
func (h *Handler) HandleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.addmeasurement")
	defer span.End()

	var req MeasurementRequest
	userID, ok := h.decodeBody(w, r, &req)
	if !ok {
		return
	}

	m, err := req.ToMeasurement(userID)
	if err != nil {
		pkg.WriteErrorNotice(w, http.StatusBadRequest, noticeSaveFailed, err.Error())
		return
	}
	h.addMeasurement(ctx, w, m, noticeMeasurementsSaved)
}

func (h *Handler) HandleAddBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.addbodyweight")
	defer span.End()

	var req BodyWeightRequest
	userID, ok := h.decodeBody(w, r, &req)
	if !ok {
		return
	}

	m, err := req.ToMeasurement(userID)
	if err != nil {
		pkg.WriteErrorNotice(w, http.StatusBadRequest, noticeSaveFailed, err.Error())
		return
	}
	h.addMeasurement(ctx, w, m, noticeWeightSaved)
}

func (h *Handler) HandleListMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.listmeasurements")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := DefaultMeasurementsLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		var err error
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(limit, MaxMeasurementsLimit)
	}

	list, err := h.store.ListMeasurements(ctx, userID, limit)
	if err != nil {
		log.Errorf("list measurements for %s: %s", userID, err)
		http.Error(w, "failed to list measurements", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Measurement{}
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return uuid.Nil, false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Errorf("measurements, unmarshal json params: %s", err)
		http.Error(w, "invalid measurement data", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) addMeasurement(ctx context.Context, w http.ResponseWriter, m *Measurement, title string) {
	added, err := h.store.AddMeasurement(ctx, *m)
	if err != nil {
		log.Errorf("add measurement for %s: %s", m.UserID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeSaveFailed, "failed to save measurement")
		return
	}

	if h.metrics != nil {
		h.metrics.CounterMeasurements.Inc()
	}

	pkg.WriteJSON(w, MeasurementResponse{
		Measurement: added,
		Notice: pkg.Notice{
			Title:       title,
			Description: noticeSavedDesc,
			Variant:     pkg.NoticeSuccess,
		},
	}, http.StatusCreated)
}
