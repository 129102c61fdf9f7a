package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Create(ctx context.Context, p *Profile) (*Profile, error)
	Update(ctx context.Context, p *Profile) (*Profile, error)
}

const noticeSaveFailed = "Erro ao salvar perfil"

type Handler struct {
	store profileStore
}

func NewHandler(store profileStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for %s: %s", userID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, "Erro ao carregar perfil", "failed to get profile")
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

// HandleCreate stores the onboarding survey.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.create")
	defer span.End()

	userID, p, ok := h.readProfile(w, r.WithContext(ctx))
	if !ok {
		return
	}

	created, err := h.store.Create(ctx, p)
	if err != nil {
		if errors.Is(err, ErrProfileExists) {
			pkg.WriteErrorNotice(w, http.StatusConflict, noticeSaveFailed, "profile already exists, use the re-setup flow")
			return
		}
		log.Errorf("create profile for %s: %s", userID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeSaveFailed, "failed to create profile")
		return
	}

	log.Debugf("profile created for user %s", userID)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

// HandleUpdate replaces the profile (re-setup).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	userID, p, ok := h.readProfile(w, r.WithContext(ctx))
	if !ok {
		return
	}

	updated, err := h.store.Update(ctx, p)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("update profile for %s: %s", userID, err)
		pkg.WriteErrorNotice(w, http.StatusInternalServerError, noticeSaveFailed, "failed to update profile")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) readProfile(w http.ResponseWriter, r *http.Request) (uuid.UUID, *Profile, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, nil, false
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return uuid.Nil, nil, false
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("profile, unmarshal json params: %s", err)
		http.Error(w, "invalid profile data", http.StatusBadRequest)
		return uuid.Nil, nil, false
	}

	p, err := req.ToProfile(userID)
	if err != nil {
		pkg.WriteErrorNotice(w, http.StatusBadRequest, "Dados incompletos", err.Error())
		return uuid.Nil, nil, false
	}

	return userID, p, true
}
