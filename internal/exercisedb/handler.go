package exercisedb

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercisedb_test

type catalogLoader interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

const noticeLoadFailed = "Erro ao carregar exercícios"

type ExerciseResponse struct {
	Exercise
	CategoryName string `json:"categoryName"`
	Image        string `json:"image,omitempty"`
}

type ImageResponse struct {
	ExerciseID int    `json:"exerciseId"`
	Image      string `json:"image"`
}

type Handler struct {
	loader catalogLoader
}

func NewHandler(loader catalogLoader) *Handler {
	return &Handler{
		loader: loader,
	}
}

// HandleList supports the optional q and category query params.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisedb.list")
	defer span.End()

	categoryID := 0
	if categoryParam := r.URL.Query().Get("category"); categoryParam != "" && categoryParam != "all" {
		var err error
		categoryID, err = strconv.Atoi(categoryParam)
		if err != nil {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
	}

	catalog, ok := h.catalog(ctx, w)
	if !ok {
		return
	}

	exercises := catalog.Search(r.URL.Query().Get("q"), categoryID)
	resp := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		img, _ := catalog.ExerciseImage(e.ID)
		resp = append(resp, ExerciseResponse{
			Exercise:     e,
			CategoryName: catalog.CategoryName(e.Category),
			Image:        img,
		})
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisedb.categories")
	defer span.End()

	catalog, ok := h.catalog(ctx, w)
	if !ok {
		return
	}
	pkg.WriteJSON(w, catalog.Categories(), http.StatusOK)
}

func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisedb.image")
	defer span.End()

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || exerciseID <= 0 {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	catalog, ok := h.catalog(ctx, w)
	if !ok {
		return
	}

	img, found := catalog.ExerciseImage(exerciseID)
	if !found {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, ImageResponse{ExerciseID: exerciseID, Image: img}, http.StatusOK)
}

func (h *Handler) catalog(ctx context.Context, w http.ResponseWriter) (*Catalog, bool) {
	catalog, err := h.loader.Catalog(ctx)
	if err != nil {
		log.Errorf("load exercise catalog: %s", err)
		pkg.WriteErrorNotice(w, http.StatusBadGateway, noticeLoadFailed, "failed to load exercise catalog")
		return nil, false
	}
	return catalog, true
}
