package plan

import (
	"net/http"
	"strconv"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

// HandleTemplates previews the static plan for the optional days, goal and
// level query params. It needs no user.
func HandleTemplates(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.templates")
	defer span.End()

	days := 0
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		var err error
		days, err = strconv.Atoi(daysParam)
		if err != nil {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
	}

	preview, err := NewPreview(days, r.URL.Query().Get("goal"), r.URL.Query().Get("level"))
	if err != nil {
		pkg.WriteErrorNotice(w, http.StatusBadRequest, "Parâmetros inválidos", err.Error())
		return
	}

	pkg.WriteJSON(w, preview, http.StatusOK)
}
