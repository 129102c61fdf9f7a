package misc

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/pkg"
)

// NotificationSoundURL is where the rest expiry sound is served from.
const NotificationSoundURL = "/notification.mp3"

type Handler struct {
	versionInfo string
	soundPath   string
}

func NewHandler(versionInfo, notificationSoundPath string) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		soundPath:   notificationSoundPath,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc(NotificationSoundURL, handler.handleNotificationSound).Methods("GET").Name("notification-sound")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleNotificationSound(w http.ResponseWriter, r *http.Request) {
	exists, err := pkg.PathExists(handler.soundPath, false)
	if err != nil {
		log.Errorf("check notification sound %s: %s", handler.soundPath, err)
	}
	if handler.soundPath == "" || !exists {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, handler.soundPath)
}
