package reset_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/session"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow/models"
)

const msgSessionNotFound = "sesión no encontrada o caducada"

type Handler struct {
	store      SessionStore
	classifier *domain.Classifier
	logger     Logger
}

func NewHandler(store SessionStore, classifier *domain.Classifier, logger Logger) *Handler {
	return &Handler{
		store:      store,
		classifier: classifier,
		logger:     logger,
	}
}

// Handle POST /api/v1/sessions/{id}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/reset - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	flow.Reset()

	h.logger.Info("POST /sessions/{id}/reset - Session reset: session=%s", id)
	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
