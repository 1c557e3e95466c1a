package toggle_extra

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/session"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgSessionNotFound    = "sesión no encontrada o caducada"
	msgExtraNotFound      = "servicio adicional no encontrado"
	msgNoMainService      = "selecciona primero un servicio principal"
	msgCatalogNotLoaded   = "el catálogo de servicios no está cargado"
)

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

// Handle POST /api/v1/sessions/{id}/extras
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ToggleExtraRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.ServiceID == "" {
		h.logger.Warn("POST /sessions/{id}/extras - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/extras - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := flow.ToggleExtra(req.ServiceID); err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrNoMainService):
			h.logger.Warn("POST /sessions/{id}/extras - No main service: session=%s", id)
			handlers.RespondConflict(w, msgNoMainService)
		case errors.Is(err, bookingflow.ErrCatalogNotLoaded):
			h.logger.Warn("POST /sessions/{id}/extras - Catalog not loaded: session=%s", id)
			handlers.RespondConflict(w, msgCatalogNotLoaded)
		case errors.Is(err, bookingflow.ErrExtraNotFound):
			h.logger.Warn("POST /sessions/{id}/extras - Extra not found: session=%s, service=%s", id, req.ServiceID)
			handlers.RespondNotFound(w, msgExtraNotFound)
		default:
			h.logger.Error("POST /sessions/{id}/extras - Failed: session=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
