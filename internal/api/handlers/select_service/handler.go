package select_service

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
	msgServiceNotFound    = "servicio no encontrado"
	msgCatalogNotLoaded   = "el catálogo de servicios no está cargado"
	msgSessionComplete    = "la reserva ya está completada"
	msgInvalidTransition  = "no se puede avanzar al siguiente paso todavía"
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

// Handle POST /api/v1/sessions/{id}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.ServiceID == "" {
		h.logger.Warn("POST /sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/service - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := flow.SelectService(req.ServiceID); err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/service - Service not found: session=%s, service=%s", id, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, bookingflow.ErrCatalogNotLoaded):
			h.logger.Warn("POST /sessions/{id}/service - Catalog not loaded: session=%s", id)
			handlers.RespondConflict(w, msgCatalogNotLoaded)
		default:
			h.logger.Error("POST /sessions/{id}/service - Failed: session=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if req.Advance {
		if err := flow.GoToStep(domain.StepCustomer); err != nil {
			switch {
			case errors.Is(err, bookingflow.ErrSessionComplete):
				handlers.RespondConflict(w, msgSessionComplete)
			case errors.Is(err, bookingflow.ErrInvalidTransition):
				handlers.RespondConflict(w, msgInvalidTransition)
			default:
				h.logger.Error("POST /sessions/{id}/service - Advance failed: session=%s, error=%v", id, err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
