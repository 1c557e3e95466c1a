package select_slot

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
	msgSlotNotFound       = "el horario elegido ya no está disponible"
	msgSlotUnavailable    = "el horario elegido está ocupado"
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

// Handle POST /api/v1/sessions/{id}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Start.IsZero() {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/slot - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := flow.SelectSlot(req.Start, req.ProviderID); err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrSlotNotFound):
			h.logger.Warn("POST /sessions/{id}/slot - Slot not found: session=%s, start=%s", id, req.Start)
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, bookingflow.ErrSlotUnavailable):
			h.logger.Warn("POST /sessions/{id}/slot - Slot unavailable: session=%s, start=%s", id, req.Start)
			handlers.RespondConflict(w, msgSlotUnavailable)
		default:
			h.logger.Error("POST /sessions/{id}/slot - Failed: session=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if req.ShouldAdvance() {
		if err := flow.GoToStep(domain.StepService); err != nil {
			switch {
			case errors.Is(err, bookingflow.ErrSessionComplete):
				handlers.RespondConflict(w, msgSessionComplete)
			case errors.Is(err, bookingflow.ErrInvalidTransition):
				handlers.RespondConflict(w, msgInvalidTransition)
			default:
				h.logger.Error("POST /sessions/{id}/slot - Advance failed: session=%s, error=%v", id, err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
