package change_step

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
	msgUnknownStep        = "paso desconocido"
	msgInvalidTransition  = "no se puede pasar a ese paso todavía"
	msgSessionComplete    = "la reserva ya está completada"
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

// Handle POST /api/v1/sessions/{id}/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ChangeStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || (req.Step == "" && !req.Back) {
		h.logger.Warn("POST /sessions/{id}/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/step - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if req.Back {
		err = flow.Back()
	} else {
		var step domain.BookingStep
		step, err = domain.ParseBookingStep(req.Step)
		if err != nil {
			h.logger.Warn("POST /sessions/{id}/step - Unknown step %q: session=%s", req.Step, id)
			handlers.RespondBadRequest(w, msgUnknownStep)
			return
		}
		err = flow.GoToStep(step)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrUnknownStep):
			handlers.RespondBadRequest(w, msgUnknownStep)
		case errors.Is(err, bookingflow.ErrSessionComplete):
			h.logger.Warn("POST /sessions/{id}/step - Session complete: session=%s", id)
			handlers.RespondConflict(w, msgSessionComplete)
		case errors.Is(err, bookingflow.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/step - Invalid transition: session=%s, step=%s, back=%t", id, req.Step, req.Back)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("POST /sessions/{id}/step - Failed: session=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
