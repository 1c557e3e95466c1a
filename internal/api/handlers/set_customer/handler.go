package set_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/session"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow/models"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/validation"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgSessionNotFound    = "sesión no encontrada o caducada"
	msgValidationFailed   = "los datos de contacto no son válidos"
	msgNotesTooLong       = "las notas superan la longitud máxima"
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

// Handle PUT /api/v1/sessions/{id}/customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SetCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/customer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len([]rune(req.Notes)) > domain.MaxNotesLength {
		handlers.RespondBadRequest(w, msgNotesTooLong)
		return
	}

	input := req.ToInput()
	if fields := validation.CustomerInput(input); len(fields) > 0 {
		h.logger.Warn("PUT /sessions/{id}/customer - Validation failed: session=%s, fields=%d", id, len(fields))
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PUT /sessions/{id}/customer - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	flow.SetCustomerInfo(input)
	flow.SetNotes(req.Notes)

	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
