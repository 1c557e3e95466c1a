package select_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/session"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow/models"
	getDaySlots "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/get_day_slots"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidDate        = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgSessionNotFound    = "sesión no encontrada o caducada"
	msgSlotsUnavailable   = "No se pudo cargar la disponibilidad"
)

type Handler struct {
	getDaySlots GetDaySlotsUseCase
	store       SessionStore
	classifier  *domain.Classifier
	logger      Logger
}

func NewHandler(getDaySlotsUC GetDaySlotsUseCase, store SessionStore, classifier *domain.Classifier, logger Logger) *Handler {
	return &Handler{
		getDaySlots: getDaySlotsUC,
		store:       store,
		classifier:  classifier,
		logger:      logger,
	}
}

// Handle PUT /api/v1/sessions/{id}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PUT /sessions/{id}/date - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	state := flow.Snapshot()
	loc := state.Business.Location()
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	flow.SelectDate(date)

	slots, err := h.getDaySlots.Execute(r.Context(), getDaySlots.Request{
		Business:        state.Business,
		SelectedService: state.SelectedService,
		MainServices:    state.MainServices,
		Date:            date,
	})
	if err != nil {
		// The session stays usable with an empty day and an error message
		h.logger.Warn("PUT /sessions/{id}/date - Slot fetch failed for %s: %v", req.Date, err)
		flow.FailSlots(date, msgSlotsUnavailable)
	} else if applyErr := flow.ApplySlots(slots.Date, slots.Slots); applyErr != nil {
		// The user re-selected while we were fetching; the newer date wins
		h.logger.Info("PUT /sessions/{id}/date - Discarded stale slots for %s", req.Date)
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
