package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/session"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow/models"
	confirmBooking "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/confirm_booking"
)

const (
	msgSessionNotFound   = "sesión no encontrada o caducada"
	msgNotOnConfirmation = "la sesión no está en el paso de confirmación"
	msgMissingData       = "faltan datos para confirmar la reserva"
	msgBookingFailed     = "Error al confirmar la reserva. Por favor, inténtalo de nuevo."
	msgSessionComplete   = "la reserva ya está completada"
)

type Handler struct {
	useCase    ConfirmBookingUseCase
	store      SessionStore
	classifier *domain.Classifier
	logger     Logger
}

func NewHandler(useCase ConfirmBookingUseCase, store SessionStore, classifier *domain.Classifier, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		store:      store,
		classifier: classifier,
		logger:     logger,
	}
}

// Handle POST /api/v1/sessions/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	flow, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/confirm - Failed to load session %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	state := flow.Snapshot()
	switch state.CurrentStep {
	case domain.StepConfirmation:
		// Proceed
	case domain.StepSuccess:
		handlers.RespondConflict(w, msgSessionComplete)
		return
	default:
		h.logger.Warn("POST /sessions/{id}/confirm - Wrong step %s: session=%s", state.CurrentStep, id)
		handlers.RespondConflict(w, msgNotOnConfirmation)
		return
	}

	flow.SetLoading(true)

	result, err := h.useCase.Execute(r.Context(), confirmBooking.Request{
		Business:             state.Business,
		Slot:                 state.SelectedSlot,
		Service:              state.SelectedService,
		Extras:               state.SelectedExtras,
		Customer:             state.CustomerInfo,
		Notes:                state.Notes,
		TotalPrice:           state.TotalPrice(),
		TotalDurationMinutes: state.TotalDuration(),
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrMissingData):
			flow.SetError(msgMissingData)
			h.logger.Warn("POST /sessions/{id}/confirm - Missing data: session=%s", id)
			handlers.RespondConflict(w, msgMissingData)
		default:
			flow.SetError(msgBookingFailed)
			h.logger.Error("POST /sessions/{id}/confirm - Booking failed: session=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBookingFailed)
		}
		return
	}

	if err := flow.CompleteBooking(result.Appointment); err != nil {
		// A concurrent request moved the session while we were booking
		if errors.Is(err, bookingflow.ErrInvalidTransition) || errors.Is(err, bookingflow.ErrMissingBookingData) {
			h.logger.Warn("POST /sessions/{id}/confirm - Session moved during booking: session=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgNotOnConfirmation)
			return
		}
		h.logger.Error("POST /sessions/{id}/confirm - Failed to complete: session=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking confirmed: session=%s, appointment=%s",
		id, result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromState(flow.Snapshot(), h.classifier))
}
