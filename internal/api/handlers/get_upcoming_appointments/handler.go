package get_upcoming_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers"
)

const (
	msgInvalidDays = "el parámetro days debe ser un entero positivo"

	defaultWindowDays = 7
	maxWindowDays     = 90
)

type Handler struct {
	repo   AppointmentRepository
	logger Logger
}

func NewHandler(repo AppointmentRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/appointments/upcoming?days=7&businessId=b1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days := defaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxWindowDays {
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	from := time.Now()
	to := from.AddDate(0, 0, days)

	records, err := h.repo.GetUpcoming(r.Context(), r.URL.Query().Get("businessId"), from, to)
	if err != nil {
		h.logger.Error("GET /appointments/upcoming - Query failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromRecords(records))
}
