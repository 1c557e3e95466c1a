package create_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/api/handlers"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow/models"
	getDaySlots "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/get_day_slots"
	loadCatalog "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/load_catalog"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidDate        = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgBusinessNotFound   = "negocio no encontrado"
	msgCatalogUnavailable = "no se pudo cargar el catálogo de servicios"
	msgSlotsUnavailable   = "No se pudo cargar la disponibilidad"
)

type Handler struct {
	loadCatalog LoadCatalogUseCase
	getDaySlots GetDaySlotsUseCase
	store       SessionStore
	classifier  *domain.Classifier
	slug        string
	logger      Logger
}

func NewHandler(
	loadCatalogUC LoadCatalogUseCase,
	getDaySlotsUC GetDaySlotsUseCase,
	store SessionStore,
	classifier *domain.Classifier,
	slug string,
	logger Logger,
) *Handler {
	return &Handler{
		loadCatalog: loadCatalogUC,
		getDaySlots: getDaySlotsUC,
		store:       store,
		classifier:  classifier,
		slug:        slug,
		logger:      logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /sessions - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	catalog, err := h.loadCatalog.Execute(r.Context(), loadCatalog.Request{Slug: h.slug})
	if err != nil {
		switch {
		case errors.Is(err, loadCatalog.ErrBusinessNotFound):
			h.logger.Error("POST /sessions - Business not found: slug=%s", h.slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)
		default:
			h.logger.Error("POST /sessions - Failed to load catalog: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)
		}
		return
	}

	now := time.Now().In(catalog.Business.Location())
	date := now
	if req.Date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, req.Date, catalog.Business.Location())
		if err != nil {
			h.logger.Warn("POST /sessions - Invalid date %q: %v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	flow := bookingflow.New(h.classifier, h.logger, date)
	flow.SetCatalog(catalog.Business, catalog.Services)

	// Initial availability for the selected date. A fetch failure leaves the
	// session usable: the date can be re-selected.
	slots, err := h.getDaySlots.Execute(r.Context(), getDaySlots.Request{
		Business:     catalog.Business,
		MainServices: flow.Snapshot().MainServices,
		Date:         date,
	})
	if err != nil {
		h.logger.Warn("POST /sessions - Initial slot fetch failed: %v", err)
		flow.FailSlots(date, msgSlotsUnavailable)
	} else {
		_ = flow.ApplySlots(slots.Date, slots.Slots)
	}

	id := h.store.Put(flow)

	h.logger.Info("POST /sessions - Session created: session_id=%s, business=%s", id, catalog.Business.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateSessionResponse{
		SessionID: id,
		Session:   models.FromState(flow.Snapshot(), h.classifier),
	})
}
