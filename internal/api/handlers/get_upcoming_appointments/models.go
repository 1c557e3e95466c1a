package get_upcoming_appointments

import (
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// AppointmentRecordView is the JSON projection of one local appointment
// record.
type AppointmentRecordView struct {
	ID                   string    `json:"id"`
	BusinessID           string    `json:"businessId"`
	ServiceName          string    `json:"serviceName"`
	ExtraServiceNames    []string  `json:"extraServiceNames,omitempty"`
	Start                time.Time `json:"start"`
	End                  time.Time `json:"end"`
	Status               string    `json:"status"`
	TotalPrice           float64   `json:"totalPrice"`
	TotalDurationMinutes int       `json:"totalDurationMinutes"`
	CustomerName         string    `json:"customerName"`
	CustomerEmail        string    `json:"customerEmail"`
	Notes                *string   `json:"notes,omitempty"`
}

// GetUpcomingResponse lists the matched records.
type GetUpcomingResponse struct {
	Appointments []AppointmentRecordView `json:"appointments"`
}

func fromRecords(records []domain.AppointmentRecord) GetUpcomingResponse {
	views := make([]AppointmentRecordView, 0, len(records))
	for _, r := range records {
		views = append(views, AppointmentRecordView{
			ID:                   r.ID,
			BusinessID:           r.BusinessID,
			ServiceName:          r.ServiceName,
			ExtraServiceNames:    r.ExtraServiceNames,
			Start:                r.Start,
			End:                  r.End,
			Status:               string(r.Status),
			TotalPrice:           r.TotalPrice,
			TotalDurationMinutes: r.TotalDurationMinutes,
			CustomerName:         r.CustomerName,
			CustomerEmail:        r.CustomerEmail,
			Notes:                r.Notes,
		})
	}
	return GetUpcomingResponse{Appointments: views}
}
