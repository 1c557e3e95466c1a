package create_session

import (
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow/models"
)

// CreateSessionRequest optionally preselects a date. An absent or empty
// date means today.
type CreateSessionRequest struct {
	Date string `json:"date,omitempty"`
}

// CreateSessionResponse carries the new session id and its initial state.
type CreateSessionResponse struct {
	SessionID string             `json:"sessionId"`
	Session   models.SessionView `json:"session"`
}
