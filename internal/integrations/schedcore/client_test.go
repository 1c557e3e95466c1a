package schedcore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaderolesan/LSN-BookingFlow/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second, noopLogger{}), srv
}

func TestClient_BusinessBySlug(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/business/slug/lavadero-lesan/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"id": "biz-1",
				"name": "Lavadero Lesan",
				"slug": "lavadero-lesan",
				"timezone": "Europe/Madrid",
				"active": true,
				"business_hours": {
					"monday":    {"open": "09:00", "close": "20:00", "breaks": [{"start": "14:00", "end": "16:30"}]},
					"tuesday":   {"open": "09:00", "close": "20:00"},
					"wednesday": {"open": "09:00", "close": "20:00"},
					"thursday":  {"open": "09:00", "close": "20:00"},
					"friday":    {"open": "09:00", "close": "20:00"},
					"saturday":  {"open": "09:00", "close": "14:00"},
					"sunday":    {"closed": true}
				},
				"booking_settings": {"advance_booking_days": 30, "slot_duration_minutes": 30}
			}
		}`))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	business, err := client.BusinessBySlug(context.Background(), "lavadero-lesan")
	require.NoError(t, err)

	assert.Equal(t, "biz-1", business.ID)
	assert.Equal(t, "Lavadero Lesan", business.Name)
	assert.Equal(t, "Europe/Madrid", business.Timezone)
	assert.True(t, business.Hours.Sunday.Closed)
	require.Len(t, business.Hours.Monday.Breaks, 1)
	assert.Equal(t, 30, business.Settings.AdvanceBookingDays)
}

func TestClient_BusinessBySlug_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	_, err := client.BusinessBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestClient_ServicesByBusiness(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services/", r.URL.Path)
		assert.Equal(t, "biz-1", r.URL.Query().Get("business_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "svc-1", "business_id": "biz-1", "name": "Lavado Exterior", "duration_minutes": 30, "price": 15, "currency": "EUR", "is_active": true, "sort_order": 1},
			{"id": "svc-2", "business_id": "biz-1", "name": "Pulido de Faros", "duration_minutes": 45, "price": 35, "currency": "EUR", "is_active": true, "sort_order": 2}
		]`))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	services, err := client.ServicesByBusiness(context.Background(), "biz-1")
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Lavado Exterior", services[0].Name)
	assert.Equal(t, 45, services[1].DurationMinutes)
	assert.True(t, services[1].Active)
}

func TestClient_SearchCustomers_Empty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers/search", r.URL.Path)
		assert.Equal(t, "ana@example.com", r.URL.Query().Get("email"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": []}`))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	customers, err := client.SearchCustomers(context.Background(), "biz-1", "ana@example.com")
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestClient_CreateCustomer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/customers/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": "cust-1",
			"business_id": "biz-1",
			"first_name": "Ana",
			"last_name": "García López",
			"email": "ana@example.com",
			"phone": "+34 612 345 678"
		}`))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	customer, err := client.CreateCustomer(context.Background(), CustomerCreateRequest{
		BusinessID: "biz-1",
		FirstName:  "Ana",
		LastName:   "García López",
		Email:      "ana@example.com",
		Phone:      ptr.Ptr("+34 612 345 678"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", customer.ID)
	assert.Equal(t, "Ana", customer.FirstName)
	assert.Equal(t, "García López", customer.LastName)
}

func TestClient_CreateAppointment_Rejected(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "error": "slot already taken"}`))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	_, err := client.CreateAppointment(context.Background(), AppointmentCreateRequest{
		BusinessID: "biz-1",
		ServiceID:  "svc-1",
		CustomerID: "cust-1",
		StartTime:  "2026-09-01T09:00:00",
	}, time.UTC)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "slot already taken")
}

func TestClient_CreateAppointment(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointments/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"id": "appt-1",
				"business_id": "biz-1",
				"customer_id": "cust-1",
				"service_id": "svc-1",
				"provider_id": "p1",
				"start_time": "2026-09-01T09:00:00",
				"end_time": "2026-09-01T09:45:00",
				"status": "confirmed"
			}
		}`))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	appointment, err := client.CreateAppointment(context.Background(), AppointmentCreateRequest{
		BusinessID: "biz-1",
		ServiceID:  "svc-1",
		ProviderID: "p1",
		CustomerID: "cust-1",
		StartTime:  "2026-09-01T09:00:00",
	}, loc)
	require.NoError(t, err)

	assert.Equal(t, "appt-1", appointment.ID)
	assert.Equal(t, "confirmed", string(appointment.Status))
	assert.Equal(t, loc, appointment.Start.Location())
	assert.Equal(t, 45*time.Minute, appointment.End.Sub(appointment.Start))
}

func TestClient_DaySlots(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/availability/slots", r.URL.Path)
		assert.Equal(t, "biz-1", r.URL.Query().Get("business_id"))
		assert.Equal(t, "svc-1", r.URL.Query().Get("service_id"))
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"date": "2026-09-01",
				"providers": [{
					"provider_id": "p1",
					"provider_name": "Equipo Lesan",
					"slots": [
						{"start": "2026-09-01T09:30:00", "end": "2026-09-01T10:00:00", "available": false},
						{"start": "2026-09-01T09:00:00", "end": "2026-09-01T09:30:00", "available": true},
						{"start": "not-a-time", "end": "2026-09-01T10:30:00", "available": true}
					]
				}]
			}
		}`))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	business := testBusiness()
	slots, err := client.DaySlots(context.Background(), business, "svc-1", 30, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Malformed slot skipped, remaining two kept in chronological order with
	// the taken one still flagged.
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.True(t, slots[0].Available)
	assert.Equal(t, "09:30", slots[1].Start.Format("15:04"))
	assert.False(t, slots[1].Available)
	assert.Equal(t, "Equipo Lesan", slots[0].ProviderName)
}

func TestClient_InvalidResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("nope"))
	})

	client, srv := newTestClient(handler)
	defer srv.Close()

	_, err := client.ServicesByBusiness(context.Background(), "biz-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
