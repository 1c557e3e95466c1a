package bookingflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/ptr"
)

type nullLogger struct{}

func (nullLogger) Info(string, ...interface{})  {}
func (nullLogger) Warn(string, ...interface{})  {}
func (nullLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func testCatalog() (*domain.Business, []domain.Service) {
	business := &domain.Business{ID: "biz-1", Name: "Lavadero Lesan", Timezone: "UTC"}
	services := []domain.Service{
		{ID: "svc-1", Name: "Lavado Turismo Pequeño", Price: 15, DurationMinutes: 30, Active: true},
		{ID: "svc-2", Name: "Lavado Turismo Grande", Price: 20, DurationMinutes: 45, Active: true},
		{ID: "ext-1", Name: "Suplemento Pelos Mascota", Price: 5, DurationMinutes: 15, Active: true},
		{ID: "ext-2", Name: "Limpieza Tapicería", Price: 40, DurationMinutes: 60, Active: true},
	}
	return business, services
}

func testSlots(date time.Time) []domain.TimeSlot {
	at := func(h, m int) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
	}
	return []domain.TimeSlot{
		{Start: at(9, 0), End: at(9, 30), Available: true, ProviderID: "p1"},
		{Start: at(9, 30), End: at(10, 0), Available: false, ProviderID: "p1"},
		{Start: at(10, 0), End: at(10, 30), Available: true, ProviderID: "p1"},
	}
}

func readyFlow(t *testing.T) *Flow {
	t.Helper()

	flow := New(domain.DefaultClassifier(), nullLogger{}, testNow)
	business, services := testCatalog()
	flow.SetCatalog(business, services)
	require.NoError(t, flow.ApplySlots(testNow, testSlots(testNow)))
	return flow
}

// advance drives the flow to the confirmation step with a full selection.
func advanceToConfirmation(t *testing.T, flow *Flow) {
	t.Helper()

	slots := flow.Snapshot().AvailableSlots
	require.NoError(t, flow.SelectSlot(slots[0].Start, "p1"))
	require.NoError(t, flow.GoToStep(domain.StepService))
	require.NoError(t, flow.SelectService("svc-1"))
	require.NoError(t, flow.GoToStep(domain.StepCustomer))
	flow.SetCustomerInfo(domain.CustomerInput{Name: "Ana García", Email: "ana@example.com"})
	require.NoError(t, flow.GoToStep(domain.StepConfirmation))
}

func TestFlow_InitialState(t *testing.T) {
	flow := New(nil, nullLogger{}, testNow)

	state := flow.Snapshot()
	assert.Equal(t, domain.StepCalendar, state.CurrentStep)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), state.SelectedDate)
	assert.Nil(t, state.SelectedSlot)
	assert.Zero(t, state.TotalPrice())
}

func TestFlow_SetCatalog_SplitsServices(t *testing.T) {
	flow := readyFlow(t)

	state := flow.Snapshot()
	require.Len(t, state.MainServices, 2)
	require.Len(t, state.AdditionalServices, 2)
	assert.Equal(t, "svc-1", state.MainServices[0].ID)
	assert.Equal(t, "ext-1", state.AdditionalServices[0].ID)
}

func TestFlow_ServiceOperationsRequireCatalog(t *testing.T) {
	flow := New(nil, nullLogger{}, testNow)

	assert.ErrorIs(t, flow.SelectService("svc-1"), ErrCatalogNotLoaded)
	assert.ErrorIs(t, flow.ToggleExtra("ext-1"), ErrCatalogNotLoaded)

	business, services := testCatalog()
	flow.SetCatalog(business, services)
	assert.NoError(t, flow.SelectService("svc-1"))
}

func TestFlow_ForwardGating(t *testing.T) {
	flow := readyFlow(t)

	// No slot selected yet
	assert.ErrorIs(t, flow.GoToStep(domain.StepService), ErrInvalidTransition)

	// Skipping ahead is never allowed, with or without data
	assert.ErrorIs(t, flow.GoToStep(domain.StepCustomer), ErrInvalidTransition)
	assert.ErrorIs(t, flow.GoToStep(domain.StepConfirmation), ErrInvalidTransition)

	slots := flow.Snapshot().AvailableSlots
	require.NoError(t, flow.SelectSlot(slots[0].Start, "p1"))
	require.NoError(t, flow.GoToStep(domain.StepService))
	assert.Equal(t, domain.StepService, flow.Snapshot().CurrentStep)

	// Success is never reachable through navigation
	flow2 := readyFlow(t)
	advanceToConfirmation(t, flow2)
	assert.ErrorIs(t, flow2.GoToStep(domain.StepSuccess), ErrInvalidTransition)
}

func TestFlow_BackwardNavigation(t *testing.T) {
	flow := readyFlow(t)
	advanceToConfirmation(t, flow)

	// Jumping all the way back is allowed; selections survive
	require.NoError(t, flow.GoToStep(domain.StepCalendar))
	state := flow.Snapshot()
	assert.Equal(t, domain.StepCalendar, state.CurrentStep)
	assert.NotNil(t, state.SelectedSlot)
	assert.NotNil(t, state.SelectedService)

	// Back below the first step fails
	assert.ErrorIs(t, flow.Back(), ErrInvalidTransition)
}

func TestFlow_SuccessIsTerminal(t *testing.T) {
	flow := readyFlow(t)
	advanceToConfirmation(t, flow)
	require.NoError(t, flow.CompleteBooking(&domain.Appointment{ID: "appt-1"}))

	assert.ErrorIs(t, flow.GoToStep(domain.StepCalendar), ErrSessionComplete)
	assert.ErrorIs(t, flow.Back(), ErrSessionComplete)

	// A fresh booking starts through Reset
	flow.Reset()
	state := flow.Snapshot()
	assert.Equal(t, domain.StepCalendar, state.CurrentStep)
	assert.Nil(t, state.ConfirmedAppointment)
	assert.Nil(t, state.SelectedSlot)
	assert.NotEmpty(t, state.AvailableSlots, "availability survives a reset")
	assert.NotEmpty(t, state.MainServices, "catalog survives a reset")
}

func TestFlow_SelectSlot(t *testing.T) {
	flow := readyFlow(t)
	slots := flow.Snapshot().AvailableSlots

	// Taken slot is rejected
	assert.ErrorIs(t, flow.SelectSlot(slots[1].Start, "p1"), ErrSlotUnavailable)

	// Unknown start is rejected
	assert.ErrorIs(t, flow.SelectSlot(slots[0].Start.Add(7*time.Minute), "p1"), ErrSlotNotFound)

	// Empty provider matches by start alone
	require.NoError(t, flow.SelectSlot(slots[2].Start, ""))
	assert.Equal(t, slots[2].Start, flow.Snapshot().SelectedSlot.Start)
}

func TestFlow_StaleSlotsDiscarded(t *testing.T) {
	flow := readyFlow(t)

	dateA := testNow.AddDate(0, 0, 1)
	dateB := testNow.AddDate(0, 0, 2)

	// User picks A, then B before A's availability arrives
	flow.SelectDate(dateA)
	flow.SelectDate(dateB)

	// A's late response is discarded, B's is applied
	assert.ErrorIs(t, flow.ApplySlots(dateA, testSlots(dateA)), ErrStaleSlots)
	require.NoError(t, flow.ApplySlots(dateB, testSlots(dateB)))

	state := flow.Snapshot()
	require.NotEmpty(t, state.AvailableSlots)
	assert.Equal(t, dateB.Day(), state.AvailableSlots[0].Start.Day())
	assert.False(t, state.IsLoading)
}

func TestFlow_FailSlots(t *testing.T) {
	flow := readyFlow(t)

	dateA := testNow.AddDate(0, 0, 1)
	flow.SelectDate(dateA)
	flow.FailSlots(dateA, "No se pudo cargar la disponibilidad")

	state := flow.Snapshot()
	assert.Empty(t, state.AvailableSlots)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "No se pudo cargar la disponibilidad", state.Error)

	// A stale failure leaves the session alone
	dateB := testNow.AddDate(0, 0, 2)
	flow.SelectDate(dateB)
	require.NoError(t, flow.ApplySlots(dateB, testSlots(dateB)))
	flow.FailSlots(dateA, "tarde")
	assert.Empty(t, flow.Snapshot().Error)
}

func TestFlow_SelectDateClearsSlotSelection(t *testing.T) {
	flow := readyFlow(t)
	slots := flow.Snapshot().AvailableSlots
	require.NoError(t, flow.SelectSlot(slots[0].Start, "p1"))

	flow.SelectDate(testNow.AddDate(0, 0, 1))

	state := flow.Snapshot()
	assert.Nil(t, state.SelectedSlot)
	assert.Empty(t, state.AvailableSlots)
	assert.True(t, state.IsLoading)
}

func TestFlow_ToggleExtra(t *testing.T) {
	flow := readyFlow(t)

	// No main service yet
	assert.ErrorIs(t, flow.ToggleExtra("ext-1"), ErrNoMainService)

	require.NoError(t, flow.SelectService("svc-1"))
	require.NoError(t, flow.ToggleExtra("ext-1"))
	require.NoError(t, flow.ToggleExtra("ext-2"))
	assert.Len(t, flow.Snapshot().SelectedExtras, 2)

	// Toggling twice removes it
	require.NoError(t, flow.ToggleExtra("ext-1"))
	extras := flow.Snapshot().SelectedExtras
	require.Len(t, extras, 1)
	assert.Equal(t, "ext-2", extras[0].ID)

	assert.ErrorIs(t, flow.ToggleExtra("nope"), ErrExtraNotFound)
}

func TestFlow_ChangingServiceKeepsExtras(t *testing.T) {
	flow := readyFlow(t)

	require.NoError(t, flow.SelectService("svc-1"))
	require.NoError(t, flow.ToggleExtra("ext-1"))
	require.NoError(t, flow.SelectService("svc-2"))

	state := flow.Snapshot()
	assert.Equal(t, "svc-2", state.SelectedService.ID)
	require.Len(t, state.SelectedExtras, 1)
	assert.Equal(t, "ext-1", state.SelectedExtras[0].ID)
}

func TestFlow_Totals(t *testing.T) {
	flow := readyFlow(t)

	assert.Zero(t, flow.TotalPrice())
	assert.Zero(t, flow.TotalDuration())

	require.NoError(t, flow.SelectService("svc-2"))
	require.NoError(t, flow.ToggleExtra("ext-2"))

	assert.Equal(t, 60.0, flow.TotalPrice())
	assert.Equal(t, 105, flow.TotalDuration())
}

func TestFlow_CompleteBooking_Preconditions(t *testing.T) {
	flow := readyFlow(t)

	// Not on the confirmation step
	assert.ErrorIs(t, flow.CompleteBooking(&domain.Appointment{}), ErrInvalidTransition)

	advanceToConfirmation(t, flow)
	require.NoError(t, flow.CompleteBooking(&domain.Appointment{ID: "appt-1", Status: domain.StatusConfirmed}))

	state := flow.Snapshot()
	assert.Equal(t, domain.StepSuccess, state.CurrentStep)
	require.NotNil(t, state.ConfirmedAppointment)
	assert.Equal(t, "appt-1", state.ConfirmedAppointment.ID)
}

func TestFlow_SnapshotIsDetached(t *testing.T) {
	flow := readyFlow(t)
	require.NoError(t, flow.SelectService("svc-1"))

	state := flow.Snapshot()
	state.MainServices[0].Name = "mutated"
	state.SelectedService.Name = "mutated"
	state.CustomerInfo = &domain.CustomerInput{Name: "intruso", Email: "x@y.z", Phone: ptr.Ptr("1")}

	fresh := flow.Snapshot()
	assert.Equal(t, "Lavado Turismo Pequeño", fresh.MainServices[0].Name)
	assert.Equal(t, "Lavado Turismo Pequeño", fresh.SelectedService.Name)
	assert.Nil(t, fresh.CustomerInfo)
}
