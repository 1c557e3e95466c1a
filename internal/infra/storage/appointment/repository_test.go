package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func testRecord() *domain.AppointmentRecord {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	return &domain.AppointmentRecord{
		ID:                   "appt-1",
		BusinessID:           "b1",
		CustomerID:           "cust-1",
		ServiceID:            "s2",
		ProviderID:           "p1",
		Start:                start,
		End:                  start.Add(45 * time.Minute),
		Status:               domain.StatusConfirmed,
		ServiceName:          "Limpieza Completa - Turismo Pequeño",
		ServicePrice:         22,
		ExtraServiceNames:    []string{"Pulido de Faros"},
		TotalPrice:           47,
		TotalDurationMinutes: 90,
		CustomerName:         "Ana García",
		CustomerEmail:        "ana@example.com",
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newTestRepository(t)
	record := testRecord()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO appointment_records").
		WithArgs(
			record.ID,
			record.BusinessID,
			record.CustomerID,
			record.ServiceID,
			record.ProviderID,
			record.Start,
			record.End,
			record.Status,
			record.ServiceName,
			record.ServicePrice,
			pq.Array(record.ExtraServiceNames),
			record.TotalPrice,
			record.TotalDurationMinutes,
			record.CustomerName,
			record.CustomerEmail,
			record.Notes,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := repo.Create(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, now, record.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecFailure(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO appointment_records").
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), testRecord())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "business_id", "customer_id", "service_id", "provider_id",
		"start_time", "end_time", "status", "service_name", "service_price",
		"extra_service_names", "total_price", "total_duration_minutes",
		"customer_name", "customer_email", "notes", "created_at", "updated_at",
	})
}

func TestGetByID(t *testing.T) {
	repo, mock := newTestRepository(t)
	record := testRecord()

	mock.ExpectQuery("SELECT .+ FROM appointment_records WHERE id =").
		WithArgs("appt-1").
		WillReturnRows(recordRows().AddRow(
			record.ID, record.BusinessID, record.CustomerID, record.ServiceID, record.ProviderID,
			record.Start, record.End, record.Status, record.ServiceName, record.ServicePrice,
			"{Pulido de Faros}", record.TotalPrice, record.TotalDurationMinutes,
			record.CustomerName, record.CustomerEmail, nil, time.Now(), time.Now(),
		))

	got, err := repo.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", got.ID)
	assert.Equal(t, []string{"Pulido de Faros"}, got.ExtraServiceNames)
	assert.Equal(t, 47.0, got.TotalPrice)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT .+ FROM appointment_records WHERE id =").
		WithArgs("missing").
		WillReturnRows(recordRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGetUpcoming(t *testing.T) {
	repo, mock := newTestRepository(t)
	record := testRecord()

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mock.ExpectQuery("SELECT .+ FROM appointment_records WHERE start_time >=").
		WithArgs(from, to, string(domain.StatusCancelled), string(domain.StatusNoShow), "b1").
		WillReturnRows(recordRows().AddRow(
			record.ID, record.BusinessID, record.CustomerID, record.ServiceID, record.ProviderID,
			record.Start, record.End, record.Status, record.ServiceName, record.ServicePrice,
			"{}", record.TotalPrice, record.TotalDurationMinutes,
			record.CustomerName, record.CustomerEmail, nil, time.Now(), time.Now(),
		))

	records, err := repo.GetUpcoming(context.Background(), "b1", from, to)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "appt-1", records[0].ID)
	assert.Empty(t, records[0].ExtraServiceNames)
}

func TestGetUpcoming_NoBusinessFilter(t *testing.T) {
	repo, mock := newTestRepository(t)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mock.ExpectQuery("SELECT .+ FROM appointment_records WHERE start_time >=").
		WithArgs(from, to, string(domain.StatusCancelled), string(domain.StatusNoShow)).
		WillReturnRows(recordRows())

	records, err := repo.GetUpcoming(context.Background(), "", from, to)
	require.NoError(t, err)
	assert.Empty(t, records)
}
