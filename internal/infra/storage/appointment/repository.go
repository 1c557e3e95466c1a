package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/psqlbuilder"
)

// Repository keeps the local denormalized copies of confirmed appointments.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an appointment record. The id comes from the scheduling
// backend; created_at/updated_at come back from the database.
func (r *Repository) Create(ctx context.Context, record *domain.AppointmentRecord) error {
	query, args, err := psqlbuilder.Insert("appointment_records").
		Columns(
			"id",
			"business_id",
			"customer_id",
			"service_id",
			"provider_id",
			"start_time",
			"end_time",
			"status",
			"service_name",
			"service_price",
			"extra_service_names",
			"total_price",
			"total_duration_minutes",
			"customer_name",
			"customer_email",
			"notes",
		).
		Values(
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
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return nil
}

// GetByID fetches one appointment record.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AppointmentRecord, error) {
	query, args, err := selectRecords().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}

	return &records[0], nil
}

// GetUpcoming lists active appointments starting inside [from, to),
// soonest first. An empty businessID matches every business.
func (r *Repository) GetUpcoming(ctx context.Context, businessID string, from, to time.Time) ([]domain.AppointmentRecord, error) {
	builder := selectRecords().
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.NotEq{"status": []string{string(domain.StatusCancelled), string(domain.StatusNoShow)}}).
		OrderBy("start_time ASC")

	if businessID != "" {
		builder = builder.Where(squirrel.Eq{"business_id": businessID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func selectRecords() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"business_id",
		"customer_id",
		"service_id",
		"provider_id",
		"start_time",
		"end_time",
		"status",
		"service_name",
		"service_price",
		"extra_service_names",
		"total_price",
		"total_duration_minutes",
		"customer_name",
		"customer_email",
		"notes",
		"created_at",
		"updated_at",
	).From("appointment_records")
}

func scanRecords(rows *sql.Rows) ([]domain.AppointmentRecord, error) {
	records := make([]domain.AppointmentRecord, 0)

	for rows.Next() {
		var record domain.AppointmentRecord
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.BusinessID,
			&record.CustomerID,
			&record.ServiceID,
			&record.ProviderID,
			&record.Start,
			&record.End,
			&record.Status,
			&record.ServiceName,
			&record.ServicePrice,
			pq.Array(&record.ExtraServiceNames),
			&record.TotalPrice,
			&record.TotalDurationMinutes,
			&record.CustomerName,
			&record.CustomerEmail,
			&record.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan record: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		record.UpdatedAt = updatedAt.Time
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrScanRow, err)
	}

	return records, nil
}
