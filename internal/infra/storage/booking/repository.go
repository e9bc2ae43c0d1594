package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/pkg/dbmetrics"
	"github.com/m04kA/parlourease/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"customer_name",
	"contact",
	"service_ids",
	"appointment_at",
	"notes",
	"status",
	"payment_amount",
	"payment_method",
	"payment_status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := buildInsert(booking).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает бронирования, упорядоченные по времени визита
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	query, args, err := buildList(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// GetByCustomerName возвращает бронирования клиента (используется при демо-наполнении)
func (r *Repository) GetByCustomerName(ctx context.Context, name string) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"customer_name": name}).
		OrderBy("appointment_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerName - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByCustomerName", query, args)
}

// Count возвращает количество бронирований
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(tableBookings).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %v", ErrScanRow, err)
	}
	return count, nil
}

// Update перезаписывает редактируемые поля бронирования (клиент, контакт, услуги, время, заметки)
// Статус и оплата не затрагиваются
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("customer_name", booking.CustomerName).
		Set("contact", booking.Contact).
		Set("service_ids", pq.Array(booking.ServiceIDs)).
		Set("appointment_at", booking.AppointmentAt).
		Set("notes", booking.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// RecordPayment одним UPDATE записывает оплату и переводит бронирование в Completed
// Повторный вызов с теми же данными даёт тот же результат
func (r *Repository) RecordPayment(ctx context.Context, id string, payment domain.Payment) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildRecordPayment(id, payment).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RecordPayment - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: RecordPayment - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b             domain.Booking
		serviceIDs    pq.StringArray
		notes         sql.NullString
		status        string
		paymentMethod sql.NullString
		paymentStatus string
	)

	err := row.Scan(
		&b.ID,
		&b.CustomerName,
		&b.Contact,
		&serviceIDs,
		&b.AppointmentAt,
		&notes,
		&status,
		&b.Payment.Amount,
		&paymentMethod,
		&paymentStatus,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.ServiceIDs = []string(serviceIDs)
	if b.ServiceIDs == nil {
		b.ServiceIDs = []string{}
	}
	if notes.Valid {
		b.Notes = &notes.String
	}
	b.Status = domain.BookingStatus(status)
	if paymentMethod.Valid {
		method := domain.PaymentMethod(paymentMethod.String)
		b.Payment.Method = &method
	}
	b.Payment.Status = domain.PaymentStatus(paymentStatus)

	return &b, nil
}

func buildInsert(booking *domain.Booking) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"customer_name",
			"contact",
			"service_ids",
			"appointment_at",
			"notes",
			"status",
			"payment_amount",
			"payment_method",
			"payment_status",
		).
		Values(
			booking.ID,
			booking.CustomerName,
			booking.Contact,
			pq.Array(booking.ServiceIDs),
			booking.AppointmentAt,
			booking.Notes,
			string(booking.Status),
			booking.Payment.Amount,
			methodValue(booking.Payment.Method),
			string(booking.Payment.Status),
		).
		Suffix("RETURNING created_at, updated_at")
}

func buildList(filter domain.BookingsFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings)

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"appointment_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"appointment_at": *filter.To})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	return builder.OrderBy("appointment_at ASC", "id ASC")
}

func buildRecordPayment(id string, payment domain.Payment) squirrel.UpdateBuilder {
	return psqlbuilder.Update(tableBookings).
		Set("payment_amount", payment.Amount).
		Set("payment_method", methodValue(payment.Method)).
		Set("payment_status", string(payment.Status)).
		Set("status", string(domain.StatusCompleted)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())
}

func methodValue(method *domain.PaymentMethod) interface{} {
	if method == nil {
		return nil
	}
	return string(*method)
}

func joinColumns() string {
	return strings.Join(bookingColumns, ", ")
}

// DayRange возвращает границы календарного дня day в его часовом поясе
func DayRange(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
