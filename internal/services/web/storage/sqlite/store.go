package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/SethChishakwe/cyntas-wealth-tech/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage/sqlite/migrations"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"
)

const tracerName = "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage/sqlite"

const dsnParams = "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Store provides SQLite-backed persistence for registration records.
type Store struct {
	sqlDB  *sql.DB
	now    func() time.Time
	tracer trace.Tracer
}

// Option customizes a Store at open time.
type Option func(*Store)

// WithClock overrides the clock used to stamp registration dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTracerProvider records store spans on provider instead of the global one.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Store) {
		if provider != nil {
			s.tracer = provider.Tracer(tracerName)
		}
	}
}

// Open opens the SQLite file at path and applies the embedded schema.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	sqlDB, err := sql.Open("sqlite", filepath.Clean(path)+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB:  sqlDB,
		now:    time.Now,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutRegistrant inserts one registrant stamped with the store clock and
// returns the generated id.
func (s *Store) PutRegistrant(ctx context.Context, r webstorage.Registrant) (id int64, err error) {
	ctx, end := s.startSpan(ctx, "PutRegistrant")
	defer func() { end(err) }()

	err = s.withConn(ctx, func(conn *sql.Conn) error {
		res, execErr := conn.ExecContext(
			ctx,
			`INSERT INTO registrants (
			    first_name, last_name, email, phone, location, interest_area, investment_level, registration_date
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.FirstName,
			r.LastName,
			r.Email,
			r.Phone,
			r.Location,
			r.InterestArea,
			r.InvestmentLevel,
			toMillis(s.now()),
		)
		if execErr != nil {
			return execErr
		}
		id, execErr = res.LastInsertId()
		return execErr
	})
	if err != nil {
		return 0, persistenceError("put registrant", err)
	}
	return id, nil
}

// PutWorkshopRegistrant inserts one workshop sign-up stamped with the store
// clock and returns the generated id.
func (s *Store) PutWorkshopRegistrant(ctx context.Context, r webstorage.WorkshopRegistrant) (id int64, err error) {
	ctx, end := s.startSpan(ctx, "PutWorkshopRegistrant")
	defer func() { end(err) }()

	err = s.withConn(ctx, func(conn *sql.Conn) error {
		res, execErr := conn.ExecContext(
			ctx,
			`INSERT INTO workshop_registrations (
			    first_name, last_name, email, phone, workshop_type, payment_method, registration_date
			 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.FirstName,
			r.LastName,
			r.Email,
			r.Phone,
			r.WorkshopType,
			r.PaymentMethod,
			toMillis(s.now()),
		)
		if execErr != nil {
			return execErr
		}
		id, execErr = res.LastInsertId()
		return execErr
	})
	if err != nil {
		return 0, persistenceError("put workshop registrant", err)
	}
	return id, nil
}

// ListRegistrants returns every registrant, newest first.
func (s *Store) ListRegistrants(ctx context.Context) (out []webstorage.Registrant, err error) {
	ctx, end := s.startSpan(ctx, "ListRegistrants")
	defer func() { end(err) }()

	out = make([]webstorage.Registrant, 0)
	err = s.withConn(ctx, func(conn *sql.Conn) error {
		rows, queryErr := conn.QueryContext(
			ctx,
			`SELECT id, first_name, last_name, email, phone, location, interest_area, investment_level, registration_date
			 FROM registrants
			 ORDER BY registration_date DESC, id DESC`,
		)
		if queryErr != nil {
			return queryErr
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			var r webstorage.Registrant
			var registeredAt int64
			if scanErr := rows.Scan(
				&r.ID,
				&r.FirstName,
				&r.LastName,
				&r.Email,
				&r.Phone,
				&r.Location,
				&r.InterestArea,
				&r.InvestmentLevel,
				&registeredAt,
			); scanErr != nil {
				return fmt.Errorf("scan registrant: %w", scanErr)
			}
			r.RegistrationDate = fromMillis(registeredAt)
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, persistenceError("list registrants", err)
	}
	return out, nil
}

// ListWorkshopRegistrants returns every workshop sign-up, newest first.
func (s *Store) ListWorkshopRegistrants(ctx context.Context) (out []webstorage.WorkshopRegistrant, err error) {
	ctx, end := s.startSpan(ctx, "ListWorkshopRegistrants")
	defer func() { end(err) }()

	out = make([]webstorage.WorkshopRegistrant, 0)
	err = s.withConn(ctx, func(conn *sql.Conn) error {
		rows, queryErr := conn.QueryContext(
			ctx,
			`SELECT id, first_name, last_name, email, phone, workshop_type, payment_method, registration_date
			 FROM workshop_registrations
			 ORDER BY registration_date DESC, id DESC`,
		)
		if queryErr != nil {
			return queryErr
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			var r webstorage.WorkshopRegistrant
			var registeredAt int64
			if scanErr := rows.Scan(
				&r.ID,
				&r.FirstName,
				&r.LastName,
				&r.Email,
				&r.Phone,
				&r.WorkshopType,
				&r.PaymentMethod,
				&registeredAt,
			); scanErr != nil {
				return fmt.Errorf("scan workshop registrant: %w", scanErr)
			}
			r.RegistrationDate = fromMillis(registeredAt)
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, persistenceError("list workshop registrants", err)
	}
	return out, nil
}

// DeleteRegistrant removes the registrant with id. A missing id is not an error.
func (s *Store) DeleteRegistrant(ctx context.Context, id int64) (err error) {
	ctx, end := s.startSpan(ctx, "DeleteRegistrant", attribute.Int64("record.id", id))
	defer func() { end(err) }()

	err = s.withConn(ctx, func(conn *sql.Conn) error {
		_, execErr := conn.ExecContext(ctx, `DELETE FROM registrants WHERE id = ?`, id)
		return execErr
	})
	if err != nil {
		return persistenceError("delete registrant", err)
	}
	return nil
}

// DeleteWorkshopRegistrant removes the workshop sign-up with id. A missing id
// is not an error.
func (s *Store) DeleteWorkshopRegistrant(ctx context.Context, id int64) (err error) {
	ctx, end := s.startSpan(ctx, "DeleteWorkshopRegistrant", attribute.Int64("record.id", id))
	defer func() { end(err) }()

	err = s.withConn(ctx, func(conn *sql.Conn) error {
		_, execErr := conn.ExecContext(ctx, `DELETE FROM workshop_registrations WHERE id = ?`, id)
		return execErr
	})
	if err != nil {
		return persistenceError("delete workshop registrant", err)
	}
	return nil
}

// withConn runs fn on one pooled connection and always hands it back.
func (s *Store) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	conn, err := s.sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()
	return fn(conn)
}

func (s *Store) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := otel.Tracer(tracerName)
	if s != nil && s.tracer != nil {
		tracer = s.tracer
	}
	ctx, span := tracer.Start(ctx, "sqlite."+op, trace.WithAttributes(
		append([]attribute.KeyValue{attribute.String("db.system", "sqlite")}, attrs...)...,
	))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, webstorage.ErrPersistence, err)
}

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
