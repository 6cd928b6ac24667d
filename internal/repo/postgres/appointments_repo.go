package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pbtc21/dsw-wallpaper/internal/domain"
)

type AppointmentRepo interface {
	Insert(ctx context.Context, in *domain.CreateAppointment) (*domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type AppointmentRepoImpl struct{ pool *pgxpool.Pool }

func NewAppointmentRepo(pool *pgxpool.Pool) *AppointmentRepoImpl {
	return &AppointmentRepoImpl{pool: pool}
}

const appointmentCols = `id, first_name, last_name, email, phone,
"date", "time", project_type, message, created_at, status`

func (r *AppointmentRepoImpl) Insert(ctx context.Context, in *domain.CreateAppointment) (*domain.Appointment, error) {
	const q = `INSERT INTO appointments (
    first_name, last_name, email, phone,
    "date", "time", project_type, message, created_at, status
  ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  RETURNING ` + appointmentCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a domain.Appointment
	err := r.pool.QueryRow(ctx, q,
		in.FirstName, in.LastName, in.Email, in.Phone,
		in.Date, in.Time, in.ProjectType, in.Message,
		in.CreatedAt, in.Status,
	).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.Date, &a.Time, &a.ProjectType, &a.Message,
		&a.CreatedAt, &a.Status,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepoImpl) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	// Text ordering on purpose: matches how the admin view has always
	// sorted, correct for zero-padded ISO dates and 24h times.
	const q = `SELECT ` + appointmentCols + ` FROM appointments ORDER BY "date" DESC, "time" DESC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	as := make([]domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
			&a.Date, &a.Time, &a.ProjectType, &a.Message,
			&a.CreatedAt, &a.Status,
		); err != nil {
			return nil, err
		}
		as = append(as, a)
	}
	return as, rows.Err()
}

func (r *AppointmentRepoImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	// Zero rows affected is not an error: updating an unknown id is a no-op.
	const q = `UPDATE appointments SET status=$1 WHERE id=$2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q, status, id)
	return err
}

var _ AppointmentRepo = (*AppointmentRepoImpl)(nil)
