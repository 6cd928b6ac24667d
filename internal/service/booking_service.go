package service

import (
	"context"
	"errors"
	"time"

	"github.com/pbtc21/dsw-wallpaper/internal/domain"
	"github.com/pbtc21/dsw-wallpaper/internal/repo/postgres"
)

// ErrStoreUnavailable means the deployment runs without a database binding.
// List and update callers surface it as a distinct "not configured" response.
var ErrStoreUnavailable = errors.New("database not configured")

// FormSubmission holds the raw booking form fields. Required fields
// (first/last name, email, date, time) are passed through as-is: the page
// form enforces presence client-side and the server deliberately does not
// re-check, so a direct API call can store empty strings.
type FormSubmission struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Date        string
	Time        string
	ProjectType string
	Message     string
}

type BookingService struct {
	repo postgres.AppointmentRepo // nil when no database is bound
	now  func() time.Time
}

func NewBookingService(repo postgres.AppointmentRepo, now func() time.Time) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{repo: repo, now: now}
}

func (s *BookingService) SubmitBooking(ctx context.Context, in FormSubmission) (*domain.Appointment, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}

	rec := &domain.CreateAppointment{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       optional(in.Phone),
		Date:        in.Date,
		Time:        in.Time,
		ProjectType: optional(in.ProjectType),
		Message:     optional(in.Message),
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
		Status:      string(domain.StatusPending),
	}
	return s.repo.Insert(ctx, rec)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Appointment, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.ListAll(ctx)
}

// SetStatus writes the given status verbatim. The recognized values live in
// domain, but arbitrary strings are accepted and stored, matching how the
// admin API has always behaved.
func (s *BookingService) SetStatus(ctx context.Context, id int64, status string) error {
	if s.repo == nil {
		return ErrStoreUnavailable
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// optional maps an absent form field to a stored NULL rather than an empty
// string.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
