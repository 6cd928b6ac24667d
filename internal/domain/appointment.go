package domain

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment is a consultation request submitted through the booking form.
// Date and Time are kept as text; list ordering relies on their lexicographic
// form (zero-padded ISO date, zero-padded 24h time). Status is free text in
// storage; the constants above are what the admin UI offers.
type Appointment struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	ProjectType *string `json:"project_type"`
	Message     *string `json:"message"`
	CreatedAt   string  `json:"created_at"`
	Status      string  `json:"status"`
}

// CreateAppointment carries everything the store needs for an insert; the id
// is assigned by the store.
type CreateAppointment struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Date        string
	Time        string
	ProjectType *string
	Message     *string
	CreatedAt   string
	Status      string
}
