package appointment

import (
	"context"

	"github.com/atelierserenite/wellness-api/internal/models"
)

// Query scopes a resolved filter to an optional client. ClientID == 0
// means unscoped. Today is the current date in the practice timezone,
// passed in so the repository stays clock-free.
type Query struct {
	Strategy Strategy
	Filter   Filter
	ClientID uint
	Today    string
}

type Repository interface {
	// -------- Service --------
	GetService(ctx context.Context, id uint) (*models.Service, error)
	ListServices(ctx context.Context, includeInactive bool) ([]models.Service, error)

	// -------- Client --------
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	FindClientByName(ctx context.Context, firstName, lastName string) (*models.Client, error)
	CreateClientWithPreferences(ctx context.Context, client *models.Client) error

	// -------- Appointment (read) --------
	ListAppointments(ctx context.Context, q Query) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	CountForDay(ctx context.Context, date string) (int64, error)
	CountForWeek(ctx context.Context, startDate, endDate string, clientID uint) (int64, error)

	// -------- Appointment (write) --------
	// CreateAppointmentIfFree inserts the appointment unless a
	// non-cancelled appointment already holds its (date, time) slot;
	// check and insert run in one transaction under a row lock.
	CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error
	// RescheduleIfFree persists a date/time change under the same slot
	// rule as creation: another non-cancelled appointment on the target
	// (date, time) rejects the move. Check and save run in one
	// transaction under a row lock.
	RescheduleIfFree(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error
}
