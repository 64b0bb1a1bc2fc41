package appointment

import (
	"context"

	"github.com/atelierserenite/wellness-api/internal/audit"
	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/models"
	"github.com/atelierserenite/wellness-api/internal/validators"
)

type UpdateAppointmentInput struct {
	Status       *string
	Date         *string
	Time         *string
	IsAway       *bool
	PrivateNotes *string
	ClientNotes  *string
}

// UpdateAppointment is the admin-only write path; status changes go
// through the transition guard, there is no automatic lifecycle.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	origDate, origTime := ap.Date, ap.Time
	action := "appointment_updated"

	if in.Status != nil {
		from := domain.Status(ap.Status)
		to := domain.Status(*in.Status)
		if err := domain.CanTransition(from, to); err != nil {
			return nil, err
		}
		ap.Status = string(to)

		switch to {
		case domain.StatusCancelled:
			action = "appointment_cancelled"
		case domain.StatusConfirmed:
			action = "appointment_confirmed"
		case domain.StatusCompleted:
			action = "appointment_completed"
		}
	}

	if in.Date != nil {
		if !validators.IsDate(*in.Date) {
			return nil, httperr.ErrValidation(map[string]string{
				"date": "must be a valid date (YYYY-MM-DD)",
			})
		}
		ap.Date = *in.Date
	}
	if in.Time != nil {
		if !validators.IsClockTime(*in.Time) {
			return nil, httperr.ErrValidation(map[string]string{
				"time": "must be a valid time (HH:mm)",
			})
		}
		ap.Time = *in.Time
	}
	if in.IsAway != nil {
		ap.IsAway = *in.IsAway
	}
	if in.PrivateNotes != nil {
		ap.PrivateNotes = *in.PrivateNotes
	}
	if in.ClientNotes != nil {
		ap.ClientNotes = *in.ClientNotes
	}

	// A moved appointment must pass the same slot rule as a new one; a
	// plain save could double-book a slot the create path rejects.
	if ap.Date != origDate || ap.Time != origTime {
		if err := uc.repo.RescheduleIfFree(ctx, ap); err != nil {
			return nil, err
		}
	} else if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
