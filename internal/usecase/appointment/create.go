package appointment

import (
	"context"
	"strings"

	"github.com/atelierserenite/wellness-api/internal/audit"
	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/models"
	"github.com/atelierserenite/wellness-api/internal/notify"
	"github.com/atelierserenite/wellness-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientFirstName string
	ClientLastName  string
	ClientEmail     string
	ClientPhone     string

	ServiceID uint

	Date string
	Time string

	IsAway       bool
	Status       string
	ClientNotes  string
	PrivateNotes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.BookingNotifier
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.BookingNotifier,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := validateCreate(in); err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	client, err := uc.findOrCreateClient(ctx, in)
	if err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		status = domain.Status(in.Status)
		if !status.Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	ap := &models.Appointment{
		ClientID:     client.ID,
		ServiceID:    service.ID,
		Date:         in.Date,
		Time:         in.Time,
		IsAway:       in.IsAway,
		Status:       string(status),
		ClientNotes:  in.ClientNotes,
		PrivateNotes: in.PrivateNotes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Notification happens after the write committed; a failed mail or
	// publish never rolls the appointment back.
	uc.notifier.AppointmentCreated(ctx, ap, client, service)

	ap.Client = *client
	ap.Service = *service
	return ap, nil
}

func (uc *CreateAppointment) findOrCreateClient(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Client, error) {

	existing, err := uc.repo.FindClientByName(ctx, in.ClientFirstName, in.ClientLastName)
	if err == nil {
		return existing, nil
	}
	if !httperr.IsNotFound(err) {
		return nil, err
	}

	client := &models.Client{
		FirstName: strings.TrimSpace(in.ClientFirstName),
		LastName:  strings.TrimSpace(in.ClientLastName),
		Email:     strings.ToLower(strings.TrimSpace(in.ClientEmail)),
		Phone:     strings.TrimSpace(in.ClientPhone),
	}

	if err := uc.repo.CreateClientWithPreferences(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}

func validateCreate(in CreateAppointmentInput) error {
	fields := map[string]string{}

	if !validators.PersonName(in.ClientFirstName) {
		fields["first_name"] = "must be 1-50 characters"
	}
	if !validators.PersonName(in.ClientLastName) {
		fields["last_name"] = "must be 1-50 characters"
	}
	if in.ServiceID == 0 {
		fields["service"] = "is required"
	}
	if !validators.IsDate(in.Date) {
		fields["date"] = "must be a valid date (YYYY-MM-DD)"
	}
	if !validators.IsClockTime(in.Time) {
		fields["time"] = "must be a valid time (HH:mm)"
	}

	if len(fields) > 0 {
		return httperr.ErrValidation(fields)
	}
	return nil
}
