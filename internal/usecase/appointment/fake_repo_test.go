package appointment

import (
	"context"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/models"
)

type fakeRepo struct {
	getServiceFn      func(ctx context.Context, id uint) (*models.Service, error)
	listServicesFn    func(ctx context.Context, includeInactive bool) ([]models.Service, error)
	getClientFn       func(ctx context.Context, id uint) (*models.Client, error)
	findClientFn      func(ctx context.Context, first, last string) (*models.Client, error)
	createClientFn    func(ctx context.Context, client *models.Client) error
	listFn            func(ctx context.Context, q domain.Query) ([]models.Appointment, error)
	getAppointmentFn  func(ctx context.Context, id uint) (*models.Appointment, error)
	countForDayFn     func(ctx context.Context, date string) (int64, error)
	countForWeekFn    func(ctx context.Context, start, end string, clientID uint) (int64, error)
	createIfFreeFn    func(ctx context.Context, ap *models.Appointment) error
	rescheduleFn      func(ctx context.Context, ap *models.Appointment) error
	updateFn          func(ctx context.Context, ap *models.Appointment) error
	deleteFn          func(ctx context.Context, id uint) error
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if f.getServiceFn == nil {
		panic("GetService not configured")
	}
	return f.getServiceFn(ctx, id)
}

func (f *fakeRepo) ListServices(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	if f.listServicesFn == nil {
		panic("ListServices not configured")
	}
	return f.listServicesFn(ctx, includeInactive)
}

func (f *fakeRepo) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	if f.getClientFn == nil {
		panic("GetClient not configured")
	}
	return f.getClientFn(ctx, id)
}

func (f *fakeRepo) FindClientByName(ctx context.Context, first, last string) (*models.Client, error) {
	if f.findClientFn == nil {
		panic("FindClientByName not configured")
	}
	return f.findClientFn(ctx, first, last)
}

func (f *fakeRepo) CreateClientWithPreferences(ctx context.Context, client *models.Client) error {
	if f.createClientFn == nil {
		panic("CreateClientWithPreferences not configured")
	}
	return f.createClientFn(ctx, client)
}

func (f *fakeRepo) ListAppointments(ctx context.Context, q domain.Query) ([]models.Appointment, error) {
	if f.listFn == nil {
		panic("ListAppointments not configured")
	}
	return f.listFn(ctx, q)
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getAppointmentFn == nil {
		panic("GetAppointment not configured")
	}
	return f.getAppointmentFn(ctx, id)
}

func (f *fakeRepo) CountForDay(ctx context.Context, date string) (int64, error) {
	if f.countForDayFn == nil {
		panic("CountForDay not configured")
	}
	return f.countForDayFn(ctx, date)
}

func (f *fakeRepo) CountForWeek(ctx context.Context, start, end string, clientID uint) (int64, error) {
	if f.countForWeekFn == nil {
		panic("CountForWeek not configured")
	}
	return f.countForWeekFn(ctx, start, end, clientID)
}

func (f *fakeRepo) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	if f.createIfFreeFn == nil {
		panic("CreateAppointmentIfFree not configured")
	}
	return f.createIfFreeFn(ctx, ap)
}

func (f *fakeRepo) RescheduleIfFree(ctx context.Context, ap *models.Appointment) error {
	if f.rescheduleFn == nil {
		panic("RescheduleIfFree not configured")
	}
	return f.rescheduleFn(ctx, ap)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateFn == nil {
		panic("UpdateAppointment not configured")
	}
	return f.updateFn(ctx, ap)
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	if f.deleteFn == nil {
		panic("DeleteAppointment not configured")
	}
	return f.deleteFn(ctx, id)
}

var _ domain.Repository = (*fakeRepo)(nil)
