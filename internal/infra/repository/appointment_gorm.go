package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("service")
		}
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
	includeInactive bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("active = true")
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("Preferences").
		First(&client, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("client")
		}
		return nil, err
	}
	return &client, nil
}

// FindClientByName is the best-effort duplicate check on creation; the
// (first, last) pair is not unique-constrained.
func (r *AppointmentGormRepository) FindClientByName(
	ctx context.Context,
	firstName string,
	lastName string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where(
			"LOWER(first_name) = ? AND LOWER(last_name) = ?",
			strings.ToLower(strings.TrimSpace(firstName)),
			strings.ToLower(strings.TrimSpace(lastName)),
		).
		First(&client).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("client")
		}
		return nil, err
	}
	return &client, nil
}

// CreateClientWithPreferences writes the client and its preferences row in
// one transaction; a client without preferences must never be visible.
func (r *AppointmentGormRepository) CreateClientWithPreferences(
	ctx context.Context,
	client *models.Client,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if client.Preferences == nil {
			client.Preferences = &models.Preferences{}
		}

		if err := tx.Create(client).Error; err != nil {
			return err
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	q domain.Query,
) ([]models.Appointment, error) {

	db := r.db.WithContext(ctx).Preload("Service")
	if q.ClientID == 0 {
		db = db.Preload("Client")
	} else {
		db = db.Where("client_id = ?", q.ClientID)
	}

	switch q.Strategy {
	case domain.StrategyDay:
		db = db.Where("date = ?", q.Filter.Day)
	case domain.StrategyRange:
		db = db.Where("date >= ? AND date <= ?", q.Filter.RangeStart, q.Filter.RangeEnd)
	case domain.StrategyHistory:
		db = db.Where("date < ?", q.Today)
	case domain.StrategyAll:
		// no date predicate
	default:
		db = db.Where("date >= ?", q.Today)
	}

	var apps []models.Appointment
	if err := db.
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Client").
		First(&ap, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("appointment")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CountForDay(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status <> ?", date, "cancelled").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountForWeek(
	ctx context.Context,
	startDate string,
	endDate string,
	clientID uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date >= ? AND date <= ? AND status <> ?", startDate, endDate, "cancelled")

	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND time = ? AND status <> ?",
				ap.Date, ap.Time, "cancelled",
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) RescheduleIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND time = ? AND status <> ? AND id <> ?",
				ap.Date, ap.Time, "cancelled", ap.ID,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Save(ap).Error
	})
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
