package repository

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/models"
)

// The transactional behavior only exists against a real database; these
// tests run when TEST_DATABASE_URL points at a throwaway postgres and skip
// otherwise.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Client{},
		&models.Preferences{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func cleanupClient(t *testing.T, db *gorm.DB, lastName string) {
	t.Cleanup(func() {
		var clients []models.Client
		db.Unscoped().Where("last_name = ?", lastName).Find(&clients)
		for _, c := range clients {
			db.Unscoped().Where("client_id = ?", c.ID).Delete(&models.Preferences{})
			db.Where("client_id = ?", c.ID).Delete(&models.Appointment{})
		}
		db.Unscoped().Where("last_name = ?", lastName).Delete(&models.Client{})
	})
}

func TestCreateClientWithPreferencesCreatesBothRows(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)

	lastName := uniqueName("doe")
	cleanupClient(t, db, lastName)

	client := &models.Client{FirstName: "John", LastName: lastName}
	if err := repo.CreateClientWithPreferences(context.Background(), client); err != nil {
		t.Fatalf("CreateClientWithPreferences() error: %v", err)
	}
	if client.ID == 0 {
		t.Fatal("expected the client id to be assigned")
	}

	var prefCount int64
	if err := db.Model(&models.Preferences{}).
		Where("client_id = ?", client.ID).
		Count(&prefCount).Error; err != nil {
		t.Fatalf("count preferences: %v", err)
	}
	if prefCount != 1 {
		t.Fatalf("preferences rows = %d, want exactly 1", prefCount)
	}
}

func TestCreateClientWithPreferencesRollsBackOnFailure(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)

	lastName := uniqueName("rollback")
	cleanupClient(t, db, lastName)

	// The answer column is varchar(500); the oversized value fails the
	// inner insert, which must take the client row down with it.
	client := &models.Client{
		FirstName:   "John",
		LastName:    lastName,
		Preferences: &models.Preferences{Question1: strings.Repeat("a", 501)},
	}

	if err := repo.CreateClientWithPreferences(context.Background(), client); err == nil {
		t.Fatal("expected the oversized preferences write to fail")
	}

	var clientCount int64
	if err := db.Model(&models.Client{}).
		Where("last_name = ?", lastName).
		Count(&clientCount).Error; err != nil {
		t.Fatalf("count clients: %v", err)
	}
	if clientCount != 0 {
		t.Fatalf("client rows = %d, want 0 after rollback", clientCount)
	}
}

func TestCreateAppointmentIfFreeRejectsOccupiedSlot(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	lastName := uniqueName("slot")
	cleanupClient(t, db, lastName)

	client := &models.Client{FirstName: "John", LastName: lastName}
	if err := repo.CreateClientWithPreferences(ctx, client); err != nil {
		t.Fatalf("create client: %v", err)
	}

	service := models.Service{Name: uniqueName("massage"), DurationMin: 60, Price: 60, Active: true}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&service) })

	first := &models.Appointment{
		ClientID: client.ID, ServiceID: service.ID,
		Date: "2031-06-28", Time: "17:00", Status: "pending",
	}
	if err := repo.CreateAppointmentIfFree(ctx, first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := &models.Appointment{
		ClientID: client.ID, ServiceID: service.ID,
		Date: "2031-06-28", Time: "17:00", Status: "pending",
	}
	if err := repo.CreateAppointmentIfFree(ctx, second); !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
}

func TestRescheduleIfFree(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	lastName := uniqueName("move")
	cleanupClient(t, db, lastName)

	client := &models.Client{FirstName: "John", LastName: lastName}
	if err := repo.CreateClientWithPreferences(ctx, client); err != nil {
		t.Fatalf("create client: %v", err)
	}

	service := models.Service{Name: uniqueName("massage"), DurationMin: 60, Price: 60, Active: true}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&service) })

	occupied := &models.Appointment{
		ClientID: client.ID, ServiceID: service.ID,
		Date: "2031-07-01", Time: "10:00", Status: "pending",
	}
	moving := &models.Appointment{
		ClientID: client.ID, ServiceID: service.ID,
		Date: "2031-07-01", Time: "15:00", Status: "pending",
	}
	for _, ap := range []*models.Appointment{occupied, moving} {
		if err := repo.CreateAppointmentIfFree(ctx, ap); err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}

	t.Run("onto an occupied slot", func(t *testing.T) {
		moving.Time = "10:00"
		if err := repo.RescheduleIfFree(ctx, moving); !httperr.IsBusiness(err, "slot_taken") {
			t.Fatalf("expected slot_taken, got %v", err)
		}
	})

	t.Run("keeping its own slot", func(t *testing.T) {
		moving.Time = "15:00"
		moving.PrivateNotes = "bring oils"
		if err := repo.RescheduleIfFree(ctx, moving); err != nil {
			t.Fatalf("an appointment must not conflict with itself: %v", err)
		}
	})

	t.Run("onto a free slot", func(t *testing.T) {
		moving.Time = "16:00"
		if err := repo.RescheduleIfFree(ctx, moving); err != nil {
			t.Fatalf("RescheduleIfFree() error: %v", err)
		}

		got, err := repo.GetAppointment(ctx, moving.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if got.Time != "16:00" {
			t.Fatalf("Time = %q, want 16:00", got.Time)
		}
	})
}
