package appointment

import (
	"context"
	"testing"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/models"
)

func availabilityRepo(booked []models.Appointment) *fakeRepo {
	return &fakeRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return massageService(), nil
		},
		listFn: func(ctx context.Context, q domain.Query) ([]models.Appointment, error) {
			return booked, nil
		},
	}
}

func slotStarts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestAvailabilityEmptyDay(t *testing.T) {
	uc := NewGetAvailability(availabilityRepo(nil), domain.DefaultHours(), "Europe/Paris")

	slots, err := uc.Execute(context.Background(), "2024-06-28", 1)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// 60-minute slots from 09:00 to 19:00; 12:00 and 13:00 overlap the
	// 12:30-14:00 break.
	want := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00"}
	got := slotStarts(slots)

	if len(got) != len(want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slots = %v, want %v", got, want)
		}
	}
}

func TestAvailabilityExcludesBookedSlot(t *testing.T) {
	booked := []models.Appointment{
		{
			Time:    "17:00",
			Status:  "confirmed",
			Service: models.Service{DurationMin: 60},
		},
	}
	uc := NewGetAvailability(availabilityRepo(booked), domain.DefaultHours(), "Europe/Paris")

	slots, err := uc.Execute(context.Background(), "2024-06-28", 1)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	for _, s := range slots {
		if s.Start == "17:00" {
			t.Fatal("booked 17:00 slot still offered")
		}
	}
	if len(slots) != 7 {
		t.Fatalf("len = %d, want 7", len(slots))
	}
}

func TestAvailabilityIgnoresCancelled(t *testing.T) {
	booked := []models.Appointment{
		{
			Time:    "17:00",
			Status:  "cancelled",
			Service: models.Service{DurationMin: 60},
		},
	}
	uc := NewGetAvailability(availabilityRepo(booked), domain.DefaultHours(), "Europe/Paris")

	slots, err := uc.Execute(context.Background(), "2024-06-28", 1)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	found := false
	for _, s := range slots {
		if s.Start == "17:00" {
			found = true
		}
	}
	if !found {
		t.Fatal("cancelled booking must free its slot")
	}
}

func TestAvailabilityPartialOverlap(t *testing.T) {
	// A 45-minute booking at 16:30 blocks both the 16:00 and 17:00
	// hour-long candidates.
	booked := []models.Appointment{
		{
			Time:    "16:30",
			Status:  "pending",
			Service: models.Service{DurationMin: 45},
		},
	}
	uc := NewGetAvailability(availabilityRepo(booked), domain.DefaultHours(), "Europe/Paris")

	slots, err := uc.Execute(context.Background(), "2024-06-28", 1)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	for _, s := range slots {
		if s.Start == "16:00" || s.Start == "17:00" {
			t.Fatalf("slot %s overlaps the 16:30 booking", s.Start)
		}
	}
}

func TestAvailabilityInvalidDate(t *testing.T) {
	uc := NewGetAvailability(&fakeRepo{}, domain.DefaultHours(), "Europe/Paris")

	_, err := uc.Execute(context.Background(), "tomorrow", 1)
	if _, ok := httperr.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAvailabilityUnknownService(t *testing.T) {
	repo := &fakeRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return nil, httperr.ErrNotFound("service")
		},
	}
	uc := NewGetAvailability(repo, domain.DefaultHours(), "Europe/Paris")

	_, err := uc.Execute(context.Background(), "2024-06-28", 99)
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}
