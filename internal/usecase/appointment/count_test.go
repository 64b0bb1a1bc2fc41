package appointment

import (
	"context"
	"testing"

	"github.com/atelierserenite/wellness-api/internal/httperr"
)

// countingRepo backs the counts with a fixed set of dated rows so widening
// the range can only grow the count.
func countingRepo(dates []string) *fakeRepo {
	inRange := func(d, start, end string) bool {
		return d >= start && d <= end
	}

	return &fakeRepo{
		countForDayFn: func(ctx context.Context, date string) (int64, error) {
			var n int64
			for _, d := range dates {
				if d == date {
					n++
				}
			}
			return n, nil
		},
		countForWeekFn: func(ctx context.Context, start, end string, clientID uint) (int64, error) {
			var n int64
			for _, d := range dates {
				if inRange(d, start, end) {
					n++
				}
			}
			return n, nil
		},
	}
}

func TestCountForDay(t *testing.T) {
	uc := NewCountAppointments(countingRepo([]string{
		"2024-06-28", "2024-06-28", "2024-06-29",
	}))

	n, err := uc.ForDay(context.Background(), "2024-06-28")
	if err != nil {
		t.Fatalf("ForDay() error: %v", err)
	}
	if n != 2 {
		t.Fatalf("ForDay() = %d, want 2", n)
	}
}

func TestCountForDayInvalidDate(t *testing.T) {
	uc := NewCountAppointments(&fakeRepo{})

	_, err := uc.ForDay(context.Background(), "28/06/2024")
	if _, ok := httperr.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCountForWeekMonotonicInRange(t *testing.T) {
	uc := NewCountAppointments(countingRepo([]string{
		"2024-06-24", "2024-06-26", "2024-06-28", "2024-06-30",
	}))
	ctx := context.Background()

	narrow, err := uc.ForWeek(ctx, "2024-06-26", "2024-06-28", 7)
	if err != nil {
		t.Fatalf("ForWeek() error: %v", err)
	}
	wide, err := uc.ForWeek(ctx, "2024-06-24", "2024-06-30", 7)
	if err != nil {
		t.Fatalf("ForWeek() error: %v", err)
	}

	if narrow != 2 || wide != 4 {
		t.Fatalf("counts = %d/%d, want 2/4", narrow, wide)
	}
	if wide < narrow {
		t.Fatalf("widening the range shrank the count: %d < %d", wide, narrow)
	}
}

func TestCountForWeekSingleDayRangeMatchesDayCount(t *testing.T) {
	repo := countingRepo([]string{"2024-06-28", "2024-06-28", "2024-06-29"})
	uc := NewCountAppointments(repo)
	ctx := context.Background()

	day, err := uc.ForDay(ctx, "2024-06-28")
	if err != nil {
		t.Fatalf("ForDay() error: %v", err)
	}
	week, err := uc.ForWeek(ctx, "2024-06-28", "2024-06-28", 0)
	if err != nil {
		t.Fatalf("ForWeek() error: %v", err)
	}

	if day != week {
		t.Fatalf("single-day range count %d != day count %d", week, day)
	}
}

func TestCountForWeekInvalidBounds(t *testing.T) {
	uc := NewCountAppointments(&fakeRepo{})

	_, err := uc.ForWeek(context.Background(), "bad", "worse", 0)
	ve, ok := httperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected both bounds flagged, got %v", ve.Fields)
	}
}
