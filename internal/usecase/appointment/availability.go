package appointment

import (
	"context"
	"time"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/timezone"
	"github.com/atelierserenite/wellness-api/internal/validators"
)

type GetAvailability struct {
	repo  domain.Repository
	hours domain.Hours
	tz    string
}

func NewGetAvailability(repo domain.Repository, hours domain.Hours, tz string) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		hours: hours,
		tz:    tz,
	}
}

// Execute lists the free slots for a date and service: candidates run at
// service-duration intervals across the opening hours, minus the break
// and minus any non-cancelled appointment already holding the interval.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	serviceID uint,
) ([]domain.TimeSlot, error) {

	if !validators.IsDate(date) {
		return nil, httperr.ErrValidation(map[string]string{
			"date": "must be a valid date (YYYY-MM-DD)",
		})
	}

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	booked, err := uc.repo.ListAppointments(ctx, domain.Query{
		Strategy: domain.StrategyDay,
		Filter:   domain.Filter{Day: date},
		Today:    timezone.Today(uc.tz),
	})
	if err != nil {
		return nil, err
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return t
	}

	type interval struct{ start, end time.Time }

	var busy []interval
	for _, ap := range booked {
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		start := parseHM(ap.Time)
		dur := time.Duration(ap.Service.DurationMin) * time.Minute
		if dur == 0 {
			dur = time.Duration(service.DurationMin) * time.Minute
		}
		busy = append(busy, interval{start: start, end: start.Add(dur)})
	}

	dayStart := parseHM(uc.hours.Open)
	dayEnd := parseHM(uc.hours.Close)
	breakStart := parseHM(uc.hours.BreakStart)
	breakEnd := parseHM(uc.hours.BreakEnd)
	hasBreak := uc.hours.BreakStart != "" && uc.hours.BreakEnd != ""

	slotDuration := time.Duration(service.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {
		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		if hasBreak && slotStart.Before(breakEnd) && slotEnd.After(breakStart) {
			continue
		}

		conflict := false
		for _, b := range busy {
			if slotStart.Before(b.end) && slotEnd.After(b.start) {
				conflict = true
				break
			}
		}

		if !conflict {
			hm := slotStart.Format("15:04")
			slots = append(slots, domain.TimeSlot{ID: hm, Start: hm})
		}
	}

	return slots, nil
}
