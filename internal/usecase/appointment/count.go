package appointment

import (
	"context"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/validators"
)

// CountAppointments exposes the same-day and same-week capacity counts.
// No capacity limit is enforced here; the caller decides what to do with
// the number.
type CountAppointments struct {
	repo domain.Repository
}

func NewCountAppointments(repo domain.Repository) *CountAppointments {
	return &CountAppointments{repo: repo}
}

func (uc *CountAppointments) ForDay(
	ctx context.Context,
	date string,
) (int64, error) {

	if !validators.IsDate(date) {
		return 0, httperr.ErrValidation(map[string]string{
			"date": "must be a valid date (YYYY-MM-DD)",
		})
	}
	return uc.repo.CountForDay(ctx, date)
}

func (uc *CountAppointments) ForWeek(
	ctx context.Context,
	startDate string,
	endDate string,
	clientID uint,
) (int64, error) {

	fields := map[string]string{}
	if !validators.IsDate(startDate) {
		fields["startDate"] = "must be a valid date (YYYY-MM-DD)"
	}
	if !validators.IsDate(endDate) {
		fields["endDate"] = "must be a valid date (YYYY-MM-DD)"
	}
	if len(fields) > 0 {
		return 0, httperr.ErrValidation(fields)
	}

	return uc.repo.CountForWeek(ctx, startDate, endDate, clientID)
}
