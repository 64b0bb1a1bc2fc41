package appointment

import (
	"context"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/dto"
	"github.com/atelierserenite/wellness-api/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
	tz   string
}

func NewListAppointments(repo domain.Repository, tz string) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		tz:   tz,
	}
}

// Execute resolves the filter to exactly one strategy and returns the
// listing projection. clientID == 0 lists across all clients and includes
// the client names in the projection. An empty result is a valid result.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
	clientID uint,
) ([]dto.AppointmentListDTO, error) {

	strategy, err := filter.Resolve()
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointments(ctx, domain.Query{
		Strategy: strategy,
		Filter:   filter,
		ClientID: clientID,
		Today:    timezone.Today(uc.tz),
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			Time:            ap.Time,
			Status:          ap.Status,
			IsAway:          ap.IsAway,
			PrivateNotes:    ap.PrivateNotes,
			ServiceName:     ap.Service.Name,
			ServiceDuration: ap.Service.DurationMin,
		}
		if clientID == 0 {
			item.ClientFirstName = ap.Client.FirstName
			item.ClientLastName = ap.Client.LastName
		}
		out = append(out, item)
	}

	return out, nil
}
