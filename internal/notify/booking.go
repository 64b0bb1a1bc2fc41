package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/atelierserenite/wellness-api/internal/models"
)

// BookingNotifier fans a created appointment out to the client mail, the
// practitioner mail, and the event queue. All of it is best effort and
// runs after the database write has committed.
type BookingNotifier struct {
	mail       *Dispatcher
	events     *EventPublisher
	adminEmail string
}

func NewBookingNotifier(mail *Dispatcher, events *EventPublisher, adminEmail string) *BookingNotifier {
	return &BookingNotifier{
		mail:       mail,
		events:     events,
		adminEmail: adminEmail,
	}
}

func (n *BookingNotifier) AppointmentCreated(
	ctx context.Context,
	ap *models.Appointment,
	client *models.Client,
	service *models.Service,
) {
	if n == nil {
		return
	}

	if client.Email != "" {
		n.mail.Dispatch(Message{
			To:      client.Email,
			Subject: "Votre rendez-vous est enregistré",
			Body: fmt.Sprintf(
				"Bonjour %s,\n\nVotre rendez-vous « %s » est enregistré pour le %s à %s.\n\nÀ bientôt.",
				client.FirstName, service.Name, ap.Date, ap.Time,
			),
		})
	}

	if n.adminEmail != "" {
		n.mail.Dispatch(Message{
			To:      n.adminEmail,
			Subject: fmt.Sprintf("Nouveau rendez-vous le %s à %s", ap.Date, ap.Time),
			Body: fmt.Sprintf(
				"%s %s a réservé « %s » le %s à %s.",
				client.FirstName, client.LastName, service.Name, ap.Date, ap.Time,
			),
		})
	}

	_ = n.events.PublishBookingConfirmed(ctx, BookingConfirmedEvent{
		AppointmentID: ap.ID,
		ClientID:      client.ID,
		ServiceName:   service.Name,
		Date:          ap.Date,
		Time:          ap.Time,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}
