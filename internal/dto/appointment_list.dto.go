package dto

// AppointmentListDTO is the narrowed listing projection: the appointment
// row plus service name/duration, and the client name on unscoped queries.
type AppointmentListDTO struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	IsAway       bool   `json:"is_away"`
	PrivateNotes string `json:"private_notes"`

	ServiceName     string `json:"service_name"`
	ServiceDuration int    `json:"service_duration"`

	ClientFirstName string `json:"client_first_name,omitempty"`
	ClientLastName  string `json:"client_last_name,omitempty"`
}
