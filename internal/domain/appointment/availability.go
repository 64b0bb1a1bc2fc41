package appointment

// TimeSlot is one bookable entry for the storefront; ID doubles as the
// start value so the wizard can re-derive the canonical time.
type TimeSlot struct {
	ID    string `json:"id"`
	Start string `json:"start"`
}

// Hours are the fixed practice opening hours, "15:04" strings. The
// practice is single-practitioner with one slot per time.
type Hours struct {
	Open       string
	Close      string
	BreakStart string
	BreakEnd   string
}

func DefaultHours() Hours {
	return Hours{
		Open:       "09:00",
		Close:      "19:00",
		BreakStart: "12:30",
		BreakEnd:   "14:00",
	}
}
