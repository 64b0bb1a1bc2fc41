package booking

import (
	"github.com/google/uuid"

	"github.com/atelierserenite/wellness-api/internal/httperr"
)

type Step int

const (
	StepSelectService Step = 1
	StepSelectDate    Step = 2
	StepSelectTime    Step = 3
	StepEnterInfo     Step = 4
	StepConfirm       Step = 5
)

type ServiceChoice struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

// State is the reservation data accumulated across steps. Merges always
// replace the whole record so a step can never drop a sibling field.
type State struct {
	Service *ServiceChoice `json:"service,omitempty"`
	Date    string         `json:"date,omitempty"`
	Time    string         `json:"time,omitempty"`
	Name    string         `json:"name,omitempty"`
	Email   string         `json:"email,omitempty"`
	Phone   string         `json:"phone,omitempty"`
}

// Selection carries the fields a step writes; nil/empty fields leave the
// previous value in place.
type Selection struct {
	Service *ServiceChoice `json:"service,omitempty"`
	Date    *string        `json:"date,omitempty"`
	Time    *string        `json:"time,omitempty"`
	Name    *string        `json:"name,omitempty"`
	Email   *string        `json:"email,omitempty"`
	Phone   *string        `json:"phone,omitempty"`
}

// Wizard is the linear five-step booking flow:
// SelectService → SelectDate → SelectTime → EnterInfo → Confirm.
type Wizard struct {
	ID    string `json:"id"`
	Step  Step   `json:"step"`
	State State  `json:"state"`
}

func New() *Wizard {
	return &Wizard{
		ID:   uuid.NewString(),
		Step: StepSelectService,
	}
}

// Next advances one step. It refuses to leave a step whose required fields
// are missing and clamps at the final step.
func (w *Wizard) Next() error {
	if !w.stepComplete(w.Step) {
		return httperr.ErrBusiness("incomplete_step")
	}
	if w.Step < StepConfirm {
		w.Step++
	}
	return nil
}

// Prev goes back one step, clamped at the first.
func (w *Wizard) Prev() {
	if w.Step > StepSelectService {
		w.Step--
	}
}

// Apply merges a selection into the state by whole-record replacement.
func (w *Wizard) Apply(sel Selection) {
	next := w.State

	if sel.Service != nil {
		next.Service = sel.Service
	}
	if sel.Date != nil {
		next.Date = *sel.Date
	}
	if sel.Time != nil {
		next.Time = *sel.Time
	}
	if sel.Name != nil {
		next.Name = *sel.Name
	}
	if sel.Email != nil {
		next.Email = *sel.Email
	}
	if sel.Phone != nil {
		next.Phone = *sel.Phone
	}

	w.State = next
}

func (w *Wizard) stepComplete(s Step) bool {
	switch s {
	case StepSelectService:
		return w.State.Service != nil
	case StepSelectDate:
		return w.State.Date != ""
	case StepSelectTime:
		return w.State.Time != ""
	case StepEnterInfo:
		return w.State.Name != "" && w.State.Email != ""
	default:
		return true
	}
}

// Complete reports whether the accumulated state is ready for submission.
func (w *Wizard) Complete() bool {
	for s := StepSelectService; s <= StepEnterInfo; s++ {
		if !w.stepComplete(s) {
			return false
		}
	}
	return true
}
