package appointment

import (
	"testing"

	"github.com/atelierserenite/wellness-api/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		// same-status writes are no-ops, even on terminal states
		{StatusCancelled, StatusCancelled, true},
		{StatusCompleted, StatusCompleted, true},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.allowed && err != nil {
			t.Errorf("CanTransition(%s, %s) = %v, want nil", tc.from, tc.to, err)
		}
		if !tc.allowed && !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("CanTransition(%s, %s) = %v, want invalid_state", tc.from, tc.to, err)
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	err := CanTransition(StatusPending, Status("archived"))
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}
