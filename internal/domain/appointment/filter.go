package appointment

import (
	"time"

	"github.com/atelierserenite/wellness-api/internal/httperr"
)

// Filter carries the optional listing parameters. The fields are mutually
// exclusive in effect: Resolve picks exactly one strategy.
type Filter struct {
	Day         string `json:"day"`
	RangeStart  string `json:"rangeStart"`
	RangeEnd    string `json:"rangeEnd"`
	ShowHistory bool   `json:"showHistory"`
	ShowAll     bool   `json:"showAll"`
}

type Strategy int

const (
	StrategyDay Strategy = iota
	StrategyRange
	StrategyHistory
	StrategyAll
	StrategyUpcoming
)

// Resolve decides the single retrieval strategy for the filter set.
// Precedence: day, then range, then history, then all, then upcoming.
// A range with an unparseable bound is a validation error; a day value is
// validated the same way since it drives an exact-match predicate.
func (f Filter) Resolve() (Strategy, error) {
	if f.Day != "" {
		if !isDate(f.Day) {
			return 0, httperr.ErrValidation(map[string]string{"day": "must be a valid date (YYYY-MM-DD)"})
		}
		return StrategyDay, nil
	}

	if f.RangeStart != "" && f.RangeEnd != "" {
		fields := map[string]string{}
		if !isDate(f.RangeStart) {
			fields["rangeStart"] = "must be a valid date (YYYY-MM-DD)"
		}
		if !isDate(f.RangeEnd) {
			fields["rangeEnd"] = "must be a valid date (YYYY-MM-DD)"
		}
		if len(fields) > 0 {
			return 0, httperr.ErrValidation(fields)
		}
		return StrategyRange, nil
	}

	if f.ShowHistory {
		return StrategyHistory, nil
	}

	if f.ShowAll {
		return StrategyAll, nil
	}

	return StrategyUpcoming, nil
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
