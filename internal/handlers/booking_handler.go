package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/atelierserenite/wellness-api/internal/booking"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/httpresp"
)

// BookingHandler exposes the wizard sessions: a session is created when a
// visitor starts the flow, mutated step by step, and read back by the
// confirm screen. The final submission goes through /appointments/add.
type BookingHandler struct {
	store booking.Store
}

func NewBookingHandler(store booking.Store) *BookingHandler {
	return &BookingHandler{store: store}
}

func (h *BookingHandler) Start(c *gin.Context) {
	w := booking.New()

	if err := h.store.Save(c.Request.Context(), w); err != nil {
		httperr.Internal(c, "failed_to_start_booking")
		return
	}

	httpresp.Created(c, w)
}

func (h *BookingHandler) Get(c *gin.Context) {
	w, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, w)
}

func (h *BookingHandler) Next(c *gin.Context) {
	h.transition(c, func(w *booking.Wizard) error {
		return w.Next()
	})
}

func (h *BookingHandler) Prev(c *gin.Context) {
	h.transition(c, func(w *booking.Wizard) error {
		w.Prev()
		return nil
	})
}

// Select merges step fields into the session state without moving steps;
// the wizard components write their choice first, then call next.
func (h *BookingHandler) Select(c *gin.Context) {
	var sel booking.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	h.transition(c, func(w *booking.Wizard) error {
		w.Apply(sel)
		return nil
	})
}

func (h *BookingHandler) transition(c *gin.Context, fn func(*booking.Wizard) error) {
	ctx := c.Request.Context()

	w, err := h.store.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := fn(w); err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.Save(ctx, w); err != nil {
		httperr.Internal(c, "failed_to_save_booking")
		return
	}

	httpresp.OK(c, w)
}
