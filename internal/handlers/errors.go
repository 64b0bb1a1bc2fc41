package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/atelierserenite/wellness-api/internal/httperr"
)

// respondError maps the error taxonomy onto the response envelope.
// Unrecognized errors become a generic 500; the real error only reaches
// the server log.
func respondError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve.Fields)
		return
	}

	if httperr.IsNotFound(err) {
		httperr.NotFound(c, err.Error())
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "slot_taken":
			httperr.Conflict(c, be.Code)
		default:
			httperr.BadRequest(c, be.Code)
		}
		return
	}

	log.Println("internal error:", err)
	httperr.Internal(c, "internal_error")
}
