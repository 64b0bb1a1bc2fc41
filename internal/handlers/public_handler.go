package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelierserenite/wellness-api/internal/cache"
	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/httpresp"
	ucAppointment "github.com/atelierserenite/wellness-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the storefront: the service catalog the wizard's
// first step fetches and the free slots its third step fetches.
type PublicHandler struct {
	repo           domain.Repository
	catalog        *cache.Catalog
	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(
	repo domain.Repository,
	catalog *cache.Catalog,
	availabilityUC *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		repo:           repo,
		catalog:        catalog,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// SERVICES (catalog, cached)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.catalog.Get(ctx); ok {
		httpresp.List(c, services)
		return
	}

	services, err := h.repo.ListServices(ctx, false)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services")
		return
	}

	h.catalog.Set(ctx, services)
	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// TIMES (free slots for date + service)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListTimes(c *gin.Context) {
	dateStr := c.Query("date")
	serviceStr := c.Query("service")

	if dateStr == "" || serviceStr == "" {
		httperr.BadRequest(c, "missing_date_or_service")
		return
	}

	serviceID, err := strconv.ParseUint(serviceStr, 10, 64)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "invalid_service_id")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), dateStr, uint(serviceID))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, slots)
}
