package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/httpresp"
	"github.com/atelierserenite/wellness-api/internal/middleware"
	ucAppointment "github.com/atelierserenite/wellness-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	countUC  *ucAppointment.CountAppointments
	updateUC *ucAppointment.UpdateAppointment
	repo     domain.Repository
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	countUC *ucAppointment.CountAppointments,
	updateUC *ucAppointment.UpdateAppointment,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		countUC:  countUC,
		updateUC: updateUC,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddAppointmentClient struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type AddAppointmentService struct {
	ID uint `json:"id" binding:"required"`
}

type AddAppointmentRequest struct {
	Client  AddAppointmentClient  `json:"client" binding:"required"`
	Service AddAppointmentService `json:"service" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	Status       string `json:"status"`
	IsAway       bool   `json:"is_away"`
	ClientNotes  string `json:"client_notes"`
	PrivateNotes string `json:"private_notes"`
}

type CountDayRequest struct {
	Date string `json:"date" binding:"required"`
}

type CountWeekRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Status       *string `json:"status,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	IsAway       *bool   `json:"is_away,omitempty"`
	PrivateNotes *string `json:"private_notes,omitempty"`
	ClientNotes  *string `json:"client_notes,omitempty"`
}

// ======================================================
// ADD
// ======================================================

func (h *AppointmentHandler) Add(c *gin.Context) {
	var req AddAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientFirstName: req.Client.FirstName,
		ClientLastName:  req.Client.LastName,
		ClientEmail:     req.Client.Email,
		ClientPhone:     req.Client.Phone,
		ServiceID:       req.Service.ID,
		Date:            req.Date,
		Time:            req.Time,
		IsAway:          req.IsAway,
		Status:          req.Status,
		ClientNotes:     req.ClientNotes,
		PrivateNotes:    req.PrivateNotes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (filter body, resolver precedence)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var filter domain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), filter, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListForClient(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clientID == 0 {
		httperr.BadRequest(c, "invalid_client_id")
		return
	}

	var filter domain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), filter, uint(clientID))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// COUNTS
// ======================================================

func (h *AppointmentHandler) CountForDay(c *gin.Context) {
	var req CountDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	count, err := h.countUC.ForDay(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"count": count})
}

func (h *AppointmentHandler) CountForWeek(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
	if err != nil || clientID == 0 {
		httperr.BadRequest(c, "invalid_client_id")
		return
	}

	var req CountWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	count, err := h.countUC.ForWeek(c.Request.Context(), req.StartDate, req.EndDate, uint(clientID))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"count": count})
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_appointment_id")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), userID, uint(id), ucAppointment.UpdateAppointmentInput{
		Status:       req.Status,
		Date:         req.Date,
		Time:         req.Time,
		IsAway:       req.IsAway,
		PrivateNotes: req.PrivateNotes,
		ClientNotes:  req.ClientNotes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_appointment_id")
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
