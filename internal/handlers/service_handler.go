package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierserenite/wellness-api/internal/cache"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/httpresp"
	"github.com/atelierserenite/wellness-api/internal/models"
	"github.com/atelierserenite/wellness-api/internal/validators"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

func NewServiceHandler(db *gorm.DB, catalog *cache.Catalog) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

// List is the admin view; inactive services are included.
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	if err := validateService(req.Name, req.Duration, req.Price); err != nil {
		respondError(c, err)
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.Duration,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found")
			return
		}
		httperr.Internal(c, "failed_to_get_service")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Duration != nil {
		service.DurationMin = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := validateService(service.Name, service.DurationMin, service.Price); err != nil {
		respondError(c, err)
		return
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, gin.H{"deleted": true})
}

// Duration and price must be present and in range before persistence.
func validateService(name string, duration int, price float64) error {
	fields := map[string]string{}

	if !validators.ServiceName(name) {
		fields["name"] = "must be 1-100 characters"
	}
	if !validators.Duration(duration) {
		fields["duration"] = "must be between 1 and 180 minutes"
	}
	if !validators.Price(price) {
		fields["price"] = "must be positive"
	}

	if len(fields) > 0 {
		return httperr.ErrValidation(fields)
	}
	return nil
}
