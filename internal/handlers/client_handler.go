package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/httpresp"
	"github.com/atelierserenite/wellness-api/internal/models"
	"github.com/atelierserenite/wellness-api/internal/validators"
)

type ClientHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewClientHandler(db *gorm.DB, repo domain.Repository) *ClientHandler {
	return &ClientHandler{db: db, repo: repo}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Zip       *string `json:"zip,omitempty"`
}

type UpdatePreferencesRequest struct {
	Question1 *string `json:"question_1,omitempty"`
	Question2 *string `json:"question_2,omitempty"`
	Question3 *string `json:"question_3,omitempty"`
	Question4 *string `json:"question_4,omitempty"`
	Question5 *string `json:"question_5,omitempty"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("last_name ASC, first_name ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// GET (with preferences)
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_client_id")
		return
	}

	client, err := h.repo.GetClient(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE (atomic with preferences)
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	fields := map[string]string{}
	if !validators.PersonName(req.FirstName) {
		fields["first_name"] = "must be 1-50 characters"
	}
	if !validators.PersonName(req.LastName) {
		fields["last_name"] = "must be 1-50 characters"
	}
	if len(fields) > 0 {
		httperr.Validation(c, fields)
		return
	}

	// Best-effort duplicate guard; the pair is not unique-constrained.
	if _, err := h.repo.FindClientByName(c.Request.Context(), req.FirstName, req.LastName); err == nil {
		httperr.BadRequest(c, "client_already_exists")
		return
	}

	client := &models.Client{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Address:   req.Address,
		City:      req.City,
		Zip:       req.Zip,
	}

	if err := h.repo.CreateClientWithPreferences(c.Request.Context(), client); err != nil {
		httperr.Internal(c, "failed_to_create_client")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found")
			return
		}
		httperr.Internal(c, "failed_to_get_client")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	if req.FirstName != nil {
		if !validators.PersonName(*req.FirstName) {
			httperr.Validation(c, map[string]string{"first_name": "must be 1-50 characters"})
			return
		}
		client.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if !validators.PersonName(*req.LastName) {
			httperr.Validation(c, map[string]string{"last_name": "must be 1-50 characters"})
			return
		}
		client.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.Zip != nil {
		client.Zip = *req.Zip
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// DELETE (soft)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_client")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"deleted": true}})
}

// ======================================================
// PREFERENCES
// ======================================================

func (h *ClientHandler) UpdatePreferences(c *gin.Context) {
	id := c.Param("id")

	var prefs models.Preferences
	if err := h.db.Where("client_id = ?", id).First(&prefs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "preferences_not_found")
			return
		}
		httperr.Internal(c, "failed_to_get_preferences")
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	if req.Question1 != nil {
		prefs.Question1 = *req.Question1
	}
	if req.Question2 != nil {
		prefs.Question2 = *req.Question2
	}
	if req.Question3 != nil {
		prefs.Question3 = *req.Question3
	}
	if req.Question4 != nil {
		prefs.Question4 = *req.Question4
	}
	if req.Question5 != nil {
		prefs.Question5 = *req.Question5
	}

	if err := h.db.Save(&prefs).Error; err != nil {
		httperr.Internal(c, "failed_to_update_preferences")
		return
	}

	httpresp.OK(c, prefs)
}
