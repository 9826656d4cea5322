package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-review-app/models"
	"github.com/yeremiapane/food-review-app/utils"
	"gorm.io/gorm"
)

type StatusController struct {
	DB *gorm.DB
}

func NewStatusController(db *gorm.DB) *StatusController {
	return &StatusController{DB: db}
}

func validStatusValue(v string) bool {
	return v == models.StatusActive || v == models.StatusInactive
}

// GetAllStatuses
func (sc *StatusController) GetAllStatuses(c *gin.Context) {
	var statuses []models.Status
	if err := sc.DB.Find(&statuses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All statuses", statuses)
}

// CreateStatus
func (sc *StatusController) CreateStatus(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Status == "" {
		body.Status = models.StatusActive
	}
	if !validStatusValue(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status harus Active atau Inactive"))
		return
	}

	status := models.Status{
		Name:         body.Name,
		Description:  body.Description,
		Status:       body.Status,
		UserCreateID: currentUserID(c),
	}
	if err := sc.DB.Create(&status).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("nama status sudah dipakai"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Status created", status)
}

// GetStatusByID
func (sc *StatusController) GetStatusByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("status_id"))

	var status models.Status
	if err := sc.DB.First(&status, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Status detail", status)
}

// UpdateStatus
func (sc *StatusController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("status_id"))

	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Status      string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var status models.Status
	if err := sc.DB.First(&status, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		status.Name = body.Name
	}
	if body.Description != nil {
		status.Description = *body.Description
	}
	if body.Status != "" {
		if !validStatusValue(body.Status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("status harus Active atau Inactive"))
			return
		}
		status.Status = body.Status
	}
	status.UserUpdateID = currentUserID(c)

	if err := sc.DB.Save(&status).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Status updated", status)
}

// DeleteStatus memblokir penghapusan selama status masih direferensikan
// oleh Place, Category, atau FoodItem (protect-on-delete).
func (sc *StatusController) DeleteStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("status_id"))

	var status models.Status
	if err := sc.DB.First(&status, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var refs int64
	for _, model := range []interface{}{&models.Place{}, &models.Category{}, &models.FoodItem{}} {
		var count int64
		if err := sc.DB.Model(model).Where("status_id = ?", status.ID).Count(&count).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		refs += count
	}
	if refs > 0 {
		utils.RespondError(c, http.StatusConflict,
			errors.New("status masih dipakai dan tidak bisa dihapus"))
		return
	}

	if err := sc.DB.Delete(&status).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Status deleted", gin.H{"status_id": id})
}
