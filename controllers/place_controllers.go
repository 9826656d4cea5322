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

type PlaceController struct {
	DB *gorm.DB
	// Artefak gambar FoodItem milik place ikut dihapus saat cascade
	Uploads *UploadStore
}

func NewPlaceController(db *gorm.DB, uploads *UploadStore) *PlaceController {
	return &PlaceController{DB: db, Uploads: uploads}
}

// GetAllPlaces
func (pc *PlaceController) GetAllPlaces(c *gin.Context) {
	var places []models.Place
	if err := pc.DB.Preload("Status").Find(&places).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All places", places)
}

// CreatePlace
func (pc *PlaceController) CreatePlace(c *gin.Context) {
	var body struct {
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description"`
		Latitude    *float64 `json:"latitude" binding:"required"`
		Longitude   *float64 `json:"longitude" binding:"required"`
		Address     string   `json:"address" binding:"required"`
		StatusID    uint     `json:"status_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var status models.Status
	if err := pc.DB.First(&status, body.StatusID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status tidak ditemukan"))
		return
	}

	place := models.Place{
		Name:         body.Name,
		Description:  body.Description,
		Latitude:     *body.Latitude,
		Longitude:    *body.Longitude,
		Address:      body.Address,
		StatusID:     body.StatusID,
		UserCreateID: currentUserID(c),
	}
	if err := pc.DB.Create(&place).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	place.Status = status

	utils.RespondJSON(c, http.StatusCreated, "Tempat makan berhasil ditambahkan", place)
}

// GetPlaceByID
func (pc *PlaceController) GetPlaceByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("place_id"))

	var place models.Place
	if err := pc.DB.Preload("Status").First(&place, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Tempat makan tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Place detail", place)
}

// UpdatePlace
func (pc *PlaceController) UpdatePlace(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("place_id"))

	var body struct {
		Name        string   `json:"name"`
		Description *string  `json:"description"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		Address     string   `json:"address"`
		StatusID    uint     `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var place models.Place
	if err := pc.DB.First(&place, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Tempat makan tidak ditemukan"))
		return
	}

	if body.Name != "" {
		place.Name = body.Name
	}
	if body.Description != nil {
		place.Description = *body.Description
	}
	if body.Latitude != nil {
		place.Latitude = *body.Latitude
	}
	if body.Longitude != nil {
		place.Longitude = *body.Longitude
	}
	if body.Address != "" {
		place.Address = body.Address
	}
	if body.StatusID != 0 {
		var status models.Status
		if err := pc.DB.First(&status, body.StatusID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("status tidak ditemukan"))
			return
		}
		place.StatusID = body.StatusID
	}
	place.UserUpdateID = currentUserID(c)

	if err := pc.DB.Save(&place).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tempat makan berhasil diperbarui", place)
}

// DeletePlace menghapus place berikut semua FoodItem miliknya beserta
// review dan artefak gambarnya (cascade-delete) dalam satu transaksi.
func (pc *PlaceController) DeletePlace(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("place_id"))

	var place models.Place
	if err := pc.DB.First(&place, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Tempat makan tidak ditemukan"))
		return
	}

	var foods []models.FoodItem
	if err := pc.DB.Where("place_id = ?", place.ID).Find(&foods).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if len(foods) > 0 {
			foodIDs := make([]uint, 0, len(foods))
			for _, f := range foods {
				foodIDs = append(foodIDs, f.ID)
			}
			if err := tx.Where("food_id IN ?", foodIDs).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("place_id = ?", place.ID).Delete(&models.FoodItem{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&place).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// File artefak dibersihkan setelah commit
	for _, f := range foods {
		if f.Image != nil {
			pc.Uploads.Remove(*f.Image)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Tempat makan berhasil dihapus", gin.H{"place_id": id})
}
