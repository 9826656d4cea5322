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

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GetAllReviews
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := rc.DB.Preload("Food").Preload("Reviewer").Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review berhasil diambil", reviews)
}

// CreateReview. Rating dibatasi 1-5 sebagai hard constraint. Reviewer
// diambil dari token, bukan dari body.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var body struct {
		FoodID     uint     `json:"food_id" binding:"required"`
		Rating     uint     `json:"rating" binding:"required,min=1,max=5"`
		Comment    string   `json:"comment" binding:"required"`
		DistanceKm *float64 `json:"distance_km" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	userID := currentUserID(c)
	if userID == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var food models.FoodItem
	if err := rc.DB.First(&food, body.FoodID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("makanan tidak ditemukan"))
		return
	}

	review := models.Review{
		FoodID:     body.FoodID,
		ReviewerID: *userID,
		Rating:     body.Rating,
		Comment:    body.Comment,
		DistanceKm: *body.DistanceKm,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rc.DB.Preload("Food").Preload("Reviewer").First(&review, review.ID)

	utils.RespondJSON(c, http.StatusCreated, "Review berhasil ditambahkan", review)
}

// GetReviewByID
func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("review_id"))

	var review models.Review
	err := rc.DB.Preload("Food").Preload("Reviewer").First(&review, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("review tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review detail", review)
}

// UpdateReview hanya boleh oleh pemilik review atau admin.
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("review_id"))

	var body struct {
		Rating     uint     `json:"rating" binding:"omitempty,min=1,max=5"`
		Comment    string   `json:"comment"`
		DistanceKm *float64 `json:"distance_km"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var review models.Review
	if err := rc.DB.First(&review, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("review tidak ditemukan"))
		return
	}

	if !rc.canModify(c, &review) {
		utils.RespondError(c, http.StatusForbidden, errors.New("bukan review milik anda"))
		return
	}

	if body.Rating != 0 {
		review.Rating = body.Rating
	}
	if body.Comment != "" {
		review.Comment = body.Comment
	}
	if body.DistanceKm != nil {
		review.DistanceKm = *body.DistanceKm
	}

	if err := rc.DB.Save(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review berhasil diperbarui", review)
}

// DeleteReview
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("review_id"))

	var review models.Review
	if err := rc.DB.First(&review, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("review tidak ditemukan"))
		return
	}

	if !rc.canModify(c, &review) {
		utils.RespondError(c, http.StatusForbidden, errors.New("bukan review milik anda"))
		return
	}

	if err := rc.DB.Delete(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review berhasil dihapus", gin.H{"review_id": id})
}

func (rc *ReviewController) canModify(c *gin.Context, review *models.Review) bool {
	if isAdmin, _ := c.Get("is_admin"); isAdmin == true {
		return true
	}
	userID := currentUserID(c)
	return userID != nil && *userID == review.ReviewerID
}
