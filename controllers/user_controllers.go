package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-review-app/models"
	"github.com/yeremiapane/food-review-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register user baru. Password tidak pernah ikut di response.
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Username   string `json:"username" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Password1  string `json:"password1" binding:"required"`
		Password2  string `json:"password2" binding:"required"`
		IsActive   *bool  `json:"is_active"`
		IsReviewer bool   `json:"is_reviewer"`
		FirstName  string `json:"first_name" binding:"required"`
		LastName   string `json:"last_name" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Password1 != req.Password2 {
		utils.RespondValidationError(c, http.StatusBadRequest, "Validasi gagal",
			[]string{"Kata sandi dan ulangi kata sandi tidak sama"})
		return
	}

	if err := utils.ValidatePassword(req.Password1, req.Username); err != nil {
		utils.RespondValidationError(c, http.StatusBadRequest, "Validasi gagal",
			[]string{err.Error()})
		return
	}

	// Cek unik sebelum create supaya pesannya jelas per field
	var count int64
	if err := uc.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondValidationError(c, http.StatusBadRequest, "Validasi gagal",
			[]string{"Email sudah terdaftar"})
		return
	}
	if err := uc.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondValidationError(c, http.StatusBadRequest, "Validasi gagal",
			[]string{"Username sudah terdaftar"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// is_active opsional, default aktif. Pointer supaya false eksplisit
	// tidak hilang saat insert.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := models.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hashed),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		IsActive:   isActive,
		IsReviewer: req.IsReviewer,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.RespondValidationError(c, http.StatusBadRequest, "Validasi gagal",
				[]string{"Username atau email sudah terdaftar"})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (reviewer=%v)", user.Username, user.IsReviewer)

	utils.RespondJSON(c, http.StatusCreated, "Selamat anda telah terdaftar", user)
}

// Login memvalidasi kredensial, menegakkan gate is_active dan is_reviewer,
// lalu mengembalikan token opaque persisten (get-or-create, satu per user).
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Username == "" || input.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Mohon lengkapi username dan password"))
		return
	}

	var user models.User
	if err := uc.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Username atau password salah"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Username atau password salah"))
		return
	}

	if !user.IsActive || !user.IsReviewer {
		utils.RespondError(c, http.StatusForbidden, errors.New("Akun tidak aktif atau bukan reviewer"))
		return
	}

	token, err := uc.getOrCreateToken(user.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s", user.Username)

	utils.RespondJSON(c, http.StatusOK, "Selamat anda berhasil masuk", gin.H{
		"token":       token.Key,
		"id":          user.ID,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"email":       user.Email,
		"is_active":   user.IsActive,
		"is_reviewer": user.IsReviewer,
	})
}

// getOrCreateToken mengembalikan token yang sudah ada untuk user, atau
// membuat yang baru. Login berulang memakai token yang sama sampai di-revoke.
func (uc *UserController) getOrCreateToken(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := uc.DB.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = models.AuthToken{
		Key:    utils.NewTokenKey(),
		UserID: userID,
	}
	if err := uc.DB.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// Logout menghapus token user (rotasi terjadi di login berikutnya).
func (uc *UserController) Logout(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	if err := uc.DB.Where("user_id = ?", *userID).Delete(&models.AuthToken{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Anda telah keluar", nil)
}

// GetProfile mengembalikan data user yang sedang login.
func (uc *UserController) GetProfile(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, *userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", user)
}

// GetAllUsers -> endpoint khusus admin.
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All users", users)
}
