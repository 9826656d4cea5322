package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-review-app/models"
	"github.com/yeremiapane/food-review-app/utils"
	"gorm.io/gorm"
)

const (
	maxImageUpload  = 10 << 20 // 10MB
	foodImageSubdir = "food_images"
	foodImagePrefix = "food"
	codeRetryLimit  = 3
)

type FoodController struct {
	DB      *gorm.DB
	Uploads *UploadStore
}

func NewFoodController(db *gorm.DB, uploads *UploadStore) *FoodController {
	return &FoodController{DB: db, Uploads: uploads}
}

// GetAllFoods hanya mengembalikan makanan yang status-nya bernilai Active.
// Perbandingan berdasarkan nilai kolom status, bukan posisi baris.
func (fc *FoodController) GetAllFoods(c *gin.Context) {
	var foods []models.FoodItem
	err := fc.DB.
		Select("food_items.*").
		Joins("JOIN statuses ON statuses.id = food_items.status_id").
		Where("statuses.status = ?", models.StatusActive).
		Preload("Place").Preload("Category").Preload("Status").
		Find(&foods).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Data makanan berhasil dibaca", foods)
}

// readImageFile membaca isi file upload, batal kalau terlalu besar.
func readImageFile(header *multipart.FileHeader) ([]byte, error) {
	if header.Size > maxImageUpload {
		return nil, errors.New("ukuran gambar maksimal 10MB")
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// CreateFood menerima multipart form. Kode makanan di-generate berurutan;
// kolom code punya unique index, jadi saat dua create balapan dan menghitung
// kode yang sama, insert yang kalah di-retry dengan kode baru.
func (fc *FoodController) CreateFood(c *gin.Context) {
	placeID, err := strconv.ParseUint(c.PostForm("place_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid place_id"))
		return
	}

	statusID, err := strconv.ParseUint(c.PostForm("status_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status_id"))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid price"))
		return
	}

	name := c.PostForm("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	var categoryID *uint
	if raw := c.PostForm("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category_id"))
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	var place models.Place
	if err := fc.DB.First(&place, placeID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("tempat makan tidak ditemukan"))
		return
	}
	var status models.Status
	if err := fc.DB.First(&status, statusID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status tidak ditemukan"))
		return
	}
	if categoryID != nil {
		var category models.Category
		if err := fc.DB.First(&category, *categoryID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("kategori tidak ditemukan"))
			return
		}
	}

	// Normalisasi gambar dulu; decode gagal berarti seluruh create gagal
	var artifact *utils.ImageArtifact
	if header, err := c.FormFile("image"); err == nil {
		data, err := readImageFile(header)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		artifact, err = utils.CompressImage(data, foodImagePrefix)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	food := models.FoodItem{
		PlaceID:      uint(placeID),
		Name:         name,
		Price:        price,
		Description:  c.PostForm("description"),
		CategoryID:   categoryID,
		StatusID:     uint(statusID),
		UserCreateID: currentUserID(c),
	}

	if artifact != nil {
		stored, err := fc.Uploads.Save(foodImageSubdir, artifact)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		food.Image = &stored
	}

	if err := fc.createWithCode(&food); err != nil {
		if food.Image != nil {
			fc.Uploads.Remove(*food.Image)
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	food.Place = place
	food.Status = status

	utils.RespondJSON(c, http.StatusCreated, "Data makanan berhasil ditambahkan", food)
}

// createWithCode meng-assign kode berikutnya dan insert, retry terbatas
// saat kena unique violation di kolom code.
func (fc *FoodController) createWithCode(food *models.FoodItem) error {
	var lastErr error
	for attempt := 0; attempt < codeRetryLimit; attempt++ {
		err := fc.DB.Transaction(func(tx *gorm.DB) error {
			code, err := models.NextFoodCode(tx)
			if err != nil {
				return err
			}
			food.Code = code
			return tx.Create(food).Error
		})
		if err == nil {
			return nil
		}
		if !utils.IsDuplicateKey(err) {
			return err
		}
		food.ID = 0
		lastErr = err
	}
	return lastErr
}

// GetFoodByID
func (fc *FoodController) GetFoodByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("food_id"))

	var food models.FoodItem
	err := fc.DB.Preload("Place").Preload("Category").Preload("Status").
		First(&food, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Data tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Food detail", food)
}

// UpdateFood. Kalau ada gambar baru: normalisasi, simpan, lalu artefak lama
// dihapus. Kegagalan normalisasi membatalkan seluruh update, tidak ada
// state setengah jadi.
func (fc *FoodController) UpdateFood(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("food_id"))

	var food models.FoodItem
	if err := fc.DB.First(&food, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Data tidak ditemukan"))
		return
	}
	oldImage := food.Image

	if name := c.PostForm("name"); name != "" {
		food.Name = name
	}
	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid price"))
			return
		}
		food.Price = price
	}
	if desc := c.PostForm("description"); desc != "" {
		food.Description = desc
	}
	if raw := c.PostForm("place_id"); raw != "" {
		placeID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid place_id"))
			return
		}
		var place models.Place
		if err := fc.DB.First(&place, placeID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("tempat makan tidak ditemukan"))
			return
		}
		food.PlaceID = uint(placeID)
	}
	if raw := c.PostForm("status_id"); raw != "" {
		statusID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status_id"))
			return
		}
		var status models.Status
		if err := fc.DB.First(&status, statusID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("status tidak ditemukan"))
			return
		}
		food.StatusID = uint(statusID)
	}
	if raw := c.PostForm("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category_id"))
			return
		}
		var category models.Category
		if err := fc.DB.First(&category, parsed).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("kategori tidak ditemukan"))
			return
		}
		catID := uint(parsed)
		food.CategoryID = &catID
	}

	imageChanged := false
	if header, err := c.FormFile("image"); err == nil {
		data, err := readImageFile(header)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		artifact, err := utils.CompressImage(data, foodImagePrefix)
		if err != nil {
			// Decode gagal -> seluruh update batal
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		stored, err := fc.Uploads.Save(foodImageSubdir, artifact)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		food.Image = &stored
		imageChanged = true
	}

	food.UserUpdateID = currentUserID(c)

	if err := fc.DB.Save(&food).Error; err != nil {
		if imageChanged {
			fc.Uploads.Remove(*food.Image)
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Artefak lama dihapus setelah record tersimpan. Timestamp di detik yang
	// sama menghasilkan nama identik; file-nya sudah tertimpa, jangan dihapus.
	if imageChanged && oldImage != nil && *oldImage != *food.Image {
		fc.Uploads.Remove(*oldImage)
	}

	utils.RespondJSON(c, http.StatusOK, "Data makanan berhasil diperbarui", food)
}

// DeleteFood menghapus makanan berikut review dan artefak gambarnya.
func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("food_id"))

	var food models.FoodItem
	if err := fc.DB.First(&food, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Data tidak ditemukan"))
		return
	}

	err := fc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", food.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&food).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if food.Image != nil {
		fc.Uploads.Remove(*food.Image)
	}

	utils.RespondJSON(c, http.StatusOK, "Data makanan berhasil dihapus", gin.H{"food_id": id})
}

// FilterFoods: filter nama kategori + ordering + pagination.
// Endpoint: GET /foods/filter?category__name=...&ordering=-price&page=1&page_size=10
func (fc *FoodController) FilterFoods(c *gin.Context) {
	ordering := c.Query("ordering")
	desc := false
	if len(ordering) > 0 && ordering[0] == '-' {
		desc = true
		ordering = ordering[1:]
	}
	switch ordering {
	case "created_on":
		ordering = "food_items.created_at"
	case "price":
		ordering = "food_items.price"
	case "":
		ordering = "food_items.id"
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("ordering hanya mendukung created_on dan price"))
		return
	}
	if desc {
		ordering += " DESC"
	}

	// Kondisi filter dirakit lewat closure supaya query count dan query data
	// tidak saling mengotori statement
	filtered := func() *gorm.DB {
		query := fc.DB.Model(&models.FoodItem{})
		if catName := c.Query("category__name"); catName != "" {
			query = query.
				Select("food_items.*").
				Joins("JOIN categories ON categories.id = food_items.category_id").
				Where("categories.name = ?", catName)
		}
		return query
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	var foods []models.FoodItem
	err := filtered().
		Preload("Place").Preload("Category").Preload("Status").
		Order(ordering).
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&foods).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Data makanan berhasil dibaca", gin.H{
		"count":     count,
		"page":      page,
		"page_size": pageSize,
		"results":   foods,
	})
}
