package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// FoodCodeSeed adalah kode pertama saat tabel food_items masih kosong.
const FoodCodeSeed = "FD-0001"

const foodCodePrefix = "FD-"

// NextFoodCode menghitung kode berikutnya dari record FoodItem terakhir
// (urut berdasarkan ID). Suffix angka di-zero-pad ke 4 digit; di atas 9999
// lebarnya bertambah sendiri, tidak pernah dipotong.
//
// Pembacaan ini tidak aman terhadap insert paralel, jadi kolom code punya
// unique index dan path create melakukan retry saat kena duplicate key.
func NextFoodCode(db *gorm.DB) (string, error) {
	var last FoodItem
	err := db.Order("id DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return FoodCodeSeed, nil
	}
	if err != nil {
		return "", err
	}

	suffix := strings.TrimPrefix(last.Code, foodCodePrefix)
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return "", fmt.Errorf("kode makanan terakhir tidak valid: %q", last.Code)
	}

	return fmt.Sprintf("%s%04d", foodCodePrefix, n+1), nil
}
