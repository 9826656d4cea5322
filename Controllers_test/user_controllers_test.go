package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/food-review-app/models"
)

func TestRegisterSuccessNoPasswordInResponse(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username":    "budi",
		"email":       "budi@example.com",
		"password1":   "rahasia-aman1",
		"password2":   "rahasia-aman1",
		"is_active":   true,
		"is_reviewer": true,
		"first_name":  "Budi",
		"last_name":   "Santoso",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, true, resp["status"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "budi", data["username"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "password1")
	assert.NotContains(t, data, "password2")

	// Password tersimpan dalam bentuk hash, bukan plaintext
	var user models.User
	assert.NoError(t, db.Where("username = ?", "budi").First(&user).Error)
	assert.NotEqual(t, "rahasia-aman1", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestRegisterInactiveUserStaysInactive(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username":    "budi",
		"email":       "budi@example.com",
		"password1":   "rahasia-aman1",
		"password2":   "rahasia-aman1",
		"is_active":   false,
		"is_reviewer": true,
		"first_name":  "Budi",
		"last_name":   "Santoso",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// false eksplisit harus ikut tersimpan, bukan ketimpa default
	var user models.User
	assert.NoError(t, db.Where("username = ?", "budi").First(&user).Error)
	assert.False(t, user.IsActive)

	w = doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "budi",
		"password": "rahasia-aman1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterDefaultsToActive(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username":    "budi",
		"email":       "budi@example.com",
		"password1":   "rahasia-aman1",
		"password2":   "rahasia-aman1",
		"is_reviewer": true,
		"first_name":  "Budi",
		"last_name":   "Santoso",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.Where("username = ?", "budi").First(&user).Error)
	assert.True(t, user.IsActive)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username":    "budi",
		"email":       "budi@example.com",
		"password1":   "rahasia-aman1",
		"password2":   "rahasia-beda2",
		"is_reviewer": true,
		"first_name":  "Budi",
		"last_name":   "Santoso",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)
	seedReviewer(t, db, "budi")

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username":    "budi2",
		"email":       "budi@example.com",
		"password1":   "rahasia-aman1",
		"password2":   "rahasia-aman1",
		"is_reviewer": true,
		"first_name":  "Budi",
		"last_name":   "Santoso",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterStoreFailure(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	// Koneksi ditutup: cek unik harus gagal dengan 500, bukan lolos
	// seolah-olah count 0
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username":    "budi",
		"email":       "budi@example.com",
		"password1":   "rahasia-aman1",
		"password2":   "rahasia-aman1",
		"is_reviewer": true,
		"first_name":  "Budi",
		"last_name":   "Santoso",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRegisterWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	for _, weak := range []string{"pendek1", "1234567890"} {
		w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
			"username":    "budi",
			"email":       "budi@example.com",
			"password1":   weak,
			"password2":   weak,
			"is_reviewer": true,
			"first_name":  "Budi",
			"last_name":   "Santoso",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "password %q should be rejected", weak)
	}
}

func TestLoginSuccessAndTokenReuse(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)
	user := seedReviewer(t, db, "budi")

	token1 := loginAs(t, r, "budi")
	assert.NotEmpty(t, token1)

	// Login berulang -> token yang sama selama belum di-revoke
	token2 := loginAs(t, r, "budi")
	assert.Equal(t, token1, token2)

	var count int64
	db.Model(&models.AuthToken{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginResponseShape(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)
	seedReviewer(t, db, "budi")

	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "budi",
		"password": "rahasia-aman1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "Test", data["first_name"])
	assert.Equal(t, "Reviewer", data["last_name"])
	assert.Equal(t, "budi@example.com", data["email"])
	assert.Equal(t, true, data["is_active"])
	assert.Equal(t, true, data["is_reviewer"])
	assert.NotContains(t, data, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)
	seedReviewer(t, db, "budi")

	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "budi",
		"password": "salah-total9",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginNotReviewer(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	user := seedReviewer(t, db, "budi")
	db.Model(user).Update("is_reviewer", false)

	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "budi",
		"password": "rahasia-aman1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	user := seedReviewer(t, db, "budi")
	db.Model(user).Update("is_active", false)

	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "budi",
		"password": "rahasia-aman1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginMissingCredentials(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)
	seedReviewer(t, db, "budi")

	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "",
		"password": "rahasia-aman1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "budi",
		"password": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)
	seedReviewer(t, db, "budi")

	token := loginAs(t, r, "budi")

	w := doJSON(t, r, "POST", "/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Token lama tidak berlaku lagi
	w = doJSON(t, r, "GET", "/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Login berikutnya menghasilkan token baru
	newToken := loginAs(t, r, "budi")
	assert.NotEqual(t, token, newToken)
}

func TestProtectedEndpointWithoutToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	w := doJSON(t, r, "GET", "/places", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "GET", "/places", "token-ngawur", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAllUsersAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(t, db)

	seedReviewer(t, db, "budi")
	admin := seedReviewer(t, db, "admin")
	db.Model(admin).Update("is_admin", true)

	token := loginAs(t, r, "budi")
	w := doJSON(t, r, "GET", "/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := loginAs(t, r, "admin")
	w = doJSON(t, r, "GET", "/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
