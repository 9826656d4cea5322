package Controllers_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-review-app/controllers"
	"github.com/yeremiapane/food-review-app/models"
	"github.com/yeremiapane/food-review-app/router"
	"github.com/yeremiapane/food-review-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB menggunakan SQLite in-memory untuk testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Status{},
		&models.Place{},
		&models.Category{},
		&models.FoodItem{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// setupRouterForTest merakit router lengkap dengan upload dir sementara.
func setupRouterForTest(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	uploads := controllers.NewUploadStore(t.TempDir())
	return router.SetupRouter(db, uploads)
}

// seedReviewer membuat user aktif ber-flag reviewer, return user-nya.
func seedReviewer(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia-aman1"), bcrypt.DefaultCost)
	user := models.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   string(hashed),
		FirstName:  "Test",
		LastName:   "Reviewer",
		IsReviewer: true,
		IsActive:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedStatus(t *testing.T, db *gorm.DB, name, value string) *models.Status {
	t.Helper()

	status := models.Status{Name: name, Status: value}
	if err := db.Create(&status).Error; err != nil {
		t.Fatalf("failed to seed status: %v", err)
	}
	return &status
}

func seedPlace(t *testing.T, db *gorm.DB, name string, statusID uint) *models.Place {
	t.Helper()

	place := models.Place{
		Name:      name,
		Latitude:  -6.2,
		Longitude: 106.8,
		Address:   "Jl. Sudirman No. 1",
		StatusID:  statusID,
	}
	if err := db.Create(&place).Error; err != nil {
		t.Fatalf("failed to seed place: %v", err)
	}
	return &place
}

// loginAs melakukan login dan mengembalikan token.
func loginAs(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": username,
		"password": "rahasia-aman1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	return resp.Data.Token
}

// doJSON mengirim request JSON, token opsional.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, path, buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doMultipart mengirim form multipart dengan file gambar opsional.
func doMultipart(t *testing.T, r *gin.Engine, method, path, token string, fields map[string]string, imageName string, imageData []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(imageData); err != nil {
			t.Fatalf("failed to write image data: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// testPNG menghasilkan PNG ber-palette kecil untuk upload.
func testPNG(t *testing.T) []byte {
	t.Helper()

	palette := color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 16, 16), palette)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetColorIndex(x, y, uint8((x+y)%2))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture png: %v", err)
	}
	return buf.Bytes()
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return resp
}
