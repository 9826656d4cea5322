package router

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-review-app/controllers"
	"github.com/yeremiapane/food-review-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, uploads *controllers.UploadStore) *gin.Engine {
	r := gin.Default()

	// Rate limiter global per IP. Gin mengikat middleware saat route
	// didaftarkan, jadi semua Use harus sebelum route dan Static.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Artefak gambar dilayani statis; selain jpg ditolak karena normalizer
	// hanya menghasilkan jpg
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			if filepath.Ext(strings.ToLower(c.Request.URL.Path)) != ".jpg" {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})
	r.Static("/uploads", uploads.Root)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	statusCtrl := controllers.NewStatusController(db)
	placeCtrl := controllers.NewPlaceController(db, uploads)
	categoryCtrl := controllers.NewCategoryController(db)
	foodCtrl := controllers.NewFoodController(db, uploads)
	reviewCtrl := controllers.NewReviewController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(db))
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)
		auth.GET("/users", middlewares.AdminOnly(), userCtrl.GetAllUsers)

		auth.GET("/statuses", statusCtrl.GetAllStatuses)
		auth.POST("/statuses", statusCtrl.CreateStatus)
		auth.GET("/statuses/:status_id", statusCtrl.GetStatusByID)
		auth.PUT("/statuses/:status_id", statusCtrl.UpdateStatus)
		auth.DELETE("/statuses/:status_id", statusCtrl.DeleteStatus)

		auth.GET("/places", placeCtrl.GetAllPlaces)
		auth.POST("/places", placeCtrl.CreatePlace)
		auth.GET("/places/:place_id", placeCtrl.GetPlaceByID)
		auth.PUT("/places/:place_id", placeCtrl.UpdatePlace)
		auth.DELETE("/places/:place_id", placeCtrl.DeletePlace)

		auth.GET("/categories", categoryCtrl.GetAllCategories)
		auth.POST("/categories", categoryCtrl.CreateCategory)
		auth.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
		auth.PUT("/categories/:cat_id", categoryCtrl.UpdateCategory)
		auth.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		auth.GET("/foods", foodCtrl.GetAllFoods)
		auth.POST("/foods", foodCtrl.CreateFood)
		auth.GET("/foods/filter", foodCtrl.FilterFoods)
		auth.GET("/foods/:food_id", foodCtrl.GetFoodByID)
		auth.PUT("/foods/:food_id", foodCtrl.UpdateFood)
		auth.DELETE("/foods/:food_id", foodCtrl.DeleteFood)

		auth.GET("/reviews", reviewCtrl.GetAllReviews)
		auth.POST("/reviews", reviewCtrl.CreateReview)
		auth.GET("/reviews/:review_id", reviewCtrl.GetReviewByID)
		auth.PUT("/reviews/:review_id", reviewCtrl.UpdateReview)
		auth.DELETE("/reviews/:review_id", reviewCtrl.DeleteReview)
	}

	return r
}
