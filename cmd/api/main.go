package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tastebook/internal/database"
	"tastebook/internal/middleware"
	"tastebook/internal/modules/auth"
	"tastebook/internal/modules/catalog"
	"tastebook/internal/modules/favorite"
	"tastebook/internal/modules/recipe"
	"tastebook/internal/modules/review"
	"tastebook/internal/modules/user"
	jwtsvc "tastebook/internal/pkg/jwt"
	"tastebook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tastebook.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userRepo)
	recipeHandler := recipe.NewHandler(recipeRepo)
	reviewHandler := review.NewHandler(reviewRepo)
	favoriteHandler := favorite.NewHandler(favoriteRepo)
	catalogHandler := catalog.NewHandler(catalogRepo)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(j))

	authHandler.RegisterRoutes(v1)
	userHandler.RegisterRoutes(v1, protected)
	recipeHandler.RegisterRoutes(v1, protected)
	reviewHandler.RegisterRoutes(v1, protected)
	favoriteHandler.RegisterRoutes(v1, protected)
	catalogHandler.RegisterRoutes(v1, protected)

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
