//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	alertsApi "ativos.GO/api/alerts"
	assetsApi "ativos.GO/api/assets"
	attachmentsApi "ativos.GO/api/attachments"
	authApi "ativos.GO/api/auth"
	categoriesApi "ativos.GO/api/categories"
	dashboardApi "ativos.GO/api/dashboard"
	inventoriesApi "ativos.GO/api/inventories"
	maintenanceApi "ativos.GO/api/maintenance"
	reportsApi "ativos.GO/api/reports"
	usersApi "ativos.GO/api/users"
	"ativos.GO/config"
	coreAuth "ativos.GO/core/auth"
	"ativos.GO/cron"
	"ativos.GO/model"
	categoryRepo "ativos.GO/model/repository/category"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, token revocation disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, token revocation disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	if err := model.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := categoryRepo.NewCategoryRepository(db).SeedDefaults(); err != nil {
		log.Fatalf("category seed failed: %v", err)
	}
	for _, dir := range []string{
		config.AppConfig.UploadDir,
		config.AppConfig.QRDir,
		config.AppConfig.ExportDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	mail := config.LoadMailConfig()

	apiGroup := e.Group("/api")
	apiGroup.Use(coreAuth.Middleware())

	authApi.RegisterAuthRoutes(apiGroup, db)
	assetsApi.RegisterAssetRoutes(apiGroup, db, mail)
	categoriesApi.RegisterCategoryRoutes(apiGroup, db)
	attachmentsApi.RegisterAttachmentRoutes(apiGroup, db)
	maintenanceApi.RegisterMaintenanceRoutes(apiGroup, db, mail)
	inventoriesApi.RegisterInventoryRoutes(apiGroup, db)
	alertsApi.RegisterAlertRoutes(apiGroup, db, mail)
	usersApi.RegisterUserRoutes(apiGroup, db)
	dashboardApi.RegisterDashboardRoutes(apiGroup, db, mail)
	reportsApi.RegisterReportRoutes(apiGroup, db)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})
	e.Static("/static", "static")

	c := cron.StartCron()
	defer c.Stop()

	port := config.AppConfig.Port
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
