package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/publicis/rewards-api/internal/application/auth"
	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/infrastructure/postgres"
	"github.com/publicis/rewards-api/internal/infrastructure/storage"
	httpRouter "github.com/publicis/rewards-api/internal/interfaces/http"
	"github.com/publicis/rewards-api/pkg/config"
	"github.com/publicis/rewards-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	images, err := storage.NewImageStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	prizeRepo := postgres.NewPrizeRepository(pool)
	redemptionRepo := postgres.NewRedemptionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, images)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	assignmentUC := usecase.NewAssignmentUseCase(txRunner, categoryRepo, userRepo, assignmentRepo)
	prizeUC := usecase.NewPrizeUseCase(prizeRepo, images)
	redemptionUC := usecase.NewRedemptionUseCase(txRunner, redemptionRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, redemptionRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Publicis Rewards API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Imágenes de premios y fotos de perfil
	app.Static(cfg.Uploads.PublicPath, images.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		CategoryUC:   categoryUC,
		AssignmentUC: assignmentUC,
		PrizeUC:      prizeUC,
		RedemptionUC: redemptionUC,
		DashboardUC:  dashboardUC,
		EmployeeUC:   employeeUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
