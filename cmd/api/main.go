package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/marketing-crm-api/internal/application/auth"
	"github.com/jhoicas/marketing-crm-api/internal/application/orders"
	"github.com/jhoicas/marketing-crm-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/marketing-crm-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/marketing-crm-api/internal/interfaces/http"
	"github.com/jhoicas/marketing-crm-api/pkg/config"
	pkgjwt "github.com/jhoicas/marketing-crm-api/pkg/jwt"
	"github.com/jhoicas/marketing-crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	store, err := mongodb.NewStore(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer store.Close()
	log.Info().Str("db", cfg.Mongo.DBName).Msg("conectado a MongoDB")

	userRepo := mongodb.NewUserRepository(store)
	orderRepo := mongodb.NewOrderRepository(store)

	jwtCfg := pkgjwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  time.Duration(cfg.JWT.AccessMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshDays) * 24 * time.Hour,
	}
	authUC := auth.NewAuthUseCase(userRepo, jwtCfg)

	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	orderUC := orders.NewOrderUseCase(orderRepo, userRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Comprobantes de pago embebidos: el multipart completo debe caber.
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		OrderUC:   orderUC,
		JWTSecret: cfg.JWT.Secret,
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
