package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/billing"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/metering"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/usecase"
	"github.com/Dimmsum/NWC-Simulation-System/internal/infrastructure/recordfile"
	httpRouter "github.com/Dimmsum/NWC-Simulation-System/internal/interfaces/http"
	"github.com/Dimmsum/NWC-Simulation-System/pkg/config"
	"github.com/Dimmsum/NWC-Simulation-System/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store_dir", cfg.Store.Dir).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.Store.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de almacenes")
	}

	customerRepo, err := recordfile.NewCustomerRepository(cfg.Store.Path("customers.dat"))
	if err != nil {
		log.Fatal().Err(err).Msg("cargar almacén de clientes")
	}
	premisesRepo, err := recordfile.NewPremisesRepository(cfg.Store.Path("premises.dat"))
	if err != nil {
		log.Fatal().Err(err).Msg("cargar almacén de predios")
	}
	billRepo := recordfile.NewBillRepository(cfg.Store.Path("bills.dat"))
	paymentRepo := recordfile.NewPaymentRepository(cfg.Store.Path("payments.dat"))
	cardRepo := recordfile.NewPaymentCardRepository(cfg.Store.Path("cards.dat"))
	activityRepo := recordfile.NewActivityRepository(cfg.Store.Path("activity.dat"))

	customerUC := usecase.NewCustomerUseCase(customerRepo, premisesRepo, billRepo, cardRepo)
	billUC := billing.NewBillUseCase(customerRepo, premisesRepo, billRepo, metering.NewSource(), cfg.Billing.Year)
	paymentUC := billing.NewPaymentUseCase(customerRepo, billRepo, paymentRepo, activityRepo)
	surrenderUC := billing.NewSurrenderUseCase(customerRepo, premisesRepo, billRepo, activityRepo)
	reportUC := billing.NewReportUseCase(customerRepo, premisesRepo, billRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		BillUC:      billUC,
		PaymentUC:   paymentUC,
		SurrenderUC: surrenderUC,
		ReportUC:    reportUC,
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
