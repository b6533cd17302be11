package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/billing"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	BillUC      *billing.BillUseCase
	PaymentUC   *billing.PaymentUseCase
	SurrenderUC *billing.SurrenderUseCase
	ReportUC    *billing.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	billingHandler := NewBillingHandler(deps.BillUC, deps.PaymentUC, deps.SurrenderUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	customers := api.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/:number", customerHandler.Details)
	customers.Put("/:number", customerHandler.Update)
	customers.Delete("/:number", customerHandler.Archive)
	customers.Post("/:number/payment-cards", customerHandler.RegisterCard)
	customers.Get("/:number/bills/latest", billingHandler.LatestBill)

	api.Post("/bills", billingHandler.GenerateBill)
	api.Post("/payments", billingHandler.PayBill)
	api.Post("/premises/:number/surrender", billingHandler.Surrender)

	reports := api.Group("/reports")
	reports.Get("/paid-bills", reportHandler.PaidBills)
	reports.Get("/owing-bills", reportHandler.OwingBills)
	reports.Get("/archived-customers", reportHandler.ArchivedCustomers)
}
