package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/billing"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/metering"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/usecase"
	"github.com/Dimmsum/NWC-Simulation-System/internal/infrastructure/recordfile"
	apphttp "github.com/Dimmsum/NWC-Simulation-System/internal/interfaces/http"
)

// buildTestApp construye la aplicación completa sobre almacenes temporales.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	customers, err := recordfile.NewCustomerRepository(filepath.Join(dir, "customers.dat"))
	require.NoError(t, err)
	premises, err := recordfile.NewPremisesRepository(filepath.Join(dir, "premises.dat"))
	require.NoError(t, err)
	bills := recordfile.NewBillRepository(filepath.Join(dir, "bills.dat"))
	payments := recordfile.NewPaymentRepository(filepath.Join(dir, "payments.dat"))
	cards := recordfile.NewPaymentCardRepository(filepath.Join(dir, "cards.dat"))
	activity := recordfile.NewActivityRepository(filepath.Join(dir, "activity.dat"))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:  usecase.NewCustomerUseCase(customers, premises, bills, cards),
		BillUC:      billing.NewBillUseCase(customers, premises, bills, metering.NewSource(), 2025),
		PaymentUC:   billing.NewPaymentUseCase(customers, bills, payments, activity),
		SurrenderUC: billing.NewSurrenderUseCase(customers, premises, bills, activity),
		ReportUC:    billing.NewReportUseCase(customers, premises, bills),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		CustomerNumber: "1000001",
		FirstName:      "Marta",
		LastName:       "Grey",
		IncomeClass:    2,
		PremisesNumber: "2000001",
		MeterSize:      1,
		InitialReading: 0,
	}
}

func TestAPI_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", createRequest())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, "1000001", created.CustomerNumber)

	resp = doJSON(t, app, http.MethodPost, "/api/customers/1000001/payment-cards",
		dto.RegisterCardRequest{CardIdentifier: "7812"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/bills",
		dto.GenerateBillRequest{CustomerNumber: "1000001", PremisesNumber: "2000001"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	bill := decode[dto.BillResponse](t, resp)
	assert.Equal(t, 1, bill.MonthNumber)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/1000001/bills/latest", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	latest := decode[dto.BillResponse](t, resp)
	assert.Equal(t, bill.ID, latest.ID)

	resp = doJSON(t, app, http.MethodPost, "/api/payments",
		dto.PayBillRequest{CustomerNumber: "1000001", Amount: bill.TotalAmountDue})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	receipt := decode[dto.ReceiptResponse](t, resp)
	assert.Equal(t, "PAGADA", receipt.Status)

	resp = doJSON(t, app, http.MethodGet, "/api/reports/paid-bills", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decode[[]dto.PaidBillRow](t, resp)
	require.Len(t, rows, 1)
	assert.Equal(t, "Marta Grey", rows[0].CustomerName)

	resp = doJSON(t, app, http.MethodPost, "/api/premises/2000001/surrender",
		dto.SurrenderRequest{CustomerNumber: "1000001"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/customers/1000001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/reports/archived-customers", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	archived := decode[[]dto.ArchivedCustomerRow](t, resp)
	require.Len(t, archived, 1)
	assert.Equal(t, "1000001", archived[0].CustomerNumber)
}

func TestAPI_MapeoDeErrores(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", createRequest())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicado → 409.
	resp = doJSON(t, app, http.MethodPost, "/api/customers", createRequest())
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", body.Code)

	// Cliente desconocido → 404.
	resp = doJSON(t, app, http.MethodGet, "/api/customers/9999999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Pago sin tarjeta → 422.
	resp = doJSON(t, app, http.MethodPost, "/api/payments",
		dto.PayBillRequest{CustomerNumber: "1000001"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "BUSINESS_RULE", body.Code)

	// Cuerpo malformado → 400.
	req := httptest.NewRequest(http.MethodPost, "/api/bills", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Clase de ingresos fuera de rango → 400.
	bad := createRequest()
	bad.CustomerNumber = "1000002"
	bad.PremisesNumber = "2000002"
	bad.IncomeClass = 9
	resp = doJSON(t, app, http.MethodPost, "/api/customers", bad)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
