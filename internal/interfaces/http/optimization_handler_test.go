package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Optimizador-api/internal/application/approval"
	"github.com/jhoicas/Optimizador-api/internal/application/optimization"
	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/planning"
	apphttp "github.com/jhoicas/Optimizador-api/internal/interfaces/http"
	"github.com/jhoicas/Optimizador-api/pkg/logger"
)

func TestOptimizationRun_CorridaCompleta(t *testing.T) {
	approvalRepo := &stubApprovalRepo{}
	app := buildOptimizationApp(t, &stubSources{}, approvalRepo)

	resp := doOptimizationRequest(t, app, http.MethodPost, "/api/optimization/run", tokenForRole(t, "analista"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Result struct {
			RunID string `json:"run_id"`
		} `json:"result"`
		Submission struct {
			SubmissionID string `json:"submission_id"`
			Status       string `json:"status"`
		} `json:"submission"`
		Notifications struct {
			NotificationsSent int `json:"notifications_sent"`
		} `json:"notifications"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.NotEmpty(t, body.Result.RunID)
	assert.NotEmpty(t, body.Submission.SubmissionID)
	assert.NotEmpty(t, body.Submission.Status)
	assert.GreaterOrEqual(t, body.Notifications.NotificationsSent, 1,
		"el equipo de inventario siempre recibe el resumen")
}

func TestOptimizationRun_SupervisorNoPuedeCorrer(t *testing.T) {
	app := buildOptimizationApp(t, &stubSources{}, &stubApprovalRepo{})

	resp := doOptimizationRequest(t, app, http.MethodPost, "/api/optimization/run", tokenForRole(t, "supervisor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"correr el pipeline exige rol de operación")
}

func TestOptimizationPreview_SoloLectura(t *testing.T) {
	approvalRepo := &stubApprovalRepo{}
	app := buildOptimizationApp(t, &stubSources{}, approvalRepo)

	resp := doOptimizationRequest(t, app, http.MethodGet, "/api/optimization/preview", tokenForRole(t, "supervisor"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result entity.PipelineResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.RunID)

	assert.Zero(t, approvalRepo.insertCalls, "preview no debe tocar la cola de aprobación")
	assert.Zero(t, approvalRepo.markCalls, "preview no debe auto-aprobar nada")
}

func TestOptimizationReport_DevuelvePDF(t *testing.T) {
	app := buildOptimizationApp(t, &stubSources{}, &stubApprovalRepo{})

	resp := doOptimizationRequest(t, app, http.MethodGet, "/api/optimization/report", tokenForRole(t, "analista"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="optimizacion_`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), body)
}

func TestOptimizationRun_FuenteCaidaRetorna502(t *testing.T) {
	sources := &stubSources{salesErr: errors.New("timeout del feed")}
	app := buildOptimizationApp(t, sources, &stubApprovalRepo{})

	resp := doOptimizationRequest(t, app, http.MethodPost, "/api/optimization/run", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UPSTREAM_FAILURE")
}

func TestOptimizationRun_SinTokenRetorna401(t *testing.T) {
	app := buildOptimizationApp(t, &stubSources{}, &stubApprovalRepo{})

	resp := doOptimizationRequest(t, app, http.MethodPost, "/api/optimization/run", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── stubs ─────────────────────────────────────────────────────────────────────

// stubSources implementa los tres repos de lectura con un escenario mínimo:
// un producto con historial constante y una posición de bodega.
type stubSources struct {
	salesErr error
}

func (s *stubSources) GetDailyDemand(_ context.Context, since time.Time) ([]entity.DailyDemand, error) {
	if s.salesErr != nil {
		return nil, s.salesErr
	}
	rows := make([]entity.DailyDemand, 0, 30)
	for i := 0; i < 30; i++ {
		rows = append(rows, entity.DailyDemand{
			ProductID: "PROD-001",
			Day:       since.AddDate(0, 0, i),
			Quantity:  5,
		})
	}
	return rows, nil
}

func (s *stubSources) GetCurrentPositions(_ context.Context, _ time.Time) ([]entity.InventoryPosition, error) {
	return []entity.InventoryPosition{{
		ProductID:         "PROD-001",
		SKU:               "SKU-001",
		ProductName:       "Producto Uno",
		LocationID:        "warehouse_norte",
		LocationName:      "Bodega Norte",
		LocationType:      entity.LocationTypeWarehouse,
		QuantityOnHand:    20,
		QuantityReserved:  0,
		QuantityAvailable: 20,
		UnitCost:          decimal.NewFromInt(3),
	}}, nil
}

func (s *stubSources) GetSupplierCatalog(_ context.Context) (map[string]entity.ProductMaster, error) {
	return map[string]entity.ProductMaster{
		"PROD-001": {
			ProductID:    "PROD-001",
			SupplierID:   "SUP-01",
			SupplierName: "Proveedor Uno",
			UnitCost:     decimal.NewFromInt(3),
			LeadTimeDays: 7,
		},
	}, nil
}

type stubApprovalRepo struct {
	insertCalls int
	markCalls   int
}

func (s *stubApprovalRepo) InsertRecords(_ context.Context, _ []entity.ApprovalRecord) error {
	s.insertCalls++
	return nil
}

func (s *stubApprovalRepo) MarkAutoApproved(_ context.Context, _ string) (int64, error) {
	s.markCalls++
	return 0, nil
}

type stubAlertRepo struct{}

func (s *stubAlertRepo) CreateAlert(_ context.Context, _ entity.DashboardAlert) error { return nil }

type stubNotifier struct{}

func (s *stubNotifier) Send(_ context.Context, _ entity.Notification) (string, error) {
	return entity.NotificationStatusLogged, nil
}

type stubReportGenerator struct{}

func (s *stubReportGenerator) GenerateRecommendationsPDF(_ context.Context, _ *entity.PipelineResult) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// buildOptimizationApp arma la app Fiber con el router real y los casos de uso
// sobre stubs, como los arma cmd/api con los adaptadores reales.
func buildOptimizationApp(t *testing.T, sources *stubSources, approvalRepo *stubApprovalRepo) *fiber.App {
	t.Helper()

	log := logger.Nop()
	planningCfg := planning.DefaultConfig()

	runUC := optimization.NewUseCase(sources, sources, sources, planningCfg, time.Hour, log)
	approvalUC := approval.NewUseCase(approvalRepo, &stubAlertRepo{}, &stubNotifier{}, planningCfg, approval.Config{
		ApproverDomain: "company.com",
		InventoryTeam:  []string{"inventory@company.com"},
		ExecutiveTeam:  []string{"cfo@company.com"},
	}, log)
	reportUC := optimization.NewReportUseCase(runUC, &stubReportGenerator{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RunUC:      runUC,
		ApprovalUC: approvalUC,
		ReportUC:   reportUC,
		JWTSecret:  testJWTSecret,
	})
	return app
}

func doOptimizationRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
