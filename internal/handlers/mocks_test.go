package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"autoledger/internal/auth"
	"autoledger/internal/logger"
	"autoledger/internal/models"
	"autoledger/internal/pagination"
	"autoledger/internal/services"
	"autoledger/internal/validator"
)

// --- mock resource service ---

type mockResourceService[T any] struct {
	listFn   func(userID string, filter services.EntryFilter, page pagination.PageRequest) ([]T, int64, error)
	getFn    func(userID, id string) (*T, error)
	createFn func(userID string, rec *T) (*T, error)
	updateFn func(userID, id string, rec *T, columns []string) (*T, error)
	deleteFn func(userID, id string) error
	calls    int
}

func (m *mockResourceService[T]) List(_ context.Context, userID string, filter services.EntryFilter, page pagination.PageRequest) ([]T, int64, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(userID, filter, page)
	}
	return nil, 0, nil
}

func (m *mockResourceService[T]) Get(_ context.Context, userID, id string) (*T, error) {
	m.calls++
	if m.getFn != nil {
		return m.getFn(userID, id)
	}
	return new(T), nil
}

func (m *mockResourceService[T]) Create(_ context.Context, userID string, rec *T) (*T, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(userID, rec)
	}
	return rec, nil
}

func (m *mockResourceService[T]) Update(_ context.Context, userID, id string, rec *T, columns []string) (*T, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(userID, id, rec, columns)
	}
	return rec, nil
}

func (m *mockResourceService[T]) Delete(_ context.Context, userID, id string) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(userID, id)
	}
	return nil
}

var (
	_ services.VehicleServicer      = (*mockResourceService[models.Vehicle])(nil)
	_ services.FuelEntryServicer    = (*mockResourceService[models.FuelEntry])(nil)
	_ services.ExpenseEntryServicer = (*mockResourceService[models.ExpenseEntry])(nil)
	_ services.IncomeEntryServicer  = (*mockResourceService[models.IncomeEntry])(nil)
)

// --- mock catalog service ---

type mockCatalogService struct {
	listFn   func(userID string, kind models.CatalogKind) ([]models.CatalogEntry, error)
	createFn func(userID string, kind models.CatalogKind, name string) (*models.CatalogEntry, bool, error)
	updateFn func(userID string, kind models.CatalogKind, id string, patch services.CatalogPatch) (*models.CatalogEntry, error)
	deleteFn func(userID string, kind models.CatalogKind, id string) error
	calls    int
}

func (m *mockCatalogService) List(_ context.Context, userID string, kind models.CatalogKind) ([]models.CatalogEntry, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(userID, kind)
	}
	return nil, nil
}

func (m *mockCatalogService) Create(_ context.Context, userID string, kind models.CatalogKind, name string) (*models.CatalogEntry, bool, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(userID, kind, name)
	}
	return &models.CatalogEntry{Name: name, Kind: kind, UserID: userID}, true, nil
}

func (m *mockCatalogService) Update(_ context.Context, userID string, kind models.CatalogKind, id string, patch services.CatalogPatch) (*models.CatalogEntry, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(userID, kind, id, patch)
	}
	return &models.CatalogEntry{}, nil
}

func (m *mockCatalogService) Delete(_ context.Context, userID string, kind models.CatalogKind, id string) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(userID, kind, id)
	}
	return nil
}

var _ services.CatalogServicer = (*mockCatalogService)(nil)

// --- mock preferences service ---

type mockPreferencesService struct {
	getFn    func(userID string) (*models.UserPreferences, error)
	updateFn func(userID string, patch services.PreferencesPatch) (*models.UserPreferences, error)
	calls    int
}

func (m *mockPreferencesService) Get(_ context.Context, userID string) (*models.UserPreferences, error) {
	m.calls++
	if m.getFn != nil {
		return m.getFn(userID)
	}
	return models.DefaultPreferences(userID), nil
}

func (m *mockPreferencesService) Update(_ context.Context, userID string, patch services.PreferencesPatch) (*models.UserPreferences, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(userID, patch)
	}
	return models.DefaultPreferences(userID), nil
}

var _ services.PreferencesServicer = (*mockPreferencesService)(nil)

// --- mock maintenance service ---

type mockMaintenanceService struct {
	diagnoseFn func(userID string) (*services.Diagnosis, error)
	repairFn   func(userID string) (*services.RepairReport, error)
	calls      int
}

func (m *mockMaintenanceService) Diagnose(_ context.Context, userID string) (*services.Diagnosis, error) {
	m.calls++
	if m.diagnoseFn != nil {
		return m.diagnoseFn(userID)
	}
	return &services.Diagnosis{UserID: userID}, nil
}

func (m *mockMaintenanceService) Repair(_ context.Context, userID string) (*services.RepairReport, error) {
	m.calls++
	if m.repairFn != nil {
		return m.repairFn(userID)
	}
	return &services.RepairReport{}, nil
}

var _ services.MaintenanceServicer = (*mockMaintenanceService)(nil)

// --- mock user service ---

type mockUserService struct {
	registerFn     func(name, email, password string) (*models.User, error)
	authenticateFn func(email, password string) (*models.User, error)
	getUserByIDFn  func(id string) (*models.User, error)
	externalFn     func(provider string, profile auth.ExternalProfile) (*models.User, error)
}

func (m *mockUserService) Register(_ context.Context, name, email, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(name, email, password)
	}
	return &models.User{Name: name, Email: email}, nil
}

func (m *mockUserService) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(email, password)
	}
	return &models.User{Email: email}, nil
}

func (m *mockUserService) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) FindOrCreateExternal(_ context.Context, provider string, profile auth.ExternalProfile) (*models.User, error) {
	if m.externalFn != nil {
		return m.externalFn(provider, profile)
	}
	return &models.User{Email: profile.Email, Provider: provider}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- mock audit service ---

type auditCall struct {
	userID, action, resourceType, resourceID string
}

type mockAuditService struct {
	logged []auditCall
}

func (m *mockAuditService) Record(_ context.Context, ev services.AuditEvent) {
	m.logged = append(m.logged, auditCall{ev.UserID, ev.Action, ev.ResourceType, ev.ResourceID})
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
	logger.Init("test")
}

// withUser authenticates every request as userID.
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.Identity{Authenticated: true, UserID: userID, Email: userID + "@test.com"}
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertMessage(t *testing.T, result map[string]interface{}, message string) {
	t.Helper()
	if result["message"] != message {
		t.Errorf("expected message %q, got %v", message, result["message"])
	}
}

// assertEnvelope checks whether the body carries success:false.
func assertEnvelope(t *testing.T, result map[string]interface{}, wantSuccessField bool) {
	t.Helper()
	success, has := result["success"]
	if has != wantSuccessField {
		t.Fatalf("success field present = %v, want %v (body %v)", has, wantSuccessField, result)
	}
	if has && success != false {
		t.Errorf("expected success:false, got %v", success)
	}
}
