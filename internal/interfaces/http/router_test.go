package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaccess "github.com/jhoicas/bluebook-api/internal/application/access"
	appanalytics "github.com/jhoicas/bluebook-api/internal/application/analytics"
	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/onboarding"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/memory"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/bluebook-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/bluebook-api/pkg/jwt"
)

const (
	companyA = "10000000-0000-0000-0000-000000000001"
	restA1   = "20000000-0000-0000-0000-000000000001"
	restA2   = "20000000-0000-0000-0000-000000000002"
	adminID  = "30000000-0000-0000-0000-000000000001"
	empID    = "30000000-0000-0000-0000-000000000002"
)

// newTestAPI arma la API completa sobre el Store en memoria:
// companyA con restA1 y restA2, un Company_Admin (password "secret123") y un empleado asignado a restA1.
func newTestAPI(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	r := s.Repos()

	cid := companyA
	require.NoError(t, r.Companies.Create(ctx, &entity.Company{ID: companyA, Name: "Tacos SA", IsOnboarded: true, IsActive: true, NumberOfRestaurants: 2}))
	require.NoError(t, r.Restaurants.Create(ctx, &entity.Restaurant{ID: restA1, CompanyID: companyA, Name: "Centro", IsActive: true}))
	require.NoError(t, r.Restaurants.Create(ctx, &entity.Restaurant{ID: restA2, CompanyID: companyA, Name: "Norte", IsActive: true}))
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, r.Users.Create(ctx, &entity.User{ID: adminID, FirstName: "Ana", Email: "ana@example.com", PasswordHash: hash, Role: entity.RoleCompanyAdmin, CompanyID: &cid, IsActive: true}))
	require.NoError(t, r.Users.Create(ctx, &entity.User{ID: empID, FirstName: "Eva", Email: "eva@example.com", PasswordHash: hash, Role: entity.RoleRestaurantEmployee, CompanyID: &cid, IsActive: true}))
	require.NoError(t, r.UserRestaurants.Link(ctx, empID, []string{restA1}))

	resolver := appaccess.NewResolver(r.Restaurants, r.UserRestaurants)
	dashboard := appanalytics.NewDashboardUseCase(s.Analytics(), r.Restaurants, nil, nil)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(true, nil)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(r.Users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		Onboarding:   onboarding.NewService(s, r.Companies, r.Restaurants, onboarding.Config{DefaultPassword: "default@123"}, nil),
		CompanyUC:    usecase.NewCompanyUseCase(r.Companies, r.Restaurants, nil),
		RestaurantUC: usecase.NewRestaurantUseCase(r.Restaurants, s, resolver),
		LocationUC:   usecase.NewLocationUseCase(s, resolver),
		UserUC:       usecase.NewUserUseCase(r.Users, r.UserRestaurants, r.Restaurants, s, resolver, "default@123", nil),
		RoleUC:       usecase.NewRoleUseCase(),
		RevenueUC:    usecase.NewRevenueUseCase(r.Revenues, resolver),
		ExpenseUC:    usecase.NewExpenseUseCase(r.Expenses, r.Invoices, s, resolver, nil),
		BlueBookUC:   usecase.NewBlueBookUseCase(r.BlueBooks, s, resolver, nil),
		DashboardUC:  dashboard,
		ReportUC:     appanalytics.NewReportUseCase(dashboard, pdf.NewMarotoPDFGenerator("test")),
		Scopes:       resolver,
	})
	return app
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, companyA, role, "", testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func call(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestRouter_LoginAndMe(t *testing.T) {
	app := newTestAPI(t)

	status, body := call(t, app, http.MethodPost, "/api/v1/auth/login", "", `{"email":"ana@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, me := call(t, app, http.MethodGet, "/api/v1/auth/me", "Bearer "+token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, adminID, me["user_id"])
	assert.Equal(t, entity.RoleCompanyAdmin, me["role"])

	status, body = call(t, app, http.MethodPost, "/api/v1/auth/login", "", `{"email":"ana@example.com","password":"otra"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])

	status, body = call(t, app, http.MethodPost, "/api/v1/auth/login", "", `{"email":"nadie@example.com","password":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "USER_NOT_FOUND", body["code"])

	status, body = call(t, app, http.MethodPost, "/api/v1/auth/login", "", `{"email":"no-es-email"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestRouter_RevenueScopeAndAliases(t *testing.T) {
	app := newTestAPI(t)
	emp := bearer(t, empID, entity.RoleRestaurantEmployee)

	status, body := call(t, app, http.MethodPost, "/api/v1/revenue", emp,
		`{"restaurantId":"`+restA1+`","beginningDate":"2025-01-01","endingDate":"2025-01-07","food_sale":120.5,"totalGuest":10}`)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, restA1, body["restaurant_id"])
	assert.Equal(t, empID, body["user_id"])
	assert.Equal(t, empID, body["created_by"])

	status, body = call(t, app, http.MethodPost, "/api/v1/revenue", emp,
		`{"restaurant_id":"`+restA2+`","beginning_date":"2025-01-01","ending_date":"2025-01-07"}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "RESTAURANT_FORBIDDEN", body["code"])

	status, body = call(t, app, http.MethodPost, "/api/v1/revenue", emp, `{"beginning_date":"2025-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = call(t, app, http.MethodPost, "/api/v1/revenue", emp, `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", body["code"])

	status, list := call(t, app, http.MethodGet, "/api/v1/revenue?pageSize=5", emp, "")
	require.Equal(t, http.StatusOK, status)
	page := list["page"].(map[string]any)
	assert.EqualValues(t, 1, page["total_count"])
	assert.EqualValues(t, 5, page["page_size"])
}

func TestRouter_MalformedIDsAreBadRequest(t *testing.T) {
	app := newTestAPI(t)
	admin := bearer(t, adminID, entity.RoleCompanyAdmin)
	root := bearer(t, "40000000-0000-0000-0000-000000000001", entity.RoleSuperAdmin)

	for _, tc := range []struct{ method, path, token string }{
		{http.MethodGet, "/api/v1/revenue/abc", admin},
		{http.MethodDelete, "/api/v1/expense/abc", admin},
		{http.MethodGet, "/api/v1/users/abc", admin},
		{http.MethodGet, "/api/v1/companies/abc", root},
		{http.MethodGet, "/api/v1/blue-book/restaurant/abc/date/2025-01-01", admin},
		{http.MethodGet, "/api/v1/revenue?restaurant_id=" + restA1 + ",abc", admin},
		{http.MethodGet, "/api/v1/dashboard/stats?restaurant_ids=abc", root},
	} {
		status, body := call(t, app, tc.method, tc.path, tc.token, "")
		assert.Equal(t, http.StatusBadRequest, status, tc.path)
		assert.Equal(t, "INVALID_ID", body["code"], tc.path)
	}

	status, _ := call(t, app, http.MethodGet, "/api/v1/revenue/"+restA1, admin, "")
	assert.Equal(t, http.StatusNotFound, status, "un UUID válido inexistente sigue siendo 404")
}

func TestRouter_ExpenseDeleteRequiresAdmin(t *testing.T) {
	app := newTestAPI(t)
	emp := bearer(t, empID, entity.RoleRestaurantEmployee)

	status, created := call(t, app, http.MethodPost, "/api/v1/expense", emp,
		`{"restaurant_id":"`+restA1+`","type":"Invoice","expense_date":"2025-02-01","amounts":{"Food":"10.50","Beer":"4"}}`)
	require.Equal(t, http.StatusCreated, status, created)
	assert.Equal(t, "Invoice", created["category"])
	id := created["id"].(string)

	status, body := call(t, app, http.MethodDelete, "/api/v1/expense/"+id, emp, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "PERMISSION_DENIED", body["code"])

	status, _ = call(t, app, http.MethodDelete, "/api/v1/expense/"+id, bearer(t, adminID, entity.RoleCompanyAdmin), "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_BlueBookDuplicateIsConflict(t *testing.T) {
	app := newTestAPI(t)
	admin := bearer(t, adminID, entity.RoleCompanyAdmin)
	payload := `{"restaurant_id":"` + restA2 + `","date":"2025-03-10","wins":[{"comment":"lleno total"}]}`

	status, _ := call(t, app, http.MethodPost, "/api/v1/blue-book", admin, payload)
	require.Equal(t, http.StatusCreated, status)

	status, body := call(t, app, http.MethodPost, "/api/v1/blue-book", admin, payload)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE_BLUE_BOOK", body["code"])

	status, byDate := call(t, app, http.MethodGet, "/api/v1/blue-book/restaurant/"+restA2+"/date/2025-03-10", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, restA2, byDate["restaurant_id"])
}

func TestRouter_DashboardStatsAndExport(t *testing.T) {
	app := newTestAPI(t)
	admin := bearer(t, adminID, entity.RoleCompanyAdmin)
	emp := bearer(t, empID, entity.RoleRestaurantEmployee)

	status, stats := call(t, app, http.MethodGet, "/api/v1/dashboard/stats?start_date=2025-01-01&end_date=2025-01-31", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.RoleCompanyAdmin, stats["role"])
	assert.Len(t, stats["breakdown"], 2)

	status, stats = call(t, app, http.MethodGet, "/api/v1/dashboard/stats?restaurant_id="+restA2, emp, "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, stats["breakdown"], "restA2 fuera del alcance del empleado")

	status, body := call(t, app, http.MethodGet, "/api/v1/dashboard/stats?start_date=2025-02-01&end_date=2025-01-01", admin, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_DATE_RANGE", body["code"])

	status, _ = call(t, app, http.MethodGet, "/api/v1/dashboard/export", emp, "")
	assert.Equal(t, http.StatusForbidden, status)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/export", nil)
	req.Header.Set("Authorization", admin)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "dashboard")
}

func TestRouter_CompaniesAndRoles(t *testing.T) {
	app := newTestAPI(t)
	sa := bearer(t, "40000000-0000-0000-0000-000000000001", entity.RoleSuperAdmin)
	admin := bearer(t, adminID, entity.RoleCompanyAdmin)

	status, created := call(t, app, http.MethodPost, "/api/v1/companies", "", `{"name":"Nueva SA"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, false, created["is_onboarded"])

	status, pending := call(t, app, http.MethodGet, "/api/v1/companies/pending", sa, "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, pending["count"])

	status, _ = call(t, app, http.MethodGet, "/api/v1/companies/pending", admin, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, body := call(t, app, http.MethodGet, "/api/v1/companies/50000000-0000-0000-0000-000000000009", sa, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "COMPANY_NOT_FOUND", body["code"])

	status, roles := call(t, app, http.MethodGet, "/api/v1/roles", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, roles["roles"], 2)

	status, _ = call(t, app, http.MethodGet, "/api/v1/restaurants", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}
