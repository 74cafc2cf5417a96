package api

import (
	"autosallon/internal/app/service"
	"autosallon/internal/domain/repository"
	"autosallon/internal/platform/config"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router http.Handler
	auth   *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	config.AppConfig = &config.Config{
		SessionCookieName: "autosallon_session",
		SessionTTL:        time.Hour,
		CookieSecure:      false,
	}

	authService := service.NewAuthService(
		repository.NewMemoryUserRepository(),
		repository.NewMemorySessionRepository(time.Hour),
	)
	carService := service.NewCarService(repository.NewMemoryCarRepository())
	leadService := service.NewLeadService(
		repository.NewMemoryContactRepository(),
		repository.NewMemorySellRequestRepository(),
	)

	ctx := context.Background()
	_, err := authService.RegisterUser(ctx, "admin", "admin123", true)
	require.NoError(t, err)
	_, err = authService.RegisterUser(ctx, "visitor", "visitor123", false)
	require.NoError(t, err)

	return &testEnv{
		router: NewRouter(authService, carService, leadService),
		auth:   authService,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateCarAsAdminEchoesPayload(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	rec := env.do(t, http.MethodPost, "/api/cars", map[string]any{
		"title":       "Test",
		"price":       50000,
		"year":        2022,
		"mileage":     10000,
		"description": "x",
		"images":      "[]", // legacy client shape: JSON encoded as a string
		"specs":       "{}",
	}, admin)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "Test", body["title"])
	assert.Equal(t, float64(50000), body["price"])
	assert.Equal(t, float64(2022), body["year"])
	assert.Equal(t, float64(10000), body["mileage"])
	assert.Equal(t, "x", body["description"])
	assert.Equal(t, []any{}, body["images"])
}

func TestGetMissingCarReturns404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/cars/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCarMutationsRequireAdmin(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{"title": "x", "price": 1, "year": 2020, "mileage": 0, "description": "d"}

	// No session at all.
	rec := env.do(t, http.MethodPost, "/api/cars", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not admin.
	visitor := env.login(t, "visitor", "visitor123")
	rec = env.do(t, http.MethodPost, "/api/cars", payload, visitor)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteCarTwice(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	rec := env.do(t, http.MethodPost, "/api/cars", map[string]any{
		"title": "Short-lived", "price": 9000, "year": 2019, "mileage": 50000, "description": "d",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(decodeBody(t, rec)["id"].(float64))

	rec = env.do(t, http.MethodDelete, "/api/cars/"+itoa(id), nil, admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/cars/"+itoa(id), nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchMissingCarReturns404(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	rec := env.do(t, http.MethodPatch, "/api/cars/9999", map[string]any{"title": "Ghost"}, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactMissingEmailReturns400(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Arben",
		"message": "Hello",
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email"`)
}

func TestContactCreatedAtIsServerAssigned(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]any{
		"name":      "Arben",
		"email":     "arben@example.com",
		"message":   "Hello",
		"createdAt": "1999-01-01T00:00:00Z", // must be ignored
	}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	createdAt, err := time.Parse(time.RFC3339, body["createdAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), createdAt, time.Minute)
}

func TestLoginUnknownUserThenLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logout still succeeds with no session to destroy.
	rec = env.do(t, http.MethodPost, "/api/logout", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMeReflectsSessionState(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	admin := env.login(t, "admin", "admin123")
	rec = env.do(t, http.MethodGet, "/api/me", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, true, user["isAdmin"])

	// After logout the same cookie no longer resolves.
	rec = env.do(t, http.MethodPost, "/api/logout", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodGet, "/api/me", nil, admin)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLeadRoutesAreGated(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/admin/contacts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	visitor := env.login(t, "visitor", "visitor123")
	rec = env.do(t, http.MethodGet, "/api/admin/contacts", nil, visitor)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := env.login(t, "admin", "admin123")
	rec = env.do(t, http.MethodGet, "/api/admin/contacts", nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSellRequestFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/sell", map[string]any{
		"name":  "Drita",
		"email": "drita@example.com",
		"phone": "+355691234567",
		"carDetails": map[string]any{
			"make": "VW", "model": "Golf", "year": 2018, "mileage": 85000,
			"condition": "good", "askingPrice": 14000,
		},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(decodeBody(t, rec)["id"].(float64))

	admin := env.login(t, "admin", "admin123")
	rec = env.do(t, http.MethodGet, "/api/admin/sell-requests", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/admin/sell-requests/"+itoa(id), nil, admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/admin/sell-requests/"+itoa(id), nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
