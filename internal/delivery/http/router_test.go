package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"easymed-booking/config"
	"easymed-booking/internal/availability"
	"easymed-booking/internal/catalog"
	"easymed-booking/internal/delivery/http/handler"
	"easymed-booking/internal/delivery/http/middleware"
	"easymed-booking/internal/notify"
	"easymed-booking/internal/observability/metrics"
	"easymed-booking/internal/repository"
	"easymed-booking/internal/usecase"
	"easymed-booking/pkg/jwt"
	"easymed-booking/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Meta    *struct {
		Total int    `json:"total"`
		Sort  string `json:"sort"`
	} `json:"meta"`
}

type failingSender struct{}

func (failingSender) Send(ctx context.Context, msg notify.EmailMessage) error {
	return errors.New("provider unavailable")
}

func newTestServer(t *testing.T, sender notify.EmailSender) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	doctors, err := catalog.New(repository.SampleDoctors())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(reg)

	registry := availability.NewRegistry(log, 0)
	t.Cleanup(registry.Stop)

	if sender == nil {
		sender = notify.NewStubEmailSender(0, log)
	}
	dispatcher := notify.NewDispatcher(sender, log, bookingMetrics)
	t.Cleanup(dispatcher.Close)

	store := repository.NewMemoryClientStore()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", ClientExpiry: time.Hour})
	v := validator.NewValidator()

	router := NewRouter(RouterParams{
		DoctorHandler:       handler.NewDoctorHandler(usecase.NewDoctorSearchUsecase(log, doctors, bookingMetrics), v),
		AvailabilityHandler: handler.NewAvailabilityHandler(usecase.NewAvailabilityUsecase(log, doctors, registry, bookingMetrics)),
		FavoritesHandler:    handler.NewFavoritesHandler(usecase.NewFavoritesUsecase(log, doctors, store, bookingMetrics)),
		BookingHandler:      handler.NewBookingHandler(usecase.NewBookingUsecase(log, doctors, registry, dispatcher, bookingMetrics), v),
		NotificationHandler: handler.NewNotificationHandler(usecase.NewNotificationUsecase(log, dispatcher), v),
		AuthHandler:         handler.NewAuthHandler(usecase.NewAuthUsecase(log, store, registry, jwtService), v),
		ClientMiddleware:    middleware.NewClientMiddleware(jwtService, log),
		CORSMiddleware:      middleware.NewCORSMiddleware(),
		MetricsHandler:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, server *httptest.Server, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, server.URL+"/api/v1"+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func issueToken(t *testing.T, server *httptest.Server) string {
	t.Helper()
	status, env := do(t, server, http.MethodPost, "/clients", "", nil)
	require.Equal(t, http.StatusCreated, status)

	var token struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.Token)
	return token.Token
}

func TestHealthAndMetrics(t *testing.T) {
	server := newTestServer(t, nil)

	resp, err := server.Client().Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, _ = do(t, server, http.MethodGet, "/doctors", "", nil)

	resp, err = server.Client().Get(server.URL + "/api/v1/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "easymed_catalog_search_total")
}

func TestSearchDoctorsEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	status, env := do(t, server, http.MethodGet, "/doctors?sort=name", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 6, env.Meta.Total)
	assert.Equal(t, "name", env.Meta.Sort)

	var doctors []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &doctors))
	ids := make([]int, len(doctors))
	for i, d := range doctors {
		ids[i] = d.ID
	}
	assert.Equal(t, []int{3, 4, 5, 2, 6, 1}, ids)

	status, env = do(t, server, http.MethodGet, "/doctors?available_today=true&insurance=true&verified=true", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, env.Meta.Total)

	status, env = do(t, server, http.MethodGet, "/doctors?price_min=abc&sort=popular", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fieldErrors))
	assert.Contains(t, fieldErrors, "price_min")
	assert.Contains(t, fieldErrors, "sort")
}

func TestDoctorDetailAndSpecialties(t *testing.T) {
	server := newTestServer(t, nil)

	status, env := do(t, server, http.MethodGet, "/doctors/2", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Dr. Michael Chen")

	status, _ = do(t, server, http.MethodGet, "/doctors/99", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = do(t, server, http.MethodGet, "/specialties", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "General Medicine")
}

func TestFavoritesEndpoints(t *testing.T) {
	server := newTestServer(t, nil)

	status, _ := do(t, server, http.MethodGet, "/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	token := issueToken(t, server)

	status, _ = do(t, server, http.MethodPut, "/favorites/3", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = do(t, server, http.MethodPut, "/favorites/1", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = do(t, server, http.MethodPut, "/favorites/99", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env := do(t, server, http.MethodGet, "/favorites", token, nil)
	require.Equal(t, http.StatusOK, status)
	var favorites struct {
		DoctorIDs []int `json:"doctor_ids"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	assert.Equal(t, []int{1, 3}, favorites.DoctorIDs)

	status, _ = do(t, server, http.MethodDelete, "/favorites/3", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, server, http.MethodGet, "/favorites/3", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"doctor_id":3,"is_favorite":false}`, string(env.Data))

	other := issueToken(t, server)
	_, env = do(t, server, http.MethodGet, "/favorites", other, nil)
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	assert.Empty(t, favorites.DoctorIDs)
}

func TestAvailabilityAndBooking(t *testing.T) {
	server := newTestServer(t, nil)
	token := issueToken(t, server)

	status, env := do(t, server, http.MethodGet, "/doctors/1/availability?date=2026-10-20", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"time":"9:30 AM","available":false`)

	status, _ = do(t, server, http.MethodGet, "/doctors/1/availability", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	booking := map[string]any{
		"doctor_id":     1,
		"date":          "2026-10-20",
		"time":          "9:30 AM",
		"patient_name":  "John Smith",
		"patient_email": "john@example.com",
		"patient_phone": "555-0100",
	}
	status, _ = do(t, server, http.MethodPost, "/bookings", token, booking)
	assert.Equal(t, http.StatusConflict, status)

	status, env = do(t, server, http.MethodPost, "/doctors/1/availability/1/toggle?date=2026-10-20", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"index":1,"time":"9:30 AM","available":true}`, string(env.Data))

	status, _ = do(t, server, http.MethodPost, "/doctors/1/availability/40/toggle?date=2026-10-20", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = do(t, server, http.MethodPost, "/bookings", token, booking)
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"status":"confirmed"`)

	status, env = do(t, server, http.MethodPost, "/bookings", token, map[string]any{"doctor_id": 1})
	assert.Equal(t, http.StatusBadRequest, status)
	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fieldErrors))
	assert.Equal(t, "patient_email is required", fieldErrors["patient_email"])
}

func TestNotificationEndpoint(t *testing.T) {
	payload := map[string]any{
		"type": "confirmation",
		"appointment": map[string]any{
			"patient_name": "John Smith",
			"doctor_name":  "Dr. Sarah Johnson",
			"date":         "2026-10-20",
			"time":         "9:00 AM",
			"location":     "Downtown Medical Center",
		},
		"recipient": map[string]any{"email": "john@example.com", "name": "John Smith"},
	}

	server := newTestServer(t, nil)
	status, env := do(t, server, http.MethodPost, "/notifications", "", payload)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "confirmation notification sent successfully", env.Message)

	payload["type"] = "newsletter"
	status, env = do(t, server, http.MethodPost, "/notifications", "", payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "newsletter notification sent successfully", env.Message)

	payload["type"] = "reminder"
	failing := newTestServer(t, failingSender{})
	status, env = do(t, failing, http.MethodPost, "/notifications", "", payload)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.JSONEq(t, `"Failed to send notification"`, string(env.Error))
}

func TestNotificationEndpoint_BadRequestsFailGenerically(t *testing.T) {
	server := newTestServer(t, nil)

	status, env := do(t, server, http.MethodPost, "/notifications", "", "not an object")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.JSONEq(t, `"Failed to send notification"`, string(env.Error))

	status, env = do(t, server, http.MethodPost, "/notifications", "", map[string]any{
		"type":      "reminder",
		"recipient": map[string]any{"email": "john@example.com", "name": "John Smith"},
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.JSONEq(t, `"Failed to send notification"`, string(env.Error))
}

func TestPreflightCarriesCORSHeaders(t *testing.T) {
	server := newTestServer(t, nil)

	for _, path := range []string{"/api/v1/favorites", "/api/v1/doctors"} {
		req, err := http.NewRequest(http.MethodOptions, server.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)

		resp, err := server.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), path)
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPut, path)
	}
}

func TestMockSessionEndpoints(t *testing.T) {
	server := newTestServer(t, nil)
	token := issueToken(t, server)

	status, _ := do(t, server, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	register := map[string]any{
		"first_name":       "Jane",
		"last_name":        "Doe",
		"email":            "jane@example.com",
		"password":         "weakpass",
		"confirm_password": "different",
		"user_type":        "patient",
		"agree_to_terms":   true,
	}
	status, env := do(t, server, http.MethodPost, "/auth/register", token, register)
	require.Equal(t, http.StatusBadRequest, status)
	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fieldErrors))
	assert.Equal(t, "Passwords do not match", fieldErrors["confirm_password"])
	assert.Contains(t, fieldErrors, "password")

	register["password"] = "Str0ngPass!"
	register["confirm_password"] = "Str0ngPass!"
	register["agree_to_terms"] = false
	status, env = do(t, server, http.MethodPost, "/auth/register", token, register)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please agree to the terms and conditions.", env.Message)

	status, _ = do(t, server, http.MethodPost, "/auth/login", token, map[string]any{
		"email": "doc@example.com", "password": "anything", "user_type": "doctor",
	})
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, server, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"user_type":"doctor"`)

	status, _ = do(t, server, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = do(t, server, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
