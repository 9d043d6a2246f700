package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers struct {
	users []model.User
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user by email table:users: %w", repository.ErrNotFound)
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user by id table:users: %w", repository.ErrNotFound)
}

func (m *memoryUsers) Create(_ context.Context, nu model.NewUser) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == nu.Email {
			return nil, fmt.Errorf("create user table:users: %w", &pgconn.PgError{
				Code: "23505", TableName: "users", ConstraintName: "users_email_key",
			})
		}
	}
	u := model.User{ID: int64(len(m.users) + 1), Name: nu.Name, Email: nu.Email, Password: nu.Password}
	m.users = append(m.users, u)
	return &u, nil
}

type memoryProperties struct {
	filters model.PropertyFilters
	limit   int
}

func (m *memoryProperties) Search(_ context.Context, f model.PropertyFilters, limit int) ([]model.PropertyWithRating, error) {
	m.filters, m.limit = f, limit
	return []model.PropertyWithRating{
		{Property: model.Property{ID: 1, City: "Austin", CostPerNight: 100}, AverageRating: 4.5},
	}, nil
}

func (m *memoryProperties) Create(_ context.Context, p model.NewProperty) (*model.Property, error) {
	if p.OwnerID == 404 {
		return nil, fmt.Errorf("create property table:properties: %w", &pgconn.PgError{
			Code: "23503", TableName: "properties", ConstraintName: "properties_owner_id_fkey",
		})
	}
	return &model.Property{ID: 9, OwnerID: p.OwnerID, Title: p.Title, City: p.City}, nil
}

type memoryReservations struct {
	guest int64
	limit int
}

func (m *memoryReservations) ListForGuest(_ context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error) {
	m.guest, m.limit = guestID, limit
	return []model.ReservationWithProperty{{
		Property: model.Property{ID: 2, Title: "Cabin"},
		Reservation: model.Reservation{
			ID: 5, GuestID: guestID, PropertyID: 2,
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}}, nil
}

type fixture struct {
	router       http.Handler
	users        *memoryUsers
	properties   *memoryProperties
	reservations *memoryReservations
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Enabled = false
	return newFixtureWith(t, obs)
}

func newFixtureWith(t *testing.T, obs *config.ObservabilityConfig) *fixture {
	t.Helper()

	log := zerolog.New(&bytes.Buffer{})

	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Observability: obs,
		},
		Logger: &log,
	}

	f := &fixture{
		users:        &memoryUsers{users: []model.User{{ID: 1, Name: "Ada", Email: "ada@example.com", Password: "secret"}}},
		properties:   &memoryProperties{},
		reservations: &memoryReservations{},
	}

	services := &service.Services{
		Users:        service.NewUserService(s.Logger, f.users),
		Properties:   service.NewPropertyService(s.Logger, f.properties),
		Reservations: service.NewReservationService(s.Logger, f.reservations),
	}
	f.router = NewRouter(s, handler.NewHandlers(s, services))
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestStatus(t *testing.T) {
	rec := newFixture(t).do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeJSON(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestStatus_DatabaseUnavailable(t *testing.T) {
	// Checks enabled with no pool behind the server.
	rec := newFixtureWith(t, config.DefaultObservabilityConfig()).do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body errs.HTTPError
	decodeJSON(t, rec, &body)
	assert.Equal(t, "SERVICE_UNAVAILABLE", body.Code)
	assert.Equal(t, http.StatusServiceUnavailable, body.Status)
	require.NotNil(t, body.Action)
	assert.Equal(t, errs.ActionTypeRetry, body.Action.Type)
	assert.Equal(t, []errs.FieldError{{Field: "database", Error: "unhealthy"}}, body.Errors)
}

func TestSearchProperties(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/properties?city=Aus&minimum_price_per_night=50&minimum_rating=4&limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, model.PropertyFilters{City: "Aus", MinimumPricePerNight: 50, MinimumRating: 4}, f.properties.filters)
	assert.Equal(t, 3, f.properties.limit)

	var body []model.PropertyWithRating
	decodeJSON(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, 4.5, body[0].AverageRating)
}

func TestSearchProperties_DefaultLimit(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.PropertyFilters{}, f.properties.filters)
	assert.Equal(t, repository.DefaultLimit, f.properties.limit)
}

func TestSearchProperties_InvalidQuery(t *testing.T) {
	rec := newFixture(t).do(http.MethodGet, "/api/properties?minimum_rating=7", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProperty(t *testing.T) {
	f := newFixture(t)
	body := `{
		"owner_id": 1, "title": "Loft", "description": "d",
		"thumbnail_photo_url": "t", "cover_photo_url": "c", "cost_per_night": 12000,
		"street": "1 Main", "city": "Austin", "province": "TX", "post_code": "73301",
		"country": "US", "parking_spaces": 1, "number_of_bathrooms": 1, "number_of_bedrooms": 2
	}`

	rec := f.do(http.MethodPost, "/api/properties", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Property
	decodeJSON(t, rec, &created)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, "Austin", created.City)

	rec = f.do(http.MethodPost, "/api/properties", strings.Replace(body, `"owner_id": 1`, `"owner_id": 404`, 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]any
	decodeJSON(t, rec, &errBody)
	assert.Equal(t, "OWNER_NOT_FOUND", errBody["code"])
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/users", `{"name":"Grace","email":"grace@example.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	var created model.User
	decodeJSON(t, rec, &created)
	assert.Equal(t, int64(2), created.ID)

	rec = f.do(http.MethodPost, "/api/users", `{"name":"Ada","email":"ada@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]any
	decodeJSON(t, rec, &errBody)
	assert.Equal(t, "USER_ALREADY_EXISTS", errBody["code"])
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var u model.User
	decodeJSON(t, rec, &u)
	assert.Equal(t, "Ada", u.Name)

	rec = f.do(http.MethodGet, "/api/users/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errBody map[string]any
	decodeJSON(t, rec, &errBody)
	assert.Equal(t, "User not found", errBody["message"])

	rec = f.do(http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserByEmail(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/users/by-email?email=ada@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var u model.User
	decodeJSON(t, rec, &u)
	assert.Equal(t, int64(1), u.ID)

	rec = f.do(http.MethodGet, "/api/users/by-email?email=nobody@example.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/api/users/by-email", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGuestReservations(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/users/3/reservations?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(3), f.reservations.guest)
	assert.Equal(t, 2, f.reservations.limit)

	var body []model.ReservationWithProperty
	decodeJSON(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Cabin", body[0].Property.Title)
	assert.Equal(t, int64(5), body[0].Reservation.ID)
}

func TestUnknownRoute(t *testing.T) {
	rec := newFixture(t).do(http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
