package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placehub/internal/config"
	"placehub/internal/middleware"
	"placehub/internal/models"
)

func testConfig(dataDir string) *config.Config {
	return &config.Config{
		Port:      "0",
		GinMode:   gin.TestMode,
		LogLevel:  "error",
		LogFormat: "text",
		DataDir:   dataDir,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(testConfig(t.TempDir()))
	require.NoError(t, err)
	return server
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func login(t *testing.T, r *gin.Engine, username, password string) models.LoginResponse {
	t.Helper()
	w := doRequest(t, r, "POST", "/api/manager/login", "", models.LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	return decode[models.LoginResponse](t, w)
}

func TestListPlaces(t *testing.T) {
	r := newTestServer(t).GetRouter()

	w := doRequest(t, r, "GET", "/api/places", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	places := decode[[]models.Place](t, w)
	require.Len(t, places, 3)
	assert.Equal(t, "Coffee Time", places[0].Name)
	assert.Equal(t, 8, places[0].FreeSeats)
}

func TestLoginScopes(t *testing.T) {
	r := newTestServer(t).GetRouter()

	admin := login(t, r, "admin", "admin123")
	assert.NotEmpty(t, admin.Token)
	assert.Equal(t, int64(-1), admin.PlaceID)
	assert.Equal(t, "Admin", admin.PlaceName)
	assert.True(t, admin.IsAdmin)

	scoped := login(t, r, "coffee_time", "coffee123")
	assert.Equal(t, int64(1), scoped.PlaceID)
	assert.Equal(t, "Coffee Time", scoped.PlaceName)
	assert.False(t, scoped.IsAdmin)
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	r := newTestServer(t).GetRouter()

	wrongPassword := doRequest(t, r, "POST", "/api/manager/login", "", models.LoginRequest{Username: "coffee_time", Password: "nope"})
	unknownUser := doRequest(t, r, "POST", "/api/manager/login", "", models.LoginRequest{Username: "nobody", Password: "coffee123"})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestUpdateSeatsAuthorization(t *testing.T) {
	r := newTestServer(t).GetRouter()
	club := login(t, r, "gameclub_pro", "game123")
	admin := login(t, r, "admin", "admin123")

	seats := func(v int) models.UpdateSeatsRequest { return models.UpdateSeatsRequest{FreeSeats: &v} }

	// No token, unknown token, wrong scope, admin override.
	w := doRequest(t, r, "PUT", "/api/places/3/seats", "", seats(5))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "PUT", "/api/places/3/seats", "deadbeefdeadbeefdeadbeefdeadbeef", seats(5))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "PUT", "/api/places/3/seats", club.Token, seats(5))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "PUT", "/api/places/2/seats", club.Token, seats(5))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[models.Place](t, w).FreeSeats)

	w = doRequest(t, r, "PUT", "/api/places/3/seats", admin.Token, seats(0))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[models.Place](t, w).FreeSeats)
}

func TestUpdateSeatsRejectsOutOfRange(t *testing.T) {
	r := newTestServer(t).GetRouter()
	admin := login(t, r, "admin", "admin123")

	bad := 21
	w := doRequest(t, r, "PUT", "/api/places/1/seats", admin.Token, models.UpdateSeatsRequest{FreeSeats: &bad})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "between 0 and 20")

	// The rejected update left the place unchanged.
	w = doRequest(t, r, "GET", "/api/places", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 8, decode[[]models.Place](t, w)[0].FreeSeats)
}

func TestBookingLifecycle(t *testing.T) {
	r := newTestServer(t).GetRouter()
	cafe := login(t, r, "coffee_time", "coffee123")
	club := login(t, r, "gameclub_pro", "game123")
	admin := login(t, r, "admin", "admin123")

	// Visitors book without a token.
	w := doRequest(t, r, "POST", "/api/places/1/bookings", "", models.CreateBookingRequest{
		Name:   "Ali",
		People: 4,
		Time:   "today 19:00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	booking := decode[models.Booking](t, w)
	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	// Booking a table does not consume seats.
	w = doRequest(t, r, "GET", "/api/places", "", nil)
	assert.Equal(t, 8, decode[[]models.Place](t, w)[0].FreeSeats)

	// Only the owning manager (or admin) sees the place's bookings.
	w = doRequest(t, r, "GET", "/api/places/1/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doRequest(t, r, "GET", "/api/places/1/bookings", club.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doRequest(t, r, "GET", "/api/places/1/bookings", cafe.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[[]models.Booking](t, w), 1)

	// Admin overview.
	w = doRequest(t, r, "GET", "/api/admin/bookings", club.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doRequest(t, r, "GET", "/api/admin/bookings", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[[]models.Booking](t, w), 1)

	// Status transitions.
	w = doRequest(t, r, "PUT", "/api/bookings/1/status", club.Token, models.UpdateBookingStatusRequest{Status: models.BookingStatusConfirmed})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doRequest(t, r, "PUT", "/api/bookings/1/status", cafe.Token, models.UpdateBookingStatusRequest{Status: "approved"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(t, r, "PUT", "/api/bookings/99/status", cafe.Token, models.UpdateBookingStatusRequest{Status: models.BookingStatusConfirmed})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(t, r, "PUT", "/api/bookings/1/status", cafe.Token, models.UpdateBookingStatusRequest{Status: models.BookingStatusConfirmed})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingStatusConfirmed, decode[models.Booking](t, w).Status)
}

func TestCreateBookingUnknownPlace(t *testing.T) {
	r := newTestServer(t).GetRouter()

	w := doRequest(t, r, "POST", "/api/places/99/bookings", "", models.CreateBookingRequest{Name: "Ali", People: 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The failed attempt did not consume a booking id.
	w = doRequest(t, r, "POST", "/api/places/1/bookings", "", models.CreateBookingRequest{Name: "Ali", People: 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[models.Booking](t, w).ID)
}

func TestRatingsFlow(t *testing.T) {
	r := newTestServer(t).GetRouter()

	w := doRequest(t, r, "POST", "/api/places/1/ratings", "", models.CreateRatingRequest{Rating: 4, Status: models.RatingStatusBusy, Name: "Aziz"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, r, "POST", "/api/places/1/ratings", "", models.CreateRatingRequest{Rating: 2, Status: models.RatingStatusFree})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, "POST", "/api/places/1/ratings", "", models.CreateRatingRequest{Rating: 9, Status: models.RatingStatusFree})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(t, r, "POST", "/api/places/99/ratings", "", models.CreateRatingRequest{Rating: 3, Status: models.RatingStatusFree})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, "GET", "/api/places/1/ratings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ratings := decode[[]models.Rating](t, w)
	require.Len(t, ratings, 2)
	assert.Equal(t, "Aziz", ratings[0].Name)

	w = doRequest(t, r, "GET", "/api/ratings/summary", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summaries := decode[[]models.RatingSummary](t, w)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 3.0, summaries[0].AvgRating, 1e-9)
	assert.Equal(t, 2, summaries[0].RatingCount)
	assert.Equal(t, models.RatingStatusFree, summaries[0].LastStatus)
}

func TestStateSurvivesRestart(t *testing.T) {
	dataDir := t.TempDir()

	server, err := NewServer(testConfig(dataDir))
	require.NoError(t, err)
	r := server.GetRouter()
	admin := login(t, r, "admin", "admin123")

	one := 1
	w := doRequest(t, r, "PUT", "/api/places/2/seats", admin.Token, models.UpdateSeatsRequest{FreeSeats: &one})
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, r, "POST", "/api/places/2/bookings", "", models.CreateBookingRequest{Name: "Vali", People: 3})
	require.Equal(t, http.StatusOK, w.Code)

	// A restart is a fresh server over the same data directory. Sessions are
	// gone, collections are not.
	restarted, err := NewServer(testConfig(dataDir))
	require.NoError(t, err)
	r2 := restarted.GetRouter()

	w = doRequest(t, r2, "GET", "/api/places", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[[]models.Place](t, w)[1].FreeSeats)

	w = doRequest(t, r2, "GET", "/api/admin/bookings", admin.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin2 := login(t, r2, "admin", "admin123")
	w = doRequest(t, r2, "GET", "/api/admin/bookings", admin2.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[[]models.Booking](t, w), 1)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestServer(t).GetRouter()

	w := doRequest(t, r, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")

	w = doRequest(t, r, "GET", "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "placehub_http_requests_total")
}
