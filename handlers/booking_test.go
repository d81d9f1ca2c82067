package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingRepo struct {
	bookings map[string]*models.PersistedBooking
}

func (s *stubBookingRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	return "", errors.New("not used")
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*models.PersistedBooking, error) {
	if b, ok := s.bookings[id]; ok {
		return b, nil
	}
	return nil, errors.New("booking not found")
}

func (s *stubBookingRepo) GetByRequestor(ctx context.Context, email string) ([]models.PersistedBooking, error) {
	var out []models.PersistedBooking
	for _, b := range s.bookings {
		if b.RequestorMail == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func bookingRouter(repo *stubBookingRepo, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(repo)
	r := gin.New()
	r.GET("/api/bookings/:id", func(c *gin.Context) {
		if email != "" {
			c.Set("userEmail", email)
		}
		h.GetByID(c)
	})
	return r
}

func TestGetBookingByIDForRequestor(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[string]*models.PersistedBooking{
		"b-1": {
			ID:            "b-1",
			BookingRecord: models.BookingRecord{Room: "Eng Lab", RequestorMail: "alice@example.com"},
		},
	}}
	router := bookingRouter(repo, "alice@example.com")

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/api/bookings/b-1", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Eng Lab")
}

func TestGetBookingByIDHiddenFromOtherUsers(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[string]*models.PersistedBooking{
		"b-1": {
			ID:            "b-1",
			BookingRecord: models.BookingRecord{Room: "Eng Lab", RequestorMail: "alice@example.com"},
		},
	}}
	router := bookingRouter(repo, "mallory@example.com")

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/api/bookings/b-1", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "Eng Lab")
}

func TestGetBookingByIDUnknownID(t *testing.T) {
	router := bookingRouter(&stubBookingRepo{bookings: map[string]*models.PersistedBooking{}}, "alice@example.com")

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/api/bookings/nope", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingByIDRequiresIdentity(t *testing.T) {
	router := bookingRouter(&stubBookingRepo{bookings: map[string]*models.PersistedBooking{}}, "")

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/api/bookings/b-1", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
