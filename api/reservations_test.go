package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReservationHandler_create(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(makeReservationRequest{UserID: 1, AirlineTicketID: 3})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &reservation.ReservationResult{
		Prices:     []int{100, 200},
		Charges:    []int{10, 20},
		Tax:        15,
		TotalPrice: 345,
		Success:    true,
	}
	mockService.On("MakeReservation", c.Request.Context(), reservation.MakeReservationInput{UserID: 1, AirlineTicketID: 3}).Return(result, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response reservation.ReservationResult
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, *result, response)

	mockService.AssertExpectations(t)
}

func TestReservationHandler_create_BadBody(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader([]byte(`{"userId": 1}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "MakeReservation")
}

func TestReservationHandler_create_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: fmt.Errorf("%w: airline ticket 3", domain.ErrNotFound), status: http.StatusNotFound},
		{name: "rejected", err: fmt.Errorf("%w: reservation refused", domain.ErrRejected), status: http.StatusNotAcceptable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockReservationUseCase{}
			handler := NewReservationHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader([]byte(`{"userId":1,"airlineTicketId":3}`)))
			c.Request.Header.Set("Content-Type", "application/json")

			mockService.On("MakeReservation", mock.Anything, mock.Anything).Return(nil, tc.err)

			handler.create(c)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestReservationHandler_sumPrice(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/users-sum-price?user-id=1", nil)

	mockService.On("SumUserFlightCosts", c.Request.Context(), int64(1)).Return(165.0, nil)

	handler.sumPrice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "165", w.Body.String())

	mockService.AssertExpectations(t)
}

func TestReservationHandler_sumPrice_InvalidUserID(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/users-sum-price", nil)

	handler.sumPrice(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationHandler_arrivalLocations(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/username-arrival-location?username=kim", nil)

	mockService.On("ListArrivalLocationsByUsername", c.Request.Context(), "kim").Return([]string{"Tokyo"}, nil)

	handler.arrivalLocations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Tokyo"]`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestReservationHandler_arrivalLocations_Empty(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/username-arrival-location?username=nobody", nil)

	mockService.On("ListArrivalLocationsByUsername", c.Request.Context(), "nobody").Return([]string{}, nil)

	handler.arrivalLocations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
