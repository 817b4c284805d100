package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) BookTicket(ctx context.Context, input booking.BookTicketInput) (*domain.Ticket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockBookingUseCase) ChangeSeat(ctx context.Context, input booking.ChangeSeatInput) (*domain.Ticket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockBookingUseCase) CancelTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockBookingUseCase) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func newTicketRouter(service booking.BookingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewTicketHandler(service).Register(router.Group("/tickets"))
	return router
}

func TestTicketHandler_Book(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTicketRouter(mockService)

	ticket := &domain.Ticket{
		ID:            "t-1",
		FlightID:      4,
		PassengerID:   7,
		Class:         domain.ClassEconomy,
		SeatNumber:    "14C",
		Price:         decimal.NewFromInt(500),
		PaymentStatus: domain.PaymentStatusPending,
	}
	mockService.On("BookTicket", mock.Anything, booking.BookTicketInput{
		FlightID:    4,
		PassengerID: 7,
		Class:       "economy",
		SeatNumber:  "14C",
	}).Return(ticket, nil).Once()

	body, _ := json.Marshal(bookTicketRequest{FlightID: 4, PassengerID: 7, Class: "economy", SeatNumber: "14C"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ticketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "t-1", resp.ID)
	assert.Equal(t, "14C", resp.SeatNumber)
	assert.Equal(t, "500", resp.Price)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_Book_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: seat 14C", domain.ErrSeatNotAvailable), http.StatusConflict},
		{fmt.Errorf("%w: passenger 7", domain.ErrIneligibleForClass), http.StatusForbidden},
		{fmt.Errorf("%w: flight", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: seat number is required", domain.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: seat_pools", domain.ErrLockTimeout), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		mockService := &MockBookingUseCase{}
		router := newTicketRouter(mockService)
		mockService.On("BookTicket", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

		body, _ := json.Marshal(bookTicketRequest{FlightID: 4, PassengerID: 7, Class: "economy", SeatNumber: "14C"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tickets/", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
		if tc.status == http.StatusServiceUnavailable {
			assert.Equal(t, "1", w.Header().Get("Retry-After"))
		}
	}
}

func TestTicketHandler_Book_InvalidPrice(t *testing.T) {
	router := newTicketRouter(&MockBookingUseCase{})

	price := "not-a-number"
	body, _ := json.Marshal(bookTicketRequest{FlightID: 4, PassengerID: 7, Class: "economy", SeatNumber: "14C", Price: &price})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ChangeSeat(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTicketRouter(mockService)

	updated := &domain.Ticket{
		ID:         "t-2",
		FlightID:   4,
		Class:      domain.ClassBusiness,
		SeatNumber: "4A",
		Price:      decimal.NewFromInt(400),
	}
	mockService.On("ChangeSeat", mock.Anything, booking.ChangeSeatInput{
		TicketID:      "t-2",
		NewClass:      "business",
		NewSeatNumber: "4A",
	}).Return(updated, nil).Once()

	body, _ := json.Marshal(changeSeatRequest{Class: "business", SeatNumber: "4A"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tickets/t-2", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ticketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4A", resp.SeatNumber)
	assert.Equal(t, "business", resp.Class)
}

func TestTicketHandler_Cancel_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTicketRouter(mockService)

	mockService.On("CancelTicket", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/tickets/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
